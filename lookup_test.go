// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy
// of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations
// under the License.

package propres

import (
	"os"
	"runtime"

	. "github.com/onsi/ginkgo/v2"
	g "github.com/onsi/gomega"
)

var _ = Describe("lookup sources", func() {

	It("looks up properties", func() {
		props := Properties{"foo": "bar", "empty": ""}
		g.Expect(lookup(props, "foo")).To(g.Equal("bar"))
		val, ok := props.Lookup("empty")
		g.Expect(ok).To(g.BeTrue())
		g.Expect(val).To(g.BeEmpty())
		_, ok = props.Lookup("missing")
		g.Expect(ok).To(g.BeFalse())
	})

	It("merges properties without touching the originals", func() {
		base := Properties{"foo": "bar", "baz": "1"}
		merged := base.Merge(Properties{"baz": "2"}, nil, Properties{"baz": "3", "qux": "x"})
		g.Expect(merged).To(g.Equal(Properties{"foo": "bar", "baz": "3", "qux": "x"}))
		g.Expect(base).To(g.Equal(Properties{"foo": "bar", "baz": "1"}))
	})

	It("layers sources", func() {
		l := Layered(
			nil,
			Properties{"foo": "first"},
			LookupFunc(func(key string) (string, bool) {
				if key == "bar" {
					return "second", true
				}
				return "", false
			}),
			Properties{"foo": "shadowed", "baz": "third"})
		g.Expect(lookup(l, "foo")).To(g.Equal("first"))
		g.Expect(lookup(l, "bar")).To(g.Equal("second"))
		g.Expect(lookup(l, "baz")).To(g.Equal("third"))
		_, ok := l.Lookup("qux")
		g.Expect(ok).To(g.BeFalse())
	})

	It("never finds anything without environment", func() {
		_, ok := NoEnvironment.Lookup("PATH")
		g.Expect(ok).To(g.BeFalse())
	})

	It("looks into the process environment", func() {
		g.Expect(os.Setenv("PROPRES_TEST_ENV", "foo")).To(g.Succeed())
		DeferCleanup(func() { _ = os.Unsetenv("PROPRES_TEST_ENV") })
		g.Expect(lookup(Environment, "PROPRES_TEST_ENV")).To(g.Equal("foo"))
	})

	It("snapshots system properties", func() {
		props := SystemProperties()
		g.Expect(props).To(g.HaveKeyWithValue("os.name", runtime.GOOS))
		g.Expect(props).To(g.HaveKeyWithValue("os.arch", runtime.GOARCH))
		g.Expect(props).To(g.HaveKeyWithValue("file.separator", string(os.PathSeparator)))
		g.Expect(props).To(g.HaveKeyWithValue("path.separator", string(os.PathListSeparator)))
		g.Expect(props).To(g.HaveKeyWithValue("go.version", runtime.Version()))
		g.Expect(props).To(g.HaveKey("line.separator"))
		g.Expect(props).To(g.HaveKeyWithValue("user.dir", g.Not(g.BeEmpty())))
	})

})

// lookup returns the value of key, failing the current test if the key is
// unknown to the source.
func lookup(source Lookup, key string) string {
	GinkgoHelper()
	val, ok := source.Lookup(key)
	g.Expect(ok).To(g.BeTrue(), "unknown key %q", key)
	return val
}
