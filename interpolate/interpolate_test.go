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

package interpolate

import (
	"errors"

	"github.com/thediveo/propres"
	"gopkg.in/yaml.v3"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

var _ = Describe("interpolating", func() {

	r := propres.New(
		propres.WithProperties(propres.Properties{
			"foo": "---",
		}),
		propres.WithEnvironment(propres.NoEnvironment))

	It("interpolates YAML", func() {
		var yammel map[string]any
		Expect(yaml.Unmarshal([]byte(`
foo:
  fool: 42
  bar:
    - baz=***${foo}***
`),
			&yammel)).To(Succeed())
		Expect(Variables(yammel, r)).To(
			HaveKeyWithValue("foo", SatisfyAll(
				HaveKeyWithValue("fool", 42),
				HaveKeyWithValue("bar",
					ConsistOf("baz=***---***")))))
	})

	It("doesn't modify the original", func() {
		orig := map[string]any{"foo": "${foo}"}
		Expect(Variables(orig, r)).To(HaveKeyWithValue("foo", "---"))
		Expect(orig).To(HaveKeyWithValue("foo", "${foo}"))
	})

	It("returns interpolation errors", func() {
		var yammel map[string]any
		Expect(yaml.Unmarshal([]byte(`
foo:
  fool: 42
  bar:
    - baz=${bar
`),
			&yammel)).To(Succeed())
		_, err := Variables(yammel, r)
		Expect(err).To(MatchError("error in 'foo.bar[0]': incomplete expression: baz="))
		var incomplErr *propres.IncompleteExpressionError
		Expect(errors.As(err, &incomplErr)).To(BeTrue())
	})

	It("returns a value as is if it isn't a string or something we can explore further", func() {
		Expect(recursively(42, "", r)).To(Equal(42))
		Expect(recursively(nil, "", r)).To(BeNil())
	})

	When("given a string", func() {

		It("interpolates", func() {
			Expect(interpolateString("***${foo}***", "", r)).To(Equal("***---***"))
		})

		It("reports interpolation errors", func() {
			Expect(interpolateString("${bar}", "name", r)).Error().To(
				MatchError("error in 'name': failed to resolve expression: ${bar}"))
		})

	})

	When("given a mapping", func() {

		It("interpolates", func() {
			Expect(interpolateMapping(
				map[string]any{
					"foo": "***${foo}***",
				}, "", r)).To(HaveKeyWithValue("foo", Equal("***---***")))
		})

		It("reports interpolation errors", func() {
			Expect(interpolateMapping(
				map[string]any{
					"foo": "${foo",
				}, "mapping", r)).Error().To(
				MatchError("error in 'mapping.foo': incomplete expression: "))
		})

	})

	When("given a sequence", func() {

		It("interpolates", func() {
			Expect(interpolateSequence(
				[]any{
					"***${foo}***",
				}, "", r)).To(ConsistOf("***---***"))
		})

		It("reports interpolation errors", func() {
			Expect(interpolateSequence(
				[]any{
					"",
					"${bar}",
				}, "sequence", r)).Error().To(
				MatchError("error in 'sequence[1]': failed to resolve expression: ${bar}"))
		})

	})

	When("given a document", func() {

		It("interpolates and re-encodes", func() {
			out := Successful(Document([]byte(`
server:
  name: ${foo}
  port: 8080
  paths: ["${missing:/tmp}", "$${escaped}"]
`), r))
			var doc map[string]any
			Expect(yaml.Unmarshal(out, &doc)).To(Succeed())
			Expect(doc).To(HaveKeyWithValue("server", SatisfyAll(
				HaveKeyWithValue("name", "---"),
				HaveKeyWithValue("port", 8080),
				HaveKeyWithValue("paths", HaveExactElements("/tmp", "${escaped}")),
			)))
		})

		It("interpolates JSON", func() {
			out := Successful(Document([]byte(`{"a": {"b": "${foo}"}}`), r))
			var doc map[string]any
			Expect(yaml.Unmarshal(out, &doc)).To(Succeed())
			Expect(doc).To(HaveKeyWithValue("a", HaveKeyWithValue("b", "---")))
		})

		It("handles empty documents", func() {
			Expect(Document(nil, r)).To(BeEquivalentTo("{}\n"))
		})

		It("rejects malformed documents", func() {
			Expect(Document([]byte("- foo\n- bar\n"), r)).Error().To(
				MatchError(ContainSubstring("malformed document")))
		})

		It("reports interpolation errors", func() {
			Expect(Document([]byte(`a: ["${bar}"]`), r)).Error().To(
				MatchError("error in 'a[0]': failed to resolve expression: ${bar}"))
		})

	})

	Context("paths", func() {

		It("appends names and indices", func() {
			Expect(Path("").Append("foo")).To(Equal(Path("foo")))
			Expect(Path("foo").Append("bar")).To(Equal(Path("foo.bar")))
			Expect(Path("").AppendIndex(42)).To(Equal(Path("[42]")))
			Expect(Path("foo").AppendIndex(1).Append("bar")).To(Equal(Path("foo[1].bar")))
		})

	})

})
