// Copyright 2026 by Harald Albrecht
//
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

import "os"

// Lookup is a source of named values.
type Lookup interface {
	// Lookup returns the value of the named key and true, or false if the key
	// is unknown.
	Lookup(key string) (value string, ok bool)
}

// LookupFunc adapts an ordinary function to the [Lookup] interface.
type LookupFunc func(key string) (string, bool)

// Lookup calls f(key).
func (f LookupFunc) Lookup(key string) (string, bool) {
	return f(key)
}

// Properties is a [Lookup] based on a plain string map.
type Properties map[string]string

// Lookup returns the value of the named property, if set.
func (p Properties) Lookup(key string) (string, bool) {
	val, ok := p[key]
	return val, ok
}

// Merge returns a new property set with the properties from p overridden by
// those from more, in order.
func (p Properties) Merge(more ...Properties) Properties {
	merged := make(Properties, len(p))
	for key, val := range p {
		merged[key] = val
	}
	for _, props := range more {
		for key, val := range props {
			merged[key] = val
		}
	}
	return merged
}

// Environment looks up variables in the process environment.
var Environment Lookup = LookupFunc(os.LookupEnv)

// NoEnvironment never finds any variable.
var NoEnvironment Lookup = LookupFunc(func(string) (string, bool) { return "", false })

// Layered returns a Lookup that asks the specified sources in turn, returning
// the value from the first source knowing the key. Nil sources are skipped.
func Layered(sources ...Lookup) Lookup {
	return LookupFunc(func(key string) (string, bool) {
		for _, source := range sources {
			if source == nil {
				continue
			}
			if val, ok := source.Lookup(key); ok {
				return val, true
			}
		}
		return "", false
	})
}
