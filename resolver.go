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

import (
	"os"
	"strings"
	"unicode/utf8"
)

// envPrefix marks names that fall back to environment variables.
const envPrefix = "env."

// Resolver resolves property expressions in strings using a property source
// and an environment source. A Resolver is immutable after construction and
// thus can be used concurrently, as long as its sources can.
type Resolver struct {
	properties  Lookup
	environment Lookup
}

// Option configures a Resolver when passed to [New].
type Option func(*Resolver)

// WithProperties sets the property source to resolve names from. A nil source
// resolves nothing.
func WithProperties(props Lookup) Option {
	return func(r *Resolver) {
		if props == nil {
			props = Properties{}
		}
		r.properties = props
	}
}

// WithEnvironment sets the source consulted for names prefixed with “env.”
// that aren't known to the property source. A nil source resolves nothing.
func WithEnvironment(env Lookup) Option {
	return func(r *Resolver) {
		if env == nil {
			env = NoEnvironment
		}
		r.environment = env
	}
}

// New returns a Resolver configured by the specified options. Unless told
// otherwise, it resolves from an empty property set and the process
// environment.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		properties:  Properties{},
		environment: Environment,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Default returns a Resolver resolving from the current [SystemProperties] and
// the process environment.
func Default() *Resolver {
	return New(WithProperties(SystemProperties()))
}

// Resolve resolves the expressions in value using the specified property
// source and the process environment.
func Resolve(value string, props Lookup) (string, error) {
	return New(WithProperties(props)).Resolve(value)
}

// IsExpression returns true if value looks like it contains an expression,
// that is, a “${” followed somewhere later by a “}”. It doesn't check that
// the expression is well-formed.
func IsExpression(value string) bool {
	open := strings.Index(value, "${")
	return open >= 0 && strings.LastIndexByte(value, '}') > open
}

// scanner states while resolving.
type state int

const (
	initial     state = iota // copying plain text
	gotDollar                // seen a “$”
	inBraceName              // inside “${”, scanning a name
	resolved                 // name resolved, skipping to the closing “}”
	inDefault                // collecting the default up to the closing “}”
)

// Resolve returns value with all expressions replaced by their values.
//
// Resolve returns an [UnresolvedExpressionError] if none of the names in an
// expression resolves and there is no default, and an
// [IncompleteExpressionError] if value ends inside an expression name.
func (r *Resolver) Resolve(value string) (string, error) {
	var out strings.Builder
	out.Grow(len(value))

	st := initial
	start := -1     // first byte of the current expression body (or default)
	nameStart := -1 // first byte of the current candidate name
	leadIn := -1    // last code point of the name in front of a default
	nest := 0
	for idx, width := 0, 0; idx < len(value); idx += width {
		var ch rune
		ch, width = utf8.DecodeRuneInString(value[idx:])
		switch st {
		case initial:
			if ch == '$' {
				st = gotDollar
				continue
			}
			out.WriteString(value[idx : idx+width])
		case gotDollar:
			switch ch {
			case '$':
				out.WriteByte('$')
			case '{':
				start = idx + width
				nameStart = start
				st = inBraceName
				continue
			default:
				out.WriteByte('$')
				out.WriteString(value[idx : idx+width])
			}
			st = initial
		case inBraceName:
			switch ch {
			case '{':
				nest++
				continue
			case ':':
				if nameStart == idx {
					continue
				}
			case ',', '}':
			default:
				continue
			}
			if nest > 0 {
				if ch == '}' {
					nest--
				}
				continue
			}
			name := strings.TrimSpace(value[nameStart:idx])
			if sep, ok := separator(name); ok {
				out.WriteString(sep)
				st = afterName(ch)
				continue
			}
			if val, ok := r.lookup(name); ok && val != value {
				out.WriteString(val)
				st = afterName(ch)
				continue
			}
			switch ch {
			case ',':
				nameStart = idx + width
			case ':':
				_, w := utf8.DecodeLastRuneInString(value[:idx])
				leadIn = idx - w
				start = idx + width
				st = inDefault
			default:
				return "", &UnresolvedExpressionError{Expression: value[start-2 : idx+width]}
			}
		case resolved, inDefault:
			switch ch {
			case '{':
				nest++
			case '}':
				if nest > 0 {
					nest--
					continue
				}
				if st == inDefault {
					out.WriteString(value[start:idx])
				}
				st = initial
			}
		}
	}

	switch st {
	case gotDollar:
		out.WriteByte('$')
	case inDefault:
		out.WriteString(value[leadIn:])
	case inBraceName:
		return "", &IncompleteExpressionError{Partial: out.String()}
	}
	return out.String(), nil
}

// lookup returns the value of the named property, falling back to the
// environment for names with the “env.” prefix.
func (r *Resolver) lookup(name string) (string, bool) {
	if val, ok := r.properties.Lookup(name); ok {
		return val, true
	}
	if envname, ok := strings.CutPrefix(name, envPrefix); ok {
		return r.environment.Lookup(envname)
	}
	return "", false
}

// afterName returns the state to continue in after a name has been
// successfully resolved at the specified delimiter.
func afterName(delim rune) state {
	if delim == '}' {
		return initial
	}
	return resolved
}

// separator returns the platform-specific separator for the special names
// “/” and “:”.
func separator(name string) (string, bool) {
	switch name {
	case "/":
		return string(os.PathSeparator), true
	case ":":
		return string(os.PathListSeparator), true
	}
	return "", false
}
