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

package interpolate

import (
	"fmt"
	"strconv"

	"github.com/thediveo/propres"
	"gopkg.in/yaml.v3"

	log "github.com/sirupsen/logrus"
)

// Variables interpolates all string values in the passed (recursive) map using
// the specified resolver. It returns a new (recursive) map with the
// interpolated results.
func Variables(data map[string]any, r *propres.Resolver) (map[string]any, error) {
	return interpolateMapping(data, "", r)
}

// Document interpolates the specified YAML document (or JSON, for that
// matter), returning the interpolated document in YAML format. An empty
// document results in an empty mapping.
func Document(yamltext []byte, r *propres.Resolver) ([]byte, error) {
	var data map[string]any
	if err := yaml.Unmarshal(yamltext, &data); err != nil {
		return nil, fmt.Errorf("malformed document, reason: %w", err)
	}
	result, err := Variables(data, r)
	if err != nil {
		return nil, err
	}
	out, err := yaml.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("cannot YAMLize interpolated document, reason: %w", err)
	}
	return out, nil
}

// recursively interpolate string values, string values inside mappings, and
// string values inside sequences.
func recursively(data any, path Path, r *propres.Resolver) (any, error) {
	switch value := data.(type) {
	case string:
		return interpolateString(value, path, r)
	case map[string]any:
		return interpolateMapping(value, path, r)
	case []any:
		return interpolateSequence(value, path, r)
	default:
		return value, nil
	}
}

// interpolateString returns the interpolated string, or an error.
func interpolateString(value string, path Path, r *propres.Resolver) (string, error) {
	result, err := r.Resolve(value)
	if err != nil {
		return "", fmt.Errorf("error in '%s': %w", string(path), err)
	}
	if result != value {
		log.Debug(fmt.Sprintf("🔧  interpolated %q: %q -> %q", string(path), value, result))
	}
	return result, nil
}

// interpolateMapping recursively interpolates the values in the mapping.
func interpolateMapping(values map[string]any, path Path, r *propres.Resolver) (map[string]any, error) {
	result := map[string]any{}
	for key, value := range values {
		interpolValue, err := recursively(value, path.Append(key), r)
		if err != nil {
			return nil, err
		}
		result[key] = interpolValue
	}
	return result, nil
}

// interpolateSequence recursively interpolates the values of the sequence.
func interpolateSequence(values []any, path Path, r *propres.Resolver) ([]any, error) {
	result := make([]any, 0, len(values))
	for idx, value := range values {
		interpolValue, err := recursively(value, path.AppendIndex(idx), r)
		if err != nil {
			return nil, err
		}
		result = append(result, interpolValue)
	}
	return result, nil
}

// Path represents the path to a scalar.
type Path string

// Append the name of a mapping key or a scalar to the path, returning the new
// Path.
func (p Path) Append(name string) Path {
	if p == "" {
		return Path(name)
	}
	return Path(string(p) + "." + name)
}

// AppendIndex appends the index of an element to the path, returning the new
// Path.
func (p Path) AppendIndex(idx int) Path {
	return Path(string(p) + "[" + strconv.Itoa(idx) + "]")
}
