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

// Package propfile loads property sets from files.
//
// Besides Java-style “.properties” files, propfile loads YAML, JSON, and TOML
// documents, flattening their nested structure into dotted property names. A
// YAML document such as
//
//	db:
//	  host: localhost
//	  ports: [5432, 5433]
//
// thus results in the properties “db.host”, “db.ports[0]”, and
// “db.ports[1]”. Property values are never expanded while loading, so any
// ${...} expressions they contain are left for a [propres.Resolver].
package propfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magiconair/properties"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/thediveo/propres"
	"github.com/thediveo/propres/interpolate"
	"gopkg.in/yaml.v3"

	log "github.com/sirupsen/logrus"
)

// Supported property file formats.
const (
	FormatProperties = "properties"
	FormatYAML       = "yaml"
	FormatJSON       = "json"
	FormatTOML       = "toml"
)

// Load reads the property file at the specified path, detecting its format
// from the file extension.
func Load(path string) (propres.Properties, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read property file, reason: %w", err)
	}
	props, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("malformed property file %q, reason: %w", path, err)
	}
	log.Info(fmt.Sprintf("📄  loaded %d properties from %q", len(props), path))
	return props, nil
}

// FormatOf returns the format of the property file at path, based on its
// extension.
func FormatOf(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".properties":
		return FormatProperties, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case "":
		return "", fmt.Errorf("cannot detect format of property file %q without extension", path)
	}
	return "", fmt.Errorf("unsupported property file extension %q of %q", ext, path)
}

// Parse the specified data in the given format into a property set.
func Parse(data []byte, format string) (propres.Properties, error) {
	var doc map[string]any
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatProperties:
		return parseProperties(data)
	case FormatYAML, "yml", FormatJSON:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported property file format %q", format)
	}
	props := propres.Properties{}
	flatten(props, "", doc)
	return props, nil
}

func parseProperties(data []byte) (propres.Properties, error) {
	loader := properties.Loader{
		Encoding:         properties.UTF8,
		DisableExpansion: true,
	}
	p, err := loader.LoadBytes(data)
	if err != nil {
		return nil, err
	}
	return propres.Properties(p.Map()), nil
}

// flatten the value at path into dotted properties.
func flatten(props propres.Properties, path interpolate.Path, value any) {
	switch v := value.(type) {
	case map[string]any:
		for key, elem := range v {
			flatten(props, path.Append(key), elem)
		}
	case map[any]any:
		for key, elem := range v {
			flatten(props, path.Append(fmt.Sprint(key)), elem)
		}
	case []any:
		for idx, elem := range v {
			flatten(props, path.AppendIndex(idx), elem)
		}
	case nil:
		props[string(path)] = ""
	case string:
		props[string(path)] = v
	default:
		props[string(path)] = fmt.Sprint(v)
	}
}
