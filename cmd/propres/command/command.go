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

package command

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thediveo/propres"
	"github.com/thediveo/propres/interpolate"
	"github.com/thediveo/propres/propfile"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	log "github.com/sirupsen/logrus"
)

const (
	defineFlag     = "define"
	propertiesFlag = "properties"
	noSystemFlag   = "no-system"
	noEnvFlag      = "no-env"
	checkFlag      = "check"
	yamlFlag       = "yaml"
	listFlag       = "list"
	debugFlag      = "debug"
)

// osExit allows tests to intercept exiting.
var osExit = os.Exit

// Execute runs the propres root command and exits with code 1 if it fails.
func Execute() {
	if err := New().Execute(); err != nil {
		osExit(1)
	}
}

// New returns a new propres root command.
func New() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "propres [flags] [template...]",
		Short: "propres resolves ${...} property expressions in texts and YAML documents",
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if debug, _ := cmd.Flags().GetBool(debugFlag); debug {
				log.SetLevel(log.DebugLevel)
			}
		},
		RunE: run,
	}
	rootCmd.Version = version()

	flags := rootCmd.Flags()
	flags.StringArrayP(defineFlag, "D", nil,
		"define property as key=value")
	flags.StringArrayP(propertiesFlag, "p", nil,
		"load properties from .properties, .yaml, .json, or .toml file")
	flags.Bool(noSystemFlag, false,
		"don't include the system properties")
	flags.Bool(noEnvFlag, false,
		"don't fall back to environment variables for env.* names")
	flags.Bool(checkFlag, false,
		"only report whether the inputs contain expressions")
	flags.Bool(yamlFlag, false,
		"interpolate all strings of the YAML document read from stdin")
	flags.Bool(listFlag, false,
		"list the effective properties")
	flags.Bool(debugFlag, false,
		"enable debug logging")
	rootCmd.MarkFlagsMutuallyExclusive(checkFlag, yamlFlag, listFlag)

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	log.Debug(fmt.Sprintf("🗩  propres %s", cmd.Version))

	props, err := properties(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if list, _ := flags.GetBool(listFlag); list {
		keys := maps.Keys(props)
		slices.Sort(keys)
		for _, key := range keys {
			fmt.Fprintf(out, "%s=%s\n", key, props[key])
		}
		return nil
	}

	opts := []propres.Option{propres.WithProperties(props)}
	if noEnv, _ := flags.GetBool(noEnvFlag); noEnv {
		opts = append(opts, propres.WithEnvironment(propres.NoEnvironment))
	}
	r := propres.New(opts...)

	if yamldoc, _ := flags.GetBool(yamlFlag); yamldoc {
		if len(args) != 0 {
			return errors.New("--yaml reads its document from stdin and doesn't accept templates")
		}
		in, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("cannot read document, reason: %w", err)
		}
		doc, err := interpolate.Document(in, r)
		if err != nil {
			return err
		}
		_, err = out.Write(doc)
		return err
	}

	check, _ := flags.GetBool(checkFlag)
	if len(args) == 0 {
		in, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("cannot read template, reason: %w", err)
		}
		if check {
			fmt.Fprintln(out, propres.IsExpression(string(in)))
			return nil
		}
		text, err := r.Resolve(string(in))
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, text)
		return err
	}
	for _, template := range args {
		if check {
			fmt.Fprintln(out, propres.IsExpression(template))
			continue
		}
		text, err := r.Resolve(template)
		if err != nil {
			return err
		}
		log.Debug(fmt.Sprintf("🔧  resolved %q -> %q", template, text))
		fmt.Fprintln(out, text)
	}
	return nil
}

// properties returns the effective properties: system properties (unless
// disabled), overridden by property files in order, overridden by explicit
// definitions.
func properties(cmd *cobra.Command) (propres.Properties, error) {
	flags := cmd.Flags()
	props := propres.Properties{}
	if noSystem, _ := flags.GetBool(noSystemFlag); !noSystem {
		props = propres.SystemProperties()
	}
	files, _ := flags.GetStringArray(propertiesFlag)
	for _, file := range files {
		fileprops, err := propfile.Load(file)
		if err != nil {
			return nil, err
		}
		props = props.Merge(fileprops)
	}
	definitions, _ := flags.GetStringArray(defineFlag)
	defs := propres.Properties{}
	for _, definition := range definitions {
		key, value, ok := strings.Cut(definition, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid property definition %q, expecting key=value", definition)
		}
		defs[key] = value
	}
	return props.Merge(defs), nil
}
