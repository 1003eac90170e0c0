/*
propres resolves ${...} property expressions in texts and YAML documents.

# Usage

	propres [flags] [template...]

Each template argument gets resolved and printed on its own line. Without any
template arguments, propres resolves its standard input instead.

# Flags

	    --check                  only report whether the inputs contain expressions
	    --debug                  enable debug logging
	-D, --define stringArray     define property as key=value
	-h, --help                   help for propres
	    --list                   list the effective properties
	    --no-env                 don't fall back to environment variables for env.* names
	    --no-system              don't include the system properties
	-p, --properties stringArray load properties from .properties, .yaml, .json, or .toml file
	-v, --version                version for propres
	    --yaml                   interpolate all strings of the YAML document read from stdin

# Examples

	$ propres -D app.name=demo '${app.name}-${env.APP_USER:nobody}${/}data'
	demo-nobody/data

	$ propres -p defaults.properties --yaml < config.yaml
*/
package main
