/*
Package interpolate resolves property expressions in configuration documents,
such as YAML or JSON documents decoded into generic maps and slices.

Every string scalar in a document gets resolved using a [propres.Resolver],
regardless of how deeply nested it is inside mappings and sequences. Other
scalars, such as numbers and booleans, are left untouched. So, given the
property “db.host” set to “10.0.0.1”,

	database:
	  host: ${db.host:localhost}
	  port: 5432
	  urls:
	    - postgres://${db.host}:5432

interpolates into

	database:
	  host: 10.0.0.1
	  port: 5432
	  urls:
	    - postgres://10.0.0.1:5432

When resolution fails, the error tells the [Path] to the offending scalar, for
instance “error in 'database.urls[0]': failed to resolve expression:
${db.host}”. The original resolution error can still be retrieved using
[errors.As].

# Implementation Note

Interpolation never modifies the passed document, but instead returns a new
one. Mappings and sequences are copied, but scalars are shared.
*/
package interpolate
