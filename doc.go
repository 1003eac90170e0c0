/*
Package propres resolves property references embedded in strings.

A property reference (or “expression”) has the form

	${name}
	${name,name2,name3}
	${name:default}
	${name,name2:default}

Each name is first looked up in a property [Lookup] source. Names beginning
with “env.” additionally fall back to the environment, with the “env.” prefix
removed: ${env.HOME} thus resolves to the HOME environment variable unless a
property named “env.HOME” exists. The first name that resolves wins; the
remaining names are not consulted anymore. If none of the names resolves, the
default (if any) is used verbatim – it is not resolved in turn, even when it
contains further ${...} expressions. Without a default an unresolvable
expression fails with an [UnresolvedExpressionError].

# Special Names

	${/}

expands into the platform's path element separator, such as “/” on Linux.

	${:}

expands into the platform's path list separator, such as “:” on Linux. Please
note that a colon at the very beginning of a name never introduces a default.

# Escaping and Malformed Input

“$$” renders a single “$”. A “$” followed by anything other than “$” or “{”,
as well as a trailing “$”, is copied as is. Braces outside of expressions are
plain text. Braces inside an expression are balanced, so that

	${foo:{a,b}}

defaults to “{a,b}”. An expression that isn't closed at the end of the input
fails with an [IncompleteExpressionError], unless it was already in its
default part: then the unclosed text is copied as is.

# Sources

Resolution never reads any process-global state by itself: [New] defaults to
an empty property set and the process environment, while [Default] resolves
against a snapshot of [SystemProperties] and the process environment.
*/
package propres
