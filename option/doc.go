/*
Package option describes command line options with a compact template syntax, and binds raw string values to them.

A template is a list of segments separated by a space or a '|'.

	--verbose|-v
	-o|--output <FILE>
	-I <DIR>...
	-?|-h|--help

Segments starting with "--" declare the full name, and segments starting with "-" declare a short name.
A short name that is exactly one non-alphanumeric character is a symbol instead.
A segment wrapped with '<' and '>' names the value, and a trailing "..." may be used with [Multiple] options.
When the same kind of name is declared more than once, the last one wins.

Each [Descriptor] describes the shape of an option, while an [Instance] holds the values bound to it during a single invocation.
*/
package option
