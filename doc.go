/*
Package cmdargs binds command line arguments to a tree of commands, options, and positional arguments.

The module is split into small packages.

  - [github.com/saylorsolutions/cmdargs/option] parses option templates like "-o|--output <FILE>", and validates values bound to an option.
  - [github.com/saylorsolutions/cmdargs/argument] declares positional arguments, and enumerates them as tokens are bound.
  - [github.com/saylorsolutions/cmdargs/cli] builds command trees, and dispatches an argument vector to the right command.
  - [github.com/saylorsolutions/cmdargs/manifest] builds a command tree from a YAML or TOML description.
*/
package cmdargs
