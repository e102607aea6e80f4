/*
Package manifest describes a [cli.Command] tree as data.

A manifest is decoded from YAML or TOML into a [Spec], and [Spec.Build] turns it into a command tree.
Actions can't be expressed as data, so they're referenced by name and resolved from a map given to [Spec.Build].

	name: tool
	help: -h|--help
	options:
	  - template: -o|--output <FILE>
	    kind: single
	    env: TOOL_OUTPUT
	commands:
	  - name: build
	    aliases: [b]
	    action: build
	    arguments:
	      - name: targets
	        multiple: true
*/
package manifest
