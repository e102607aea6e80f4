package manifest

import (
	"github.com/saylorsolutions/cmdargs/argument"
	"github.com/saylorsolutions/cmdargs/cli"
	"github.com/saylorsolutions/cmdargs/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"strings"
	"testing"
)

func quiet(cmd *cli.Command) *cli.Command {
	p := cli.NewPrinter()
	p.Redirect(io.Discard)
	return cmd.SetPrinter(p)
}

func TestLoad(t *testing.T) {
	for _, path := range []string{"testdata/tool.yaml", "testdata/tool.toml"} {
		t.Run(path, func(t *testing.T) {
			spec, err := Load(path)
			require.NoError(t, err)

			var built, ran []string
			root, err := spec.Build(map[string]cli.Action{
				"build": cli.ActionFunc(func() int {
					built = append(built, "built")
					return 0
				}),
				"run": cli.ActionFunc(func() int {
					ran = append(ran, "ran")
					return 2
				}),
			})
			require.NoError(t, err)
			quiet(root)

			assert.Equal(t, "The Tool 1.0.0", root.FullNameAndVersion())
			assert.Equal(t, "Builds and ships things", root.Description)
			require.NotNil(t, root.HelpOption())
			assert.Equal(t, "help", root.HelpOption().FullName())
			out, ok := root.Option("output")
			require.True(t, ok)
			assert.Equal(t, option.Single, out.Kind())
			assert.Equal(t, "TOOL_OUTPUT", out.EnvKey())
			verbose, ok := root.Option("v")
			require.True(t, ok)
			assert.Equal(t, option.Boolean, verbose.Kind())

			require.Len(t, root.Commands(), 2)
			build := root.Commands()[0]
			assert.Equal(t, "build", build.Keyword())
			assert.Equal(t, []string{"b"}, build.Aliases())
			targets, ok := build.Argument("targets")
			require.True(t, ok)
			assert.True(t, targets.Multiple)

			code, err := root.Execute([]string{"-o", "out", "B", "x", "y"})
			require.NoError(t, err)
			assert.Equal(t, 0, code)
			assert.Equal(t, []string{"built"}, built)
			assert.Equal(t, "out", out.Value())
			assert.Equal(t, []string{"x", "y"}, targets.Values())

			root.Reset()
			run := root.Commands()[1]
			assert.True(t, run.AllowArgumentSeparator)
			code, err = root.Execute([]string{"run", "prog", "--", "-a", "b"})
			require.NoError(t, err)
			assert.Equal(t, 2, code)
			assert.Equal(t, []string{"ran"}, ran)
			assert.Equal(t, []string{"-a", "b"}, run.RemainingArguments())
		})
	}
}

func TestLoad_UnknownFormat(t *testing.T) {
	_, err := Load("testdata/tool.json")
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Decode(strings.NewReader("{}"), Format("json"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFormatOf(t *testing.T) {
	tests := map[string]Format{
		"tool.yaml":     FormatYAML,
		"tool.YML":      FormatYAML,
		"dir/tool.toml": FormatTOML,
	}
	for path, expected := range tests {
		t.Run(path, func(t *testing.T) {
			format, err := FormatOf(path)
			require.NoError(t, err)
			assert.Equal(t, expected, format)
		})
	}
}

func TestDecode_UnknownKeys(t *testing.T) {
	tests := map[string]struct {
		format Format
		source string
	}{
		"YAML": {
			format: FormatYAML,
			source: "name: tool\ncomands:\n  - name: build\n",
		},
		"TOML": {
			format: FormatTOML,
			source: "name = \"tool\"\n\n[[comands]]\nname = \"build\"\n",
		},
		"YAML syntax": {
			format: FormatYAML,
			source: "name: [tool",
		},
		"TOML syntax": {
			format: FormatTOML,
			source: "name = ",
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tc.source), tc.format)
			assert.ErrorIs(t, err, ErrInvalidManifest)
		})
	}
}

func TestSpec_Build_Errors(t *testing.T) {
	tests := map[string]struct {
		source   string
		expected error
	}{
		"No name": {
			source:   "description: nothing\n",
			expected: ErrInvalidManifest,
		},
		"Unknown action": {
			source:   "name: tool\naction: missing\n",
			expected: ErrUnknownAction,
		},
		"Bad kind": {
			source:   "name: tool\noptions:\n  - template: --flag\n    kind: many\n",
			expected: ErrInvalidManifest,
		},
		"Bad template": {
			source:   "name: tool\noptions:\n  - template: flag\n",
			expected: option.ErrTemplateSyntax,
		},
		"Duplicate option": {
			source:   "name: tool\noptions:\n  - template: -f|--flag\n  - template: -f\n",
			expected: cli.ErrDuplicateOption,
		},
		"Unnamed argument": {
			source:   "name: tool\narguments:\n  - description: nameless\n",
			expected: ErrInvalidManifest,
		},
		"Argument after multiple": {
			source:   "name: tool\narguments:\n  - name: a\n    multiple: true\n  - name: b\n",
			expected: argument.ErrDuplicateMultiplicity,
		},
		"Duplicate command": {
			source:   "name: tool\ncommands:\n  - name: build\n  - name: other\n    aliases: [Build]\n",
			expected: cli.ErrDuplicateCommand,
		},
		"Nested error": {
			source:   "name: tool\ncommands:\n  - name: build\n    action: missing\n",
			expected: ErrUnknownAction,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			spec, err := Decode(strings.NewReader(tc.source), FormatYAML)
			require.NoError(t, err)
			_, err = spec.Build(nil)
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestSpec_Build_NoAction(t *testing.T) {
	spec, err := Decode(strings.NewReader("name: tool\ncommands:\n  - name: sub\n"), FormatYAML)
	require.NoError(t, err)
	root, err := spec.Build(nil)
	require.NoError(t, err)
	quiet(root)

	code, err := root.Execute([]string{"sub"})
	require.NoError(t, err)
	assert.Equal(t, cli.ExitOK, code, "A command without an action should show help")
}
