package cli

import (
	"github.com/saylorsolutions/cmdargs/argument"
	"github.com/saylorsolutions/cmdargs/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"testing"
)

func TestCommand_AddCommand(t *testing.T) {
	root := New("tool")
	sub := root.AddCommand("Sub Command", "A sub-command", false, "s", "SC")
	assert.Equal(t, "subcommand", sub.Keyword())
	assert.Equal(t, []string{"s", "sc"}, sub.Aliases())
	assert.Same(t, root, sub.Parent())
	assert.Equal(t, "tool subcommand", sub.Path())

	for _, token := range []string{"subcommand", "SUBCOMMAND", "s", "Sc"} {
		got, ok := root.child(token)
		assert.True(t, ok, token)
		assert.Same(t, sub, got, token)
	}
	_, ok := root.child("other")
	assert.False(t, ok)
}

func TestCommand_AddCommand_Duplicate(t *testing.T) {
	root := New("tool")
	root.AddCommand("build", "", false, "b")
	assert.Panics(t, func() {
		root.AddCommand("build", "", false)
	})
	assert.Panics(t, func() {
		root.AddCommand("bundle", "", false, "b")
	})
	assert.Panics(t, func() {
		root.AddCommand("   ", "", false)
	})
}

func TestCommand_TryAddCommand(t *testing.T) {
	root := New("tool")
	build, err := root.TryAddCommand("build", "", false, "b", "B", "build")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, build.Aliases(), "Repeated aliases should be ignored")

	_, err = root.TryAddCommand("Build", "", false)
	assert.ErrorIs(t, err, ErrDuplicateCommand)
	_, err = root.TryAddCommand("bundle", "", false, "B")
	assert.ErrorIs(t, err, ErrDuplicateCommand)
	_, err = root.TryAddCommand(" ", "", false)
	assert.ErrorIs(t, err, ErrDuplicateCommand)
	assert.Len(t, root.Commands(), 1)
}

func TestCommand_ParentLinks(t *testing.T) {
	root := New("tool")
	a := root.AddCommand("a", "", false)
	b := a.AddCommand("b", "", false)
	c := b.AddCommand("c", "", false)

	for _, cmd := range []*Command{a, b, c} {
		for _, child := range cmd.Commands() {
			assert.Same(t, cmd, child.Parent())
		}
	}
	assert.Same(t, root, c.Root())
	assert.Same(t, root, root.Root())
	assert.Nil(t, root.Parent())
	assert.Equal(t, "tool a b c", c.Path())
}

func TestCommand_AddOption(t *testing.T) {
	cmd := New("tool")
	opt, err := cmd.AddOption("-o|--output <FILE>", "Output file", option.Single)
	require.NoError(t, err)
	assert.Equal(t, "output", opt.FullName())
	assert.Equal(t, "Output file", opt.Description)

	got, ok := cmd.Option("o")
	assert.True(t, ok)
	assert.Same(t, opt, got)
	got, ok = cmd.Option("output")
	assert.True(t, ok)
	assert.Same(t, opt, got)

	_, err = cmd.AddOption("", "", option.None)
	assert.ErrorIs(t, err, option.ErrTemplateSyntax)
	assert.Len(t, cmd.Options(), 1)
}

func TestCommand_AddOption_Duplicate(t *testing.T) {
	tests := map[string]string{
		"Full name": "--output",
		"Short":     "-o",
		"Symbol":    "-?|--other",
	}
	for name, template := range tests {
		t.Run(name, func(t *testing.T) {
			cmd := New("tool")
			MustGet(cmd.AddOption("-o|--output <FILE>", "", option.Single))
			MustGet(cmd.AddOption("-?", "", option.None))
			_, err := cmd.AddOption(template, "", option.None)
			assert.ErrorIs(t, err, ErrDuplicateOption)
		})
	}
}

func TestCommand_AddArgument(t *testing.T) {
	cmd := New("tool")
	_, err := cmd.AddArgument("x", "", false)
	require.NoError(t, err)
	_, err = cmd.AddArgument("y", "", true)
	require.NoError(t, err)
	_, err = cmd.AddArgument("z", "", false)
	assert.ErrorIs(t, err, argument.ErrDuplicateMultiplicity)
	assert.Len(t, cmd.Arguments(), 2)

	y, ok := cmd.Argument("y")
	assert.True(t, ok)
	assert.True(t, y.Multiple)
}

func TestCommand_OnExecute_Nil(t *testing.T) {
	cmd := New("tool")
	assert.Panics(t, func() {
		cmd.OnExecute(nil)
	})
	assert.Panics(t, func() {
		cmd.OnExecuteAsync(nil)
	})
	assert.Panics(t, func() {
		cmd.Does(nil)
	})
}

func TestCommand_HelpOption_Inherited(t *testing.T) {
	root := New("tool")
	help := MustGet(root.SetHelpOption("-?|-h|--help"))
	sub := root.AddCommand("sub", "", false)
	assert.Same(t, help, sub.HelpOption())

	own := MustGet(sub.SetHelpOption("--usage"))
	assert.Same(t, own, sub.HelpOption())
	assert.Nil(t, New("other").HelpOption())
}

func TestCommand_FullNameAndVersion(t *testing.T) {
	root := New("tool")
	assert.Equal(t, "tool", root.FullNameAndVersion())

	root.FullName = "The Tool"
	MustGet(root.SetVersionOption("--version", "1.2", "1.2.3-beta+abc"))
	assert.Equal(t, "The Tool 1.2.3-beta+abc", root.FullNameAndVersion())

	sub := root.AddCommand("sub", "", false)
	short, long := sub.Version()
	assert.Equal(t, "1.2", short)
	assert.Equal(t, "1.2.3-beta+abc", long)

	other := New("other")
	MustGet(other.SetVersionOption("--version", "2.0", ""))
	assert.Equal(t, "other 2.0", other.FullNameAndVersion())
}

func TestCommand_Printer_Shared(t *testing.T) {
	root := New("tool")
	sub := root.AddCommand("sub", "", false)
	assert.Same(t, root.Printer(), sub.Printer())

	p := NewPrinter()
	p.Redirect(io.Discard)
	sub.SetPrinter(p)
	assert.Same(t, p, sub.Printer())
	assert.NotSame(t, p, root.Printer())
}

func TestCommand_Reset(t *testing.T) {
	root := New("tool")
	verbose := MustGet(root.AddOption("-v", "", option.None))
	sub := root.AddCommand("sub", "", true)
	files := MustGet(sub.AddArgument("files", "", true))
	sub.OnExecute(func() int { return 0 })

	_, err := root.Execute([]string{"-v", "sub", "a", "b"})
	require.NoError(t, err)
	assert.True(t, verbose.HasValue())
	assert.Len(t, files.Values(), 2)

	root.Reset()
	assert.False(t, verbose.HasValue())
	assert.False(t, files.HasValue())
	assert.Empty(t, sub.RemainingArguments())

	_, err = root.Execute([]string{"-v", "sub", "c"})
	require.NoError(t, err, "A reset tree should accept the same options again")
	assert.Equal(t, []string{"c"}, files.Values())
}
