package cli

import (
	"github.com/saylorsolutions/cmdargs/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestEnvVal(t *testing.T) {
	t.Setenv("CMDARGS_TEST_VAL", "\n\t abc \t\n")
	val, ok := envVal("cmdargs_test_val")
	assert.True(t, ok, "Keys should be compared case-insensitive")
	assert.Equal(t, "abc", val)

	t.Setenv("CMDARGS_TEST_EMPTY", "  ")
	_, ok = envVal("CMDARGS_TEST_EMPTY")
	assert.False(t, ok, "Blank values are treated as unset")

	_, ok = envVal("CMDARGS_TEST_UNSET_VARIABLE")
	assert.False(t, ok)
}

func TestEnvBool(t *testing.T) {
	tests := map[string]struct {
		value    string
		expected bool
	}{
		"Truthy":           {value: "yes", expected: true},
		"Truthy uppercase": {value: "ON", expected: true},
		"Falsy":            {value: "0", expected: false},
		"Not a bool":       {value: "blah", expected: true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv("CMDARGS_TEST_BOOL", tc.value)
			assert.Equal(t, tc.expected, envBool("CMDARGS_TEST_BOOL", true))
		})
	}
}

func TestOption_FromEnv(t *testing.T) {
	t.Setenv("CMDARGS_TEST_OUTPUT", "env.txt")
	t.Setenv("CMDARGS_TEST_TAGS", "a, b,,c")
	t.Setenv("CMDARGS_TEST_VERBOSE", "yes")
	t.Setenv("CMDARGS_TEST_FORCE", "off")

	cmd := quietCommand("tool")
	output := MustGet(cmd.AddOption("--output <FILE>", "", option.Single)).FromEnv("CMDARGS_TEST_OUTPUT")
	tags := MustGet(cmd.AddOption("--tag <TAG>...", "", option.Multiple)).FromEnv("CMDARGS_TEST_TAGS")
	verbose := MustGet(cmd.AddOption("--verbose", "", option.Boolean)).FromEnv("CMDARGS_TEST_VERBOSE")
	force := MustGet(cmd.AddOption("--force", "", option.None)).FromEnv("CMDARGS_TEST_FORCE")
	cmd.OnExecute(func() int { return 0 })

	_, err := cmd.Execute(nil)
	require.NoError(t, err)
	assert.Equal(t, "env.txt", output.Value())
	assert.Equal(t, []string{"a", "b", "c"}, tags.Values())
	assert.True(t, verbose.Enabled())
	assert.False(t, force.HasValue(), "A falsy switch should stay unbound")
	assert.Equal(t, "CMDARGS_TEST_OUTPUT", output.EnvKey())
}

func TestOption_FromEnv_ArgumentsWin(t *testing.T) {
	t.Setenv("CMDARGS_TEST_OUTPUT", "env.txt")

	root := quietCommand("tool")
	output := MustGet(root.AddOption("--output <FILE>", "", option.Single)).FromEnv("CMDARGS_TEST_OUTPUT")
	root.AddCommand("sub", "", false).OnExecute(func() int { return 0 })

	_, err := root.Execute([]string{"--output", "arg.txt", "sub"})
	require.NoError(t, err)
	assert.Equal(t, []string{"arg.txt"}, output.Values())

	root.Reset()
	_, err = root.Execute([]string{"sub"})
	require.NoError(t, err)
	assert.Equal(t, []string{"env.txt"}, output.Values(), "Parent options should fall back to the environment too")
}

func TestOption_FromEnv_Invalid(t *testing.T) {
	t.Setenv("CMDARGS_TEST_VERBOSE", "maybe")

	cmd := quietCommand("tool")
	MustGet(cmd.AddOption("--verbose", "", option.Boolean)).FromEnv("CMDARGS_TEST_VERBOSE")
	invoked := false
	cmd.OnExecute(func() int {
		invoked = true
		return 0
	})

	code, err := cmd.Execute(nil)
	assert.Equal(t, ExitFailure, code)
	assert.ErrorIs(t, err, ErrOptionBinding)
	assert.ErrorIs(t, err, &ParseError{})
	assert.Contains(t, err.Error(), "$CMDARGS_TEST_VERBOSE")
	assert.False(t, invoked)
}
