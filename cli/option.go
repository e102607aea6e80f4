package cli

import (
	"github.com/saylorsolutions/cmdargs/option"
)

// Option is an option registered with a [Command].
// It carries the parsed template, and the values bound during the current invocation.
type Option struct {
	*option.Descriptor
	inst   option.Instance
	envKey string
}

func newOption(template, description string, kind option.Kind) (*Option, error) {
	desc, err := option.ParseTemplate(template, kind)
	if err != nil {
		return nil, err
	}
	desc.Description = description
	return &Option{Descriptor: desc}, nil
}

// FromEnv sets an environment variable that will be used to bind the Option if the argument vector didn't.
// See [EnvListSeparator] for how values are split for [option.Multiple] options.
func (o *Option) FromEnv(key string) *Option {
	o.envKey = key
	return o
}

// EnvKey returns the environment variable set with [Option.FromEnv].
func (o *Option) EnvKey() string {
	return o.envKey
}

func (o *Option) bind(value string, present bool) bool {
	if present {
		return o.inst.TryBind(o.Kind(), value)
	}
	return o.inst.TryBindBare(o.Kind())
}

func (o *Option) HasValue() bool {
	return o.inst.HasValue()
}

// Value returns the first value bound to the Option.
func (o *Option) Value() string {
	return o.inst.Value()
}

// Values returns all values bound to the Option, in the order given.
func (o *Option) Values() []string {
	return o.inst.Values()
}

// BoolValue returns the derived value of an [option.Boolean] option, and whether it was given.
func (o *Option) BoolValue() (value bool, set bool) {
	return o.inst.Bool()
}

// Enabled is a shortcut for options that are switched on by being present.
// It returns true for a present [option.None] option, or a [option.Boolean] option that was bound as true.
func (o *Option) Enabled() bool {
	if o.Kind() == option.Boolean {
		val, _ := o.inst.Bool()
		return val
	}
	return o.inst.HasValue()
}

func (o *Option) reset() {
	o.inst.Reset()
}

func (o *Option) conflictsWith(other *Option) (string, bool) {
	switch {
	case len(o.FullName()) > 0 && o.FullName() == other.FullName():
		return "--" + o.FullName(), true
	case len(o.ShortName()) > 0 && o.ShortName() == other.ShortName():
		return "-" + o.ShortName(), true
	case len(o.Symbol()) > 0 && o.Symbol() == other.Symbol():
		return "-" + o.Symbol(), true
	}
	return "", false
}

// flagName returns the most descriptive name with its prefix, as it would be given on the command line.
func (o *Option) flagName() string {
	if len(o.FullName()) > 0 {
		return "--" + o.FullName()
	}
	return "-" + o.Name()
}
