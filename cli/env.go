package cli

import (
	"fmt"
	"github.com/saylorsolutions/cmdargs/option"
	"os"
	"slices"
	"strings"
)

var (
	EnvListSeparator = ","                                // EnvListSeparator splits environment values for Multiple options.
	EnvTrue          = []string{"1", "yes", "true", "on"}  // EnvTrue are the values considered "true" for environment variables, and can be changed.
	EnvFalse         = []string{"0", "no", "false", "off"} // EnvFalse are the values considered "false" for environment variables, and can be changed.
)

// envVal looks up an environment variable, comparing keys case-insensitive.
// Values are trimmed, and an empty value is treated as unset.
func envVal(key string) (string, bool) {
	key = strings.ToLower(key)
	for _, entry := range os.Environ() {
		k, v, found := strings.Cut(entry, "=")
		if !found || strings.ToLower(k) != key {
			continue
		}
		v = strings.TrimSpace(v)
		if len(v) == 0 {
			return "", false
		}
		return v, true
	}
	return "", false
}

func envTruth(val string) (bool, bool) {
	val = strings.ToLower(val)
	switch {
	case slices.Contains(EnvTrue, val):
		return true, true
	case slices.Contains(EnvFalse, val):
		return false, true
	default:
		return false, false
	}
}

func envBool(key string, defaultVal bool) bool {
	val, ok := envVal(key)
	if !ok {
		return defaultVal
	}
	b, ok := envTruth(val)
	if !ok {
		return defaultVal
	}
	return b
}

// bindEnv binds the environment value of every option that declared one, and wasn't already bound.
func (c *Command) bindEnv() error {
	for _, opt := range c.options {
		if len(opt.envKey) == 0 || opt.HasValue() {
			continue
		}
		val, ok := envVal(opt.envKey)
		if !ok {
			continue
		}
		if err := opt.bindEnvValue(val); err != nil {
			return newParseError(c, "$"+opt.envKey, err)
		}
		log().Debug("Bound option from environment", "command", c.Path(), "option", opt.Name(), "env", opt.envKey)
	}
	return nil
}

func (o *Option) bindEnvValue(val string) error {
	switch o.Kind() {
	case option.None:
		b, ok := envTruth(val)
		if !ok {
			return fmt.Errorf("%w: '%s' is not a valid switch value for %s", ErrOptionBinding, val, o.flagName())
		}
		if b {
			o.bind("", false)
		}
		return nil
	case option.Boolean:
		b, ok := envTruth(val)
		if !ok {
			return fmt.Errorf("%w: '%s' is not a valid boolean value for %s", ErrOptionBinding, val, o.flagName())
		}
		o.bind(fmt.Sprint(b), true)
		return nil
	case option.Multiple:
		for _, part := range strings.Split(val, EnvListSeparator) {
			part = strings.TrimSpace(part)
			if len(part) == 0 {
				continue
			}
			o.bind(part, true)
		}
		return nil
	default:
		if !o.bind(val, true) {
			return fmt.Errorf("%w: %s", ErrOptionBinding, o.flagName())
		}
		return nil
	}
}
