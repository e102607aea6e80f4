package option

import "strings"

const (
	PresentValue = "present" // PresentValue is recorded for a bound None option.
	BareValue    = "true"    // BareValue is recorded for a Boolean option given without a value.
)

// Instance holds the values bound to an option during one invocation.
// Values are kept in the order they were bound.
//
// An Instance is not concurrency safe.
type Instance struct {
	values  []string
	boolean *bool
}

// TryBind attempts to bind value to the Instance according to the rules of kind.
// Use [Instance.TryBindBare] if the option was given without a value.
// Returns false without changing the Instance if the value can't be accepted.
func (i *Instance) TryBind(kind Kind, value string) bool {
	return i.tryBind(kind, value, true)
}

// TryBindBare attempts to bind the absence of a value, as in a bare "--flag".
// Only [Boolean] and [None] options accept this.
func (i *Instance) TryBindBare(kind Kind) bool {
	return i.tryBind(kind, "", false)
}

func (i *Instance) tryBind(kind Kind, value string, present bool) bool {
	switch kind {
	case Multiple:
		if !present {
			return false
		}
		i.values = append(i.values, value)
		return true
	case Single:
		if i.HasValue() || !present {
			return false
		}
		i.values = append(i.values, value)
		return true
	case Boolean:
		if i.HasValue() {
			return false
		}
		if !present {
			i.values = append(i.values, BareValue)
			i.setBool(true)
			return true
		}
		b, ok := parseBool(value)
		if !ok {
			return false
		}
		i.values = append(i.values, value)
		i.setBool(b)
		return true
	case None:
		if present || i.HasValue() {
			return false
		}
		i.values = append(i.values, PresentValue)
		return true
	default:
		return false
	}
}

func parseBool(value string) (bool, bool) {
	value = strings.TrimSpace(value)
	switch {
	case strings.EqualFold(value, "true"):
		return true, true
	case strings.EqualFold(value, "false"):
		return false, true
	default:
		return false, false
	}
}

func (i *Instance) setBool(b bool) {
	i.boolean = &b
}

// HasValue returns true if anything has been bound.
func (i *Instance) HasValue() bool {
	return len(i.values) > 0
}

// Value returns the first bound value, or an empty string if nothing is bound.
func (i *Instance) Value() string {
	if len(i.values) == 0 {
		return ""
	}
	return i.values[0]
}

// Values returns a copy of the bound values.
func (i *Instance) Values() []string {
	if len(i.values) == 0 {
		return nil
	}
	vals := make([]string, len(i.values))
	copy(vals, i.values)
	return vals
}

// Bool returns the derived value of a Boolean option, and whether one was bound.
func (i *Instance) Bool() (value bool, set bool) {
	if i.boolean == nil {
		return false, false
	}
	return *i.boolean, true
}

// Reset clears all bound state.
func (i *Instance) Reset() {
	i.values = nil
	i.boolean = nil
}
