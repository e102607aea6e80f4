// Package argument declares positional command arguments, and provides the cursor used to bind tokens to them.
package argument

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateMultiplicity = errors.New("only the last argument may accept multiple values")
)

// Descriptor declares a positional argument slot.
type Descriptor struct {
	Name        string
	Description string
	Multiple    bool // Multiple allows the argument to absorb every remaining positional token.
}

// Argument pairs a [Descriptor] with the values bound to it in one invocation.
type Argument struct {
	Descriptor
	values []string
}

// Bind appends a value to the Argument.
func (a *Argument) Bind(value string) {
	a.values = append(a.values, value)
}

func (a *Argument) HasValue() bool {
	return len(a.values) > 0
}

// Value returns the first bound value, or an empty string if nothing is bound.
func (a *Argument) Value() string {
	if len(a.values) == 0 {
		return ""
	}
	return a.values[0]
}

// Values returns a copy of the bound values.
func (a *Argument) Values() []string {
	if len(a.values) == 0 {
		return nil
	}
	vals := make([]string, len(a.values))
	copy(vals, a.values)
	return vals
}

func (a *Argument) Reset() {
	a.values = nil
}

// List is an ordered set of arguments declared for a command.
// Only the last Argument in a List may accept multiple values, and this is enforced by [List.Add].
type List struct {
	args []*Argument
}

// Add declares a new Argument at the end of the List.
// [ErrDuplicateMultiplicity] is returned if the last declared Argument already accepts multiple values.
func (l *List) Add(name, description string, multiple bool) (*Argument, error) {
	if last, ok := l.last(); ok && last.Multiple {
		return nil, fmt.Errorf("%w: argument '%s' can't follow multi-value argument '%s'", ErrDuplicateMultiplicity, name, last.Name)
	}
	arg := &Argument{
		Descriptor: Descriptor{
			Name:        name,
			Description: description,
			Multiple:    multiple,
		},
	}
	l.args = append(l.args, arg)
	return arg, nil
}

func (l *List) last() (*Argument, bool) {
	if len(l.args) == 0 {
		return nil, false
	}
	return l.args[len(l.args)-1], true
}

func (l *List) Len() int {
	return len(l.args)
}

// All returns the declared arguments in order.
func (l *List) All() []*Argument {
	all := make([]*Argument, len(l.args))
	copy(all, l.args)
	return all
}

// Get returns the Argument with the given name.
func (l *List) Get(name string) (*Argument, bool) {
	for _, arg := range l.args {
		if arg.Name == name {
			return arg, true
		}
	}
	return nil, false
}

// Reset clears the values bound to every Argument.
func (l *List) Reset() {
	for _, arg := range l.args {
		arg.Reset()
	}
}

// Enumerate creates an [Enumerator] positioned before the first Argument.
func (l *List) Enumerate() *Enumerator {
	return &Enumerator{args: l.args, pos: -1}
}
