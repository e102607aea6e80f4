package option

import (
	"fmt"
	"strings"
)

// Kind determines how many values an option accepts, and how they're validated.
type Kind int

const (
	None     Kind = iota // None options take no value, they're either present or not.
	Boolean              // Boolean options may be given bare, or with a "true" or "false" value.
	Single               // Single options accept exactly one value.
	Multiple             // Multiple options accept any number of values, in the order given.
)

var kindNames = map[Kind]string{
	None:     "none",
	Boolean:  "boolean",
	Single:   "single",
	Multiple: "multiple",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// TakesValue returns true if an option of this Kind needs a value token when none is given inline.
func (k Kind) TakesValue() bool {
	return k == Single || k == Multiple
}

// ParseKind interprets a [Kind] from its name, compared case-insensitive.
// The names "bool" and "flag" are accepted as aliases for [Boolean] and [None] respectively.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none", "flag":
		return None, nil
	case "boolean", "bool":
		return Boolean, nil
	case "single":
		return Single, nil
	case "multiple":
		return Multiple, nil
	default:
		return None, fmt.Errorf("unknown option kind '%s'", name)
	}
}
