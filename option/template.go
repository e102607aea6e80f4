package option

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	fullNamePrefix          = "--"
	shortNamePrefix         = "-"
	valueNamePrefix         = "<"
	valueNameSuffix         = ">"
	multipleValueNameSuffix = ">..."
)

var (
	ErrTemplateSyntax = errors.New("template syntax error")
)

// TemplateError is returned from [ParseTemplate] when a template can't be used to describe an option.
// It matches [ErrTemplateSyntax] with [errors.Is].
type TemplateError struct {
	Template string
	Reason   string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("%s: template '%s' %s", ErrTemplateSyntax, e.Template, e.Reason)
}

func (e *TemplateError) Is(err error) bool {
	if err == ErrTemplateSyntax {
		return true
	}
	_, ok := err.(*TemplateError)
	return ok
}

// Descriptor is the parsed form of an option template.
// Other than Description, a Descriptor doesn't change after it's created.
type Descriptor struct {
	template    string
	kind        Kind
	fullName    string
	shortName   string
	symbol      string
	valueName   string
	Description string
}

func templateSegments(template string) []string {
	return strings.FieldsFunc(template, func(r rune) bool {
		return r == ' ' || r == '|'
	})
}

func isSymbol(name string) bool {
	if utf8.RuneCountInString(name) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(name)
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// ParseTemplate parses the template into a [Descriptor] for an option of the given [Kind].
// A [*TemplateError] is returned if the template is empty, has a segment that can't be classified, or doesn't declare any name.
func ParseTemplate(template string, kind Kind) (*Descriptor, error) {
	if len(template) == 0 {
		return nil, &TemplateError{Template: template, Reason: "is empty"}
	}
	d := &Descriptor{template: template, kind: kind}
	for _, segment := range templateSegments(template) {
		switch {
		case strings.HasPrefix(segment, fullNamePrefix):
			d.fullName = segment[len(fullNamePrefix):]
		case strings.HasPrefix(segment, shortNamePrefix):
			name := segment[len(shortNamePrefix):]
			if isSymbol(name) {
				d.symbol = name
				continue
			}
			d.shortName = name
		case strings.HasPrefix(segment, valueNamePrefix) && strings.HasSuffix(segment, valueNameSuffix):
			d.valueName = segment[len(valueNamePrefix) : len(segment)-len(valueNameSuffix)]
		case kind == Multiple && strings.HasPrefix(segment, valueNamePrefix) && strings.HasSuffix(segment, multipleValueNameSuffix):
			d.valueName = segment[len(valueNamePrefix) : len(segment)-len(multipleValueNameSuffix)]
		default:
			return nil, &TemplateError{Template: template, Reason: fmt.Sprintf("could not be parsed at '%s'", segment)}
		}
	}
	if len(d.fullName) == 0 && len(d.shortName) == 0 && len(d.symbol) == 0 {
		return nil, &TemplateError{Template: template, Reason: "did not contain a name"}
	}
	return d, nil
}

// MustParseTemplate is the same as [ParseTemplate], but panics if the template is invalid.
func MustParseTemplate(template string, kind Kind) *Descriptor {
	d, err := ParseTemplate(template, kind)
	if err != nil {
		panic(err)
	}
	return d
}

// Template returns the source template.
func (d *Descriptor) Template() string {
	return d.template
}

func (d *Descriptor) Kind() Kind {
	return d.kind
}

// FullName returns the name used with the "--" prefix, if one was declared.
func (d *Descriptor) FullName() string {
	return d.fullName
}

// ShortName returns the name used with the "-" prefix, if one was declared.
func (d *Descriptor) ShortName() string {
	return d.shortName
}

// Symbol returns the single symbol character used with the "-" prefix, if one was declared.
func (d *Descriptor) Symbol() string {
	return d.symbol
}

// ValueName returns the value placeholder name, if one was declared.
func (d *Descriptor) ValueName() string {
	return d.valueName
}

// Name returns the most descriptive name declared for the option.
func (d *Descriptor) Name() string {
	switch {
	case len(d.fullName) > 0:
		return d.fullName
	case len(d.shortName) > 0:
		return d.shortName
	default:
		return d.symbol
	}
}

// Names returns every name declared for the option, in the order full, short, symbol.
func (d *Descriptor) Names() []string {
	var names []string
	for _, name := range []string{d.fullName, d.shortName, d.symbol} {
		if len(name) > 0 {
			names = append(names, name)
		}
	}
	return names
}

// MatchesLong returns true if name is the full name of the option.
func (d *Descriptor) MatchesLong(name string) bool {
	return len(name) > 0 && name == d.fullName
}

// MatchesShort returns true if name is the short name or symbol of the option.
func (d *Descriptor) MatchesShort(name string) bool {
	return len(name) > 0 && (name == d.shortName || name == d.symbol)
}

func (d *Descriptor) String() string {
	return d.template
}
