package manifest

import (
	"errors"
	"fmt"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrInvalidManifest = errors.New("invalid manifest")
	ErrUnknownFormat   = errors.New("unknown manifest format")
	ErrUnknownAction   = errors.New("unknown action")
)

// Format is the encoding of a manifest.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatOf picks a [Format] from the extension of a file path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: '%s'", ErrUnknownFormat, path)
	}
}

// Spec describes a command and its sub-commands.
// The Name of the root Spec is the name of the CLI, and the Name of a sub-command is its keyword.
type Spec struct {
	Name                   string         `yaml:"name" toml:"name"`
	FullName               string         `yaml:"fullName" toml:"fullName"`
	Description            string         `yaml:"description" toml:"description"`
	Syntax                 string         `yaml:"syntax" toml:"syntax"`
	ExtendedHelp           string         `yaml:"extendedHelp" toml:"extendedHelp"`
	Aliases                []string       `yaml:"aliases" toml:"aliases"`
	AllowUnexpected        bool           `yaml:"allowUnexpected" toml:"allowUnexpected"`
	AllowArgumentSeparator bool           `yaml:"allowArgumentSeparator" toml:"allowArgumentSeparator"`
	ArgumentSeparator      string         `yaml:"argumentSeparator" toml:"argumentSeparator"`
	ArgumentSeparatorHelp  string         `yaml:"argumentSeparatorHelp" toml:"argumentSeparatorHelp"`
	Help                   string         `yaml:"help" toml:"help"` // Help is the template of the help option.
	Version                *VersionSpec   `yaml:"version" toml:"version"`
	Options                []OptionSpec   `yaml:"options" toml:"options"`
	Arguments              []ArgumentSpec `yaml:"arguments" toml:"arguments"`
	Commands               []Spec         `yaml:"commands" toml:"commands"`
	Action                 string         `yaml:"action" toml:"action"` // Action is the name of the action to invoke, if any.
}

type VersionSpec struct {
	Template string `yaml:"template" toml:"template"`
	Short    string `yaml:"short" toml:"short"`
	Long     string `yaml:"long" toml:"long"`
}

type OptionSpec struct {
	Template    string `yaml:"template" toml:"template"`
	Description string `yaml:"description" toml:"description"`
	Kind        string `yaml:"kind" toml:"kind"` // Kind is parsed with option.ParseKind, and defaults to none.
	Env         string `yaml:"env" toml:"env"`
}

type ArgumentSpec struct {
	Name        string `yaml:"name" toml:"name"`
	Description string `yaml:"description" toml:"description"`
	Multiple    bool   `yaml:"multiple" toml:"multiple"`
}

// Decode reads a [Spec] in the given [Format].
// Unknown keys are rejected, so typos don't silently drop part of a tree.
func Decode(r io.Reader, format Format) (*Spec, error) {
	var spec Spec
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&spec); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
		}
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&spec)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, key := range undecoded {
				keys[i] = key.String()
			}
			return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalidManifest, strings.Join(keys, ", "))
		}
	default:
		return nil, fmt.Errorf("%w: '%s'", ErrUnknownFormat, format)
	}
	return &spec, nil
}

// Load reads a [Spec] from a file, with the [Format] chosen by its extension.
func Load(path string) (*Spec, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	spec, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return spec, nil
}
