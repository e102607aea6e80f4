package cli

import (
	"fmt"
	"github.com/saylorsolutions/cmdargs/argument"
	"github.com/saylorsolutions/cmdargs/option"
	"regexp"
	"slices"
	"strings"
)

// DefaultArgumentSeparator is used when [Command.AllowArgumentSeparator] is set without a [Command.ArgumentSeparator].
const DefaultArgumentSeparator = "--"

var (
	keyCleansePattern = regexp.MustCompile(`\s`)
)

// Command is a node in a tree of commands.
// It declares options, positional arguments, and sub-commands, and holds the values bound to them during an invocation.
//
// A Command tree should be fully built before [Command.Run] or [Command.Execute] is called, and isn't safe for concurrent use.
// Values bound in one invocation are kept until [Command.Reset] is called, so a fresh tree should be built for each invocation or reset in between.
type Command struct {
	Name                     string
	Description              string
	FullName                 string // FullName is the display name used for version information.
	Syntax                   string // Syntax overrides the generated usage line in help output.
	ExtendedHelp             string // ExtendedHelp is shown at the end of help output.
	AllowArgumentSeparator   bool   // AllowArgumentSeparator routes every token after the ArgumentSeparator to the remaining arguments.
	ArgumentSeparator        string
	ArgumentSeparatorHelp    string
	HandleRemainingArguments bool // HandleRemainingArguments collects unexpected tokens rather than failing.

	keyword       string
	aliases       []string
	parent        *Command
	commands      []*Command
	options       []*Option
	args          argument.List
	remaining     []string
	action        Action
	helpOption    *Option
	versionOption *Option
	shortVersion  string
	longVersion   string
	printer       *Printer
	renderer      Renderer
}

func cleanseKey(key string) string {
	return keyCleansePattern.ReplaceAllString(strings.ToLower(key), "")
}

// New creates the root of a command tree.
// The name should be the name used to invoke the CLI.
func New(name string) *Command {
	return &Command{
		Name:    name,
		keyword: cleanseKey(name),
	}
}

// AddCommand adds a sub-command that's selected with keyword.
// The keyword and aliases will be cleansed to remove spaces, and normalize to lower-case, and are matched case-insensitive.
// If allowUnexpected is true, then tokens that can't be bound in the sub-command are collected as remaining arguments instead of failing.
//
// Adding an empty keyword, or a keyword or alias that's already in use by another sub-command will panic.
// Use [Command.TryAddCommand] to get an error instead.
func (c *Command) AddCommand(keyword, description string, allowUnexpected bool, aliases ...string) *Command {
	return MustGet(c.TryAddCommand(keyword, description, allowUnexpected, aliases...))
}

// TryAddCommand is the same as [Command.AddCommand], but returns [ErrDuplicateCommand] if the keyword or an alias is already in use, or the keyword is empty.
func (c *Command) TryAddCommand(keyword, description string, allowUnexpected bool, aliases ...string) (*Command, error) {
	keyword = cleanseKey(keyword)
	if len(keyword) == 0 {
		return nil, fmt.Errorf("%w: empty keyword in '%s'", ErrDuplicateCommand, c.Path())
	}
	cmd := &Command{
		Name:                     keyword,
		Description:              description,
		HandleRemainingArguments: allowUnexpected,
		keyword:                  keyword,
		parent:                   c,
	}
	if err := c.checkFree(keyword); err != nil {
		return nil, err
	}
	for _, alias := range aliases {
		alias = cleanseKey(alias)
		if len(alias) == 0 || alias == keyword || slices.Contains(cmd.aliases, alias) {
			continue
		}
		if err := c.checkFree(alias); err != nil {
			return nil, err
		}
		cmd.aliases = append(cmd.aliases, alias)
	}
	c.commands = append(c.commands, cmd)
	return cmd, nil
}

func (c *Command) checkFree(key string) error {
	if _, ok := c.child(key); ok {
		return fmt.Errorf("%w: '%s' is already registered in '%s'", ErrDuplicateCommand, key, c.Path())
	}
	return nil
}

// child returns the sub-command matching the token by keyword or alias.
func (c *Command) child(token string) (*Command, bool) {
	key := strings.ToLower(token)
	for _, cmd := range c.commands {
		if cmd.keyword == key {
			return cmd, true
		}
		for _, alias := range cmd.aliases {
			if alias == key {
				return cmd, true
			}
		}
	}
	return nil, false
}

// AddOption registers an option described by the template.
// See the [option] package for template syntax.
//
// An error is returned if the template is invalid, or declares a name that's already used by another option of this Command.
func (c *Command) AddOption(template, description string, kind option.Kind) (*Option, error) {
	opt, err := newOption(template, description, kind)
	if err != nil {
		return nil, err
	}
	for _, existing := range c.options {
		if name, conflict := opt.conflictsWith(existing); conflict {
			return nil, fmt.Errorf("%w: '%s' in template '%s' is already used by '%s'", ErrDuplicateOption, name, template, existing.Template())
		}
	}
	c.options = append(c.options, opt)
	return opt, nil
}

// AddArgument declares the next positional argument.
// Only the last argument may accept multiple values, so [argument.ErrDuplicateMultiplicity] is returned if the previous argument does.
func (c *Command) AddArgument(name, description string, multiple bool) (*argument.Argument, error) {
	return c.args.Add(name, description, multiple)
}

// OnExecute sets the function executed when this Command is invoked.
func (c *Command) OnExecute(fn func() int) *Command {
	if fn == nil {
		panic("nil execute function")
	}
	c.action = ActionFunc(fn)
	return c
}

// OnExecuteAsync sets an asynchronous function executed when this Command is invoked.
// Invocation blocks until the returned [ExitFuture] is resolved.
func (c *Command) OnExecuteAsync(fn func() *ExitFuture) *Command {
	if fn == nil {
		panic("nil execute function")
	}
	c.action = AsyncActionFunc(fn)
	return c
}

// Does sets the [Action] executed when this Command is invoked.
func (c *Command) Does(action Action) *Command {
	if action == nil {
		panic("nil action")
	}
	c.action = action
	return c
}

// SetHelpOption registers a [option.None] option that shows help information instead of invoking the Command.
// Sub-commands without their own help option will recognize this one.
func (c *Command) SetHelpOption(template string) (*Option, error) {
	opt, err := c.AddOption(template, "Show help information", option.None)
	if err != nil {
		return nil, err
	}
	c.helpOption = opt
	return opt, nil
}

// SetVersionOption registers a [option.None] option that shows version information instead of invoking the Command.
func (c *Command) SetVersionOption(template, shortVersion, longVersion string) (*Option, error) {
	opt, err := c.AddOption(template, "Show version information", option.None)
	if err != nil {
		return nil, err
	}
	c.versionOption = opt
	c.shortVersion = shortVersion
	c.longVersion = longVersion
	return opt, nil
}

// HelpOption returns the help option recognized by this Command, which may be inherited from a parent.
func (c *Command) HelpOption() *Option {
	for cmd := c; cmd != nil; cmd = cmd.parent {
		if cmd.helpOption != nil {
			return cmd.helpOption
		}
	}
	return nil
}

func (c *Command) VersionOption() *Option {
	return c.versionOption
}

// Keyword returns the token used to select this Command from its parent.
func (c *Command) Keyword() string {
	return c.keyword
}

func (c *Command) Aliases() []string {
	return c.aliases
}

// Parent returns the parent Command, or nil for the root.
func (c *Command) Parent() *Command {
	return c.parent
}

// Root walks parent references to the root of the tree.
func (c *Command) Root() *Command {
	root := c
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// Path returns the keywords from the root to this Command, joined with spaces.
func (c *Command) Path() string {
	if c.parent == nil {
		return c.Name
	}
	return c.parent.Path() + " " + c.keyword
}

// Commands returns the sub-commands in the order they were added.
func (c *Command) Commands() []*Command {
	return c.commands
}

// Options returns the options in the order they were added.
func (c *Command) Options() []*Option {
	return c.options
}

// Arguments returns the positional arguments in the order they were declared.
func (c *Command) Arguments() []*argument.Argument {
	return c.args.All()
}

// Option finds an option by any of its names, without prefix.
func (c *Command) Option(name string) (*Option, bool) {
	for _, opt := range c.options {
		if opt.MatchesLong(name) || opt.MatchesShort(name) {
			return opt, true
		}
	}
	return nil, false
}

// Argument finds a positional argument by name.
func (c *Command) Argument(name string) (*argument.Argument, bool) {
	return c.args.Get(name)
}

// RemainingArguments returns the tokens that weren't bound to an option or argument.
func (c *Command) RemainingArguments() []string {
	return c.remaining
}

// Version returns the version information declared with [Command.SetVersionOption], searching parents if needed.
func (c *Command) Version() (shortVersion, longVersion string) {
	for cmd := c; cmd != nil; cmd = cmd.parent {
		if len(cmd.shortVersion) > 0 || len(cmd.longVersion) > 0 {
			return cmd.shortVersion, cmd.longVersion
		}
	}
	return "", ""
}

// FullNameAndVersion returns the display name of the Command, followed by the long version if one is declared.
func (c *Command) FullNameAndVersion() string {
	name := c.FullName
	if len(name) == 0 {
		name = c.Name
	}
	short, long := c.Version()
	if len(long) == 0 {
		long = short
	}
	if len(long) == 0 {
		return name
	}
	return name + " " + long
}

// Reset clears every value bound in this Command and its sub-commands.
func (c *Command) Reset() {
	for _, opt := range c.options {
		opt.reset()
	}
	c.args.Reset()
	c.remaining = nil
	for _, cmd := range c.commands {
		cmd.Reset()
	}
}

// Printer returns the [Printer] for this Command, which is shared with the rest of the tree unless set separately.
func (c *Command) Printer() *Printer {
	for cmd := c; cmd != nil; cmd = cmd.parent {
		if cmd.printer != nil {
			return cmd.printer
		}
	}
	root := c.Root()
	root.printer = NewPrinter()
	return root.printer
}

// SetPrinter sets the [Printer] used by this Command and its sub-commands.
func (c *Command) SetPrinter(p *Printer) *Command {
	c.printer = p
	return c
}

// Renderer returns the [Renderer] used for this Command, which is shared with the rest of the tree unless set separately.
func (c *Command) Renderer() Renderer {
	for cmd := c; cmd != nil; cmd = cmd.parent {
		if cmd.renderer != nil {
			return cmd.renderer
		}
	}
	return UsageRenderer{}
}

// SetRenderer sets the [Renderer] used by this Command and its sub-commands.
func (c *Command) SetRenderer(r Renderer) *Command {
	c.renderer = r
	return c
}

// ShowHelp shows help information for this Command with its [Renderer].
func (c *Command) ShowHelp() {
	c.Renderer().ShowHelp(c)
}

// ShowVersion shows version information for this Command with its [Renderer].
func (c *Command) ShowVersion() {
	c.Renderer().ShowVersion(c)
}

// ShowHint prints a hint about the help option, if there is one.
func (c *Command) ShowHint() {
	help := c.HelpOption()
	if help == nil {
		return
	}
	c.Printer().Printf("Specify %s for a list of available options and commands.\n", help.flagName())
}
