package cli

import (
	"errors"
	"fmt"
	"github.com/saylorsolutions/cmdargs/argument"
	"strings"
)

type outcome int

const (
	invokeAction outcome = iota
	showHelp
	showVersion
)

// Run executes the command tree with the given arguments and returns the exit code.
// Parse errors are printed with the [Printer], followed by a hint about the help option.
//
// The arguments should not include the program name, so os.Args[1:] is typically passed.
func (c *Command) Run(args []string) int {
	code, err := c.Execute(args)
	if err != nil {
		c.Printer().Errorf("%v\n", err)
		var pErr *ParseError
		if errors.As(err, &pErr) && pErr.cmd != nil {
			pErr.cmd.ShowHint()
		}
	}
	return code
}

// Execute binds the arguments to the command tree, and invokes the resolved [Command].
// If the help or version option is given, then the [Renderer] is used instead and [ExitOK] is returned.
//
// A [*ParseError] is returned if the arguments can't be bound, and the error from a [PreExec] is returned as is.
// In both cases the action is not invoked and [ExitFailure] is returned.
func (c *Command) Execute(args []string) (int, error) {
	cmd, result, err := c.dispatch(args)
	if err != nil {
		return ExitFailure, err
	}
	switch result {
	case showHelp:
		cmd.ShowHelp()
		return ExitOK, nil
	case showVersion:
		cmd.ShowVersion()
		return ExitOK, nil
	}
	for node := cmd; node != nil; node = node.parent {
		if err := node.bindEnv(); err != nil {
			return ExitFailure, err
		}
	}
	if err := runGlobalPreExec(cmd); err != nil {
		return ExitFailure, err
	}
	if cmd.action == nil {
		log().Debug("No action registered, showing help", "command", cmd.Path())
		cmd.ShowHelp()
		return ExitOK, nil
	}
	log().Debug("Invoking action", "command", cmd.Path())
	return cmd.action.Invoke(), nil
}

// dispatch consumes the arguments left to right, descending into sub-commands as their keywords are found.
// It returns the Command that should be invoked.
func (c *Command) dispatch(args []string) (*Command, outcome, error) {
	var (
		cmd        = c
		enum       = cmd.args.Enumerate()
		positional bool
	)
	for i := 0; i < len(args); i++ {
		token := args[i]
		if cmd.isSeparator(token) {
			cmd.remaining = append(cmd.remaining, args[i+1:]...)
			log().Debug("Argument separator found", "command", cmd.Path(), "remaining", len(args)-i-1)
			break
		}
		if !positional {
			if child, ok := cmd.child(token); ok {
				log().Debug("Dispatching to sub-command", "command", cmd.Path(), "token", token)
				cmd = child
				enum = cmd.args.Enumerate()
				continue
			}
		}
		if isOptionToken(token) {
			opt, value, inline := cmd.lookupOption(token)
			if opt == nil {
				if cmd.HandleRemainingArguments {
					log().Debug("Unknown option added to remaining arguments", "command", cmd.Path(), "token", token)
					cmd.remaining = append(cmd.remaining, token)
					continue
				}
				return cmd, invokeAction, newParseError(cmd, token, ErrUnknownOption)
			}
			if !inline && opt.Kind().TakesValue() {
				if i+1 >= len(args) {
					return cmd, invokeAction, newParseError(cmd, token, fmt.Errorf("%w for option %s", ErrMissingValue, opt.flagName()))
				}
				i++
				value, inline = args[i], true
			}
			if !opt.bind(value, inline) {
				return cmd, invokeAction, newParseError(cmd, token, fmt.Errorf("%w for option %s", ErrOptionBinding, opt.flagName()))
			}
			log().Debug("Bound option", "command", cmd.Path(), "token", token, "option", opt.Name())
			switch opt {
			case cmd.HelpOption():
				return cmd, showHelp, nil
			case cmd.versionOption:
				return cmd, showVersion, nil
			}
			continue
		}
		if arg, ok := advance(enum); ok {
			arg.Bind(token)
			positional = true
			log().Debug("Bound argument", "command", cmd.Path(), "token", token, "argument", arg.Name)
			continue
		}
		if cmd.HandleRemainingArguments {
			log().Debug("Added to remaining arguments", "command", cmd.Path(), "token", token)
			cmd.remaining = append(cmd.remaining, token)
			continue
		}
		if len(cmd.commands) > 0 && cmd.args.Len() == 0 {
			return cmd, invokeAction, newParseError(cmd, token, ErrUnknownCommand)
		}
		return cmd, invokeAction, newParseError(cmd, token, ErrUnexpectedArgument)
	}
	return cmd, invokeAction, nil
}

func advance(enum *argument.Enumerator) (*argument.Argument, bool) {
	if !enum.Advance() {
		return nil, false
	}
	return enum.Current()
}

func (c *Command) isSeparator(token string) bool {
	if !c.AllowArgumentSeparator {
		return false
	}
	sep := c.ArgumentSeparator
	if len(sep) == 0 {
		sep = DefaultArgumentSeparator
	}
	return token == sep
}

func isOptionToken(token string) bool {
	return len(token) > 1 && strings.HasPrefix(token, "-")
}

// lookupOption finds the option named by the token, which may carry an inline value after '='.
// Only this Command's options are considered, other than an inherited help option.
func (c *Command) lookupOption(token string) (opt *Option, value string, inline bool) {
	var (
		long = strings.HasPrefix(token, "--")
		rest = strings.TrimPrefix(token, "-")
	)
	if long {
		rest = strings.TrimPrefix(rest, "-")
	}
	if opt = c.matchOption(rest, long); opt != nil {
		return opt, "", false
	}
	name, value, found := strings.Cut(rest, "=")
	if !found {
		return nil, "", false
	}
	if opt = c.matchOption(name, long); opt != nil {
		return opt, value, true
	}
	return nil, "", false
}

func (c *Command) matchOption(name string, long bool) *Option {
	matches := func(opt *Option) bool {
		if long {
			return opt.MatchesLong(name)
		}
		return opt.MatchesShort(name)
	}
	for _, opt := range c.options {
		if matches(opt) {
			return opt
		}
	}
	if help := c.HelpOption(); help != nil && matches(help) {
		return help
	}
	return nil
}

// shadows returns true if any name of opt is also used by an option of this Command.
func (c *Command) shadows(opt *Option) bool {
	for _, existing := range c.options {
		if _, conflict := opt.conflictsWith(existing); conflict {
			return true
		}
	}
	return false
}
