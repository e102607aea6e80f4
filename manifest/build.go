package manifest

import (
	"fmt"
	"github.com/saylorsolutions/cmdargs/cli"
	"github.com/saylorsolutions/cmdargs/option"
)

// Build creates a command tree from the [Spec].
// Actions named in the tree are looked up in actions, and [ErrUnknownAction] is returned if one is missing.
// A command without an action shows its help when invoked.
func (s *Spec) Build(actions map[string]cli.Action) (*cli.Command, error) {
	if len(s.Name) == 0 {
		return nil, fmt.Errorf("%w: root command has no name", ErrInvalidManifest)
	}
	root := cli.New(s.Name)
	root.FullName = s.FullName
	if err := s.configure(root, actions); err != nil {
		return nil, err
	}
	return root, nil
}

func (s *Spec) configure(cmd *cli.Command, actions map[string]cli.Action) error {
	cmd.Description = s.Description
	cmd.Syntax = s.Syntax
	cmd.ExtendedHelp = s.ExtendedHelp
	cmd.AllowArgumentSeparator = s.AllowArgumentSeparator
	cmd.ArgumentSeparator = s.ArgumentSeparator
	cmd.ArgumentSeparatorHelp = s.ArgumentSeparatorHelp
	cmd.HandleRemainingArguments = s.AllowUnexpected

	wrap := func(err error) error {
		return fmt.Errorf("command '%s': %w", cmd.Path(), err)
	}
	if len(s.Help) > 0 {
		if _, err := cmd.SetHelpOption(s.Help); err != nil {
			return wrap(err)
		}
	}
	if s.Version != nil {
		if _, err := cmd.SetVersionOption(s.Version.Template, s.Version.Short, s.Version.Long); err != nil {
			return wrap(err)
		}
	}
	for _, o := range s.Options {
		kind, err := option.ParseKind(o.Kind)
		if err != nil {
			return wrap(fmt.Errorf("%w: %v", ErrInvalidManifest, err))
		}
		opt, err := cmd.AddOption(o.Template, o.Description, kind)
		if err != nil {
			return wrap(err)
		}
		if len(o.Env) > 0 {
			opt.FromEnv(o.Env)
		}
	}
	for _, a := range s.Arguments {
		if len(a.Name) == 0 {
			return wrap(fmt.Errorf("%w: argument has no name", ErrInvalidManifest))
		}
		if _, err := cmd.AddArgument(a.Name, a.Description, a.Multiple); err != nil {
			return wrap(err)
		}
	}
	if len(s.Action) > 0 {
		action, ok := actions[s.Action]
		if !ok || action == nil {
			return wrap(fmt.Errorf("%w: '%s'", ErrUnknownAction, s.Action))
		}
		cmd.Does(action)
	}
	for i := range s.Commands {
		sub := &s.Commands[i]
		child, err := cmd.TryAddCommand(sub.Name, sub.Description, sub.AllowUnexpected, sub.Aliases...)
		if err != nil {
			return err
		}
		if err := sub.configure(child, actions); err != nil {
			return err
		}
	}
	return nil
}
