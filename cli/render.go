package cli

import (
	"fmt"
	"github.com/saylorsolutions/cmdargs/option"
	flag "github.com/spf13/pflag"
	"strings"
)

// Renderer shows help and version information when the help or version option is given.
type Renderer interface {
	ShowHelp(cmd *Command)
	ShowVersion(cmd *Command)
}

// UsageRenderer is the default [Renderer].
// It writes to the [Printer] of the Command, wrapping option usage to the terminal width if there is one.
type UsageRenderer struct{}

func (UsageRenderer) ShowVersion(cmd *Command) {
	cmd.Printer().Println(cmd.Root().FullNameAndVersion())
}

func (UsageRenderer) ShowHelp(cmd *Command) {
	cmd.Printer().Print(HelpText(cmd, cmd.Printer().Width()))
}

// HelpText generates help information for the [Command].
// Option usage is wrapped to width columns, or not at all if width is 0.
func HelpText(cmd *Command, width int) string {
	var buf strings.Builder
	if root := cmd.Root(); len(root.FullName) > 0 {
		buf.WriteString(root.FullNameAndVersion())
		buf.WriteString("\n\n")
	}
	if len(cmd.Description) > 0 {
		buf.WriteString(cmd.Description)
		buf.WriteString("\n\n")
	}
	buf.WriteString("USAGE:\n")
	buf.WriteString(usageLine(cmd))
	buf.WriteString("\n")

	if args := cmd.Arguments(); len(args) > 0 {
		buf.WriteString("\nARGUMENTS\n")
		names := make([]string, len(args))
		descs := make([]string, len(args))
		for i, arg := range args {
			names[i] = arg.Name
			if arg.Multiple {
				names[i] += "..."
			}
			descs[i] = arg.Description
		}
		writeColumns(&buf, names, descs)
	}

	if len(cmd.options) > 0 || cmd.HelpOption() != nil {
		buf.WriteString("\nOPTIONS\n")
		buf.WriteString(optionUsages(cmd, width))
	}

	if len(cmd.commands) > 0 {
		buf.WriteString("\nCOMMANDS\n")
		buf.WriteString(commandUsages(cmd))
	}

	if cmd.AllowArgumentSeparator && len(cmd.ArgumentSeparatorHelp) > 0 {
		buf.WriteString("\n")
		buf.WriteString(cmd.ArgumentSeparatorHelp)
		buf.WriteString("\n")
	}
	if len(cmd.ExtendedHelp) > 0 {
		buf.WriteString("\n")
		buf.WriteString(strings.TrimSuffix(cmd.ExtendedHelp, "\n"))
		buf.WriteString("\n")
	}
	if len(cmd.commands) > 0 {
		if help := cmd.HelpOption(); help != nil {
			buf.WriteString(fmt.Sprintf("\nUse \"%s [command] %s\" for more information about a command.\n", cmd.Path(), help.flagName()))
		}
	}
	return buf.String()
}

func usageLine(cmd *Command) string {
	if len(cmd.Syntax) > 0 {
		return cmd.Syntax
	}
	parts := []string{cmd.Path()}
	if len(cmd.options) > 0 || cmd.HelpOption() != nil {
		parts = append(parts, "[options]")
	}
	if len(cmd.commands) > 0 {
		parts = append(parts, "[command]")
	}
	for _, arg := range cmd.Arguments() {
		name := "<" + arg.Name + ">"
		if arg.Multiple {
			name += "..."
		}
		parts = append(parts, name)
	}
	if cmd.AllowArgumentSeparator {
		sep := cmd.ArgumentSeparator
		if len(sep) == 0 {
			sep = DefaultArgumentSeparator
		}
		parts = append(parts, "["+sep+" ...]")
	} else if cmd.HandleRemainingArguments {
		parts = append(parts, "[...]")
	}
	return strings.Join(parts, " ")
}

// optionUsages renders options with a full name through a [flag.FlagSet], and lists options that only have short names or symbols after them.
func optionUsages(cmd *Command, width int) string {
	var (
		fs        = flag.NewFlagSet(cmd.Path(), flag.ContinueOnError)
		shortOnly []*Option
		opts      = cmd.options
	)
	fs.SortFlags = false
	if help := cmd.HelpOption(); help != nil && help != cmd.helpOption && !cmd.shadows(help) {
		opts = append(append([]*Option{}, opts...), help)
	}
	for _, opt := range opts {
		if len(opt.FullName()) == 0 {
			shortOnly = append(shortOnly, opt)
			continue
		}
		f := fs.VarPF(usageValue{opt}, opt.FullName(), usageShorthand(opt), opt.Description)
		if !opt.Kind().TakesValue() {
			f.NoOptDefVal = "true"
		}
	}
	var buf strings.Builder
	if width > 0 {
		buf.WriteString(fs.FlagUsagesWrapped(width))
	} else {
		buf.WriteString(fs.FlagUsages())
	}
	if len(shortOnly) > 0 {
		names := make([]string, len(shortOnly))
		descs := make([]string, len(shortOnly))
		for i, opt := range shortOnly {
			names[i] = "-" + opt.Name()
			if vn := opt.ValueName(); len(vn) > 0 {
				names[i] += " " + vn
			}
			descs[i] = opt.Description
		}
		writeColumns(&buf, names, descs)
	}
	return buf.String()
}

// usageShorthand picks a single byte short name or symbol, since that's all a [flag.FlagSet] can display.
func usageShorthand(opt *Option) string {
	if len(opt.ShortName()) == 1 {
		return opt.ShortName()
	}
	if len(opt.Symbol()) == 1 {
		return opt.Symbol()
	}
	return ""
}

func commandUsages(cmd *Command) string {
	var (
		buf   strings.Builder
		names = make([]string, len(cmd.commands))
		descs = make([]string, len(cmd.commands))
	)
	for i, sub := range cmd.commands {
		names[i] = strings.Join(append([]string{sub.keyword}, sub.aliases...), ", ")
		descs[i] = sub.Description
	}
	writeColumns(&buf, names, descs)
	return buf.String()
}

func writeColumns(buf *strings.Builder, names, descs []string) {
	var maxLen int
	for _, name := range names {
		if len(name) > maxLen {
			maxLen = len(name)
		}
	}
	fmtStr := fmt.Sprintf("  %%-%ds   %%s\n", maxLen)
	for i := range names {
		buf.WriteString(strings.TrimRight(fmt.Sprintf(fmtStr, names[i], descs[i]), " \n") + "\n")
	}
}

// usageValue exposes an [Option] to a [flag.FlagSet] for rendering only.
type usageValue struct {
	opt *Option
}

func (v usageValue) String() string {
	return ""
}

func (v usageValue) Set(string) error {
	return fmt.Errorf("option '%s' is for display only", v.opt.Template())
}

func (v usageValue) Type() string {
	if vn := v.opt.ValueName(); len(vn) > 0 {
		return vn
	}
	switch v.opt.Kind() {
	case option.Single:
		return "string"
	case option.Multiple:
		return "strings"
	default:
		return "bool"
	}
}
