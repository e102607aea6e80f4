package cli

import (
	"bufio"
	"golang.org/x/term"
	"io"
	"os"
	"slices"
	"strings"
)

const (
	UseCommand  = "$use"  // This is used in interactive mode to indicate that a set of sub-commands should be pushed to the invocation stack.
	BackCommand = "$back" // This is used in interactive mode to indicate that the last element on the invocation stack should be popped.
)

var (
	InteractiveQuitCommands = []string{"quit", "x"} // InteractiveQuitCommands is a slice of strings that should escape from interactive mode.
)

// Interactive runs command lines read from in, until EOF or one of the [InteractiveQuitCommands] is entered.
// Each line is split on whitespace, and run with a fresh tree from build, so values never carry over between lines.
// A prompt is only printed if in is a terminal.
//
// The [UseCommand] can be used to push a string of sub-commands to an invocation stack, so they're prepended to each line.
// Use the [BackCommand] to pop the invocation stack and go back to where you were.
func Interactive(build func() *Command, in io.Reader, p *Printer) error {
	if p == nil {
		p = NewPrinter()
	}
	var (
		commandStack [][]string
		scanner      = bufio.NewScanner(in)
		prompt       = isTerminal(in)
		name         = build().Path()
	)
	prefixCommands := func() []string {
		if len(commandStack) == 0 {
			return nil
		}
		return commandStack[len(commandStack)-1]
	}
	if prompt {
		p.Printf(`Running '%s' interactively. Enter %s to exit.
Use the %s command with one or more sub-commands to push them to the execution stack, and %s to pop and return.
`, name, strings.Join(InteractiveQuitCommands, " or "), UseCommand, BackCommand)
	}
	for {
		if prompt {
			p.Printf("%s> ", strings.Join(append([]string{name}, prefixCommands()...), " "))
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		segments := strings.Fields(scanner.Text())
		if len(segments) == 0 {
			continue
		}
		switch {
		case len(segments) == 1 && slices.Contains(InteractiveQuitCommands, strings.ToLower(segments[0])):
			return nil
		case segments[0] == UseCommand:
			newStack := append(slices.Clone(prefixCommands()), segments[1:]...)
			p.Printf("Using '%s'\n", strings.Join(newStack, " "))
			commandStack = append(commandStack, newStack)
		case segments[0] == BackCommand:
			if len(commandStack) == 0 {
				p.Println("Already at root command")
				continue
			}
			commandStack = commandStack[:len(commandStack)-1]
		default:
			cmd := build()
			cmd.SetPrinter(p)
			if code := cmd.Run(append(slices.Clone(prefixCommands()), segments...)); code != ExitOK {
				p.Printf("Exit code %d\n", code)
			}
		}
	}
}

func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
