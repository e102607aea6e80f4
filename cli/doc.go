/*
Package cli binds command line arguments to a tree of commands.

A tree is built from a root [Command] created with [New], with sub-commands added with [Command.AddCommand].
Each [Command] declares options with the template syntax of the [option] package, and positional arguments, of which only the last may accept multiple values.

# Invocation

Arguments are consumed left to right.

  - A token matching the keyword or alias of a sub-command descends into it, as long as no positional argument has been bound yet.
    The sub-command owns the rest of the arguments.
  - A token starting with '-' is looked up as an option of the current command, as "--name", "--name=value", "-n", "-n=value", or a symbol like "-?".
    Options that take a value consume the following token if no value was given inline.
  - Anything else is bound to the next positional argument.
    A trailing multi-value argument absorbs every positional token left.
  - With [Command.AllowArgumentSeparator], every token after the separator ("--" by default) is kept as a remaining argument.
  - With [Command.HandleRemainingArguments], tokens that can't be bound are kept as remaining arguments rather than failing.

Once all arguments are bound, options declared with [Option.FromEnv] fall back to the environment, any [PreExec] functions run, and the action of the resolved [Command] is invoked.
The integer returned by the action is the exit code.

If a help or version option is bound, then the [Renderer] shows that information instead of the action being invoked.

# Reuse

Values stay bound to a tree after it runs.
Build a fresh tree for each invocation, or call [Command.Reset] in between.

# Tracing

Dispatch decisions are logged at debug level with [log/slog].
Use [SetLogger] to capture them, or set the [TraceEnv] environment variable to a truthy value to log them to STDERR.
*/
package cli
