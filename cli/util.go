package cli

// MustGet is used with registration methods like [Command.AddOption] to panic if registration fails.
// Registration errors are programming errors, so this makes it easier to build a tree without checking each step.
func MustGet[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
