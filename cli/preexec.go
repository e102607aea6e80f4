package cli

import "sync"

// PreExec is a function that may run before the action of the resolved [Command] is invoked.
type PreExec func(cmd *Command) error

var (
	preExecMux    sync.Mutex
	globalPreExec []PreExec
)

// AddGlobalPreExec registers a function that will be executed right before a [Command] action is invoked.
// If an error is returned from a [PreExec], then the action will not be invoked, and the error will be returned from Execute instead.
// Note that no [PreExec] functions will be executed when help or version information is requested.
//
// Passing a nil [PreExec] function to this function will panic.
func AddGlobalPreExec(fn PreExec) {
	if fn == nil {
		panic("nil pre-exec function")
	}
	preExecMux.Lock()
	defer preExecMux.Unlock()
	globalPreExec = append(globalPreExec, fn)
}

func runGlobalPreExec(cmd *Command) error {
	preExecMux.Lock()
	defer preExecMux.Unlock()
	for _, fn := range globalPreExec {
		err := fn(cmd)
		if err != nil {
			return err
		}
	}
	return nil
}
