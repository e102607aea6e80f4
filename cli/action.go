package cli

import "sync"

// Action is executed once the argument vector has been bound to a [Command].
// Invoke blocks until the work is complete, and returns the exit code.
type Action interface {
	Invoke() int
}

// ActionFunc adapts a function to an [Action].
type ActionFunc func() int

func (f ActionFunc) Invoke() int {
	return f()
}

// AsyncActionFunc starts work that will resolve an [ExitFuture].
type AsyncActionFunc func() *ExitFuture

// Invoke starts the work and waits for it to be resolved.
// There's no timeout, and the work can't be interrupted once it starts.
func (f AsyncActionFunc) Invoke() int {
	future := f()
	if future == nil {
		return ExitOK
	}
	return future.Await()
}

// ExitFuture is an exit code that will be resolved asynchronously.
// Once Await returns, the exit code is cached for other calls to Await.
type ExitFuture struct {
	done    chan struct{}
	resolve sync.Once
	code    int
}

func NewExitFuture() *ExitFuture {
	return &ExitFuture{
		done: make(chan struct{}),
	}
}

// Async runs fn in a new goroutine, resolving the returned [ExitFuture] with its result.
func Async(fn func() int) *ExitFuture {
	f := NewExitFuture()
	go func() {
		f.Resolve(fn())
	}()
	return f
}

// Resolve sets the exit code.
// Only the first call to Resolve will set the exit code, and subsequent calls do nothing.
func (f *ExitFuture) Resolve(code int) {
	f.resolve.Do(func() {
		f.code = code
		close(f.done)
	})
}

// Await blocks until [ExitFuture.Resolve] is called, and returns the exit code.
func (f *ExitFuture) Await() int {
	<-f.done
	return f.code
}
