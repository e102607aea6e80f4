package argument

// Enumerator is a cursor over a [List] of arguments.
//
// It starts before the first Argument, so [Enumerator.Advance] must be called once before [Enumerator.Current] returns anything.
// Advancing while positioned on an Argument that accepts multiple values leaves the cursor in place, so that Argument keeps receiving tokens.
type Enumerator struct {
	args []*Argument
	pos  int
}

// Current returns the Argument at the cursor.
// False is returned if the Enumerator hasn't started, or is exhausted.
func (e *Enumerator) Current() (*Argument, bool) {
	if e.pos < 0 || e.pos >= len(e.args) {
		return nil, false
	}
	return e.args[e.pos], true
}

// Advance moves the cursor to the next Argument, unless the current Argument accepts multiple values.
// Returns true if the cursor is positioned on an Argument afterward.
func (e *Enumerator) Advance() bool {
	if cur, ok := e.Current(); ok && cur.Multiple {
		return true
	}
	if e.pos < len(e.args) {
		e.pos++
	}
	return e.pos < len(e.args)
}

// Started returns true if Advance has been called since the Enumerator was created or reset.
func (e *Enumerator) Started() bool {
	return e.pos >= 0
}

// Reset positions the cursor before the first Argument again.
func (e *Enumerator) Reset() {
	e.pos = -1
}
