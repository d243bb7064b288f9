package term

import "io"

// SetIsTerminal replaces terminal detection until the returned func is called.
func SetIsTerminal(fn func(io.Writer) bool) func() {
	prev := isTerminal
	isTerminal = fn

	return func() {
		isTerminal = prev
	}
}
