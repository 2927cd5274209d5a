//go:build debug

package core

import "fmt"

// assertf panics when cond is false. Only compiled in with the debug build
// tag; release builds leave invariant violations unchecked.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
