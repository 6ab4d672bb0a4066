package veb

import "fmt"

// assert panics with message (treated as a fmt.Sprintf format string applied
// to the remaining arguments) if condition is false. It guards programmer
// errors -- a height inconsistent with an array's length, an out-of-range
// leaf rank -- not recoverable runtime conditions; those are reported
// through ordinary error returns instead.
func assert(condition bool, message ...any) {
	if !condition {
		if len(message) == 0 {
			panic("assertion failed")
		}
		format := fmt.Sprint(message[0])
		panic(fmt.Sprintf(format, message[1:]...))
	}
}
