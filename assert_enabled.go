//go:build assert_enabled

package main

// Assert checks internal invariants of the game. Release builds compile it
// away, build with -tags assert_enabled to turn it on.
func Assert(condition bool) {
	if !condition {
		panic("assertion failed")
	}
}
