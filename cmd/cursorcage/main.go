// Package main starts the CursorCage utility.
package main

// main is the entrypoint for CursorCage.
func main() {
	if err := run(); err != nil {
		logFatal(err)
	}
}
