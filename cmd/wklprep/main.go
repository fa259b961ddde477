package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/wklprep/internal/cli"
	"github.com/vvka-141/wklprep/pkg/wklprep"
)

func main() {
	// Exit with ExitPanic and a stack trace instead of Go's default status 2,
	// which would read as a usage error.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(wklprep.ExitPanic)
		}
	}()

	if os.Getenv("WKLPREP_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(wklprep.ExitCodeForError(err))
	}
}
