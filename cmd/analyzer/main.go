package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"os"
)

// exitCoder lets command errors carry their process exit code.
type exitCoder interface {
	ExitCode() int
}

func exitCode(err error) int {
	var ec exitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return exitConfig // argument validation errors from cobra land here
}

func main() {
	cmd := newAnalyzerCommand()
	err := cmd.Execute()
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
	code := exitCode(err)
	if code == exitConfig {
		// usage goes to standard output, diagnostics stay on stderr
		fmt.Fprint(os.Stdout, cmd.UsageString())
	}
	os.Exit(code)
}
