package main

import (
	"fmt"
	"os"
)

var version = "devel"

func main() {
	cli := parseArgs(os.Args[1:])

	switch cli.mode {
	case dumpMode:
		checkf(runDump(cli.Dump), "dump failed")
	case mirrorMode:
		checkf(runMirror(cli.Mirror), "mirror failed")
	case versionMode:
		fmt.Println("nesbus", version)
	}
}

func checkf(err error, format string, args ...any) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, format, args...)
	fmt.Fprintf(os.Stderr, ":\n\t%s\n", err)
	os.Exit(1)
}
