// Command bbow builds a big bag of words from text files.
//
//	bbow count [--min N] [--format text|yaml] [files...]
//	bbow match <keyword> [files...]
//	bbow stats [files...]
//
// Without files, text is read from standard input.
package main

import (
	"os"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
