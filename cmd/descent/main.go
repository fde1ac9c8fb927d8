// Package main provides the descent command-line tool.
//
// descent trains logistic regression with minibatch SGD variants, compares
// the result with a full-batch quasi-Newton solution and cross-checks the
// gradient oracles.
package main

import (
	"os"
)

const version = "v0.1.0"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
