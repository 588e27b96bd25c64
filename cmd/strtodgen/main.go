// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command strtodgen emits line-oriented test-vector files consumed by
// strtodcheck: a reference IEEE-754 pattern paired with a decimal numeral
// that strtod.Strtod is expected to convert back to that exact pattern.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	seed    int64
	outPath string
	count   int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "strtodgen",
		Short: "Generate strtodcheck test-vector files",
	}
	root.PersistentFlags().Int64Var(&seed, "seed", 1, "PRNG seed, for reproducible output")
	root.PersistentFlags().StringVar(&outPath, "out", "", "output file path (default: stdout)")
	root.PersistentFlags().IntVar(&count, "count", 10000, "number of test vectors to emit")

	root.AddCommand(newUniformCmd(), newNDigitCmd(), newEvilCmd())
	return root
}

// openOut opens outPath for writing, or returns os.Stdout if unset.
func openOut() (*os.File, func(), error) {
	if outPath == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(outPath)
	if err != nil {
		return nil, nil, fmt.Errorf("strtodgen: %w", err)
	}
	return f, func() { f.Close() }, nil
}
