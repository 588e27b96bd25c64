// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command strtodcheck reads test-vector files produced by strtodgen and
// verifies strtod.Strtod against their reference patterns, per §6.3.
package main

import (
	"bufio"
	"fmt"
	"math"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/db47h/strtod"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// modeOverride is a pflag.Value wrapping strtod.RoundingMode so --mode can
// force a single rounding mode across every file, overriding each file's own
// header. While set is false (flag never given), per-file headers stay in
// control.
type modeOverride struct {
	mode strtod.RoundingMode
	set  bool
}

func (m *modeOverride) String() string {
	if !m.set {
		return ""
	}
	return m.mode.String()
}

func (m *modeOverride) Set(s string) error {
	switch s {
	case "nearest":
		m.mode = strtod.ToNearestEven
	case "down":
		m.mode = strtod.ToNegativeInf
	case "up":
		m.mode = strtod.ToPositiveInf
	case "zero":
		m.mode = strtod.ToZero
	default:
		return fmt.Errorf("invalid mode %q (want nearest, down, up or zero)", s)
	}
	m.set = true
	return nil
}

func (m *modeOverride) Type() string { return "mode" }

var forceMode modeOverride

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strtodcheck <file>...",
		Short: "Check strtod.Strtod against strtodgen test-vector files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var total report
			for _, path := range args {
				r, err := checkFile(path)
				if err != nil {
					return err
				}
				total.lines += r.lines
				total.mismatches += r.mismatches
				total.toleratedTies += r.toleratedTies
				log.Info().
					Str("file", path).
					Int("lines", r.lines).
					Int("mismatches", r.mismatches).
					Int("tolerated_ties", r.toleratedTies).
					Msg("checked file")
			}
			log.Info().
				Int("files", len(args)).
				Int("lines", total.lines).
				Int("mismatches", total.mismatches).
				Int("tolerated_ties", total.toleratedTies).
				Msg("summary")
			if total.mismatches > 0 {
				return fmt.Errorf("strtodcheck: %d mismatches across %d files", total.mismatches, len(args))
			}
			return nil
		},
	}
	cmd.Flags().Var(&forceMode, "mode", "force a rounding mode (nearest, down, up, zero), overriding each file's header")
	return cmd
}

var _ pflag.Value = (*modeOverride)(nil)

type report struct {
	lines         int
	mismatches    int
	toleratedTies int
}

// checkFile implements the §6.3 harness for a single generator file: an
// optional one-character mode header on the first line, then one test
// vector per line as described in §6.2.
func checkFile(path string) (report, error) {
	f, err := os.Open(path)
	if err != nil {
		return report{}, fmt.Errorf("strtodcheck: %w", err)
	}
	defer f.Close()

	var rep report
	mode := strtod.ToNearestEven
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	first := true
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		if first {
			first = false
			if m, ok := parseModeHeader(line); ok {
				if !forceMode.set {
					mode = m
				}
				continue
			}
		}
		if forceMode.set {
			mode = forceMode.mode
		}
		if err := checkLine(line, mode, &rep); err != nil {
			return rep, fmt.Errorf("strtodcheck: %s: %w", path, err)
		}
	}
	if err := sc.Err(); err != nil {
		return rep, fmt.Errorf("strtodcheck: %s: %w", path, err)
	}
	return rep, nil
}

// parseModeHeader recognizes the single-character rounding-mode header
// ('N'/'D'/'U'/'Z') that may appear alone on a generator file's first line.
func parseModeHeader(line string) (strtod.RoundingMode, bool) {
	if len(line) != 1 {
		return 0, false
	}
	switch line[0] {
	case 'N':
		return strtod.ToNearestEven, true
	case 'D':
		return strtod.ToNegativeInf, true
	case 'U':
		return strtod.ToPositiveInf, true
	case 'Z':
		return strtod.ToZero, true
	default:
		return 0, false
	}
}

// checkLine parses one data line: an optional leading tie-break marker
// ('+', '-', or ' '), a 16-hex-digit reference pattern, a space, and the
// decimal numeral to convert.
func checkLine(line string, mode strtod.RoundingMode, rep *report) error {
	tieMarker := byte(' ')
	if len(line) > 0 && (line[0] == '+' || line[0] == '-' || line[0] == ' ') {
		tieMarker = line[0]
		line = line[1:]
	}
	if len(line) < 17 {
		return fmt.Errorf("malformed line %q", line)
	}
	var want uint64
	if _, err := fmt.Sscanf(line[:16], "%016x", &want); err != nil {
		return fmt.Errorf("malformed reference pattern %q: %w", line[:16], err)
	}
	dec := line[17:]

	rep.lines++

	prevMode := strtod.Mode()
	strtod.SetMode(mode)
	v, n := strtod.Strtod(dec)
	strtod.SetMode(prevMode)

	if n != len(dec) {
		rep.mismatches++
		log.Warn().Str("input", dec).Int("consumed", n).Msg("did not consume entire numeral")
		return nil
	}

	got := math.Float64bits(v)
	if got == want {
		return nil
	}
	if mode == strtod.ToNearestEven && tieMarker != ' ' {
		rep.toleratedTies++
		return nil
	}
	rep.mismatches++
	log.Warn().Str("input", dec).Uint64("want", want).Uint64("got", got).Msg("mismatch")
	return nil
}
