package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

const (
	defaultIntervalMS = 5000
)

const usageText = `slideview - full-screen slideshow viewer

Usage: slideview [options] <path|pattern>...

Each positional argument is an image file, a directory, or a glob pattern.

Options:
  --recursive        scan directories recursively
  --files <pattern>  additional filename pattern to match (repeatable)
  --interval <ms>    slide interval in milliseconds (0 = dynamic pacing)
  --screen <index>   monitor to display on
  --random           shuffle the file list once at startup
  -h, --help         show this help

Keys: Escape/Q quit, Space pause, Left/Right navigate.
`

// ErrHelp is returned by ParseArgs when usage text was requested, either
// explicitly or by running with no arguments at all.
var ErrHelp = errors.New("help requested")

// ArgError reports a rejected command-line token. The token and reason are
// kept separate so the caller can present them however it likes.
type ArgError struct {
	Token  string
	Reason string
}

func (e *ArgError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Token, e.Reason)
}

// Settings holds everything the slideshow needs from the command line.
// Immutable after ParseArgs returns it.
type Settings struct {
	IntervalMS int
	Screen     int
	Recursive  bool
	Randomize  bool
	Patterns   []string // positional paths, directories and glob patterns
	FileGlobs  []string // extra --files patterns applied to directory scans
}

// Interval returns the configured slide interval. Zero means dynamic pacing.
func (s *Settings) Interval() time.Duration {
	return time.Duration(s.IntervalMS) * time.Millisecond
}

// DynamicInterval reports whether the pacer should adapt the hold time to
// image build latency instead of using a fixed interval.
func (s *Settings) DynamicInterval() bool {
	return s.IntervalMS == 0
}

// ParseArgs maps raw command-line tokens to Settings. monitorCount bounds the
// accepted --screen values and is injected so tests do not need a display.
// Malformed values come back as *ArgError; help tokens (or an empty argument
// list) come back as ErrHelp. Parsing never panics past this boundary.
func ParseArgs(argv []string, monitorCount int) (*Settings, error) {
	if len(argv) == 0 {
		return nil, ErrHelp
	}

	s := &Settings{IntervalMS: defaultIntervalMS}

	for i := 0; i < len(argv); i++ {
		tok := argv[i]
		switch tok {
		case "-h", "--h", "-help", "--help", "/?":
			return nil, ErrHelp

		case "--recursive":
			s.Recursive = true

		case "--random":
			s.Randomize = true

		case "--files":
			i++
			if i >= len(argv) {
				return nil, &ArgError{Token: tok, Reason: "missing pattern value"}
			}
			s.FileGlobs = append(s.FileGlobs, argv[i])

		case "--interval":
			i++
			if i >= len(argv) {
				return nil, &ArgError{Token: tok, Reason: "missing millisecond value"}
			}
			v, err := strconv.Atoi(argv[i])
			if err != nil {
				return nil, &ArgError{Token: argv[i], Reason: "interval must be an integer"}
			}
			if v < 0 {
				return nil, &ArgError{Token: argv[i], Reason: "interval must not be negative"}
			}
			s.IntervalMS = v

		case "--screen":
			i++
			if i >= len(argv) {
				return nil, &ArgError{Token: tok, Reason: "missing screen index"}
			}
			v, err := strconv.Atoi(argv[i])
			if err != nil {
				return nil, &ArgError{Token: argv[i], Reason: "screen index must be an integer"}
			}
			if v < 0 || v >= monitorCount {
				return nil, &ArgError{
					Token:  argv[i],
					Reason: fmt.Sprintf("screen index out of range [0, %d)", monitorCount),
				}
			}
			s.Screen = v

		default:
			// Anything unrecognized is a path or pattern to scan.
			s.Patterns = append(s.Patterns, tok)
		}
	}

	return s, nil
}
