package main

import (
	"reflect"
	"testing"
)

func TestParseArgsHelp(t *testing.T) {
	tests := []struct {
		name string
		argv []string
	}{
		{"No arguments", nil},
		{"Short flag", []string{"-h"}},
		{"Double short", []string{"--h"}},
		{"Long flag", []string{"--help"}},
		{"Single dash long", []string{"-help"}},
		{"DOS style", []string{"/?"}},
		{"Help among paths", []string{"pics", "--help"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseArgs(tt.argv, 1); err != ErrHelp {
				t.Errorf("ParseArgs(%v) error = %v, want ErrHelp", tt.argv, err)
			}
		})
	}
}

func TestParseArgsErrors(t *testing.T) {
	tests := []struct {
		name      string
		argv      []string
		monitors  int
		wantToken string
	}{
		{"Negative interval", []string{"--interval", "-5"}, 1, "-5"},
		{"Non-numeric interval", []string{"--interval", "soon"}, 1, "soon"},
		{"Missing interval value", []string{"--interval"}, 1, "--interval"},
		{"Screen out of range", []string{"--screen", "99"}, 2, "99"},
		{"Negative screen", []string{"--screen", "-1"}, 2, "-1"},
		{"Non-numeric screen", []string{"--screen", "left"}, 2, "left"},
		{"Missing screen value", []string{"--screen"}, 2, "--screen"},
		{"Missing files value", []string{"--files"}, 1, "--files"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseArgs(tt.argv, tt.monitors)
			argErr, ok := err.(*ArgError)
			if !ok {
				t.Fatalf("ParseArgs(%v) error = %v, want *ArgError", tt.argv, err)
			}
			if argErr.Token != tt.wantToken {
				t.Errorf("offending token = %q, want %q", argErr.Token, tt.wantToken)
			}
			if argErr.Reason == "" {
				t.Error("expected a reason naming the problem")
			}
		})
	}
}

func TestParseArgsSettings(t *testing.T) {
	argv := []string{
		"photos", "--recursive", "--files", "*.jpg", "--interval", "2500",
		"--screen", "1", "--files", "*.png", "--random", "more/photos",
	}
	s, err := ParseArgs(argv, 3)
	if err != nil {
		t.Fatalf("ParseArgs failed: %v", err)
	}

	if !s.Recursive {
		t.Error("expected Recursive to be set")
	}
	if !s.Randomize {
		t.Error("expected Randomize to be set")
	}
	if s.IntervalMS != 2500 {
		t.Errorf("IntervalMS = %d, want 2500", s.IntervalMS)
	}
	if s.Screen != 1 {
		t.Errorf("Screen = %d, want 1", s.Screen)
	}
	if want := []string{"*.jpg", "*.png"}; !reflect.DeepEqual(s.FileGlobs, want) {
		t.Errorf("FileGlobs = %v, want %v", s.FileGlobs, want)
	}
	if want := []string{"photos", "more/photos"}; !reflect.DeepEqual(s.Patterns, want) {
		t.Errorf("Patterns = %v, want %v", s.Patterns, want)
	}
}

func TestParseArgsDefaults(t *testing.T) {
	s, err := ParseArgs([]string{"pics"}, 1)
	if err != nil {
		t.Fatalf("ParseArgs failed: %v", err)
	}
	if s.IntervalMS != defaultIntervalMS {
		t.Errorf("IntervalMS = %d, want %d", s.IntervalMS, defaultIntervalMS)
	}
	if s.Screen != 0 {
		t.Errorf("Screen = %d, want 0 (primary)", s.Screen)
	}
	if s.Recursive || s.Randomize {
		t.Error("flags should default to off")
	}
	if s.DynamicInterval() {
		t.Error("default interval must not be dynamic")
	}
}

func TestParseArgsDynamicInterval(t *testing.T) {
	s, err := ParseArgs([]string{"--interval", "0", "pics"}, 1)
	if err != nil {
		t.Fatalf("ParseArgs failed: %v", err)
	}
	if !s.DynamicInterval() {
		t.Error("interval 0 should enable dynamic mode")
	}
	if s.Interval() != 0 {
		t.Errorf("Interval() = %v, want 0", s.Interval())
	}
}
