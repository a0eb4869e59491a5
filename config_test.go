// seehuhn.de/go/mandala - symmetric drawing on a disc
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package mandala

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/pelletier/go-toml/v2"
)

func TestLoadConfig(t *testing.T) {
	in := `
symmetry = 8
color = "#336699"
fade_interval_ms = 25
messages = ["one", "  ", "two"]
`
	cfg, err := LoadConfig(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}

	want := DefaultConfig()
	want.Symmetry = 8
	want.Color = "#336699"
	want.FadeIntervalMS = 25
	want.Messages = []string{"one", "two"}
	if d := cmp.Diff(want, cfg); d != "" {
		t.Errorf("config (-want +got):\n%s", d)
	}
	if cfg.FadeInterval() != 25*time.Millisecond {
		t.Errorf("fade interval %s", cfg.FadeInterval())
	}
}

func TestLoadConfigEmpty(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(DefaultConfig(), cfg); d != "" {
		t.Errorf("config (-want +got):\n%s", d)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []string{
		"symetry = 3\n",        // unknown key
		"symmetry = \"six\"\n", // wrong type
		"symmetry = \n",        // syntax
	}
	for _, in := range tests {
		_, err := LoadConfig(strings.NewReader(in))
		if err == nil {
			t.Errorf("%q: no error", in)
			continue
		}
		if !strings.HasPrefix(err.Error(), "mandala config: ") {
			t.Errorf("%q: unexpected error %q", in, err)
		}
	}

	_, err := LoadConfig(strings.NewReader("bogus = 1\n"))
	var strict *toml.StrictMissingError
	if !errors.As(err, &strict) {
		t.Errorf("unknown key gave %T, want *toml.StrictMissingError", errors.Unwrap(err))
	}
}

func TestNormalize(t *testing.T) {
	cfg := Config{
		Symmetry:       -4,
		Steps:          0,
		MarkRadius:     -1,
		BorderWidth:    0,
		FadeIntervalMS: -5,
		FadeStep:       1.5,
		Messages:       []string{"", "\t"},
	}
	got := cfg.Normalize()

	want := DefaultConfig()
	want.Symmetry = 1
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	if d := cmp.Diff(DefaultConfig(), Config{}.Normalize()); d != "" {
		t.Errorf("zero config (-want +got):\n%s", d)
	}

	cfg = DefaultConfig()
	cfg.Steps = 1
	cfg.FadeStep = 1
	if got := cfg.Normalize(); got.Steps != 1 || got.FadeStep != 1 {
		t.Errorf("valid values replaced: steps %d, fade step %g", got.Steps, got.FadeStep)
	}
}

// DefaultConfig returns a fresh message slice every time.
func TestDefaultConfigIsCopy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Messages[0] = "changed"
	if DefaultConfig().Messages[0] == "changed" || DefaultMessages[0] == "changed" {
		t.Error("DefaultConfig shares the message pool")
	}
}

func TestLoadConfigFile(t *testing.T) {
	cfg, err := LoadConfigFile("")
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(DefaultConfig(), cfg); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	name := filepath.Join(t.TempDir(), "mandala.toml")
	if err := os.WriteFile(name, []byte("steps = 4\nborder_color = \"navy\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadConfigFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Steps != 4 || cfg.BorderColor != "navy" {
		t.Errorf("steps %d, border colour %q", cfg.Steps, cfg.BorderColor)
	}

	if _, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file gave %v", err)
	}
}
