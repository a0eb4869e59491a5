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
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// DefaultMessages is the pool of parting messages shown after a release.
var DefaultMessages = []string{
	"“You can only lose what you cling to.”\n— Buddha",
	"“Letting go takes a lot of courage sometimes. But once you let go, happiness comes very quickly. You won't have to go around search for it.”\n— Thich Nhat Hanh",
	"“Letting go gives us freedom, and freedom is the only condition for happiness. If, in our heart, we still cling to anything - anger, anxiety, or possessions - we cannot be free.”\n— Thich Nhat Hanh",
	"“If you know how to let go and be at peace, you know everything you need to know about living in the world.”\n— Ajahn Brahm",
	"“Life isn't heavy when you know how to let go.”\n— Ajahn Brahm",
}

// Config holds the tunable parameters of a Session.
type Config struct {
	Symmetry int   `toml:"symmetry"`
	Color    Color `toml:"color"`
	Steps    int   `toml:"steps"`

	MarkRadius  float64 `toml:"mark_radius"`
	BorderWidth float64 `toml:"border_width"`
	BorderColor Color   `toml:"border_color"`

	// BackdropColor fills the lower half of the surface while the drawing
	// fades away.
	BackdropColor  Color   `toml:"backdrop_color"`
	FadeIntervalMS int     `toml:"fade_interval_ms"`
	FadeStep       float64 `toml:"fade_step"`

	Messages []string `toml:"messages"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Symmetry:       6,
		Color:          "red",
		Steps:          DefaultSteps,
		MarkRadius:     DefaultMarkRadius,
		BorderWidth:    DefaultBorderWidth,
		BorderColor:    DefaultBorderColor,
		BackdropColor:  "#0077b6",
		FadeIntervalMS: 50,
		FadeStep:       0.1,
		Messages:       slices.Clone(DefaultMessages),
	}
}

// LoadConfig reads a TOML configuration. Keys which are not present keep
// their default values; unknown keys are an error.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("mandala config: %w", err)
	}
	return cfg.Normalize(), nil
}

// LoadConfigFile reads a TOML configuration file.
// An empty name gives the default configuration.
func LoadConfigFile(name string) (Config, error) {
	if name == "" {
		return DefaultConfig(), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	return LoadConfig(f)
}

// FadeInterval returns the time between two fade steps.
func (c Config) FadeInterval() time.Duration {
	return time.Duration(c.FadeIntervalMS) * time.Millisecond
}

// Normalize replaces unset and out-of-range values.
// Zero values fall back to their defaults. A negative symmetry is clamped
// to 1; other invalid values fall back to their defaults.
func (c Config) Normalize() Config {
	def := DefaultConfig()

	if c.Symmetry == 0 {
		c.Symmetry = def.Symmetry
	}
	c.Symmetry = ClampSymmetry(c.Symmetry)
	if c.Color == "" {
		c.Color = def.Color
	}
	if c.Steps < 1 {
		c.Steps = def.Steps
	}
	if !positive(c.MarkRadius) {
		c.MarkRadius = def.MarkRadius
	}
	if !positive(c.BorderWidth) {
		c.BorderWidth = def.BorderWidth
	}
	if c.BorderColor == "" {
		c.BorderColor = def.BorderColor
	}
	if c.BackdropColor == "" {
		c.BackdropColor = def.BackdropColor
	}
	if c.FadeIntervalMS <= 0 {
		c.FadeIntervalMS = def.FadeIntervalMS
	}
	if !positive(c.FadeStep) || c.FadeStep > 1 {
		c.FadeStep = def.FadeStep
	}

	var msgs []string
	for _, m := range c.Messages {
		if strings.TrimSpace(m) != "" {
			msgs = append(msgs, m)
		}
	}
	if len(msgs) == 0 {
		msgs = def.Messages
	}
	c.Messages = msgs

	return c
}

func positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 0)
}
