package config

import (
	"encoding/json"
	"image/color"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

// Color is a JSON color: a CSS color name ("cornflowerblue") or a hex
// value ("#rrggbb", "#rrggbbaa").
type Color struct {
	RGBA color.RGBA
	Set  bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Color) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrap(err, "color must be a string")
	}
	if s == "" {
		*c = Color{}
		return nil
	}
	rgba, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = Color{RGBA: rgba, Set: true}
	return nil
}

// Or returns the color, or def when it was not set.
func (c Color) Or(def color.Color) color.Color {
	if !c.Set {
		return def
	}
	return c.RGBA
}

// ParseColor resolves a color name or hex string.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		c, ok := colornames.Map[strings.ToLower(s)]
		if !ok {
			return color.RGBA{}, errors.Errorf("unknown color %q", s)
		}
		return c, nil
	}

	hex := s[1:]
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, errors.Errorf("bad hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, errors.Wrapf(err, "bad hex color %q", s)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
