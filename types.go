// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

// Package webcolors defines a fixed table of named web colors.
//
// Each color is an RGB value packed into 24 bits as 0xRRGGBB. The table is
// built into the package and never changes, so it is safe for concurrent use
// without synchronization.
package webcolors

import (
	"errors"
	"fmt"
	"strings"
)

// An RGB is a color packed into the low 24 bits as 0xRRGGBB. It encodes as
// text in "#rrggbb" format, and decodes from a color name, "#rrggbb", or
// "#rgb" (the "#" is optional).
type RGB uint32

// MaxRGB is the largest valid RGB value.
const MaxRGB RGB = 0xffffff

func (c RGB) R() uint8 { return uint8(c >> 16) }
func (c RGB) G() uint8 { return uint8(c >> 8) }
func (c RGB) B() uint8 { return uint8(c) }

// Valid reports whether c fits in 24 bits.
func (c RGB) Valid() bool { return c <= MaxRGB }

// RGBA implements the color.Color interface. The result is fully opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R())
	r |= r << 8
	g = uint32(c.G())
	g |= g << 8
	b = uint32(c.B())
	b |= b << 8
	return r, g, b, 0xffff
}

// String returns c in "#rrggbb" format.
func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R(), c.G(), c.B())
}

// MarshalText encodes c as "#rrggbb". Names are not used, since more than one
// name may share a value.
func (c RGB) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("color %#x out of range", uint32(c))
	}
	return []byte(c.String()), nil
}

func (c *RGB) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		return errors.New("empty color")
	}
	p := string(data)

	// Check for a name mapping.
	if v, ok := n2c[p]; ok {
		*c = v
		return nil
	}

	hex, hasHash := strings.CutPrefix(p, "#")
	var r, g, b uint8
	var err error
	switch {
	case len(hex) == 3 && isHex(hex):
		_, err = fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case len(hex) == 6 && isHex(hex):
		_, err = fmt.Sscanf(hex, "%2x%2x%2x", &r, &g, &b)
	case hasHash:
		return fmt.Errorf("invalid hex color %q", p)
	default:
		return &UnknownNameError{Name: p}
	}
	if err != nil {
		return fmt.Errorf("invalid hex color %q: %w", p, err)
	}
	*c = RGB(r)<<16 | RGB(g)<<8 | RGB(b)
	return nil
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		switch ch := s[i]; {
		case '0' <= ch && ch <= '9', 'a' <= ch && ch <= 'f', 'A' <= ch && ch <= 'F':
		default:
			return false
		}
	}
	return true
}
