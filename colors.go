// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package webcolors

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

// Named colors. HTML 4 names come first, then "orange" from CSS 2.1, then
// everything else.
//
// Note that Green has the same value as Lime, not the CSS value #008000.
const (
	Black   RGB = 0x000000
	Silver  RGB = 0xc0c0c0
	Gray    RGB = 0x808080
	White   RGB = 0xffffff
	Maroon  RGB = 0x800000
	Red     RGB = 0xff0000
	Purple  RGB = 0x800080
	Fuchsia RGB = 0xff00ff
	Green   RGB = 0x00ff00
	Lime    RGB = 0x00ff00
	Olive   RGB = 0x808000
	Yellow  RGB = 0xffff00
	Navy    RGB = 0x000080
	Blue    RGB = 0x0000ff
	Teal    RGB = 0x008080
	Aqua    RGB = 0x00ffff

	Orange RGB = 0xffa500

	SafetyOrange RGB = 0xe87600
)

// A Named binds a color name to its value.
type Named struct {
	Name  string `json:"name"`
	Value RGB    `json:"value"`
}

// table lists the known colors in definition order. It must not be modified.
var table = [...]Named{
	{"black", Black},
	{"silver", Silver},
	{"gray", Gray},
	{"white", White},
	{"maroon", Maroon},
	{"red", Red},
	{"purple", Purple},
	{"fuchsia", Fuchsia},
	{"green", Green},
	{"lime", Lime},
	{"olive", Olive},
	{"yellow", Yellow},
	{"navy", Navy},
	{"blue", Blue},
	{"teal", Teal},
	{"aqua", Aqua},
	{"orange", Orange},
	{"safety_orange", SafetyOrange},
}

var (
	n2c = make(map[string]RGB, len(table))
	c2n = make(map[RGB]string, len(table))
)

func init() {
	// Set up the forward and reverse mappings. When several names share a
	// value, the reverse mapping keeps the earliest one.
	for _, e := range table {
		n2c[e.Name] = e.Value
		if _, ok := c2n[e.Value]; !ok {
			c2n[e.Value] = e.Name
		}
	}
}

// ErrUnknownName is reported for a color name that is not in the table.
var ErrUnknownName = errors.New("unknown color name")

// UnknownNameError is the concrete error returned by Lookup for a name not
// in the table. It matches ErrUnknownName under errors.Is.
type UnknownNameError struct {
	Name string
}

func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("%v: %q", ErrUnknownName, e.Name)
}

func (e *UnknownNameError) Unwrap() error { return ErrUnknownName }

// Lookup returns the value of the color with the given name. Names are
// matched exactly; see Names for the vocabulary.
func Lookup(name string) (RGB, error) {
	c, ok := n2c[name]
	if !ok {
		return 0, &UnknownNameError{Name: name}
	}
	return c, nil
}

// MustLookup is like Lookup, but panics if name is not known.
func MustLookup(name string) RGB {
	c, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return c
}

// NameOf reports the name of the color with value c, if there is one. If
// more than one name has this value, the first in definition order is
// returned, so NameOf(Lime) == "green".
func NameOf(c RGB) (string, bool) {
	n, ok := c2n[c]
	return n, ok
}

// All returns a copy of every named color in definition order.
func All() []Named { return slices.Clone(table[:]) }

// Names returns the names of all colors in definition order.
func Names() []string {
	out := make([]string, len(table))
	for i, e := range table {
		out[i] = e.Name
	}
	return out
}
