// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package webcolors

import (
	"encoding/json"
	"errors"
	"image/color"
	"testing"

	"github.com/creachadair/mds/mapset"
	"github.com/google/go-cmp/cmp"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		want RGB
	}{
		{"black", 0x000000},
		{"silver", 0xc0c0c0},
		{"gray", 0x808080},
		{"white", 0xffffff},
		{"maroon", 0x800000},
		{"red", 0xff0000},
		{"purple", 0x800080},
		{"fuchsia", 0xff00ff},
		{"green", 0x00ff00},
		{"lime", 0x00ff00},
		{"olive", 0x808000},
		{"yellow", 0xffff00},
		{"navy", 0x000080},
		{"blue", 0x0000ff},
		{"teal", 0x008080},
		{"aqua", 0x00ffff},
		{"orange", 0xffa500},
		{"safety_orange", 0xe87600},
	}
	for _, tc := range tests {
		got, err := Lookup(tc.name)
		if err != nil {
			t.Errorf("Lookup(%q): unexpected error: %v", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Lookup(%q): got %v, want %v", tc.name, got, tc.want)
		}
		if again, _ := Lookup(tc.name); again != got {
			t.Errorf("Lookup(%q) again: got %v, want %v", tc.name, again, got)
		}
	}
	if got, want := len(All()), len(tests); got != want {
		t.Errorf("All: got %d entries, want %d", got, want)
	}
}

func TestLookupUnknown(t *testing.T) {
	for _, name := range []string{"chartreuse", "", "Black", "safety-orange", "#000000"} {
		c, err := Lookup(name)
		if !errors.Is(err, ErrUnknownName) {
			t.Errorf("Lookup(%q): got (%v, %v), want %v", name, c, err, ErrUnknownName)
			continue
		}
		var une *UnknownNameError
		if !errors.As(err, &une) {
			t.Errorf("Lookup(%q): error %T is not *UnknownNameError", name, err)
		} else if une.Name != name {
			t.Errorf("Lookup(%q): error name is %q", name, une.Name)
		}
	}
}

func TestMustLookup(t *testing.T) {
	if got := MustLookup("orange"); got != Orange {
		t.Errorf("MustLookup(orange): got %v, want %v", got, Orange)
	}
	defer func() {
		if recover() == nil {
			t.Error("MustLookup(chartreuse) did not panic")
		}
	}()
	MustLookup("chartreuse")
}

func TestAliases(t *testing.T) {
	g, _ := Lookup("green")
	l, _ := Lookup("lime")
	if g != 0x00ff00 || l != 0x00ff00 {
		t.Errorf("green = %v, lime = %v; want both #00ff00", g, l)
	}
	if n, ok := NameOf(Lime); !ok || n != "green" {
		t.Errorf("NameOf(%v): got (%q, %v), want (green, true)", Lime, n, ok)
	}
	if n, ok := NameOf(0x123456); ok {
		t.Errorf("NameOf(#123456): got %q, want none", n)
	}
}

func TestAll(t *testing.T) {
	all := All()
	names := mapset.New(Names()...)
	if names.Len() != 18 {
		t.Errorf("Names: got %d distinct names, want 18", names.Len())
	}
	for _, e := range all {
		if !names.Has(e.Name) {
			t.Errorf("All: name %q missing from Names", e.Name)
		}
		if !e.Value.Valid() {
			t.Errorf("All: %q has out-of-range value %#x", e.Name, uint32(e.Value))
		}
	}

	// Modifying the result must not affect the table.
	all[0].Value = 0x123456
	if diff := cmp.Diff(Black, All()[0].Value); diff != "" {
		t.Errorf("Table changed (-want, +got):\n%s", diff)
	}
}

func TestRGB(t *testing.T) {
	c := SafetyOrange
	if c.R() != 0xe8 || c.G() != 0x76 || c.B() != 0x00 {
		t.Errorf("Channels of %v: got %x %x %x", c, c.R(), c.G(), c.B())
	}
	got := color.RGBAModel.Convert(c)
	if diff := cmp.Diff(color.RGBA{R: 0xe8, G: 0x76, B: 0x00, A: 0xff}, got); diff != "" {
		t.Errorf("RGBA (-want, +got):\n%s", diff)
	}
	if s := Navy.String(); s != "#000080" {
		t.Errorf("String: got %q, want #000080", s)
	}
	if _, err := RGB(0x1000000).MarshalText(); err == nil {
		t.Error("MarshalText of out-of-range value: got nil error")
	}
}

func TestUnmarshalText(t *testing.T) {
	tests := []struct {
		input string
		want  RGB
		ok    bool
	}{
		{"teal", Teal, true},
		{"#e87600", SafetyOrange, true},
		{"E87600", SafetyOrange, true},
		{"#f0f", Fuchsia, true},
		{"", 0, false},
		{"#12345", 0, false},
		{"#ggg", 0, false},
		{"chartreuse", 0, false},
	}
	for _, tc := range tests {
		var got RGB
		err := got.UnmarshalText([]byte(tc.input))
		if tc.ok && err != nil {
			t.Errorf("Unmarshal %q: unexpected error: %v", tc.input, err)
		} else if !tc.ok && err == nil {
			t.Errorf("Unmarshal %q: got %v, want error", tc.input, got)
		} else if got != tc.want {
			t.Errorf("Unmarshal %q: got %v, want %v", tc.input, got, tc.want)
		}
	}

	var c RGB
	if err := c.UnmarshalText([]byte("chartreuse")); !errors.Is(err, ErrUnknownName) {
		t.Errorf("Unmarshal chartreuse: got %v, want %v", err, ErrUnknownName)
	}
}

func TestNamedJSON(t *testing.T) {
	bits, err := json.Marshal([]Named{{"lime", Lime}, {"navy", Navy}})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	const want = `[{"name":"lime","value":"#00ff00"},{"name":"navy","value":"#000080"}]`
	if got := string(bits); got != want {
		t.Errorf("Marshal: got %#q, want %#q", got, want)
	}

	var back []Named
	if err := json.Unmarshal([]byte(`[{"name":"x","value":"aqua"}]`), &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if diff := cmp.Diff([]Named{{"x", Aqua}}, back); diff != "" {
		t.Errorf("Unmarshal (-want, +got):\n%s", diff)
	}
}
