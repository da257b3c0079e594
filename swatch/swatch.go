// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

// Package swatch draws a sheet of labeled color tiles.
package swatch

import (
	"fmt"
	"image"
	"image/draw"
	"runtime"

	"github.com/creachadair/taskgroup"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/tailscale/webcolors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Preloaded font definition.
var goRegular *truetype.Font

func init() {
	var err error
	goRegular, err = truetype.Parse(goregular.TTF)
	if err != nil {
		panic(fmt.Sprintf("Parsing font: %v", err))
	}
}

// fontForSize constructs a new font.Face for the specified point size.
func fontForSize(points int) font.Face {
	return truetype.NewFace(goRegular, &truetype.Options{
		Size: float64(points),
	})
}

// Options control the layout of a swatch sheet. A nil *Options is ready for
// use and provides defaults.
type Options struct {
	Columns     int // tiles per row (default 6)
	TileSize    int // width and height of each color square in pixels (default 96)
	LabelHeight int // height of the label strip under each square (default 32)
}

func (o *Options) columns() int {
	if o == nil || o.Columns <= 0 {
		return 6
	}
	return o.Columns
}

func (o *Options) tileSize() int {
	if o == nil || o.TileSize <= 0 {
		return 96
	}
	return o.TileSize
}

func (o *Options) labelHeight() int {
	if o == nil || o.LabelHeight <= 0 {
		return 32
	}
	return o.LabelHeight
}

// Layout reports the width and height in pixels of a sheet holding n tiles.
func (o *Options) Layout(n int) (width, height int) {
	if n <= 0 {
		return 0, 0
	}
	cols := o.columns()
	rows := (n + cols - 1) / cols
	if n < cols {
		cols = n
	}
	return cols * o.tileSize(), rows * (o.tileSize() + o.labelHeight())
}

// TileBounds reports the rectangle of the color square for tile i, not
// including its label strip.
func (o *Options) TileBounds(i int) image.Rectangle {
	cols, size := o.columns(), o.tileSize()
	x := (i % cols) * size
	y := (i / cols) * (size + o.labelHeight())
	return image.Rect(x, y, x+size, y+size)
}

// Render draws one tile per entry, in order, and returns the resulting sheet.
// Each tile is a square of the entry's color above a white strip labeled with
// the entry's name and value.
func Render(entries []webcolors.Named, opts *Options) *image.RGBA {
	w, h := opts.Layout(len(entries))
	sheet := image.NewRGBA(image.Rect(0, 0, w, h))
	if len(entries) == 0 {
		return sheet
	}

	tiles := make([]image.Image, len(entries))
	g, run := taskgroup.New(nil).Limit(runtime.NumCPU())
	for i, e := range entries {
		i, e := i, e
		run.Run(func() {
			tiles[i] = drawTile(e, opts.tileSize(), opts.labelHeight())
		})
	}
	g.Wait()

	for i, tile := range tiles {
		r := opts.TileBounds(i)
		r.Max.Y += opts.labelHeight()
		draw.Draw(sheet, r, tile, tile.Bounds().Min, draw.Src)
	}
	return sheet
}

// drawTile paints a single labeled tile.
func drawTile(e webcolors.Named, size, label int) image.Image {
	dc := gg.NewContext(size, size+label)

	dc.SetRGB(1, 1, 1)
	dc.Clear()

	c := e.Value
	dc.SetRGB255(int(c.R()), int(c.G()), int(c.B()))
	dc.DrawRectangle(0, 0, float64(size), float64(size))
	dc.Fill()

	// Two lines in the label strip: the name above the value.
	points := label * 3 / 8
	if points < 6 {
		points = 6
	}
	dc.SetFontFace(fontForSize(points))
	dc.SetRGB(0, 0, 0)
	x := float64(size) / 2
	y := float64(size) + float64(label)/4
	dc.DrawStringAnchored(e.Name, x, y, 0.5, 0.5)
	dc.DrawStringAnchored(e.Value.String(), x, y+float64(label)/2, 0.5, 0.5)
	return dc.Image()
}
