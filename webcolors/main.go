// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

// Program webcolors prints the values of named web colors, and can render
// them as a swatch sheet.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/tailscale/webcolors"
	"github.com/tailscale/webcolors/swatch"
	"tailscale.com/types/logger"
)

// Flag definitions
var (
	doVerbose = flag.Bool("v", false, "Enable verbose debug logging")
	doJSON    = flag.Bool("json", false, "Print colors as a JSON array")

	// If set, write a PNG swatch sheet of the selected colors to this path in
	// addition to printing them.
	swatchPath = flag.String("swatch", "", "Write a PNG swatch sheet to this path")
	columns    = flag.Int("columns", 6, "Number of tiles per row in the swatch sheet")
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: %[1]s [options] [name ...]

Print the RGB values of the named colors, or of every known color if no
names are given. Unknown names are reported, and the program exits with
status 1 once all the arguments have been processed.

Options:
`, filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	if *columns <= 0 {
		log.Fatal("The -columns value must be positive")
	}

	logf := logger.Discard
	if *doVerbose {
		logf = log.Printf
	}

	entries, failed := selectColors(flag.Args(), logf)
	if err := printColors(os.Stdout, entries, *doJSON); err != nil {
		log.Fatalf("Printing colors: %v", err)
	}

	if *swatchPath != "" && len(entries) != 0 {
		img := swatch.Render(entries, &swatch.Options{Columns: *columns})
		if err := gg.SavePNG(*swatchPath, img); err != nil {
			log.Fatalf("Writing swatch: %v", err)
		}
		logf("Wrote %d tiles to %q", len(entries), *swatchPath)
	}
	if failed {
		os.Exit(1)
	}
}

// selectColors resolves the given names to entries. If names is empty, it
// returns the full table. It reports whether any name could not be resolved.
func selectColors(names []string, logf logger.Logf) (_ []webcolors.Named, failed bool) {
	if len(names) == 0 {
		logf("No names given, selecting all colors")
		return webcolors.All(), false
	}
	var out []webcolors.Named
	for _, name := range names {
		c, err := webcolors.Lookup(name)
		if err != nil {
			log.Print(err)
			failed = true
			continue
		}
		logf("Resolved %q to %v", name, c)
		out = append(out, webcolors.Named{Name: name, Value: c})
	}
	return out, failed
}

// printColors writes entries to w, either one per line or as JSON.
func printColors(w io.Writer, entries []webcolors.Named, asJSON bool) error {
	if asJSON {
		if entries == nil {
			entries = []webcolors.Named{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%-14s %v\n", e.Name, e.Value); err != nil {
			return err
		}
	}
	return nil
}
