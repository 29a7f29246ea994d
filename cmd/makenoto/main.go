// seehuhn.de/go/notomap - a generator for Noto fallback font tables
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

// Makenoto generates the switch cases of the Noto fallback font table.
// The build redirects the output into the table source file:
//
//	makenoto >noto-cases.c
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"
	"seehuhn.de/go/notomap"
)

func main() {
	header := flag.String("header", "include/mupdf/ucdn.h",
		"header defining the UCDN_SCRIPT_* constants")
	fontDir := flag.String("fonts", "resources/fonts/noto",
		"directory containing the Noto font files")
	outName := flag.String("o", "",
		"output file (default stdout)")
	flag.Parse()

	cfg := &notomap.Config{
		Header:         *header,
		FontDir:        *fontDir,
		ExcludeScripts: notomap.DefaultExcludeScripts,
		// Fonts which could be excluded in addition:
		//   NotoSans-Regular.otf
		//   NotoSerif-Regular.otf
		//   NotoSansSymbols-Regular.ttf
		//   NotoEmoji-Regular.ttf
	}

	out := os.Stdout
	if *outName != "" {
		var err error
		out, err = os.Create(*outName)
		if err != nil {
			log.Fatal(err)
		}
	}

	w := bufio.NewWriter(out)
	summary, err := notomap.Generate(w, cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := w.Flush(); err != nil {
		log.Fatal(err)
	}
	if *outName != "" {
		if err := out.Close(); err != nil {
			log.Fatal(err)
		}
	}

	// When run by hand, show whether font coverage changed.
	if term.IsTerminal(int(os.Stderr.Fd())) {
		fmt.Fprintf(os.Stderr, "%d of %d scripts mapped, %d unmapped fonts, %d unused font files\n",
			summary.Matched, summary.Scripts, summary.Unmapped, summary.UnusedFiles)
	}
}
