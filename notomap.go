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

package notomap

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Config describes the inputs of one generator run.
type Config struct {
	// Header is the path of the C header defining the UCDN_SCRIPT_*
	// constants.
	Header string

	// FontDir is the directory containing the Noto font files.
	FontDir string

	// ExcludeScripts lists script identifiers which must not be paired
	// with a font.  Every listed identifier must be present in the
	// header.  The makenoto command uses DefaultExcludeScripts.
	ExcludeScripts []string

	// ExcludeFonts lists basenames of font files in FontDir which must
	// be ignored, e.g. the base fonts already embedded by other means.
	// Every listed font must exist.
	ExcludeFonts []string
}

// A Summary describes the outcome of one generator run.
type Summary struct {
	Scripts     int // script identifiers processed, after exclusions
	Matched     int // scripts paired with a font file
	Unmapped    int // fonts never considered for any script
	UnusedFiles int // fonts considered for some script but never paired
}

// symbols generates valid C identifiers from font basenames.  The build
// embeds each font file as a byte array named after the file, with "noto_"
// prepended and punctuation replaced.
var symbols = strings.NewReplacer(".", "_", "-", "_")

// candidates returns the four font paths which can serve a script, in
// priority order: the serif variant is preferred over sans, and an
// OpenType file over a bare TrueType file of the same style.
func candidates(dir, name string) [4]string {
	return [4]string{
		filepath.Join(dir, "NotoSerif"+name+"-Regular.otf"),
		filepath.Join(dir, "NotoSans"+name+"-Regular.otf"),
		filepath.Join(dir, "NotoSerif"+name+"-Regular.ttf"),
		filepath.Join(dir, "NotoSans"+name+"-Regular.ttf"),
	}
}

// Generate writes the switch-case fragments of the fallback font table
// to w, followed by comment lines reporting fonts in cfg.FontDir which
// the table does not reference.
func Generate(w io.Writer, cfg *Config) (*Summary, error) {
	fd, err := os.Open(cfg.Header)
	if err != nil {
		return nil, err
	}
	scripts, err := ReadScripts(fd)
	fd.Close()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.Header, err)
	}

	scripts, err = excludeScripts(scripts, cfg.ExcludeScripts)
	if err != nil {
		return nil, err
	}

	idx, err := scanFonts(cfg.FontDir)
	if err != nil {
		return nil, err
	}
	for _, name := range cfg.ExcludeFonts {
		if err := idx.remove(cfg.FontDir, name); err != nil {
			return nil, err
		}
	}

	// The pool tracks fonts whose name was never derived from any
	// script.  It is separate from the index: a candidate which lost to
	// a higher-priority variant leaves the pool but stays in the index,
	// and is reported as "unused font file" rather than "unmapped font".
	pool := make(map[string]bool, len(idx.keys))
	for _, key := range idx.keys {
		pool[key] = true
	}

	summary := &Summary{Scripts: len(scripts)}

	for _, script := range scripts {
		cc := candidates(cfg.FontDir, scriptName(script))
		found := false
		for _, c := range cc {
			key := strings.ToLower(c)
			if name, ok := idx.lookup(key); ok {
				fmt.Fprintf(w, "case %s: RETURN(noto_%s);\n",
					script, symbols.Replace(name))
				idx.claim(key)
				summary.Matched++
				found = true
				break
			}
		}
		if !found {
			fmt.Fprintf(w, "case %s: break;\n", script)
		}
		for _, c := range cc {
			delete(pool, strings.ToLower(c))
		}
	}

	unmapped := maps.Keys(pool)
	slices.Sort(unmapped)
	for _, key := range unmapped {
		name, _ := idx.lookup(key)
		fmt.Fprintf(w, "// unmapped font: %s\n", name)
		summary.Unmapped++
	}
	for _, key := range idx.keys {
		name, ok := idx.lookup(key)
		if !ok || pool[key] {
			continue
		}
		fmt.Fprintf(w, "// unused font file: %s\n", name)
		summary.UnusedFiles++
	}

	return summary, nil
}
