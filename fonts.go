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
	"os"
	"path/filepath"
	"strings"
)

// fontPattern matches both sfnt extensions, ".otf" and ".ttf".
const fontPattern = "*.?tf"

// A fontIndex is a case-insensitive view of the font files in a single
// directory.  Keys are the lowercased paths of the files, values the
// original basenames.  The enumeration order of the directory is kept so
// that reports are deterministic.
type fontIndex struct {
	base map[string]string
	keys []string
}

// scanFonts enumerates the font files directly contained in dir.
// The scan is shallow; subdirectories are not searched.
func scanFonts(dir string) (*fontIndex, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	idx := &fontIndex{
		base: make(map[string]string),
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ok, err := filepath.Match(fontPattern, e.Name())
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		key := strings.ToLower(filepath.Join(dir, e.Name()))
		idx.base[key] = e.Name()
		idx.keys = append(idx.keys, key)
	}

	return idx, nil
}

// lookup returns the original basename for a lowercased path.
func (idx *fontIndex) lookup(key string) (string, bool) {
	name, ok := idx.base[key]
	return name, ok
}

// claim removes a font from the index, so that it cannot be paired with a
// second script.
func (idx *fontIndex) claim(key string) {
	delete(idx.base, key)
}

// remove drops an excluded font from the index.  The font must be
// present; otherwise an error is returned.
func (idx *fontIndex) remove(dir, name string) error {
	key := strings.ToLower(filepath.Join(dir, name))
	if _, ok := idx.base[key]; !ok {
		return fmt.Errorf("excluded font %q not found in %s", name, dir)
	}
	delete(idx.base, key)
	for i, k := range idx.keys {
		if k == key {
			idx.keys = append(idx.keys[:i], idx.keys[i+1:]...)
			break
		}
	}
	return nil
}
