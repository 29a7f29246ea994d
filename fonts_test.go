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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// writeFonts creates empty files with the given names in a new directory.
// The font files are never opened by the generator, so empty files are
// good enough.
func writeFonts(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		err := os.WriteFile(filepath.Join(dir, name), nil, 0o666)
		if err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestScanFonts(t *testing.T) {
	dir := writeFonts(t,
		"NotoSansArabic-Regular.ttf",
		"NotoSerifBengali-Regular.otf",
		"README.txt",
	)
	err := os.Mkdir(filepath.Join(dir, "hinted"), 0o777)
	if err != nil {
		t.Fatal(err)
	}
	err = os.WriteFile(filepath.Join(dir, "hinted", "NotoSansThai-Regular.ttf"), nil, 0o666)
	if err != nil {
		t.Fatal(err)
	}

	idx, err := scanFonts(dir)
	if err != nil {
		t.Fatal(err)
	}

	wantKeys := []string{
		strings.ToLower(filepath.Join(dir, "NotoSansArabic-Regular.ttf")),
		strings.ToLower(filepath.Join(dir, "NotoSerifBengali-Regular.otf")),
	}
	if d := cmp.Diff(wantKeys, idx.keys); d != "" {
		t.Errorf("keys differ (-want +got):\n%s", d)
	}

	name, ok := idx.lookup(wantKeys[0])
	if !ok || name != "NotoSansArabic-Regular.ttf" {
		t.Errorf("lookup returned %q, %t", name, ok)
	}
}

func TestScanFontsMissingDir(t *testing.T) {
	_, err := scanFonts(filepath.Join(t.TempDir(), "no-such-dir"))
	if err == nil {
		t.Error("expected error for missing font directory")
	}
}

func TestFontIndexClaim(t *testing.T) {
	dir := writeFonts(t, "NotoSansArabic-Regular.ttf")
	idx, err := scanFonts(dir)
	if err != nil {
		t.Fatal(err)
	}

	key := strings.ToLower(filepath.Join(dir, "NotoSansArabic-Regular.ttf"))
	idx.claim(key)
	if _, ok := idx.lookup(key); ok {
		t.Error("claimed font still in index")
	}
}

func TestFontIndexRemove(t *testing.T) {
	dir := writeFonts(t,
		"NotoSans-Regular.otf",
		"NotoSansArabic-Regular.ttf",
	)
	idx, err := scanFonts(dir)
	if err != nil {
		t.Fatal(err)
	}

	err = idx.remove(dir, "NotoSans-Regular.otf")
	if err != nil {
		t.Fatal(err)
	}
	if len(idx.keys) != 1 {
		t.Errorf("expected 1 key after remove, got %d", len(idx.keys))
	}

	err = idx.remove(dir, "NotoEmoji-Regular.ttf")
	if err == nil {
		t.Error("expected error for removing a missing font")
	}
}
