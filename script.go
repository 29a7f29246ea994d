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
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// scriptPrefix marks the header constants we are interested in.
const scriptPrefix = "UCDN_SCRIPT_"

// DefaultExcludeScripts lists the script identifiers which must not be
// paired with a Noto font.  Unknown/Inherited/Common have no script of
// their own, the next group is covered by the base fonts shipped with the
// renderer, and the last group has no usable Noto font.
var DefaultExcludeScripts = []string{
	"UCDN_SCRIPT_UNKNOWN",
	"UCDN_SCRIPT_INHERITED",

	"UCDN_SCRIPT_COMMON",
	"UCDN_SCRIPT_LATIN",
	"UCDN_SCRIPT_GREEK",
	"UCDN_SCRIPT_CYRILLIC",
	"UCDN_SCRIPT_HIRAGANA",
	"UCDN_SCRIPT_KATAKANA",
	"UCDN_SCRIPT_BOPOMOFO",
	"UCDN_SCRIPT_HAN",
	"UCDN_SCRIPT_HANGUL",

	"UCDN_SCRIPT_BRAILLE",
	"UCDN_SCRIPT_MEROITIC_CURSIVE",
	"UCDN_SCRIPT_MEROITIC_HIEROGLYPHS",
	"UCDN_SCRIPT_SYRIAC",
}

// ReadScripts extracts the UCDN_SCRIPT_* identifiers from a C header.
// The header contains lines of the form
//
//	#define UCDN_SCRIPT_<NAME> <value>
//
// and only the identifier is consumed.  Identifiers are returned in file
// order, so that the generated switch cases are deterministic.
func ReadScripts(r io.Reader) ([]string, error) {
	var scripts []string

	lines := bufio.NewScanner(r)
	for lines.Scan() {
		line := lines.Text()
		if !strings.HasPrefix(line, "#define") {
			continue
		}
		ff := strings.Fields(line)
		if len(ff) < 2 {
			return nil, fmt.Errorf("invalid define line: %q", line)
		}
		if strings.HasPrefix(ff[1], scriptPrefix) {
			scripts = append(scripts, ff[1])
		}
	}
	if err := lines.Err(); err != nil {
		return nil, err
	}

	return scripts, nil
}

// excludeScripts removes one entry per excluded name from scripts,
// preserving the order of the remaining identifiers.  Every excluded name
// must be present in scripts; otherwise an error is returned.
func excludeScripts(scripts, exclude []string) ([]string, error) {
	for _, name := range exclude {
		i := -1
		for j, s := range scripts {
			if s == name {
				i = j
				break
			}
		}
		if i < 0 {
			return nil, fmt.Errorf("excluded script %s not found in header", name)
		}
		scripts = append(scripts[:i], scripts[i+1:]...)
	}
	return scripts, nil
}

// scriptName converts a script identifier to the CamelCase fragment used
// in Noto font file names, e.g. "UCDN_SCRIPT_OLD_TURKIC" -> "OldTurkic".
func scriptName(identifier string) string {
	caser := cases.Title(language.Und)
	parts := strings.Split(strings.TrimPrefix(identifier, scriptPrefix), "_")
	for i, p := range parts {
		parts[i] = caser.String(p)
	}
	return strings.Join(parts, "")
}
