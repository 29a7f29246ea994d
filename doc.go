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

// Package notomap maps Unicode script identifiers to Noto font files.
//
// The package implements a build-time generator: it scans a C header for
// UCDN_SCRIPT_* constants and a directory of Noto fonts, pairs each script
// with a font file following the Noto naming convention, and writes C
// switch-case fragments for inclusion in the fallback font table.  Fonts
// which could not be paired are reported as trailing comment lines, so
// that coverage regressions are visible when the font directory changes.
//
// The generated text is usually redirected into a source file by the
// build; see the makenoto command.
package notomap
