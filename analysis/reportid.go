/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package analysis

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// ReportID derives the report identity from a document name. The name is
// NFC-normalised and lower-cased, whitespace runs become "_", and every
// rune other than a letter, digit, "." "_" or "-" is percent-encoded, so
// distinct names only share an id when they differ in case or whitespace.
func ReportID(name string) string {
	folded := norm.NFC.String(strings.TrimSpace(name))
	folded = whitespaceRun.ReplaceAllString(strings.ToLower(folded), "_")

	var sb strings.Builder

	for _, r := range folded {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '.', r == '_', r == '-':
			sb.WriteRune(r)
		default:
			for _, b := range []byte(string(r)) {
				fmt.Fprintf(&sb, "%%%02X", b)
			}
		}
	}

	return sb.String()
}
