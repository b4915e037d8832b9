package catalog

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// words splits the NFC form of s on runs of characters that are neither
// letters, digits nor combining marks. macOS commonly stores names
// decomposed, so "é" may arrive as "e" plus U+0301.
func words(s string) []string {
	return strings.FieldsFunc(norm.NFC.String(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsMark(r)
	})
}

func mapFirst(s string, f func(rune) rune) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(f(r)) + s[size:]
}

// CamelCase joins the alphanumeric words of s, lower-casing the first letter
// of the first word and upper-casing the first letter of the rest. The
// remaining letters keep their case, so "AppIcon" becomes "appIcon" and
// "app-icon" becomes "appIcon".
func CamelCase(s string) string {
	var b strings.Builder
	for i, w := range words(s) {
		if i == 0 {
			b.WriteString(mapFirst(w, unicode.ToLower))
		} else {
			b.WriteString(mapFirst(w, unicode.ToUpper))
		}
	}
	return b.String()
}

// PascalCase is CamelCase with the first letter upper-cased as well.
func PascalCase(s string) string {
	var b strings.Builder
	for _, w := range words(s) {
		b.WriteString(mapFirst(w, unicode.ToUpper))
	}
	return b.String()
}

// Identifier returns the Swift member name for an asset or group name.
func Identifier(name string) string {
	id := typeIdentifier(CamelCase(name))
	if swiftKeywords[id] {
		return "`" + id + "`"
	}
	return id
}

func typeIdentifier(id string) string {
	if id == "" {
		return "_"
	}
	if r, _ := utf8.DecodeRuneInString(id); unicode.IsDigit(r) {
		return "_" + id
	}
	return id
}

// swiftQuote renders s as a Swift string literal.
func swiftQuote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u{%X}`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

var swiftKeywords = map[string]bool{
	"associatedtype": true, "class": true, "deinit": true, "enum": true,
	"extension": true, "fileprivate": true, "func": true, "import": true,
	"init": true, "inout": true, "internal": true, "let": true, "open": true,
	"operator": true, "private": true, "protocol": true, "public": true,
	"rethrows": true, "static": true, "struct": true, "subscript": true,
	"typealias": true, "var": true, "break": true, "case": true,
	"continue": true, "default": true, "defer": true, "do": true,
	"else": true, "fallthrough": true, "for": true, "guard": true,
	"if": true, "in": true, "repeat": true, "return": true, "switch": true,
	"where": true, "while": true, "as": true, "catch": true, "false": true,
	"is": true, "nil": true, "super": true, "self": true, "throw": true,
	"throws": true, "true": true, "try": true,
}
