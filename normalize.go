package safecalc

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// MaxLength is the maximum number of runes in an expression.
const MaxLength = 200

// glyphs maps alternate spellings to their canonical forms.
var glyphs = map[rune]string{
	'×': "*",
	'·': "*",
	'⋅': "*",
	'∙': "*",
	'÷': "/",
	'∕': "/",
	'^': "**",
	'−': "-",
	'π': "pi",
	'τ': "tau",
	'φ': "phi",
	'ϕ': "phi",
	'∞': "inf",
}

// Normalize rewrites an expression into the canonical form the lexer accepts.
// Whitespace is removed, fullwidth characters are folded to their ASCII
// forms, and alternate operator and constant glyphs are spelled out. Commas
// are left alone; whether one is a decimal point depends on where it appears,
// which is the lexer's job.
//
// Normalizing an already normalized string returns it unchanged, provided it
// is still within MaxLength; spelling out glyphs can lengthen the input.
func Normalize(s string) (string, error) {
	if n := utf8.RuneCountInString(s); n > MaxLength {
		return "", &LengthError{Len: n, Max: MaxLength}
	}
	s = width.Fold.String(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		if g, ok := glyphs[r]; ok {
			b.WriteString(g)
			continue
		}
		b.WriteRune(r)
	}
	if b.Len() == 0 {
		return "", &EmptyExpressionError{}
	}
	return b.String(), nil
}

// canonGlyphs applies only the glyph and width mappings of Normalize, without
// any checks. It is for heuristics which must not fail.
func canonGlyphs(s string) string {
	s = width.Fold.String(s)
	var b strings.Builder
	for _, r := range s {
		if g, ok := glyphs[r]; ok {
			b.WriteString(g)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
