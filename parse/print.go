package parse

import (
	"sort"
	"strings"
)

// reverse escape table: resolved rune -> the letter that escapes to it.
var escapeLetters = func() map[rune]rune {
	out := make(map[rune]rune, len(escapeChars))
	for letter, resolved := range escapeChars {
		out[resolved] = letter
	}
	return out
}()

func escapeRune(c rune) string {
	if letter, ok := escapeLetters[c]; ok {
		return "\\" + string(letter)
	}
	return string(c)
}

// Print renders a syntax tree back to a canonical pattern string. The
// canonical form writes every escaped character back with its backslash,
// writes a literal character as-is, and keeps exactly the parentheses of
// the source's groups, so Print is idempotent and
// BuildSyntaxTree(Print(t)) always reproduces a tree structurally equal
// to t.
func Print(r *RegEx) string {
	var b strings.Builder
	printRegEx(&b, r)
	return b.String()
}

func printRegEx(b *strings.Builder, r *RegEx) {
	switch r.Kind {
	case RegExSimple:
		printTerm(b, &r.Term)
	case RegExAlternate:
		printTerm(b, &r.Term)
		b.WriteByte('|')
		printRegEx(b, r.Next)
	}
}

func printTerm(b *strings.Builder, t *Term) {
	switch t.Kind {
	case TermSimple:
		printFactor(b, &t.Factor)
	case TermConcat:
		printTerm(b, t.Tail)
		printFactor(b, &t.Factor)
	}
}

func printFactor(b *strings.Builder, f *Factor) {
	printBase(b, &f.Base)
	b.WriteString(f.Quantifier.String())
}

func printBase(b *strings.Builder, base *Base) {
	switch base.Kind {
	case BaseChar:
		// A BaseChar can only ever hold a character the grammar accepts
		// as a bare literal (parseBase routes '(', '[', '\\' and the
		// quantifier metacharacters elsewhere before falling through to
		// nCharIsValid), so it always prints safely unescaped.
		b.WriteRune(base.Char)
	case BaseEscape:
		b.WriteString(escapeRune(base.Char))
	case BaseGroup:
		b.WriteByte('(')
		printRegEx(b, base.Group)
		b.WriteByte(')')
	case BaseCharSet:
		b.WriteByte('[')
		printCharSet(b, base.Set)
		b.WriteByte(']')
	}
}

// printCharSet writes the members of set in an order that never triggers
// the parser's range lookahead (pattern[i+1] == '-') by accident: a bare
// '-' is always written first, since nothing precedes it there to form a
// range, and the remaining members are written in ascending order with
// ']' and '\\' escaped (the only two characters parseCharClass treats
// specially other than the range dash) and with '(', ')' and '[' escaped
// so that the bracket-balance pre-pass accepts the printed class.
func printCharSet(b *strings.Builder, set map[rune]bool) {
	hasDash := set['-']
	runes := make([]rune, 0, len(set))
	for c := range set {
		if c == '-' {
			continue
		}
		runes = append(runes, c)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })

	if hasDash {
		b.WriteByte('-')
	}
	for _, c := range runes {
		switch c {
		case ']', '\\', '[', '(', ')':
			b.WriteString(escapeRune(c))
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(c)
		}
	}
}
