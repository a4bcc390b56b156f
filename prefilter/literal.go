package prefilter

import "github.com/lexforge/microdfa/parse"

// ExtractLiteral returns the exact string r matches if r is a pure literal
// (a concatenation of unquantified chars/escapes with no alternation,
// group, character class, or quantifier anywhere), and false otherwise.
// This is deliberately conservative: a pattern like "ab*" or "a|b" is not
// a literal, even though some of its factors are.
func ExtractLiteral(r *parse.RegEx) (string, bool) {
	if r.Kind != parse.RegExSimple {
		return "", false
	}
	return extractTerm(&r.Term)
}

func extractTerm(t *parse.Term) (string, bool) {
	head, ok := extractFactor(&t.Factor)
	if !ok {
		return "", false
	}
	if t.Kind == parse.TermSimple {
		return head, true
	}
	prefix, ok := extractTerm(t.Tail)
	if !ok {
		return "", false
	}
	return prefix + head, true
}

func extractFactor(f *parse.Factor) (string, bool) {
	if f.Quantifier != parse.NoQuantifier {
		return "", false
	}
	switch f.Base.Kind {
	case parse.BaseChar, parse.BaseEscape:
		return string(f.Base.Char), true
	default:
		return "", false
	}
}
