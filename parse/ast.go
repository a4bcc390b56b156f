// Package parse implements a tokenize-less, stateless-across-calls
// recursive-descent parser that turns a pattern string directly into a
// syntax tree, without ever materializing a token stream.
package parse

// Quantifier is a postfix repetition operator bound to a single Base.
type Quantifier int

const (
	// NoQuantifier marks a Factor with no postfix operator.
	NoQuantifier Quantifier = iota
	// Star is '*': zero or more.
	Star
	// Plus is '+': one or more.
	Plus
	// Question is '?': zero or one.
	Question
)

// String renders the quantifier as its source syntax, or "" for none.
func (q Quantifier) String() string {
	switch q {
	case Star:
		return "*"
	case Plus:
		return "+"
	case Question:
		return "?"
	default:
		return ""
	}
}

// BaseKind discriminates the four shapes a Base can take.
type BaseKind int

const (
	// BaseChar is a literal character, e.g. 'a'.
	BaseChar BaseKind = iota
	// BaseEscape is an escaped character, e.g. '\n' inside a pattern.
	BaseEscape
	// BaseGroup is a parenthesized sub-expression, e.g. '(a|b)'.
	BaseGroup
	// BaseCharSet is a character class, e.g. '[a-z]'.
	BaseCharSet
)

// Base is the innermost grammar production: a single character, an
// escape, a parenthesized RegEx, or a character class.
type Base struct {
	Kind  BaseKind
	Char  rune         // valid for BaseChar, BaseEscape
	Group *RegEx       // valid for BaseGroup
	Set   map[rune]bool // valid for BaseCharSet
}

// NewCharBase builds a literal-character Base.
func NewCharBase(c rune) Base { return Base{Kind: BaseChar, Char: c} }

// NewEscapeBase builds an escaped-character Base.
func NewEscapeBase(c rune) Base { return Base{Kind: BaseEscape, Char: c} }

// NewGroupBase builds a parenthesized-group Base.
func NewGroupBase(r *RegEx) Base { return Base{Kind: BaseGroup, Group: r} }

// NewCharSetBase builds a character-class Base from an explicit set.
func NewCharSetBase(set map[rune]bool) Base { return Base{Kind: BaseCharSet, Set: set} }

// Factor is a Base with an optional Quantifier.
type Factor struct {
	Base       Base
	Quantifier Quantifier
}

// TermKind discriminates the two Term shapes.
type TermKind int

const (
	// TermSimple wraps a single Factor.
	TermSimple TermKind = iota
	// TermConcat concatenates a Factor onto the end of another Term.
	TermConcat
)

// Term is either a single Factor (SimpleTerm) or a Factor concatenated
// onto another Term (ConcatTerm). Concatenation is left-associative:
// Factor holds the rightmost factor parsed so far, and Tail holds the
// term built from everything before it.
type Term struct {
	Kind   TermKind
	Factor Factor // valid for both kinds: the rightmost factor parsed so far
	Tail   *Term  // valid for TermConcat: the term built from the factors before Factor
}

// RegExKind discriminates the two RegEx shapes.
type RegExKind int

const (
	// RegExSimple wraps a single Term.
	RegExSimple RegExKind = iota
	// RegExAlternate alternates a Term with another RegEx.
	RegExAlternate
)

// RegEx is either a single Term (SimpleRegex) or a Term alternated with
// another RegEx (AlterRegex). Alternation is right-associative.
type RegEx struct {
	Kind RegExKind
	Term Term
	Next *RegEx // valid for RegExAlternate
}
