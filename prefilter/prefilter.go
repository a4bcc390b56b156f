// Package prefilter builds a cheap multi-pattern literal pre-pass over a
// microsyntax set: for the subset of patterns that are pure literals (no
// metacharacters at all), it builds a github.com/coregx/ahocorasick
// automaton and reports which categories' literal text occurs in an
// input string. This is optional batch tooling a lexer driver can use to
// shortlist candidate categories before running the full minimized DFA
// — it never changes parse/subset/minimize results.
package prefilter

import (
	"github.com/coregx/ahocorasick"
	"github.com/projectdiscovery/gologger"

	"github.com/lexforge/microdfa/parse"
)

// Literal is one candidate (category, syntax tree) pair to consider for
// inclusion in the prefilter. Only trees that are pure literals (per
// ExtractLiteral) actually contribute a pattern to the automaton.
type Literal struct {
	Category string
	Tree     *parse.RegEx
}

// Prefilter holds the built Aho-Corasick automaton plus the mapping back
// from matched literal text to the category it belongs to.
type Prefilter struct {
	auto              *ahocorasick.Automaton
	literalToCategory map[string]string
}

// Build constructs a Prefilter from literals. Non-literal trees (anything
// with alternation, quantifiers, groups, or character classes) are
// silently skipped — they simply never narrow a candidate list, they are
// still matched by the real DFA.
func Build(literals []Literal) (*Prefilter, error) {
	builder := ahocorasick.NewBuilder()
	literalToCategory := make(map[string]string)

	count := 0
	for _, lit := range literals {
		text, ok := ExtractLiteral(lit.Tree)
		if !ok || text == "" {
			continue
		}
		builder.AddPattern([]byte(text))
		literalToCategory[text] = lit.Category
		count++
	}

	if count == 0 {
		gologger.Debug().Msg("prefilter: no literal patterns, skipping automaton build")
		return &Prefilter{literalToCategory: literalToCategory}, nil
	}

	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	gologger.Debug().Msgf("prefilter: built automaton over %d literal patterns", count)
	return &Prefilter{auto: auto, literalToCategory: literalToCategory}, nil
}

// Candidates returns the categories of the literal matches found by
// scanning input left to right, each reported at most once, in the order
// first encountered. Each search resumes at the end of the previous
// match, so a literal whose only occurrences overlap an earlier match is
// not reported.
func (p *Prefilter) Candidates(input string) []string {
	if p.auto == nil {
		return nil
	}

	haystack := []byte(input)
	seen := make(map[string]struct{})
	var out []string

	for at := 0; at <= len(haystack); {
		m := p.auto.Find(haystack, at)
		if m == nil {
			break
		}
		text := string(haystack[m.Start:m.End])
		if category, ok := p.literalToCategory[text]; ok {
			if _, dup := seen[category]; !dup {
				seen[category] = struct{}{}
				out = append(out, category)
			}
		}
		if m.End <= at {
			at++ // guard against a zero-length match stalling the scan
		} else {
			at = m.End
		}
	}

	return out
}
