// Package microdfa turns a set of named regular expressions
// ("microsyntaxes") into a minimal deterministic finite automaton.
//
// The pipeline has three stages, each its own package:
//
//	parse         pattern text -> syntax tree
//	dfa/subset    epsilon-NFA -> DFA
//	dfa/minimize  DFA -> minimal DFA
//
// This package wires the pipeline's peripheral pieces together: the
// batch entry point (BuildSyntaxTrees) and shared configuration. Errors
// raised while parsing a pattern are defined in the parse package; errors
// raised while reading a microsyntax file are defined in the microsyntax
// package.
//
// Building an NFA from a syntax tree (Thompson construction) is not part
// of this module — see the nfa package's Automaton/Builder contract,
// which is what a Thompson-construction collaborator would target.
//
// Example:
//
//	trees, err := microdfa.BuildSyntaxTrees([]microdfa.Entry{
//		{Pattern: "[a-z]+", Category: "IDENT"},
//		{Pattern: "[0-9]+", Category: "NUMBER"},
//	}, microdfa.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
package microdfa
