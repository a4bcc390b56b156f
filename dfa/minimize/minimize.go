// Package minimize implements Hopcroft-style partition refinement:
// collapsing equivalent DFA states into a minimal DFA.
package minimize

import (
	"github.com/projectdiscovery/gologger"

	"github.com/lexforge/microdfa/automaton"
	"github.com/lexforge/microdfa/dfa"
)

const (
	acceptBlock    = 0
	nonAcceptBlock = 1
)

// Minimize returns an equivalent DFA with the minimum number of states.
// d is never modified.
func Minimize(d *dfa.DFA) *dfa.DFA {
	gologger.Debug().Msgf("minimize: starting with %d states for pattern %q", d.NumStates(), d.Pattern())

	// A block that never receives an Insert simply never appears in pt,
	// so there's no need to special-case the case where every state
	// accepts (or none do): the unused block just never materializes.
	pt := newPartitionTable()
	for id := 0; id < d.NumStates(); id++ {
		sid := automaton.StateID(id)
		if d.IsAccept(sid) {
			pt.Insert(sid, acceptBlock)
		} else {
			pt.Insert(sid, nonAcceptBlock)
		}
	}

	alphabet := d.Alphabet().Ordered()
	nextBlockID := 2

	for {
		blocks := pt.Blocks()
		changed := false

		for _, blk := range blocks {
			states := pt.States(blk)
			if len(states) <= 1 {
				continue
			}
			rep := states[0]

			var splitOff []automaton.StateID
			for _, s := range states[1:] {
				if distinguishable(d, pt, rep, s, alphabet) {
					splitOff = append(splitOff, s)
				}
			}
			if len(splitOff) == 0 {
				continue
			}

			newBlock := nextBlockID
			nextBlockID++
			for _, s := range splitOff {
				pt.Insert(s, newBlock)
			}
			changed = true
		}

		gologger.Verbose().Msgf("minimize: pass complete, %d partitions", pt.NumBlocks())
		if !changed {
			break
		}
	}

	result := reconstruct(d, pt)
	gologger.Debug().Msgf("minimize: finished with %d states for pattern %q", result.NumStates(), d.Pattern())
	return result
}

// distinguishable reports whether m and s must split: one has a
// transition on c and the other does not, or both transition but to
// states currently in different blocks.
func distinguishable(d *dfa.DFA, pt *partitionTable, m, s automaton.StateID, alphabet []rune) bool {
	for _, c := range alphabet {
		mt, mok := d.Transition(m, c)
		st, sok := d.Transition(s, c)
		if mok != sok {
			return true
		}
		if mok && sok && pt.Block(mt) != pt.Block(st) {
			return true
		}
	}
	return false
}

// reconstruct builds the minimal DFA named by pt's final partition: one
// state per block, with the block's representative's transitions copied
// and redirected to the block containing each original target.
func reconstruct(d *dfa.DFA, pt *partitionTable) *dfa.DFA {
	blocks := pt.Blocks()
	blockToNew := make(map[int]automaton.StateID, len(blocks))
	for i, blk := range blocks {
		blockToNew[blk] = automaton.StateID(i)
	}

	newStart := blockToNew[pt.Block(d.Start())]
	alphabet := d.Alphabet().Ordered()
	result := dfa.New(len(blocks), newStart, d.Alphabet().Clone(), d.Pattern())

	for _, blk := range blocks {
		newID := blockToNew[blk]
		members := pt.States(blk)
		rep := members[0]

		if d.IsAccept(rep) {
			result.SetAccept(newID, true)
		}
		for _, c := range alphabet {
			if target, ok := d.Transition(rep, c); ok {
				result.AddTransition(newID, c, blockToNew[pt.Block(target)])
			}
		}
	}

	return result
}
