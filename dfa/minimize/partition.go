package minimize

import (
	"sort"

	"github.com/lexforge/microdfa/automaton"
)

// partitionTable is the minimizer's dual mapping: state->block and
// block->states. Insert is the only mutator, and must move a state
// atomically — remove it from its prior block (deleting that block if it
// becomes empty) before adding it to the new one. An implementation that
// updates only one side of the mapping silently corrupts refinement by
// leaving a state registered in two blocks at once.
// TestPartitionTableAtomicSwap pins the correct behavior down.
type partitionTable struct {
	stateToBlock map[automaton.StateID]int
	blockToState map[int]map[automaton.StateID]struct{}
}

func newPartitionTable() *partitionTable {
	return &partitionTable{
		stateToBlock: make(map[automaton.StateID]int),
		blockToState: make(map[int]map[automaton.StateID]struct{}),
	}
}

// Insert moves state into block, removing it from any block it previously
// belonged to and deleting that prior block if it becomes empty.
func (p *partitionTable) Insert(state automaton.StateID, block int) {
	if old, ok := p.stateToBlock[state]; ok {
		if old == block {
			return
		}
		delete(p.blockToState[old], state)
		if len(p.blockToState[old]) == 0 {
			delete(p.blockToState, old)
		}
	}
	p.stateToBlock[state] = block
	if p.blockToState[block] == nil {
		p.blockToState[block] = make(map[automaton.StateID]struct{})
	}
	p.blockToState[block][state] = struct{}{}
}

// Block returns the block currently holding state.
func (p *partitionTable) Block(state automaton.StateID) int {
	return p.stateToBlock[state]
}

// States returns the members of block in ascending state-id order, so
// that representative selection (first element) is deterministic.
func (p *partitionTable) States(block int) []automaton.StateID {
	members := p.blockToState[block]
	out := make([]automaton.StateID, 0, len(members))
	for s := range members {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Blocks returns the current set of non-empty block ids in ascending
// order, a stable snapshot for a refinement pass to iterate over.
func (p *partitionTable) Blocks() []int {
	out := make([]int, 0, len(p.blockToState))
	for b := range p.blockToState {
		out = append(out, b)
	}
	sort.Ints(out)
	return out
}

// NumBlocks returns the current number of non-empty blocks.
func (p *partitionTable) NumBlocks() int {
	return len(p.blockToState)
}
