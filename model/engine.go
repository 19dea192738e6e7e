package model

import "github.com/sheikhrachel/go-life/rules"

// Engine advances a board generation by generation. Border cells are never
// updated. An Engine is not safe for concurrent use.
type Engine struct {
	board   *Board
	scratch *Board
	table   rules.TransitionTable
}

// NewEngine takes ownership of board. A nil table evaluates the rule directly.
func NewEngine(board *Board, table rules.TransitionTable) *Engine {
	if table == nil {
		table = rules.Direct{}
	}
	return &Engine{
		board:   board,
		scratch: board.Clone(),
		table:   table,
	}
}

// Board returns the current generation
func (e *Engine) Board() *Board {
	return e.board
}

// Table returns the transition table used by Step
func (e *Engine) Table() rules.TransitionTable {
	return e.table
}

// Step advances the board by n generations
func (e *Engine) Step(n int) {
	for range n {
		e.stepOnce()
	}
}

func (e *Engine) stepOnce() {
	for r := 1; r < e.board.rows-1; r++ {
		next := e.scratch.cells[r]
		for c := 1; c < e.board.cols-1; c++ {
			next[c] = e.table.Lookup(e.board.neighborhood(r, c))
		}
	}
	// The scratch border still matches the board's, so swapping is enough.
	e.board, e.scratch = e.scratch, e.board
}
