package cyk

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Cell is a cell of a CYK chart. It holds the non-terminals deriving a
// sub-string of the input, in the order they have been found. In parse mode,
// every symbol has a derivation node attached.
type Cell struct {
	symbols []string
	nodes   []Node         // parallel to symbols, nil when recognizing
	index   map[string]int // symbol → position in symbols
}

// Symbols returns the non-terminals of the cell.
func (c *Cell) Symbols() []string {
	return append([]string(nil), c.symbols...)
}

// Has returns true if sym is a member of the cell.
func (c *Cell) Has(sym string) bool {
	_, ok := c.index[sym]
	return ok
}

// Node returns the derivation node for sym, or nil.
func (c *Cell) Node(sym string) Node {
	if i, ok := c.index[sym]; ok && i < len(c.nodes) {
		return c.nodes[i]
	}
	return nil
}

// Size returns the number of symbols in c.
func (c *Cell) Size() int {
	return len(c.symbols)
}

// add inserts a symbol, with an optional node. If sym is already present, the
// cell remains unchanged and add returns false.
func (c *Cell) add(sym string, node Node) bool {
	if c.Has(sym) {
		return false
	}
	if c.index == nil {
		c.index = make(map[string]int)
	}
	c.index[sym] = len(c.symbols)
	c.symbols = append(c.symbols, sym)
	if node != nil {
		c.nodes = append(c.nodes, node)
	}
	return true
}

// Chart is the triangular table of a CYK run for an input of length n.
// Row r has n-r cells; cell (r, s) holds the non-terminals deriving the
// r+1 tokens starting at position s.
type Chart struct {
	rows [][]*Cell
}

func newChart(n int) *Chart {
	ch := &Chart{rows: make([][]*Cell, n)}
	for r := 0; r < n; r++ {
		ch.rows[r] = make([]*Cell, n-r)
		for s := range ch.rows[r] {
			ch.rows[r][s] = &Cell{}
		}
	}
	return ch
}

// Len returns the length of the input the chart has been created for.
func (ch *Chart) Len() int {
	return len(ch.rows)
}

// At returns the cell at (row, col). Negative indices count from the end, i.e.
// At(-1, 0) is the cell for the whole input. Indices outside the triangle
// result in an error.
func (ch *Chart) At(row, col int) (*Cell, error) {
	n := len(ch.rows)
	r, c := row, col
	if r < 0 {
		r += n
	}
	if c < 0 {
		c += n
	}
	if r < 0 || r >= n || c < 0 || c >= n-r {
		return nil, errors.Errorf("chart index out of range: [%d, %d]", row, col)
	}
	return ch.rows[r][c], nil
}

// cell is At without range checks.
func (ch *Chart) cell(row, col int) *Cell {
	return ch.rows[row][col]
}

// String prints the rows of the chart, top row (whole input) first:
//
//     1: [[F]]
//     0: [[ST] [L E]]
//
func (ch *Chart) String() string {
	var b strings.Builder
	for r := len(ch.rows) - 1; r >= 0; r-- {
		cells := make([][]string, len(ch.rows[r]))
		for s, c := range ch.rows[r] {
			cells[s] = c.symbols
		}
		fmt.Fprintf(&b, "%d: %v", r, cells)
		if r > 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
