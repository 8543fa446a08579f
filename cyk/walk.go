package cyk

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cfgparse"
)

// Direction lets clients decide wether children nodes should be traversed left-to-right
// (default) or right-to-left.
type Direction int

// Children nodes may be traversed left-to-right (default) or right-to-left.
const (
	LtoR Direction = 1
	RtoL Direction = -1
)

// Breakmode is a client hint wether to stop traversing on break-signals or not.
type Breakmode int

// Setting Continue will always traverse a complete (sub-)tree. Break will skip
// traversing sub-tree as soon as an Enter-function signals a break.
const (
	Continue Breakmode = iota
	Break
)

// --- Listener --------------------------------------------------------------

// Listener is a type for walking a derivation tree.
//
// Arguments are:
//
//     - string:    the left-hand side of the production at the current node
//     - []Node:    the right-hand side of the production at this node
//     - RuleCtxt:  contextual information for the node
//
// EnterRule returns a boolean value indicating if the traversal should continue to
// the children of this node. ExitRule and Terminal may return user-defined values
// to be propagated upwards of the tree. ExitRule finds the values of the children
// in ctxt.Values, in the order of the right-hand side.
type Listener interface {
	EnterRule(string, []Node, RuleCtxt) bool
	ExitRule(string, []Node, RuleCtxt) interface{}
	Terminal(string, RuleCtxt) interface{}
	MakeAttrs(string) interface{}
}

// RuleCtxt is a context structure for Listeners.
type RuleCtxt struct {
	Span   cfgparse.Span // span of input tokens covered by this node
	Level  int           // nesting level
	Values []interface{} // values of children nodes, as returned by the listener
	Attrs  interface{}   // client-defined attributes local to node
}

// Walk traverses a derivation tree top-down, applying Listener-methods for all nodes
// encountered. It returns a user-defined value, calculated by the listener.
func Walk(root Node, listener Listener, dir Direction, breakmode Breakmode) interface{} {
	if root == nil {
		return nil
	}
	if dir != RtoL {
		dir = LtoR
	}
	tracer().Debugf("Walk starting at node %v", root.Symbol())
	return walk(root, listener, dir, breakmode, 0)
}

func walk(node Node, listener Listener, dir Direction, breakmode Breakmode, level int) interface{} {
	if t, ok := node.(*TerminalNode); ok {
		return listener.Terminal(t.Terminal, RuleCtxt{Span: t.span, Level: level})
	}
	rhs := children(node)
	ctxt := RuleCtxt{
		Span:   node.Span(),
		Level:  level,
		Values: make([]interface{}, len(rhs)),
		Attrs:  listener.MakeAttrs(node.Symbol()),
	}
	doContinue := listener.EnterRule(node.Symbol(), rhs, ctxt)
	if doContinue || breakmode == Continue {
		i := 0
		if dir == RtoL {
			i = len(rhs) - 1
		}
		for ; i >= 0 && i < len(rhs); i += int(dir) {
			ctxt.Values[i] = walk(rhs[i], listener, dir, breakmode, level+1)
		}
	}
	return listener.ExitRule(node.Symbol(), rhs, ctxt)
}

// --- Rendering -------------------------------------------------------------

// Render prints a derivation tree in bracket notation. Unit productions are
// printed as [A a nil], binary productions as [A left right]:
//
//     [F [ST * nil] [L a nil]]
//
func Render(root Node) string {
	if root == nil {
		return "nil"
	}
	return Walk(root, renderer{}, LtoR, Continue).(string)
}

type renderer struct{}

func (renderer) EnterRule(string, []Node, RuleCtxt) bool { return true }
func (renderer) MakeAttrs(string) interface{} { return nil }

func (renderer) Terminal(a string, ctxt RuleCtxt) interface{} {
	return a
}

func (renderer) ExitRule(A string, rhs []Node, ctxt RuleCtxt) interface{} {
	if len(rhs) == 1 {
		return fmt.Sprintf("[%s %s nil]", A, ctxt.Values[0])
	}
	parts := make([]string, len(ctxt.Values))
	for i, v := range ctxt.Values {
		parts[i] = v.(string)
	}
	return fmt.Sprintf("[%s %s]", A, strings.Join(parts, " "))
}

// Leaves returns the terminals of a derivation tree, left to right. For a tree
// returned by Parse, this is the input token sequence.
func Leaves(root Node) []string {
	if root == nil {
		return nil
	}
	c := &leafCollector{}
	Walk(root, c, LtoR, Continue)
	return c.leaves
}

type leafCollector struct {
	leaves []string
}

func (c *leafCollector) EnterRule(string, []Node, RuleCtxt) bool { return true }
func (c *leafCollector) ExitRule(string, []Node, RuleCtxt) interface{} {
	return nil
}
func (c *leafCollector) MakeAttrs(string) interface{} { return nil }

func (c *leafCollector) Terminal(a string, ctxt RuleCtxt) interface{} {
	c.leaves = append(c.leaves, a)
	return a
}
