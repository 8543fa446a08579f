package ll1

import (
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// stack is the parse stack of a single parse run.
type stack struct {
	s *arraystack.Stack
}

func newStack() *stack {
	return &stack{s: arraystack.New()}
}

func (st *stack) push(sym string) {
	st.s.Push(sym)
}

// pushBody pushes the symbols of a production body in reverse order, so the
// leftmost symbol ends up on top.
func (st *stack) pushBody(body []string) {
	for i := len(body) - 1; i >= 0; i-- {
		st.s.Push(body[i])
	}
}

func (st *stack) pop() string {
	sym, _ := st.s.Pop()
	return sym.(string)
}

func (st *stack) top() (string, bool) {
	sym, ok := st.s.Peek()
	if !ok {
		return "", false
	}
	return sym.(string), true
}

// symbols returns the stack contents from top to bottom.
func (st *stack) symbols() []string {
	values := st.s.Values() // LIFO order
	syms := make([]string, len(values))
	for i, v := range values {
		syms[i] = v.(string)
	}
	return syms
}

func (st *stack) String() string {
	return strings.Join(st.symbols(), "")
}
