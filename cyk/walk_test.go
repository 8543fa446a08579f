package cyk

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

// --- Listener for testing --------------------------------------------------

type traceListener struct {
	events []string
	stopAt string
}

func (l *traceListener) EnterRule(A string, rhs []Node, ctxt RuleCtxt) bool {
	l.events = append(l.events, strings.Repeat(" ", ctxt.Level)+"+"+A)
	return A != l.stopAt
}

func (l *traceListener) ExitRule(A string, rhs []Node, ctxt RuleCtxt) interface{} {
	l.events = append(l.events, strings.Repeat(" ", ctxt.Level)+"-"+A)
	return ctxt.Span.Len()
}

func (l *traceListener) Terminal(a string, ctxt RuleCtxt) interface{} {
	l.events = append(l.events, strings.Repeat(" ", ctxt.Level)+a)
	return uint64(1)
}

func (l *traceListener) MakeAttrs(string) interface{} {
	return nil
}

func parseStarA(t *testing.T) Node {
	result, err := NewParser(loadIfExpr(t)).ParseString("(*a)")
	require.NoError(t, err)
	require.True(t, result.Accepted)
	return result.Tree
}

func TestWalkTopDown(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgparse.cyk")
	defer teardown()
	//
	l := &traceListener{}
	v := Walk(parseStarA(t), l, LtoR, Continue)
	require.Equal(t, uint64(4), v)
	require.Equal(t, []string{
		"+L", " +LP", "  (", " -LP",
		" +M", "  +F", "   +ST", "    *", "   -ST", "   +L", "    a", "   -L", "  -F",
		"  +RP", "   )", "  -RP", " -M", "-L",
	}, l.events)
}

func TestWalkRightToLeft(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgparse.cyk")
	defer teardown()
	//
	l := &traceListener{}
	Walk(parseStarA(t), l, RtoL, Continue)
	require.Equal(t, "+L", l.events[0])
	require.Equal(t, " +M", l.events[1])
	require.Equal(t, "  +RP", l.events[2])
}

func TestWalkBreak(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgparse.cyk")
	defer teardown()
	//
	l := &traceListener{stopAt: "M"}
	Walk(parseStarA(t), l, LtoR, Break)
	require.Equal(t, []string{"+L", " +LP", "  (", " -LP", " +M", " -M", "-L"}, l.events)
	l = &traceListener{stopAt: "M"}
	Walk(parseStarA(t), l, LtoR, Continue)
	require.Len(t, l.events, 18)
}

func TestLeaves(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgparse.cyk")
	defer teardown()
	//
	require.Equal(t, []string{"(", "*", "a", ")"}, Leaves(parseStarA(t)))
	require.Nil(t, Leaves(nil))
	require.Nil(t, Walk(nil, &traceListener{}, LtoR, Continue))
}
