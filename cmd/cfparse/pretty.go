package main

import (
	"fmt"

	"github.com/npillmayer/cfgparse/cyk"
	"github.com/pterm/pterm"
)

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// printTree displays a derivation tree as a tree on a terminal.
func printTree(root cyk.Node) {
	ll := leveledTree(root)
	tracer().Debugf("|ll| = %d, ll = %v", len(ll), ll)
	pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Render()
}

// leveledTree flattens a derivation tree into a pterm.LeveledList.
func leveledTree(root cyk.Node) pterm.LeveledList {
	l := &leveler{}
	cyk.Walk(root, l, cyk.LtoR, cyk.Continue)
	return l.ll
}

type leveler struct {
	ll pterm.LeveledList
}

func (l *leveler) EnterRule(A string, rhs []cyk.Node, ctxt cyk.RuleCtxt) bool {
	l.ll = append(l.ll, pterm.LeveledListItem{Level: ctxt.Level, Text: A})
	return true
}

func (l *leveler) ExitRule(string, []cyk.Node, cyk.RuleCtxt) interface{} {
	return nil
}

func (l *leveler) Terminal(a string, ctxt cyk.RuleCtxt) interface{} {
	l.ll = append(l.ll, pterm.LeveledListItem{
		Level: ctxt.Level,
		Text:  fmt.Sprintf("%q %s", a, ctxt.Span),
	})
	return nil
}

func (l *leveler) MakeAttrs(string) interface{} {
	return nil
}

// printChart displays a CYK chart as a table, top row (whole input) first.
func printChart(chart *cyk.Chart) {
	pterm.DefaultTable.WithHasHeader().WithData(chartTable(chart)).Render()
}

// chartTable arranges the cells of a chart for tabular output. The first column
// holds the row numbers, cells hold their symbols separated by blanks.
func chartTable(chart *cyk.Chart) pterm.TableData {
	n := chart.Len()
	data := pterm.TableData{make([]string, n+1)}
	data[0][0] = "row"
	for s := 0; s < n; s++ {
		data[0][s+1] = fmt.Sprintf("%d", s)
	}
	for r := n - 1; r >= 0; r-- {
		line := make([]string, n+1)
		line[0] = fmt.Sprintf("%d", r)
		for s := 0; s < n-r; s++ {
			cell, _ := chart.At(r, s)
			line[s+1] = fmt.Sprint(cell.Symbols())
		}
		data = append(data, line)
	}
	return data
}
