package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/cfgparse/cyk"
	"github.com/npillmayer/cfgparse/grammars"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return lines[len(lines)-1]
}

const test1Expected = `(if(-1a)(print1))$ L$
(if(-1a)(print1))$ ER$
(if(-1a)(print1))$ (MR$
if(-1a)(print1))$ MR$
if(-1a)(print1))$ C)R$
if(-1a)(print1))$ ifEEN)R$
f(-1a)(print1))$ fEEN)R$
(-1a)(print1))$ EEN)R$
(-1a)(print1))$ (MEN)R$
-1a)(print1))$ MEN)R$
-1a)(print1))$ F)EN)R$
-1a)(print1))$ -L)EN)R$
1a)(print1))$ L)EN)R$
1a)(print1))$ ER)EN)R$
1a)(print1))$ TR)EN)R$
1a)(print1))$ 1R)EN)R$
a)(print1))$ R)EN)R$
a)(print1))$ ER)EN)R$
a)(print1))$ VR)EN)R$
a)(print1))$ aR)EN)R$
)(print1))$ R)EN)R$
)(print1))$ )EN)R$
(print1))$ EN)R$
(print1))$ (MN)R$
print1))$ MN)R$
print1))$ F)N)R$
print1))$ printL)N)R$
rint1))$ rintL)N)R$
int1))$ intL)N)R$
nt1))$ ntL)N)R$
t1))$ tL)N)R$
1))$ L)N)R$
1))$ ER)N)R$
1))$ TR)N)R$
1))$ 1R)N)R$
))$ R)N)R$
))$ )N)R$
)$ N)R$
)$ )R$
$ R$
$ $
ACCEPTED
`

func TestLL1PrintsTrace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgparse.cli")
	defer teardown()
	//
	input := writeFile(t, "test1", "(if(-1a)\n  (print1))\n")
	out, err := execute(t, input)
	require.NoError(t, err)
	require.Equal(t, test1Expected, out)
}

func TestLL1Rejects(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgparse.cli")
	defer teardown()
	//
	input := writeFile(t, "test3", "()if+-*printabcd0123")
	out, err := execute(t, input)
	require.NoError(t, err)
	require.Equal(t, "REJECTED", lastLine(out))
}

func TestLL1InvalidSymbol(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgparse.cli")
	defer teardown()
	//
	input := writeFile(t, "test4", "if(9)(print(1+2))")
	out, err := execute(t, input)
	require.NoError(t, err)
	require.Equal(t, "ERROR_INVALID_SYMBOL\n", out)
}

func TestLL1TableFromFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgparse.cli")
	defer teardown()
	//
	input := writeFile(t, "test1", "(if(-1a)(print1))")
	out, err := execute(t, "--table", "../../ll1/testdata/ifexpr.yaml", input)
	require.NoError(t, err)
	require.Equal(t, test1Expected, out)
}

func TestCYKPrintsTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgparse.cli")
	defer teardown()
	//
	grammar := writeFile(t, "grammar", grammars.IfExprCNFSource())
	input := writeFile(t, "test6", "(*a)")
	out, err := execute(t, "--cyk", grammar, input)
	require.NoError(t, err)
	require.Equal(t, "[L [LP ( nil] [M [F [ST * nil] [L a nil]] [RP ) nil]]]\nACCEPTED\n", out)
}

func TestCYKRecognise(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgparse.cli")
	defer teardown()
	//
	grammar := writeFile(t, "grammar", grammars.IfExprCNFSource())
	input := writeFile(t, "test6", "(*a)")
	out, err := execute(t, "--cyk", grammar, "--recognise", input)
	require.NoError(t, err)
	require.Equal(t, "3: [[L E]]\n2: [[] [M]]\n1: [[] [F] []]\n0: [[LP] [ST] [L E] [RP]]\nACCEPTED\n", out)
	input = writeFile(t, "reject", "((print1))")
	out, err = execute(t, "--cyk", grammar, "--recognise", input)
	require.NoError(t, err)
	require.Equal(t, "REJECTED\n", out)
}

func TestCYKInvalidSymbol(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgparse.cli")
	defer teardown()
	//
	grammar := writeFile(t, "grammar", grammars.IfExprCNFSource())
	input := writeFile(t, "test4", "if(9)(print(1+2))")
	out, err := execute(t, "--cyk", grammar, input)
	require.NoError(t, err)
	require.Equal(t, "ERROR_INVALID_SYMBOL\n", out)
}

func TestErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgparse.cli")
	defer teardown()
	//
	_, err := execute(t, filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	_, err = execute(t)
	require.Error(t, err)
	input := writeFile(t, "input", "a")
	_, err = execute(t, "--recognise", input)
	require.Error(t, err)
	grammar := writeFile(t, "grammar", "S -> A B C\n")
	_, err = execute(t, "--cyk", grammar, input)
	require.Error(t, err)
}

func TestLeveledTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgparse.cli")
	defer teardown()
	//
	result, err := cyk.NewParser(grammars.IfExprCNF()).ParseString("(*a)")
	require.NoError(t, err)
	ll := leveledTree(result.Tree)
	require.Len(t, ll, 11)
	require.Equal(t, "L", ll[0].Text)
	require.Equal(t, 0, ll[0].Level)
	require.Equal(t, `"(" (0…1)`, ll[2].Text)
	require.Equal(t, 2, ll[2].Level)
}

func TestChartTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgparse.cli")
	defer teardown()
	//
	result, err := cyk.NewParser(grammars.IfExprCNF()).RecognizeString("(*a)")
	require.NoError(t, err)
	data := chartTable(result.Chart)
	require.Len(t, data, 5)
	require.Equal(t, []string{"row", "0", "1", "2", "3"}, data[0])
	require.Equal(t, []string{"3", "[L E]", "", "", ""}, data[1])
	require.Equal(t, []string{"0", "[LP]", "[ST]", "[L E]", "[RP]"}, data[4])
}
