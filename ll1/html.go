package ll1

import (
	"fmt"
	"html"
	"io"
	"strings"
)

// AsHTML exports the parse table in HTML-format. Rows are non-terminals, columns
// are terminals and the end marker. Epsilon-productions are shown as 'ε'.
func (t *Table) AsHTML(w io.Writer) {
	io.WriteString(w, "<html><body>\n")
	io.WriteString(w, fmt.Sprintf("LL(1) table for start symbol %s with %d entries<p>",
		html.EscapeString(t.start), t.matrix.ValueCount()))
	io.WriteString(w, "<table border=1 cellspacing=0 cellpadding=5>\n")
	io.WriteString(w, "<tr bgcolor=#cccccc><td></td>\n")
	for _, a := range t.cols {
		io.WriteString(w, fmt.Sprintf("<td>%s</td>", html.EscapeString(a)))
	}
	io.WriteString(w, "</tr>\n")
	var td string // table cell
	for i, A := range t.rows {
		io.WriteString(w, fmt.Sprintf("<tr><td>%s</td>\n", html.EscapeString(A)))
		for j := range t.cols {
			b := t.matrix.Value(i, j)
			if b == t.matrix.NullValue() {
				td = "&nbsp;"
			} else if len(t.bodies[b]) == 0 {
				td = "ε"
			} else {
				td = html.EscapeString(strings.Join(t.bodies[b], " "))
			}
			io.WriteString(w, "<td>")
			io.WriteString(w, td)
			io.WriteString(w, "</td>\n")
		}
		io.WriteString(w, "</tr>\n")
	}
	io.WriteString(w, "</table></body></html>\n")
}
