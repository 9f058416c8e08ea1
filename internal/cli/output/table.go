package output

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/yndnr/vecmap-go/internal/bench"
)

// TableFormatter formats data as an aligned text table.
type TableFormatter struct {
	NoHeaders bool
}

// Format renders tables and benchmark results as text. Other data falls
// back to YAML.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	switch v := data.(type) {
	case nil:
		return nil
	case *Table:
		return v.RenderWithOptions(w, f.NoHeaders)
	case Table:
		return v.RenderWithOptions(w, f.NoHeaders)
	case []bench.Result:
		return ResultsTable(v).RenderWithOptions(w, f.NoHeaders)
	default:
		return (&YAMLFormatter{}).Format(w, data)
	}
}

// Table represents tabular data.
type Table struct {
	Headers []string
	Rows    [][]string
}

// ResultsTable pivots results into one row per (size, op) and one ns/op
// column per contender, plus the fastest contender of each row. Rows and
// columns keep the order in which results first mention them.
func ResultsTable(results []bench.Result) *Table {
	type rowKey struct {
		size int
		op   string
	}

	var contenders []string
	column := make(map[string]int)
	var keys []rowKey
	cells := make(map[rowKey]map[string]float64)

	for _, r := range results {
		if _, ok := column[r.Contender]; !ok {
			column[r.Contender] = len(contenders)
			contenders = append(contenders, r.Contender)
		}
		k := rowKey{r.Size, r.Op}
		if _, ok := cells[k]; !ok {
			cells[k] = make(map[string]float64)
			keys = append(keys, k)
		}
		cells[k][r.Contender] = r.NsPerOp
	}

	t := &Table{}
	t.SetHeaders(append(append([]string{"SIZE", "OP"}, nsColumns(contenders)...), "BEST")...)

	for _, k := range keys {
		row := make([]string, 0, len(contenders)+3)
		row = append(row, strconv.Itoa(k.size), k.op)

		best, bestNs := "-", 0.0
		for _, c := range contenders {
			ns, ok := cells[k][c]
			if !ok {
				row = append(row, "-")
				continue
			}
			row = append(row, fmt.Sprintf("%.1f", ns))
			if best == "-" || ns < bestNs {
				best, bestNs = c, ns
			}
		}
		t.AddRow(append(row, best)...)
	}

	return t
}

func nsColumns(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = fmt.Sprintf("%s NS/OP", n)
	}
	return out
}

// Render renders the table to the writer.
func (t *Table) Render(w io.Writer) error {
	return t.RenderWithOptions(w, false)
}

// RenderWithOptions renders the table with options.
func (t *Table) RenderWithOptions(w io.Writer, noHeaders bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if !noHeaders && len(t.Headers) > 0 {
		writeRow(tw, t.Headers)
	}
	for _, row := range t.Rows {
		writeRow(tw, row)
	}

	return tw.Flush()
}

func writeRow(w io.Writer, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			io.WriteString(w, "\t")
		}
		io.WriteString(w, cell)
	}
	io.WriteString(w, "\n")
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// SetHeaders sets the table headers.
func (t *Table) SetHeaders(headers ...string) {
	t.Headers = headers
}
