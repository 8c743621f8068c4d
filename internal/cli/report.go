package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/bastiangx/namecmp/pkg/search"
	"github.com/charmbracelet/lipgloss"
)

// Reporter renders per-search reports and the session summary.
type Reporter struct {
	out    io.Writer
	color  bool
	name   lipgloss.Style
	found  lipgloss.Style
	missed lipgloss.Style
	count  lipgloss.Style
	hint   lipgloss.Style
}

// NewReporter writes to out. With color off the text is never passed through
// lipgloss, so it is byte-for-byte plain.
func NewReporter(out io.Writer, color bool) *Reporter {
	r := lipgloss.NewRenderer(out)
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	return &Reporter{
		out:    out,
		color:  color,
		name:   base.Bold(true),
		found:  base.Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"}),
		missed: base.Foreground(lipgloss.AdaptiveColor{Light: "#b4637a", Dark: "#eb6f92"}),
		count:  base.Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).Bold(true),
		hint:   base.Italic(true).Faint(true),
	}
}

func (r *Reporter) paint(st lipgloss.Style, s string) string {
	if !r.color {
		return s
	}
	return st.Render(s)
}

// Instructions prints the prompt shown once before the loop.
func (r *Reporter) Instructions() {
	fmt.Fprint(r.out, "Search for names.  Input '.' to exit the loop.\n\n")
}

// Result prints the two report lines for a search both structures agree on.
func (r *Reporter) Result(res search.Result) {
	verdict := r.paint(r.found, "was found")
	if res.Outcome == search.NotFound {
		verdict = r.paint(r.missed, "was NOT found")
	}
	name := r.paint(r.name, res.Name)
	fmt.Fprintf(r.out, "\t%s %s in the linked list in %s comparisons.\n",
		name, verdict, r.paint(r.count, fmt.Sprint(res.List.Comparisons)))
	fmt.Fprintf(r.out, "\t%s %s in the hash table bucket in %s comparisons.\n",
		name, verdict, r.paint(r.count, fmt.Sprint(res.Table.Comparisons)))
}

// Hint prints loaded names close to a missed term.
func (r *Reporter) Hint(suggestions []string) {
	fmt.Fprintf(r.out, "\t%s\n", r.paint(r.hint, "Closest loaded names: "+strings.Join(suggestions, ", ")))
}

// Summary prints the end-of-session totals.
func (r *Reporter) Summary(t search.Totals) {
	fmt.Fprint(r.out, "\n\n\n")
	fmt.Fprintf(r.out, "\tTotal Number of Searches: %s\n", r.paint(r.count, fmt.Sprint(t.Searches)))
	fmt.Fprintf(r.out, "\tTotal Number of Comparisons in Linked List: %s\n", r.paint(r.count, fmt.Sprint(t.ListComparisons)))
	fmt.Fprintf(r.out, "\tTotal Number of Comparisons in Hash Table: %s\n", r.paint(r.count, fmt.Sprint(t.HashComparisons)))
}
