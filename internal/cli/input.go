// Package cli runs the interactive search loop on a reader and writer pair,
// normally stdin and stdout.
package cli

import (
	"bufio"
	"errors"
	"io"
	"time"

	"github.com/bastiangx/namecmp/internal/logger"
	"github.com/bastiangx/namecmp/pkg/hint"
	"github.com/bastiangx/namecmp/pkg/names"
	"github.com/bastiangx/namecmp/pkg/search"
	"github.com/charmbracelet/log"
)

// Options configures an InputHandler.
type Options struct {
	In  io.Reader
	Out io.Writer
	// Hints, when set, adds a line of nearby names after a miss.
	Hints     *hint.Index
	HintLimit int
	Color     bool
}

// InputHandler reads search terms, reports both structures' comparison
// counts, and feeds them to the session.
type InputHandler struct {
	index     *search.Index
	session   *search.Session
	in        io.Reader
	report    *Reporter
	hints     *hint.Index
	hintLimit int
	log       *log.Logger
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(index *search.Index, session *search.Session, opts Options) *InputHandler {
	return &InputHandler{
		index:     index,
		session:   session,
		in:        opts.In,
		report:    NewReporter(opts.Out, opts.Color),
		hints:     opts.Hints,
		hintLimit: opts.HintLimit,
		log:       logger.New("cli"),
	}
}

// Start prints the instructions and loops until a line starting with '.' or
// EOF, then prints the session summary. Empty lines are ignored.
func (h *InputHandler) Start() (search.Totals, error) {
	reader := bufio.NewReader(h.in)
	h.report.Instructions()

	var readErr error
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			readErr = err
			break
		}
		if line == "" && err != nil {
			break
		}

		term := names.Clean(line)
		if names.IsSentinel(term) {
			break
		}
		if term != "" {
			h.handleInput(term)
		}
		if err != nil {
			break
		}
	}

	totals := h.session.Finalize()
	h.report.Summary(totals)
	return totals, readErr
}

// handleInput searches one term. Counts are recorded even when the two
// structures disagree.
func (h *InputHandler) handleInput(term string) {
	start := time.Now()
	res, err := h.index.Search(term)
	h.log.Debugf("Took [ %v ] for '%s' in bucket %d", time.Since(start), res.Name, res.Bucket)

	h.session.RecordResult(res)

	var inconsistent *search.InconsistentError
	if errors.As(err, &inconsistent) {
		h.log.Error("Structures disagree",
			"name", res.Name,
			"list", res.List.Found,
			"table", res.Table.Found,
			"bucket", res.Bucket)
		return
	}
	if err != nil {
		h.log.Errorf("Search for '%s' failed: %v", term, err)
		return
	}

	h.report.Result(res)
	if res.Outcome == search.NotFound && h.hints != nil {
		if suggestions := h.hints.Suggest(res.Name, h.hintLimit); len(suggestions) > 0 {
			h.report.Hint(suggestions)
		}
	}
}
