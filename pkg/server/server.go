package server

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bastiangx/namecmp/internal/logger"
	"github.com/bastiangx/namecmp/pkg/hashtable"
	"github.com/bastiangx/namecmp/pkg/names"
	"github.com/bastiangx/namecmp/pkg/search"
	"github.com/charmbracelet/log"
)

const (
	codeBadRequest   = 400
	codeInconsistent = 500
)

// Server handles the IPC for name searches
type Server struct {
	index    *search.Index
	session  *search.Session
	codec    Codec
	log      *log.Logger
	requests int
}

// NewServer creates a server that answers on codec and records searches in session.
func NewServer(index *search.Index, session *search.Session, codec Codec) *Server {
	return &Server{
		index:   index,
		session: session,
		codec:   codec,
		log:     logger.New("ipc"),
	}
}

// Start signals readiness and serves requests until EOF or an end request.
func (s *Server) Start() error {
	s.log.Debug("Starting Server.")

	if err := s.send(StatusResponse{Status: "ready"}); err != nil {
		return err
	}

	for {
		var req Request
		err := s.codec.Decode(&req)
		switch {
		case errors.Is(err, io.EOF):
			s.log.Debug("Input closed", "requests", s.requests)
			return nil
		case errors.Is(err, ErrBadFrame):
			s.log.Errorf("Decoding request: %v", err)
			if err := s.sendError("", "invalid request", codeBadRequest); err != nil {
				return err
			}
			continue
		case err != nil:
			return fmt.Errorf("reading request: %w", err)
		}

		s.requests++
		done, err := s.handleRequest(req)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// handleRequest dispatches one request. done reports that the session ended.
func (s *Server) handleRequest(req Request) (done bool, err error) {
	switch req.Action {
	case "search":
		return s.handleSearch(req)
	case "totals":
		return false, s.sendTotals(req.ID)
	case "stats":
		st := s.index.Table().Stats()
		return false, s.send(StatsResponse{
			ID:            req.ID,
			Names:         st.Names,
			TableSize:     hashtable.TableSize,
			UsedBuckets:   st.UsedBuckets,
			Longest:       st.Longest,
			LongestBucket: st.LongestBucket,
		})
	case "health":
		return false, s.send(StatusResponse{ID: req.ID, Status: "ok"})
	case "end":
		return true, s.sendTotals(req.ID)
	}
	return false, s.sendError(req.ID, fmt.Sprintf("Unknown action: %s", req.Action), codeBadRequest)
}

func (s *Server) handleSearch(req Request) (bool, error) {
	name := names.Clean(req.Name)
	if names.IsSentinel(name) {
		return true, s.sendTotals(req.ID)
	}
	if name == "" {
		s.log.Debug("Name is empty in request", "id", req.ID)
		return false, s.sendError(req.ID, "Missing 'n' parameter", codeBadRequest)
	}

	start := time.Now()
	res, err := s.index.Search(name)
	s.log.Debugf("Took [ %v ] for '%s'", time.Since(start), name)
	s.session.RecordResult(res)

	if err != nil {
		s.log.Error("Structures disagree", "name", name, "list", res.List.Found, "table", res.Table.Found)
		return false, s.sendError(req.ID, err.Error(), codeInconsistent)
	}

	return false, s.send(SearchResponse{
		ID:              req.ID,
		Name:            res.Name,
		Found:           res.Outcome == search.Found,
		ListComparisons: res.List.Comparisons,
		HashComparisons: res.Table.Comparisons,
		Bucket:          res.Bucket,
	})
}

func (s *Server) sendTotals(id string) error {
	t := s.session.Finalize()
	return s.send(TotalsResponse{
		ID:              id,
		Searches:        t.Searches,
		ListComparisons: t.ListComparisons,
		HashComparisons: t.HashComparisons,
	})
}

func (s *Server) send(response any) error {
	if err := s.codec.Encode(response); err != nil {
		s.log.Errorf("Encoding response: %v", err)
		return fmt.Errorf("writing response: %w", err)
	}
	return nil
}

func (s *Server) sendError(id, message string, code int) error {
	return s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
