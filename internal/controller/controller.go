// Package controller owns the per-session search state machine: query, mode,
// and filter selections, the in-flight flag, and the last-executed snapshot
// that result rendering is keyed off.
package controller

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/sustainsearch/midori/internal/history"
	"github.com/sustainsearch/midori/internal/models"
	"github.com/sustainsearch/midori/internal/upstream"
	"go.uber.org/zap"
)

// ErrSearchInFlight is returned by Submit while a previous search for the
// same session has not completed yet.
var ErrSearchInFlight = errors.New("a search is already in flight")

// FailureNotice is the user-visible message shown when the search service
// could not be reached or returned an unusable response.
const FailureNotice = "Search failed. Make sure the search service is reachable."

// Session holds the state for one page view. All fields are owned by the
// Controller; readers get a copy via Snapshot. Created with default values
// and discarded when the browser session ends, nothing is persisted.
type Session struct {
	mu sync.Mutex

	// Live selections, editable at any time.
	query  string
	mode   models.SearchMode
	filter models.SentimentFilter

	// Snapshot of the request that produced the current results. Rendering
	// uses these, never the live selections, so editing the next query does
	// not re-highlight results from the previous one.
	searchedQuery string
	searchedMode  models.SearchMode

	results  []models.SearchResult
	inFlight bool
	notice   string

	// Request-sequence tokens. A completion whose token is older than the
	// newest applied one is discarded instead of overwriting fresher results.
	seq     uint64
	applied uint64
}

// State is a point-in-time copy of a session for rendering.
type State struct {
	Query         string
	Mode          models.SearchMode
	Filter        models.SentimentFilter
	SearchedQuery string
	SearchedMode  models.SearchMode
	Results       []models.SearchResult
	InFlight      bool
	Notice        string
}

// Searched reports whether any search has completed in this session.
func (s State) Searched() bool { return s.SearchedQuery != "" }

// HighlightActive reports whether query-term highlighting applies to the
// current results. Vector results match by meaning rather than by term, so
// highlighting is only on for keyword and hybrid result sets.
func (s State) HighlightActive() bool {
	return s.SearchedMode == models.ModeBM25 || s.SearchedMode == models.ModeHybrid
}

// Controller routes all session mutations and issues search requests.
type Controller struct {
	searcher upstream.Searcher
	recorder history.Recorder
	limit    int
	logger   *zap.Logger
}

// New creates a controller. recorder may be nil to disable the search log.
func New(searcher upstream.Searcher, recorder history.Recorder, limit int, logger *zap.Logger) *Controller {
	if limit <= 0 {
		limit = models.DefaultResultLimit
	}
	return &Controller{searcher: searcher, recorder: recorder, limit: limit, logger: logger}
}

// NewSession returns a session with default selections.
func (c *Controller) NewSession() *Session {
	return &Session{mode: models.ModeHybrid, filter: models.FilterAll}
}

// SetQuery updates the live query text.
func (c *Controller) SetQuery(s *Session, query string) {
	s.mu.Lock()
	s.query = query
	s.mu.Unlock()
}

// SetMode updates the live mode selection; unknown values are ignored.
func (c *Controller) SetMode(s *Session, mode string) {
	parsed, err := models.ParseSearchMode(mode)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.mode = parsed
	s.mu.Unlock()
}

// SetFilter updates the live sentiment filter; unknown values are ignored.
func (c *Controller) SetFilter(s *Session, filter string) {
	parsed, err := models.ParseSentimentFilter(filter)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.filter = parsed
	s.mu.Unlock()
}

// Submit runs one search for the session's current selections.
//
// A query that trims to empty is silently ignored. While a search is in
// flight further submissions return ErrSearchInFlight. On success the result
// list is replaced wholesale and the executed query/mode are snapshotted; on
// failure the previous results are kept and a user notice is set. Either way
// the session is ready for the next submission afterwards.
func (c *Controller) Submit(ctx context.Context, s *Session) error {
	s.mu.Lock()
	if strings.TrimSpace(s.query) == "" {
		s.mu.Unlock()
		return nil
	}
	if s.inFlight {
		s.mu.Unlock()
		return ErrSearchInFlight
	}
	s.inFlight = true
	s.seq++
	token := s.seq
	req := models.SearchRequest{Query: s.query, Mode: s.mode, Filter: s.filter, Limit: c.limit}
	s.mu.Unlock()

	start := time.Now()
	resp, err := c.searcher.Search(ctx, req)
	elapsed := time.Since(start)

	s.mu.Lock()
	defer s.mu.Unlock()
	if token < s.applied {
		// A later request already completed; this response is stale.
		c.logger.Debug("discarding stale search response",
			zap.String("query", req.Query), zap.Uint64("token", token))
		return nil
	}
	s.applied = token
	s.inFlight = false

	if err != nil {
		c.logger.Warn("search failed", zap.String("query", req.Query), zap.Error(err))
		s.notice = FailureNotice
		return err
	}

	s.results = resp.Results
	s.searchedQuery = req.Query
	s.searchedMode = req.Mode
	s.notice = ""

	if c.recorder != nil {
		rec := history.SearchRecord{
			Query:       req.Query,
			Mode:        string(req.Mode),
			Filter:      string(req.Filter),
			ResultCount: len(resp.Results),
			DurationMs:  elapsed.Milliseconds(),
		}
		if err := c.recorder.Record(ctx, rec); err != nil {
			c.logger.Warn("failed to record search", zap.Error(err))
		}
	}
	return nil
}

// Snapshot returns a copy of the session state for rendering.
func (c *Controller) Snapshot(s *Session) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	results := make([]models.SearchResult, len(s.results))
	copy(results, s.results)
	return State{
		Query:         s.query,
		Mode:          s.mode,
		Filter:        s.filter,
		SearchedQuery: s.searchedQuery,
		SearchedMode:  s.searchedMode,
		Results:       results,
		InFlight:      s.inFlight,
		Notice:        s.notice,
	}
}
