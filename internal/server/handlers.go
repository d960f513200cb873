package server

import (
	"errors"
	"net/http"

	"github.com/sustainsearch/midori/internal/controller"
	"github.com/sustainsearch/midori/internal/view"
	"go.uber.org/zap"
)

const sessionCookie = "midori_session"

// session resolves the browser session from the request cookie, creating a
// fresh one (and setting the cookie) when absent or unknown.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *controller.Session {
	var id string
	if c, err := r.Cookie(sessionCookie); err == nil {
		id = c.Value
	}
	resolved, sess := s.sessions.Get(id)
	if resolved != id {
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    resolved,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return sess
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	page := view.BuildPage(s.ctrl.Snapshot(sess))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, "page.html", page); err != nil {
		s.logger.Error("template render failed", zap.Error(err))
	}
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	sess := s.session(w, r)

	s.ctrl.SetQuery(sess, r.PostFormValue("q"))
	s.ctrl.SetMode(sess, r.PostFormValue("mode"))
	s.ctrl.SetFilter(sess, r.PostFormValue("sentiment_filter"))

	// Failures surface through the session notice; a concurrent submit is
	// simply ignored, matching the disabled submit control while pending.
	if err := s.ctrl.Submit(r.Context(), sess); err != nil && !errors.Is(err, controller.ErrSearchInFlight) {
		s.logger.Debug("search submit failed", zap.Error(err))
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handlePrefs updates the live query/mode/filter selections without running
// a search. The toggles post here so that switching mode or filter while
// editing the next query never re-queries the service.
func (s *Server) handlePrefs(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	sess := s.session(w, r)
	s.ctrl.SetQuery(sess, r.PostFormValue("q"))
	s.ctrl.SetMode(sess, r.PostFormValue("mode"))
	s.ctrl.SetFilter(sess, r.PostFormValue("sentiment_filter"))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
