package handler

import (
	"errors"
	"net/http"

	"github.com/pkordes/sunnytrips/internal/domain"
	"github.com/pkordes/sunnytrips/internal/session"
)

// getSession handles GET /sessao. The cookie only identifies the user; the
// complete user is always re-read from the store. A cookie whose user no
// longer exists is cleared.
func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.FromRequest(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "no active session")
		return
	}

	profile, err := s.users.GetProfile(r.Context(), sess.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			session.ClearCookie(w)
			writeError(w, http.StatusUnauthorized, "unauthorized", "no active session")
			return
		}
		writeServiceError(w, r, err, "user")
		return
	}

	writeJSON(w, http.StatusOK, profileToResponse(profile))
}

// logout handles POST /logout.
func (s *Server) logout(w http.ResponseWriter, _ *http.Request) {
	session.ClearCookie(w)
	w.WriteHeader(http.StatusNoContent)
}
