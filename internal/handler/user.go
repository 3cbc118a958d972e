package handler

import "net/http"

// createUser handles POST /usuarios.
func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	var body userRequest
	if !readJSON(w, r, &body) {
		return
	}

	created, err := s.users.Create(r.Context(), body.toDomain(0))
	if err != nil {
		writeServiceError(w, r, err, "user")
		return
	}

	writeJSON(w, http.StatusCreated, userToResponse(created))
}

// listUsers handles GET /usuarios.
func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "user")
		return
	}

	data := make([]userResponse, len(users))
	for i, u := range users {
		data[i] = userToResponse(u)
	}
	writeJSON(w, http.StatusOK, data)
}

// getUser handles GET /usuarios/{id} and answers with the complete
// projection, trips and tours included.
func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	profile, err := s.users.GetProfile(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "user")
		return
	}

	writeJSON(w, http.StatusOK, profileToResponse(profile))
}

// updateUser handles PUT /usuarios/{id}. Only the basic fields change.
func (s *Server) updateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var body userRequest
	if !readJSON(w, r, &body) {
		return
	}

	updated, err := s.users.Update(r.Context(), body.toDomain(id))
	if err != nil {
		writeServiceError(w, r, err, "user")
		return
	}

	writeJSON(w, http.StatusOK, userToResponse(updated))
}

// updateUserFull handles PUT /usuarios/{id}/full: basic fields plus
// overwrites of trips and tours the user already owns, all or nothing.
func (s *Server) updateUserFull(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var body userFullRequest
	if !readJSON(w, r, &body) {
		return
	}

	profile, err := s.users.UpdateFull(r.Context(), body.toDomain(id))
	if err != nil {
		writeServiceError(w, r, err, "user")
		return
	}

	writeJSON(w, http.StatusOK, profileToResponse(profile))
}

// deleteUser handles DELETE /usuarios/{id}.
func (s *Server) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := s.users.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err, "user")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// login handles POST /usuarios/login. On success the session cookie is set
// and the basic projection of the user is returned.
func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if !readJSON(w, r, &body) {
		return
	}

	user, err := s.users.Login(r.Context(), body.Email, body.Senha)
	if err != nil {
		writeServiceError(w, r, err, "user")
		return
	}

	if err := s.sessions.SetCookie(w, user); err != nil {
		writeServiceError(w, r, err, "session")
		return
	}

	writeJSON(w, http.StatusOK, userToResponse(user))
}
