package handler

import "net/http"

// createTour handles POST /passeios?usuarioId={id}.
func (s *Server) createTour(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	var body tourRequest
	if !readJSON(w, r, &body) {
		return
	}

	created, err := s.tours.Create(r.Context(), body.toDomain(0, owner))
	if err != nil {
		writeServiceError(w, r, err, "tour")
		return
	}

	writeJSON(w, http.StatusCreated, tourToResponse(created))
}

// listTours handles GET /passeios.
func (s *Server) listTours(w http.ResponseWriter, r *http.Request) {
	tours, err := s.tours.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "tour")
		return
	}

	data := make([]tourResponse, len(tours))
	for i, t := range tours {
		data[i] = tourToResponse(t)
	}
	writeJSON(w, http.StatusOK, data)
}

// getTour handles GET /passeios/{id}.
func (s *Server) getTour(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	tour, err := s.tours.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "tour")
		return
	}

	writeJSON(w, http.StatusOK, tourToResponse(tour))
}

// updateTour handles PUT /passeios/{id}.
func (s *Server) updateTour(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var body tourRequest
	if !readJSON(w, r, &body) {
		return
	}

	updated, err := s.tours.Update(r.Context(), body.toDomain(id, 0))
	if err != nil {
		writeServiceError(w, r, err, "tour")
		return
	}

	writeJSON(w, http.StatusOK, tourToResponse(updated))
}

// deleteTour handles DELETE /passeios/{id}.
func (s *Server) deleteTour(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := s.tours.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err, "tour")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
