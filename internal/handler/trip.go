package handler

import "net/http"

// createTrip handles POST /viagens?usuarioId={id}.
func (s *Server) createTrip(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	var body tripRequest
	if !readJSON(w, r, &body) {
		return
	}

	created, err := s.trips.Create(r.Context(), body.toDomain(0, owner))
	if err != nil {
		writeServiceError(w, r, err, "trip")
		return
	}

	writeJSON(w, http.StatusCreated, tripToResponse(created))
}

// listTrips handles GET /viagens.
func (s *Server) listTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := s.trips.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "trip")
		return
	}

	data := make([]tripResponse, len(trips))
	for i, t := range trips {
		data[i] = tripToResponse(t)
	}
	writeJSON(w, http.StatusOK, data)
}

// getTrip handles GET /viagens/{id}.
func (s *Server) getTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "trip")
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// updateTrip handles PUT /viagens/{id}. The owner is never changed.
func (s *Server) updateTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var body tripRequest
	if !readJSON(w, r, &body) {
		return
	}

	updated, err := s.trips.Update(r.Context(), body.toDomain(id, 0))
	if err != nil {
		writeServiceError(w, r, err, "trip")
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(updated))
}

// deleteTrip handles DELETE /viagens/{id}.
func (s *Server) deleteTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := s.trips.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err, "trip")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
