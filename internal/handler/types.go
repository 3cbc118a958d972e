package handler

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/pkordes/sunnytrips/internal/domain"
)

// dateTimeLayout is the wire format of dataHora: a local date-time without
// zone. Values are interpreted and rendered as UTC.
const dateTimeLayout = "2006-01-02T15:04:05"

// dateTime is a time.Time that marshals as dateTimeLayout and also accepts
// RFC 3339 input.
type dateTime struct {
	time.Time
}

type dateTimeError struct {
	value string
}

func (e *dateTimeError) Error() string {
	return fmt.Sprintf("dataHora %q must use the format %s", e.value, dateTimeLayout)
}

func (d dateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.UTC().Format(dateTimeLayout))
}

func (d *dateTime) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return &dateTimeError{value: string(b)}
	}
	if t, err := time.ParseInLocation(dateTimeLayout, s, time.UTC); err == nil {
		d.Time = t
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		d.Time = t.UTC()
		return nil
	}
	return &dateTimeError{value: s}
}

// ---- requests --------------------------------------------------------------

type userRequest struct {
	Nome   string `json:"nome"`
	Email  string `json:"email"`
	Senha  string `json:"senha"`
	Pais   string `json:"pais"`
	Estado string `json:"estado"`
	Cidade string `json:"cidade"`
}

func (u userRequest) toDomain(id int64) domain.User {
	return domain.User{
		ID:       id,
		Name:     u.Nome,
		Email:    u.Email,
		Password: u.Senha,
		Country:  u.Pais,
		State:    u.Estado,
		City:     u.Cidade,
	}
}

// userFullRequest is the body of PUT /usuarios/{id}/full. A null or missing
// viagens/passeios decodes to a nil slice, which the service rejects.
type userFullRequest struct {
	userRequest
	Viagens  []tripUpdateRequest `json:"viagens"`
	Passeios []tourUpdateRequest `json:"passeios"`
}

func (u userFullRequest) toDomain(id int64) domain.UserFullUpdate {
	upd := domain.UserFullUpdate{User: u.userRequest.toDomain(id)}
	if u.Viagens != nil {
		upd.Trips = make([]domain.TripUpdate, len(u.Viagens))
		for i, v := range u.Viagens {
			upd.Trips[i] = domain.TripUpdate{
				ID:                 v.ID,
				DestinationCountry: v.PaisDestino,
				DestinationState:   v.EstadoDestino,
				DestinationCity:    v.CidadeDestino,
				ScheduledAt:        v.DataHora.Time,
			}
		}
	}
	if u.Passeios != nil {
		upd.Tours = make([]domain.TourUpdate, len(u.Passeios))
		for i, p := range u.Passeios {
			upd.Tours[i] = domain.TourUpdate{
				ID:          p.ID,
				Location:    p.LocalEspecifico,
				ScheduledAt: p.DataHora.Time,
			}
		}
	}
	return upd
}

type loginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type tripRequest struct {
	PaisDestino   string   `json:"paisDestino"`
	EstadoDestino string   `json:"estadoDestino"`
	CidadeDestino string   `json:"cidadeDestino"`
	DataHora      dateTime `json:"dataHora"`
}

func (t tripRequest) toDomain(id, userID int64) domain.Trip {
	return domain.Trip{
		ID:                 id,
		UserID:             userID,
		DestinationCountry: t.PaisDestino,
		DestinationState:   t.EstadoDestino,
		DestinationCity:    t.CidadeDestino,
		ScheduledAt:        t.DataHora.Time,
	}
}

type tripUpdateRequest struct {
	ID int64 `json:"id"`
	tripRequest
}

type tourRequest struct {
	LocalEspecifico string   `json:"localEspecifico"`
	DataHora        dateTime `json:"dataHora"`
}

func (t tourRequest) toDomain(id, userID int64) domain.Tour {
	return domain.Tour{
		ID:          id,
		UserID:      userID,
		Location:    t.LocalEspecifico,
		ScheduledAt: t.DataHora.Time,
	}
}

type tourUpdateRequest struct {
	ID int64 `json:"id"`
	tourRequest
}

// ---- responses -------------------------------------------------------------

// userResponse is the basic projection of a user. The password is never sent.
type userResponse struct {
	ID     int64  `json:"id"`
	Nome   string `json:"nome"`
	Email  string `json:"email"`
	Pais   string `json:"pais"`
	Estado string `json:"estado"`
	Cidade string `json:"cidade"`
}

// userCompleteResponse adds the user's trips and tours. Both arrays are
// always present, never null.
type userCompleteResponse struct {
	userResponse
	Viagens  []tripResponse `json:"viagens"`
	Passeios []tourResponse `json:"passeios"`
}

type tripResponse struct {
	ID            int64    `json:"id"`
	PaisDestino   string   `json:"paisDestino"`
	EstadoDestino string   `json:"estadoDestino"`
	CidadeDestino string   `json:"cidadeDestino"`
	DataHora      dateTime `json:"dataHora"`
}

type tourResponse struct {
	ID              int64    `json:"id"`
	LocalEspecifico string   `json:"localEspecifico"`
	DataHora        dateTime `json:"dataHora"`
}

func userToResponse(u domain.User) userResponse {
	return userResponse{
		ID:     u.ID,
		Nome:   u.Name,
		Email:  u.Email,
		Pais:   u.Country,
		Estado: u.State,
		Cidade: u.City,
	}
}

func profileToResponse(p domain.UserProfile) userCompleteResponse {
	resp := userCompleteResponse{
		userResponse: userToResponse(p.User),
		Viagens:      make([]tripResponse, len(p.Trips)),
		Passeios:     make([]tourResponse, len(p.Tours)),
	}
	for i, t := range p.Trips {
		resp.Viagens[i] = tripToResponse(t)
	}
	for i, t := range p.Tours {
		resp.Passeios[i] = tourToResponse(t)
	}
	return resp
}

func tripToResponse(t domain.Trip) tripResponse {
	return tripResponse{
		ID:            t.ID,
		PaisDestino:   t.DestinationCountry,
		EstadoDestino: t.DestinationState,
		CidadeDestino: t.DestinationCity,
		DataHora:      dateTime{t.ScheduledAt},
	}
}

func tourToResponse(t domain.Tour) tourResponse {
	return tourResponse{
		ID:              t.ID,
		LocalEspecifico: t.Location,
		DataHora:        dateTime{t.ScheduledAt},
	}
}
