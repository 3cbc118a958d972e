package service

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pkordes/sunnytrips/internal/domain"
)

// Field rules shared by Create, Update and the full update. Field names in
// messages are the API's JSON names so clients can map them back to inputs.

// validateUser enforces the basic-field rules of a user.
//   - nome: 2..100 characters
//   - email: valid address, at most 100 characters
//   - senha: 6..50 characters
//   - pais, estado: at most 50 characters; cidade: at most 100
func validateUser(u domain.User) error {
	if err := checkText("nome", u.Name, 2, 100); err != nil {
		return err
	}
	if err := checkEmail("email", u.Email); err != nil {
		return err
	}
	if err := checkText("senha", u.Password, 6, 50); err != nil {
		return err
	}
	if err := checkText("pais", u.Country, 1, 50); err != nil {
		return err
	}
	if err := checkText("estado", u.State, 1, 50); err != nil {
		return err
	}
	return checkText("cidade", u.City, 1, 100)
}

// validateTrip enforces the destination and schedule rules of a trip.
// prefix is prepended to field names, e.g. "viagens[2].".
func validateTrip(prefix string, t domain.Trip, now time.Time) error {
	if err := checkText(prefix+"paisDestino", t.DestinationCountry, 1, 50); err != nil {
		return err
	}
	if err := checkText(prefix+"estadoDestino", t.DestinationState, 1, 50); err != nil {
		return err
	}
	if err := checkText(prefix+"cidadeDestino", t.DestinationCity, 1, 100); err != nil {
		return err
	}
	return checkFuture(prefix+"dataHora", t.ScheduledAt, now)
}

// validateTour enforces the location and schedule rules of a tour.
func validateTour(prefix string, t domain.Tour, now time.Time) error {
	if err := checkText(prefix+"localEspecifico", t.Location, 1, 255); err != nil {
		return err
	}
	return checkFuture(prefix+"dataHora", t.ScheduledAt, now)
}

// validateFullUpdate checks every part of a compound update before any
// store access. Nil collections are rejected; empty ones are fine.
func validateFullUpdate(u domain.UserFullUpdate, now time.Time) error {
	if u.Trips == nil {
		return fmt.Errorf("%w: viagens must not be null", domain.ErrValidation)
	}
	if u.Tours == nil {
		return fmt.Errorf("%w: passeios must not be null", domain.ErrValidation)
	}
	if err := validateUser(u.User); err != nil {
		return err
	}
	for i, tu := range u.Trips {
		prefix := fmt.Sprintf("viagens[%d].", i)
		if tu.ID == 0 {
			return fmt.Errorf("%w: %sid is required", domain.ErrValidation, prefix)
		}
		if err := validateTrip(prefix, tu.Apply(domain.Trip{}), now); err != nil {
			return err
		}
	}
	for i, tu := range u.Tours {
		prefix := fmt.Sprintf("passeios[%d].", i)
		if tu.ID == 0 {
			return fmt.Errorf("%w: %sid is required", domain.ErrValidation, prefix)
		}
		if err := validateTour(prefix, tu.Apply(domain.Tour{}), now); err != nil {
			return err
		}
	}
	return nil
}

// checkText rejects blank values and values whose rune count falls outside
// [min, max].
func checkText(field, value string, min, max int) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", domain.ErrValidation, field)
	}
	n := utf8.RuneCountInString(value)
	if n < min {
		return fmt.Errorf("%w: %s must have between %d and %d characters", domain.ErrValidation, field, min, max)
	}
	if n > max {
		return fmt.Errorf("%w: %s must have at most %d characters", domain.ErrValidation, field, max)
	}
	return nil
}

func checkEmail(field, value string) error {
	if err := checkText(field, value, 1, 100); err != nil {
		return err
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return fmt.Errorf("%w: %s is not a valid address", domain.ErrValidation, field)
	}
	return nil
}

func checkFuture(field string, t, now time.Time) error {
	if t.IsZero() {
		return fmt.Errorf("%w: %s is required", domain.ErrValidation, field)
	}
	if !t.After(now) {
		return fmt.Errorf("%w: %s must be in the future", domain.ErrValidation, field)
	}
	return nil
}
