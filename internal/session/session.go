// Package session issues and verifies the signed cookie that keeps a user
// logged in. The cookie carries only the user id and display name; handlers
// re-read the user from the store when they need anything else.
package session

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pkordes/sunnytrips/internal/domain"
)

// CookieName is the name of the session cookie.
const CookieName = "sunnytrips_session"

const issuer = "sunnytrips"

// ErrNoSession is returned when a request carries no valid session cookie.
var ErrNoSession = errors.New("no session")

// Session is the identity recovered from a valid cookie.
type Session struct {
	UserID    int64
	Name      string
	ExpiresAt time.Time
}

type claims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// Manager signs and verifies session tokens with an HMAC secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewManager creates a Manager. Tokens it issues expire after ttl.
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue returns a signed token for user and its expiry.
func (m *Manager) Issue(user domain.User) (string, time.Time, error) {
	now := m.now()
	exp := now.Add(m.ttl)
	c := claims{
		Name: user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("session.Manager.Issue: %w", err)
	}
	return token, exp, nil
}

// Parse verifies token and returns the session it carries.
// Any invalid, expired, or foreign token yields ErrNoSession.
func (m *Manager) Parse(token string) (Session, error) {
	var c claims
	_, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return Session{}, fmt.Errorf("session.Manager.Parse: %w: %w", ErrNoSession, err)
	}
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return Session{}, fmt.Errorf("session.Manager.Parse: %w: bad subject", ErrNoSession)
	}
	return Session{UserID: id, Name: c.Name, ExpiresAt: c.ExpiresAt.Time}, nil
}

// FromRequest reads and verifies the session cookie of r.
func (m *Manager) FromRequest(r *http.Request) (Session, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return Session{}, ErrNoSession
	}
	return m.Parse(cookie.Value)
}

// SetCookie issues a session for user and writes it to w.
func (m *Manager) SetCookie(w http.ResponseWriter, user domain.User) error {
	token, exp, err := m.Issue(user)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  exp,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// ClearCookie tells the client to drop the session cookie.
func ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
