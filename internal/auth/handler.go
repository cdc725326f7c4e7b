package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=auth_test

type sessionService interface {
	Login(ctx context.Context, userID string, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) (string, error)
}

type userDataClearer interface {
	Clear(ctx context.Context, userID string) error
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	// IDToken lets a client that already signed in with the provider skip the password.
	IDToken string `json:"id_token"`
}

type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

type Handler struct {
	provider IdentityProvider
	sessions sessionService
	clearer  userDataClearer
}

func NewHandler(provider IdentityProvider, sessions sessionService, clearer userDataClearer) *Handler {
	return &Handler{
		provider: provider,
		sessions: sessions,
		clearer:  clearer,
	}
}

func (h *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.signup")
	defer span.End()

	creds, ok := decodeCredentials(w, r)
	if !ok {
		return
	}
	if creds.Email == "" || creds.Password == "" {
		http.Error(w, "error, email or password empty", http.StatusBadRequest)
		return
	}

	identity, err := h.provider.SignUp(ctx, creds.Email, creds.Password)
	if err != nil {
		log.Errorf("signup for [%s] failed: %s", creds.Email, err)
		http.Error(w, "error, signup failed", http.StatusBadRequest)
		return
	}

	h.startSession(ctx, w, identity)
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.login")
	defer span.End()

	creds, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	var identity *Identity
	var err error
	switch {
	case creds.IDToken != "":
		identity, err = h.provider.CurrentUser(ctx, creds.IDToken)
	case creds.Email != "" && creds.Password != "":
		identity, err = h.provider.SignIn(ctx, creds.Email, creds.Password)
	default:
		http.Error(w, "error, email and password or id token required", http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Tracef("failed login attempt for [%s]: %s", creds.Email, err)
		http.Error(w, "error, wrong credentials", http.StatusUnauthorized)
		return
	}

	h.startSession(ctx, w, identity)
}

func (h *Handler) startSession(ctx context.Context, w http.ResponseWriter, identity *Identity) {
	token, err := h.sessions.Login(ctx, identity.UserID, time.Now())
	if err != nil {
		log.Errorf("login for user [%s] failed, create session: %s", identity.UserID, err)
		http.Error(w, "error, failed to create session", http.StatusInternalServerError)
		return
	}

	log.Debugf("new session for user [%s]", identity.UserID)
	pkg.WriteJSON(w, LoginResponse{
		Token:  token,
		UserID: identity.UserID,
		Email:  identity.Email,
	}, http.StatusOK)
}

// HandleLogout ends the session and wipes all locally kept data of its user.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.logout")
	defer span.End()

	authToken := r.Header.Get(TokenHeader)
	if authToken == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	userID, err := h.sessions.Logout(ctx, authToken)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) || errors.Is(err, ErrInvalidToken) {
			http.Error(w, "no can do", http.StatusUnauthorized)
			return
		}
		log.Errorf("logout failed: %s", err)
		http.Error(w, "error, logout failed", http.StatusInternalServerError)
		return
	}

	if err := h.clearer.Clear(ctx, userID); err != nil {
		// session is gone already, leftovers are namespaced per user
		log.Errorf("logout for user [%s], clear user data: %s", userID, err)
	}

	log.Debugf("logout for user [%s]", userID)
	pkg.WriteTextResponseOK(w, "logged-out")
}

func decodeCredentials(w http.ResponseWriter, r *http.Request) (credentialsRequest, bool) {
	var creds credentialsRequest
	if !strings.HasPrefix(r.Header.Get("Content-Type"), pkg.ContentType.JSON) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return creds, false
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Tracef("auth, unmarshal credentials: %s", err)
		http.Error(w, "error, invalid request body", http.StatusBadRequest)
		return creds, false
	}
	creds.Email = strings.TrimSpace(creds.Email)
	return creds, true
}
