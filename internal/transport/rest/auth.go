package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/calorie-backend/internal/domain"
	"github.com/heartmarshall/calorie-backend/internal/service/auth"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	RequestCode(ctx context.Context, input auth.RequestCodeInput) error
	LoginWithCode(ctx context.Context, input auth.LoginWithCodeInput) (*auth.AuthResult, error)
	LoginWithGoogle(ctx context.Context, input auth.GoogleLoginInput) (*auth.AuthResult, error)
	Refresh(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error)
	Logout(ctx context.Context) error
}

// AuthHandler serves auth REST endpoints.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type smsCodeRequest struct {
	PhoneNumber string `json:"phone_number"`
	Code        string `json:"code"`
}

type emailCodeRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type googleRequest struct {
	IDToken string `json:"id_token"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type authResponse struct {
	Token        string       `json:"token"`
	RefreshToken string       `json:"refresh_token"`
	Registered   bool         `json:"registered"`
	User         userResponse `json:"user"`
}

// RequestCodeSMS handles POST /api/auth/get-verification-code/via-sms.
func (h *AuthHandler) RequestCodeSMS(w http.ResponseWriter, r *http.Request) {
	var req smsCodeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.requestCode(w, r, domain.ChannelPhone, req.PhoneNumber)
}

// RequestCodeEmail handles POST /api/auth/get-verification-code/via-email.
func (h *AuthHandler) RequestCodeEmail(w http.ResponseWriter, r *http.Request) {
	var req emailCodeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.requestCode(w, r, domain.ChannelEmail, req.Email)
}

func (h *AuthHandler) requestCode(w http.ResponseWriter, r *http.Request, kind domain.ChannelKind, destination string) {
	err := h.svc.RequestCode(r.Context(), auth.RequestCodeInput{Kind: kind, Destination: destination})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Status: true, Message: "code sent"})
}

// SubmitCodeSMS handles POST /api/auth/submit-verification-code/via-sms.
func (h *AuthHandler) SubmitCodeSMS(w http.ResponseWriter, r *http.Request) {
	var req smsCodeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.submitCode(w, r, domain.ChannelPhone, req.PhoneNumber, req.Code)
}

// SubmitCodeEmail handles POST /api/auth/submit-verification-code/via-email.
func (h *AuthHandler) SubmitCodeEmail(w http.ResponseWriter, r *http.Request) {
	var req emailCodeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.submitCode(w, r, domain.ChannelEmail, req.Email, req.Code)
}

func (h *AuthHandler) submitCode(w http.ResponseWriter, r *http.Request, kind domain.ChannelKind, destination, code string) {
	result, err := h.svc.LoginWithCode(r.Context(), auth.LoginWithCodeInput{
		Kind:        kind,
		Destination: destination,
		Code:        code,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAuthResponse(result))
}

// VerifyGoogleSignIn handles POST /api/auth/verify-google-sign-in.
func (h *AuthHandler) VerifyGoogleSignIn(w http.ResponseWriter, r *http.Request) {
	var req googleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.LoginWithGoogle(r.Context(), auth.GoogleLoginInput{IDToken: req.IDToken})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAuthResponse(result))
}

// Refresh handles POST /api/auth/refresh.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Refresh(r.Context(), auth.RefreshInput{RefreshToken: req.RefreshToken})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAuthResponse(result))
}

// Logout handles POST /api/auth/logout. The route requires authentication.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Logout(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Status: true, Message: "logged out"})
}

func toAuthResponse(result *auth.AuthResult) authResponse {
	return authResponse{
		Token:        result.AccessToken,
		RefreshToken: result.RefreshToken,
		Registered:   result.Created,
		User:         toUserResponse(result.User),
	}
}
