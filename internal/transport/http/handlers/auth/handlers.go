package authhandler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"hrms/internal/auth"
	"hrms/internal/domain/user"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/shared"
)

type UserFinder interface {
	FindActiveUserByEmail(ctx context.Context, email string) (*user.User, error)
	UpdateLastLogin(ctx context.Context, userID string) error
}

type Handler struct {
	Users     UserFinder
	JWTSecret string
	TokenTTL  time.Duration
}

func NewHandler(users UserFinder, jwtSecret string, tokenTTL time.Duration) *Handler {
	return &Handler{Users: users, JWTSecret: jwtSecret, TokenTTL: tokenTTL}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	OTPCode  string `json:"otp_code"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.FailValidation(w, []shared.ValidationIssue{{Field: "body", Reason: "must be a valid JSON document"}})
		return
	}

	v := shared.NewValidator()
	v.Required("email", req.Email, "is required")
	v.Required("password", req.Password, "is required")
	if v.Reject(w) {
		return
	}

	account, err := h.Users.FindActiveUserByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			api.Fail(w, http.StatusUnauthorized, api.CodeUnauthorized, "invalid credentials")
			return
		}
		slog.Error("login lookup failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, api.CodeDatabase, err.Error())
		return
	}

	if err := auth.CheckPassword(account.PasswordHash, req.Password); err != nil {
		api.Fail(w, http.StatusUnauthorized, api.CodeUnauthorized, "invalid credentials")
		return
	}

	secret := ""
	if account.MFASecret != nil {
		secret = *account.MFASecret
	}
	if !auth.ValidateMFA(secret, req.OTPCode) {
		api.Fail(w, http.StatusUnauthorized, api.CodeUnauthorized, "invalid one-time code")
		return
	}

	token, err := auth.GenerateToken(h.JWTSecret, auth.Claims{
		UserID: account.ID,
		Email:  account.Email,
		Role:   account.Role,
	}, h.TokenTTL)
	if err != nil {
		slog.Error("token signing failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, api.CodeInternal, "internal server error")
		return
	}

	if err := h.Users.UpdateLastLogin(r.Context(), account.ID); err != nil {
		slog.Warn("last login update failed", "err", err)
	}

	api.Success(w, loginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(h.TokenTTL),
		Email:     account.Email,
		Role:      account.Role,
	})
}

// Tokens are stateless, so logout only confirms the client should discard its
// copy.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	api.SuccessWithMessage(w, nil, "Logged out")
}
