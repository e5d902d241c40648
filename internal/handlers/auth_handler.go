package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"fintrack/internal/logger"
	"fintrack/internal/middleware"
	usermodel "fintrack/internal/models/user"
	"fintrack/internal/service"
)

type AuthHandler struct {
	users *service.UserService
	log   *logger.Logger
}

func NewAuthHandler(users *service.UserService) *AuthHandler {
	return &AuthHandler{
		users: users,
		log:   logger.New("auth-handler"),
	}
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupResponse struct {
	Message string          `json:"message"`
	User    *usermodel.User `json:"user"`
}

type LoginResponse struct {
	Message   string          `json:"message"`
	Token     string          `json:"token"`
	ExpiresAt int64           `json:"expires_at"`
	User      *usermodel.User `json:"user"`
}

type ProfileResponse struct {
	User *usermodel.User `json:"user"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.users.Signup(r.Context(), &usermodel.CreateUserRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if !errors.Is(err, service.ErrEmailTaken) && !errors.Is(err, service.ErrInvalidInput) {
			h.log.Error("signup failed: %v", err)
		}
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, SignupResponse{
		Message: "User created successfully",
		User:    user,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.users.Login(r.Context(), &usermodel.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if !errors.Is(err, service.ErrInvalidCredentials) {
			h.log.Error("login failed: %v", err)
		}
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, LoginResponse{
		Message:   "Login successful",
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt.Unix(),
		User:      result.User,
	})
}

func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	user, err := h.users.Profile(r.Context(), userID)
	if err != nil {
		if !errors.Is(err, service.ErrUserNotFound) {
			h.log.Error("profile fetch failed: %v", err)
		}
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, ProfileResponse{User: user})
}
