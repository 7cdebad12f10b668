package handler

import (
	"log/slog"
	"net/http"

	"github.com/BrayanOfficiel/juice-finder/internal/delivery/http/response"
	"github.com/BrayanOfficiel/juice-finder/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for profile-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

type createUserInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password"`
}

type loginInput struct {
	UserID   int64  `json:"user_id" validate:"required"`
	Password string `json:"password"`
}

// List handles GET /api/auth/users: the profile picker.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "")
}

// Create handles POST /api/auth/users.
func (h *UserHandler) Create(c echo.Context) error {
	var input createUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Corps de requête invalide")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.Create(c.Request().Context(), input.Username, input.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, user, "Profil créé")
}

// Login handles POST /api/auth/login.
func (h *UserHandler) Login(c echo.Context) error {
	var input loginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Corps de requête invalide")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	session, err := h.uc.Login(c.Request().Context(), input.UserID, input.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, session, "Connexion réussie")
}
