package middleware

import (
	"strconv"

	domainerrors "github.com/BrayanOfficiel/juice-finder/internal/domain/errors"
	"github.com/BrayanOfficiel/juice-finder/internal/domain/repository"
	"github.com/BrayanOfficiel/juice-finder/internal/errors"

	"github.com/labstack/echo/v4"
)

// HeaderXUserID identifies the acting profile on bookmark and archive
// requests. This is deliberate toy auth for a shared household directory;
// there is no token to verify.
const HeaderXUserID = "X-User-Id"

const contextKeyUserID = "auth_user_id"

// AuthMiddleware resolves the acting profile from the X-User-Id header.
type AuthMiddleware struct {
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{userRepo: userRepo}
}

// RequireUser rejects requests without a valid X-User-Id header and stores
// the verified user id on the request context.
func (m *AuthMiddleware) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := c.Request().Header.Get(HeaderXUserID)
		if raw == "" {
			return domainerrors.ErrNotAuthenticated
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			return domainerrors.ErrNotAuthenticated
		}

		ctx := c.Request().Context()
		if _, err := m.userRepo.FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrNotAuthenticated
			}

			return domainerrors.NewDatabaseExecuteError(err, "vérification du profil")
		}

		c.Set(contextKeyUserID, userID)

		return next(c)
	}
}

// UserID returns the id stored by RequireUser, or zero when the middleware
// did not run.
func UserID(c echo.Context) int64 {
	if id, ok := c.Get(contextKeyUserID).(int64); ok {
		return id
	}

	return 0
}
