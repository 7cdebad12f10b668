package handler

import (
	"net/http"

	"github.com/BrayanOfficiel/juice-finder/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "")
}
