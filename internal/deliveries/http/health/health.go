package health

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	commonhttp "github.com/catebi/go-tax-declaration/internal/common/http"
)

type healthHandler struct{}

// New health handler will initialize the health/ resources endpoint
func New(app *echo.Group) {
	hh := healthHandler{}
	app.GET("", hh.healthCheck())
}

type DoHealthCheckLivenessResponse struct {
	Kind   string `json:"kind" example:"health"`
	Status string `json:"status" example:"server is up and running"`
}

func (th healthHandler) healthCheck() echo.HandlerFunc {
	return func(c echo.Context) error {
		return commonhttp.RestSuccessResponse(c, nethttp.StatusOK, DoHealthCheckLivenessResponse{
			Kind:   "health",
			Status: "server is up and running",
		})
	}
}
