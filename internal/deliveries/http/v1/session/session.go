package session

import (
	"fmt"
	"io"
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	commonhttp "github.com/catebi/go-tax-declaration/internal/common/http"
	"github.com/catebi/go-tax-declaration/internal/common/validation"
	"github.com/catebi/go-tax-declaration/internal/models"
	"github.com/catebi/go-tax-declaration/internal/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type sessionHandler struct {
	sessionSrv services.SessionService
}

// New will initialize the sessions/ resources endpoint. Each route is one
// state-machine entry point; the handlers only translate between HTTP and the
// core's typed results.
func New(app *echo.Group, sessionSrv services.SessionService) {
	handler := sessionHandler{sessionSrv: sessionSrv}
	sessions := app.Group("/sessions")
	sessions.POST("/:userID/start", handler.start())
	sessions.POST("/:userID/language", handler.selectLanguage())
	sessions.POST("/:userID/template", handler.requestTemplate())
	sessions.POST("/:userID/table", handler.submitTable())
	sessions.POST("/:userID/amount", handler.submitPriorAmount())
	sessions.POST("/:userID/restart", handler.restart())
	sessions.DELETE("/:userID", handler.cancel())
	sessions.GET("/:userID", handler.current())
}

type (
	SelectLanguageRequest struct {
		Language string `json:"language" validate:"required"`
	}

	SubmitTableRequest struct {
		SheetURL string `json:"sheet_url" form:"sheet_url" validate:"omitempty,url"`
	}

	SubmitAmountRequest struct {
		Amount string `json:"amount" validate:"required"`
	}

	TotalsResponse struct {
		Totals models.AggregateTotals    `json:"totals"`
		Fields []models.DeclarationField `json:"declaration_fields"`
	}
)

func (h *sessionHandler) start() echo.HandlerFunc {
	return func(c echo.Context) error {
		snap, err := h.sessionSrv.Start(c.Request().Context(), c.Param("userID"))
		if err != nil {
			return commonhttp.RestErrorResponse(c, getHTTPStatusCode(err), err)
		}
		return commonhttp.RestSuccessResponse(c, nethttp.StatusOK, snap)
	}
}

func (h *sessionHandler) selectLanguage() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req SelectLanguageRequest
		if err := c.Bind(&req); err != nil {
			return commonhttp.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}
		if err := validation.ValidateStruct(req); err != nil {
			return commonhttp.RestErrorValidationResponse(c, nethttp.StatusBadRequest, err.Error())
		}

		snap, err := h.sessionSrv.SelectLanguage(c.Request().Context(), c.Param("userID"), req.Language)
		if err != nil {
			return commonhttp.RestErrorResponse(c, getHTTPStatusCode(err), err)
		}
		return commonhttp.RestSuccessResponse(c, nethttp.StatusOK, snap)
	}
}

// requestTemplate streams the generated workbook back as an attachment.
func (h *sessionHandler) requestTemplate() echo.HandlerFunc {
	return func(c echo.Context) error {
		file, err := h.sessionSrv.RequestTemplate(c.Request().Context(), c.Param("userID"))
		if err != nil {
			return commonhttp.RestErrorResponse(c, getHTTPStatusCode(err), err)
		}

		c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, file.Filename))
		return c.Blob(nethttp.StatusOK, xlsxContentType, file.Content)
	}
}

// submitTable accepts either a multipart workbook under the "file" field or a
// sheet_url; the service rejects submissions carrying neither.
func (h *sessionHandler) submitTable() echo.HandlerFunc {
	return func(c echo.Context) error {
		var in models.TableSubmission

		if fh, err := c.FormFile("file"); err == nil && fh != nil {
			f, err := fh.Open()
			if err != nil {
				return commonhttp.RestErrorResponse(c, nethttp.StatusBadRequest, err)
			}
			defer f.Close()

			content, err := io.ReadAll(f)
			if err != nil {
				return commonhttp.RestErrorResponse(c, nethttp.StatusBadRequest, err)
			}
			in.Workbook = content
		} else {
			var req SubmitTableRequest
			if err := c.Bind(&req); err != nil {
				return commonhttp.RestErrorResponse(c, nethttp.StatusBadRequest, err)
			}
			if err := validation.ValidateStruct(req); err != nil {
				return commonhttp.RestErrorValidationResponse(c, nethttp.StatusBadRequest, err.Error())
			}
			in.SheetURL = req.SheetURL
		}

		receipt, err := h.sessionSrv.SubmitTable(c.Request().Context(), c.Param("userID"), in)
		if err != nil {
			return commonhttp.RestErrorResponse(c, getHTTPStatusCode(err), err)
		}
		return commonhttp.RestSuccessResponse(c, nethttp.StatusOK, receipt)
	}
}

func (h *sessionHandler) submitPriorAmount() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req SubmitAmountRequest
		if err := c.Bind(&req); err != nil {
			return commonhttp.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}
		if err := validation.ValidateStruct(req); err != nil {
			return commonhttp.RestErrorValidationResponse(c, nethttp.StatusBadRequest, err.Error())
		}

		totals, err := h.sessionSrv.SubmitPriorAmount(c.Request().Context(), c.Param("userID"), req.Amount)
		if err != nil {
			return commonhttp.RestErrorResponse(c, getHTTPStatusCode(err), err)
		}
		return commonhttp.RestSuccessResponse(c, nethttp.StatusOK, TotalsResponse{
			Totals: totals,
			Fields: totals.DeclarationFields(),
		})
	}
}

func (h *sessionHandler) restart() echo.HandlerFunc {
	return func(c echo.Context) error {
		snap, err := h.sessionSrv.Restart(c.Request().Context(), c.Param("userID"))
		if err != nil {
			return commonhttp.RestErrorResponse(c, getHTTPStatusCode(err), err)
		}
		return commonhttp.RestSuccessResponse(c, nethttp.StatusOK, snap)
	}
}

func (h *sessionHandler) cancel() echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := h.sessionSrv.Cancel(c.Request().Context(), c.Param("userID")); err != nil {
			return commonhttp.RestErrorResponse(c, getHTTPStatusCode(err), err)
		}
		return c.NoContent(nethttp.StatusNoContent)
	}
}

func (h *sessionHandler) current() echo.HandlerFunc {
	return func(c echo.Context) error {
		snap, err := h.sessionSrv.Current(c.Request().Context(), c.Param("userID"))
		if err != nil {
			return commonhttp.RestErrorResponse(c, getHTTPStatusCode(err), err)
		}
		return commonhttp.RestSuccessResponse(c, nethttp.StatusOK, snap)
	}
}
