package http

import (
	"github.com/labstack/echo/v4"
)

type (
	RestErrorResponseModel struct {
		Status  string      `json:"status" example:"error"`
		Code    interface{} `json:"code"`
		Message string      `json:"message" example:"error"`
	}

	RestErrorValidationResponseModel struct {
		Status  string      `json:"status" example:"error"`
		Message string      `json:"message" example:"validation error"`
		Errors  interface{} `json:"errors"`
	}
)

func RestSuccessResponse(c echo.Context, code int, in interface{}) error {
	return c.JSON(code, in)
}

func RestErrorResponse(c echo.Context, statusCode int, err error) error {
	return c.JSON(statusCode, RestErrorResponseModel{
		Status:  "error",
		Code:    statusCode,
		Message: err.Error(),
	})
}

func RestErrorValidationResponse(c echo.Context, statusCode int, errs interface{}) error {
	return c.JSON(statusCode, RestErrorValidationResponseModel{
		Status:  "error",
		Message: "validation error",
		Errors:  errs,
	})
}
