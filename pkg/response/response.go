package response

import (
	"net/http"

	"github.com/gdh/parayo/pkg/errs"
	"github.com/labstack/echo/v4"
)

type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success      bool   `json:"success"`
	ErrorMessage string `json:"errorMessage"`
}

func WriteSuccessResponse(c echo.Context, data interface{}) error {
	resp := SuccessResponse{}
	resp.Success = true
	resp.Data = data

	return c.JSON(http.StatusOK, resp)
}

func WriteErrorResponse(c echo.Context, err error) error {
	statusCode := errs.GetErrorStatusCode(err)
	resp := ErrorResponse{}
	resp.Success = false
	resp.ErrorMessage = err.Error()

	return c.JSON(statusCode, resp)
}
