package controller

import (
	"io"
	"strings"

	"github.com/gdh/parayo/internal/dto"
	"github.com/gdh/parayo/internal/middleware"
	"github.com/gdh/parayo/internal/service"
	"github.com/gdh/parayo/pkg/errs"
	"github.com/gdh/parayo/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type UserController struct {
	service service.UserService
}

func CreateUserController(e *echo.Group, service service.UserService) {
	uc := UserController{
		service: service,
	}
	e.POST("/users", uc.SignUp)
	e.POST("/users/fcm-token", uc.UpdateFcmToken)
	e.POST("/signin", uc.SignIn)
	e.POST("/refresh_token", uc.RefreshToken)
}

func (c *UserController) SignUp(e echo.Context) error {
	payload := dto.SignUpRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "SignUp").Msg("")
	}

	err = c.service.SignUp(e.Request().Context(), payload)

	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, nil)
}

func (c *UserController) SignIn(e echo.Context) error {
	payload := dto.SignInRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "SignIn").Msg("")
	}

	respPayload, err := c.service.SignIn(e.Request().Context(), payload)

	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, respPayload)
}

// RefreshToken reissues an access token. The refresh token itself has already
// been verified by the validation middleware; this only rejects requests that
// did not ask for the refresh_token grant explicitly.
func (c *UserController) RefreshToken(e echo.Context) error {
	if e.QueryParam("grant_type") != middleware.GrantTypeRefreshToken {
		return response.WriteErrorResponse(e, errs.ErrInvalidGrantType)
	}

	respPayload, err := c.service.RefreshToken(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, respPayload)
}

// UpdateFcmToken reads the device token as a plain string body.
func (c *UserController) UpdateFcmToken(e echo.Context) error {
	body, err := io.ReadAll(e.Request().Body)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateFcmToken").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient)
	}

	fcmToken := strings.Trim(strings.TrimSpace(string(body)), `"`)
	if fcmToken == "" {
		return response.WriteErrorResponse(e, errs.ErrClient)
	}

	err = c.service.UpdateFcmToken(e.Request().Context(), fcmToken)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, nil)
}
