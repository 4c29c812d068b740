package test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gdh/parayo/internal/dto"
	"github.com/labstack/echo/v4"
)

func (s *IntegrationTestSuite) signUpUser(email string, password string) {
	reqBody, err := json.Marshal(dto.SignUpRequest{
		Name:     "tester",
		Email:    email,
		Password: password,
	})
	s.Require().NoError(err)

	resp, err := http.Post(
		fmt.Sprintf("http://localhost:%s/api/v1/users", s.app.Config.ServicePort),
		echo.MIMEApplicationJSON,
		bytes.NewBuffer(reqBody),
	)
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)
}

func (s *IntegrationTestSuite) Test_SignIn() {
	email := fmt.Sprintf("signin-%d@example.com", time.Now().UnixNano())
	s.signUpUser(email, "secret-password")

	type TestCase struct {
		Name           string
		Request        dto.SignInRequest
		ExpectedStatus int
	}

	testCases := []TestCase{
		{
			Name: "Valid request",
			Request: dto.SignInRequest{
				Email:    email,
				Password: "secret-password",
			},
			ExpectedStatus: http.StatusOK,
		},
		{
			Name: "Wrong password",
			Request: dto.SignInRequest{
				Email:    email,
				Password: "wrong-password",
			},
			ExpectedStatus: http.StatusUnauthorized,
		},
		{
			Name: "Unknown email",
			Request: dto.SignInRequest{
				Email:    "nobody@example.com",
				Password: "secret-password",
			},
			ExpectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.Name, func() {
			reqBody, err := json.Marshal(tc.Request)
			s.NoError(err)

			req, err := http.NewRequest(http.MethodPost,
				fmt.Sprintf("http://localhost:%s/api/v1/signin", s.app.Config.ServicePort),
				bytes.NewBuffer(reqBody),
			)
			s.NoError(err)

			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

			client := http.Client{}
			resp, err := client.Do(req)
			s.NoError(err)
			defer resp.Body.Close()

			s.Equal(tc.ExpectedStatus, resp.StatusCode)
		})
	}
}

func (s *IntegrationTestSuite) Test_RefreshToken() {
	email := fmt.Sprintf("refresh-%d@example.com", time.Now().UnixNano())
	s.signUpUser(email, "secret-password")

	reqBody, err := json.Marshal(dto.SignInRequest{
		Email:    email,
		Password: "secret-password",
	})
	s.Require().NoError(err)

	resp, err := http.Post(
		fmt.Sprintf("http://localhost:%s/api/v1/signin", s.app.Config.ServicePort),
		echo.MIMEApplicationJSON,
		bytes.NewBuffer(reqBody),
	)
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var signInBody struct {
		Success bool               `json:"success"`
		Data    dto.SignInResponse `json:"data"`
	}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&signInBody))
	s.Require().NotEmpty(signInBody.Data.RefreshToken)

	req, err := http.NewRequest(http.MethodPost,
		fmt.Sprintf("http://localhost:%s/api/v1/refresh_token?grant_type=refresh_token", s.app.Config.ServicePort),
		nil,
	)
	s.Require().NoError(err)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signInBody.Data.RefreshToken)

	client := http.Client{}
	refreshResp, err := client.Do(req)
	s.Require().NoError(err)
	defer refreshResp.Body.Close()
	s.Require().Equal(http.StatusOK, refreshResp.StatusCode)

	var refreshBody struct {
		Success bool                     `json:"success"`
		Data    dto.RefreshTokenResponse `json:"data"`
	}
	s.Require().NoError(json.NewDecoder(refreshResp.Body).Decode(&refreshBody))
	s.NotEmpty(refreshBody.Data.Token)
}
