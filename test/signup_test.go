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

func (s *IntegrationTestSuite) Test_SignUp() {
	email := fmt.Sprintf("signup-%d@example.com", time.Now().UnixNano())

	type TestCase struct {
		Name           string
		Request        dto.SignUpRequest
		ExpectedStatus int
	}

	testCases := []TestCase{
		{
			Name: "Valid request",
			Request: dto.SignUpRequest{
				Name:     "tester",
				Email:    email,
				Password: "secret-password",
			},
			ExpectedStatus: http.StatusOK,
		},
		{
			Name: "Duplicate email",
			Request: dto.SignUpRequest{
				Name:     "tester",
				Email:    email,
				Password: "secret-password",
			},
			ExpectedStatus: http.StatusBadRequest,
		},
		{
			Name: "Invalid email",
			Request: dto.SignUpRequest{
				Name:     "tester",
				Email:    "not-an-email",
				Password: "secret-password",
			},
			ExpectedStatus: http.StatusBadRequest,
		},
		{
			Name: "Name too short",
			Request: dto.SignUpRequest{
				Name:     "a",
				Email:    fmt.Sprintf("short-name-%d@example.com", time.Now().UnixNano()),
				Password: "secret-password",
			},
			ExpectedStatus: http.StatusBadRequest,
		},
		{
			Name: "Password too short",
			Request: dto.SignUpRequest{
				Name:     "tester",
				Email:    fmt.Sprintf("short-pass-%d@example.com", time.Now().UnixNano()),
				Password: "short",
			},
			ExpectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.Name, func() {
			reqBody, err := json.Marshal(tc.Request)
			s.NoError(err)

			req, err := http.NewRequest(http.MethodPost,
				fmt.Sprintf("http://localhost:%s/api/v1/users", s.app.Config.ServicePort),
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
