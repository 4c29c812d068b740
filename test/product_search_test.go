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

func (s *IntegrationTestSuite) signIn(email string, password string) dto.SignInResponse {
	reqBody, err := json.Marshal(dto.SignInRequest{
		Email:    email,
		Password: password,
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

	var body struct {
		Success bool               `json:"success"`
		Data    dto.SignInResponse `json:"data"`
	}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))

	return body.Data
}

func (s *IntegrationTestSuite) Test_SearchProducts() {
	email := fmt.Sprintf("search-%d@example.com", time.Now().UnixNano())
	s.signUpUser(email, "secret-password")
	signIn := s.signIn(email, "secret-password")

	type TestCase struct {
		Name           string
		Target         string
		Token          string
		ExpectedStatus int
	}

	testCases := []TestCase{
		{
			Name:           "Requires a token",
			Target:         "/api/v1/products?productId=0&categoryId=1&direction=prev",
			ExpectedStatus: http.StatusUnauthorized,
		},
		{
			Name:           "Scrolls a category",
			Target:         "/api/v1/products?productId=0&categoryId=1&direction=prev",
			Token:          signIn.Token,
			ExpectedStatus: http.StatusOK,
		},
		{
			Name:           "Rejects a missing search condition",
			Target:         "/api/v1/products?productId=0&direction=next",
			Token:          signIn.Token,
			ExpectedStatus: http.StatusBadRequest,
		},
		{
			Name:           "Rejects an unknown direction",
			Target:         "/api/v1/products?productId=0&categoryId=1&direction=sideways",
			Token:          signIn.Token,
			ExpectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.Name, func() {
			req, err := http.NewRequest(http.MethodGet,
				fmt.Sprintf("http://localhost:%s%s", s.app.Config.ServicePort, tc.Target),
				nil,
			)
			s.NoError(err)

			if tc.Token != "" {
				req.Header.Set(echo.HeaderAuthorization, "Bearer "+tc.Token)
			}

			client := http.Client{}
			resp, err := client.Do(req)
			s.NoError(err)
			defer resp.Body.Close()

			s.Equal(tc.ExpectedStatus, resp.StatusCode)
		})
	}
}
