//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"permit-quotation-service/internal/domain/user"
	"permit-quotation-service/internal/handler/dto/request"
	"permit-quotation-service/internal/handler/dto/response"
	"permit-quotation-service/tests/common/authtest"
	"permit-quotation-service/tests/common/dbtest"
	"permit-quotation-service/tests/common/httptest"
	"permit-quotation-service/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL  = "/api/auth/login"
	logoutURL = "/api/auth/logout"
	meURL     = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "admin@example.com", string(user.RoleAdmin))
	dbtest.CreateTestUser(s.T(), s.DB, "staff@example.com", string(user.RoleStaff))
	dbtest.CreateInactiveUser(s.T(), s.DB, "inactive@example.com")
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		description    string
	}{
		{
			name:           "valid credentials",
			email:          "admin@example.com",
			password:       dbtest.DefaultPassword,
			expectedStatus: http.StatusOK,
			description:    "a registered user can log in",
		},
		{
			name:           "email is case insensitive",
			email:          "Staff@Example.com",
			password:       dbtest.DefaultPassword,
			expectedStatus: http.StatusOK,
			description:    "emails are stored lowercased",
		},
		{
			name:           "unknown user",
			email:          "nobody@example.com",
			password:       dbtest.DefaultPassword,
			expectedStatus: http.StatusUnauthorized,
			description:    "unknown users are rejected",
		},
		{
			name:           "wrong password",
			email:          "admin@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
			description:    "a wrong password is rejected",
		},
		{
			name:           "inactive user",
			email:          "inactive@example.com",
			password:       dbtest.DefaultPassword,
			expectedStatus: http.StatusForbidden,
			description:    "inactive accounts cannot log in",
		},
		{
			name:           "empty email",
			email:          "",
			password:       dbtest.DefaultPassword,
			expectedStatus: http.StatusBadRequest,
			description:    "an empty email is rejected",
		},
		{
			name:           "empty password",
			email:          "admin@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
			description:    "an empty password is rejected",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{Email: tt.email, Password: tt.password}
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				var loginRes response.LoginResponse
				err := httptest.DecodeResponseBody(t, w.Body, &loginRes)
				require.NoError(t, err)
				require.NotEmpty(t, loginRes.AccessToken, "access token is empty")
				require.Greater(t, loginRes.ExpiresIn, int64(0), "expiry is not set")
				require.NotNil(t, httptest.ExtractCookie(w, "access_token"), "access token cookie is missing")

				var lastLogin any
				err = s.DB.QueryRow(t.Context(), "SELECT last_login FROM users WHERE email = lower($1)", tt.email).Scan(&lastLogin)
				require.NoError(t, err)
				require.NotNil(t, lastLogin, "last_login was not updated")
			}
		})
	}
}

func (s *authSuite) TestLogout() {
	s.Run("logout clears the cookie", func() {
		t := s.T()

		authtest.LoginUser(t, s.Router, "admin@example.com", dbtest.DefaultPassword)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, "")
		require.Equal(t, http.StatusNoContent, w.Code)

		c := httptest.ExtractCookie(w, "access_token")
		require.NotNil(t, c)
		require.Empty(t, c.Value)
	})
}

func (s *authSuite) TestMe() {
	tests := []struct {
		name           string
		setupUser      func() (string, string, string) // email, role, token
		expectedStatus int
		description    string
	}{
		{
			name: "admin user",
			setupUser: func() (string, string, string) {
				email := "admin2@example.com"
				role := string(user.RoleAdmin)
				token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, email, role)
				return email, role, token
			},
			expectedStatus: http.StatusOK,
			description:    "an admin can read their profile",
		},
		{
			name: "staff user",
			setupUser: func() (string, string, string) {
				email := "staff2@example.com"
				role := string(user.RoleStaff)
				token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, email, role)
				return email, role, token
			},
			expectedStatus: http.StatusOK,
			description:    "staff can read their profile",
		},
		{
			name: "invalid token",
			setupUser: func() (string, string, string) {
				return "", "", "invalid-token"
			},
			expectedStatus: http.StatusUnauthorized,
			description:    "an invalid token is rejected",
		},
		{
			name: "no token",
			setupUser: func() (string, string, string) {
				return "", "", ""
			},
			expectedStatus: http.StatusUnauthorized,
			description:    "a missing token is rejected",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			email, role, token := tt.setupUser()
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				responseBody := w.Body.String()
				require.Contains(t, responseBody, email, "response lacks the email")
				require.Contains(t, responseBody, role, "response lacks the role")
				require.NotContains(t, responseBody, "password", "response leaks password data")
				require.Contains(t, responseBody, `"is_active":true`)
				require.Contains(t, responseBody, `"last_login"`, "login timestamp is not exposed")
			}
		})
	}
}

func (s *authSuite) TestTokenExpiry() {
	s.Run("expired token is rejected", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "expiry@example.com", string(user.RoleAdmin))
		expiredToken := s.jwtHelper.CreateExpiredToken(t, userID, user.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expiredToken)
		require.Equal(t, http.StatusUnauthorized, w.Code, "expired tokens must be rejected")
	})

	s.Run("token of a deactivated user is rejected", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "leaver@example.com", string(user.RoleStaff))
		token := s.jwtHelper.GenerateToken(t, userID, user.RoleStaff)

		_, err := s.DB.Exec(t.Context(), "UPDATE users SET is_active = false WHERE id = $1", userID)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

func (s *authSuite) TestRoleHierarchy() {
	s.Run("staff cannot manage the catalog", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "staff@example.com", dbtest.DefaultPassword)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/catalog/agencies", map[string]any{"name": "LGU"}, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("admin inherits staff access", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "admin@example.com", dbtest.DefaultPassword)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/quotations", nil, token)
		require.Equal(t, http.StatusOK, w.Code)
	})
}

func (s *authSuite) TestConcurrentLogin() {
	s.Run("separate sessions stay valid", func() {
		t := s.T()

		token1 := authtest.LoginUser(t, s.Router, "admin@example.com", dbtest.DefaultPassword)
		token2 := authtest.LoginUser(t, s.Router, "admin@example.com", dbtest.DefaultPassword)

		w1 := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token1)
		w2 := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token2)

		require.Equal(t, http.StatusOK, w1.Code, "first token is invalid")
		require.Equal(t, http.StatusOK, w2.Code, "second token is invalid")
	})
}
