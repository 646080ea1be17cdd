//go:build e2e

package auth_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"barbershop-api/internal/domain/user"
	"barbershop-api/internal/handler/dto/request"
	"barbershop-api/tests/common/authtest"
	"barbershop-api/tests/common/dbtest"
	"barbershop-api/tests/common/httptest"
	"barbershop-api/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL   = "/api/auth/login"
	logoutURL  = "/api/auth/logout"
	refreshURL = "/api/auth/refresh"
	meURL      = "/api/auth/me"
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
	dbtest.CreateTestUser(s.T(), s.DB, "reception@example.com", string(user.RoleReceptionist))
	dbtest.CreateTestUser(s.T(), s.DB, "barber@example.com", string(user.RoleBarber))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleReceptionist))

	ctx := s.T().Context()
	_, err := s.DB.Exec(ctx, "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "valid credentials",
			email:          "admin@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown user",
			email:          "nonexistent@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong password",
			email:          "admin@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "inactive account",
			email:          "inactive@example.com",
			password:       "password123",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "malformed email",
			email:          "not-an-email",
			password:       "password123",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")

			require.Equal(s.T(), tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				accessCookie := httptest.ExtractCookie(w, "access_token")
				require.NotNil(s.T(), accessCookie)
				require.NotEmpty(s.T(), accessCookie.Value)

				refreshCookie := httptest.ExtractCookie(w, "refresh_token")
				require.NotNil(s.T(), refreshCookie)
				require.NotEmpty(s.T(), refreshCookie.Value)
			}
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("returns the authenticated user", func() {
		token := authtest.LoginUser(s.T(), s.Router, "reception@example.com", "password123")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

		var response map[string]any
		require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &response))
		require.Equal(s.T(), "reception@example.com", response["email"])
		require.Equal(s.T(), "receptionist", response["role"])
	})

	s.Run("rejects requests without a token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})

	s.Run("rejects an expired token", func() {
		userID := dbtest.CreateTestUser(s.T(), s.DB, "expired@example.com", string(user.RoleReceptionist))
		token := s.jwtHelper.CreateExpiredToken(s.T(), userID, user.RoleReceptionist)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestRefresh() {
	s.Run("issues a new pair from the cookie", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "reception@example.com", Password: "password123"}, "")
		require.Equal(s.T(), http.StatusOK, w.Code)

		cookies := w.Result().Cookies()
		w = httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPost, refreshURL, nil, cookies, "")
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

		var response map[string]any
		require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &response))
		require.NotEmpty(s.T(), response["access_token"])
	})

	s.Run("rejects a missing refresh token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL, nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})

	s.Run("rejects a garbage refresh token", func() {
		body := map[string]any{"refresh_token": "not-a-jwt"}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL, body, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("clears the session cookies", func() {
		token := authtest.LoginUser(s.T(), s.Router, "reception@example.com", "password123")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(s.T(), http.StatusNoContent, w.Code)

		accessCookie := httptest.ExtractCookie(w, "access_token")
		require.NotNil(s.T(), accessCookie)
		require.Empty(s.T(), accessCookie.Value)
	})

	s.Run("requires authentication", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestRoleHierarchy() {
	s.Run("barbers cannot book appointments", func() {
		token := authtest.LoginUser(s.T(), s.Router, "barber@example.com", "password123")

		body := map[string]any{
			"barber_id":  "00000000-0000-0000-0000-000000000001",
			"client_id":  "00000000-0000-0000-0000-000000000002",
			"service_id": "00000000-0000-0000-0000-000000000003",
			"start_time": "2026-03-02T10:00:00Z",
		}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/appointments", body, token)
		require.Equal(s.T(), http.StatusForbidden, w.Code, w.Body.String())
	})
}
