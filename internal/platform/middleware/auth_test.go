package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"

	"permitgate/internal/platform/secrets"
	"permitgate/pkg/requestcontext"
)

const testSigningKey = "test-signing-key"

type AdminAuthSuite struct {
	suite.Suite
	apiKey     string
	apiKeyHash string
}

func TestAdminAuthSuite(t *testing.T) {
	suite.Run(t, new(AdminAuthSuite))
}

func (s *AdminAuthSuite) SetupSuite() {
	var err error
	s.apiKey, err = secrets.Generate()
	s.Require().NoError(err)
	s.apiKeyHash, err = secrets.Hash(s.apiKey)
	s.Require().NoError(err)
}

// serve runs the request through AdminAuth and returns the recorder plus the
// actor id the middleware injected, empty when the request was rejected.
func (s *AdminAuthSuite) serve(req *http.Request, apiKeyHash string) (*httptest.ResponseRecorder, string) {
	var actor string
	handler := AdminAuth(testSigningKey, apiKeyHash)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor = requestcontext.ActorID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, actor
}

func (s *AdminAuthSuite) signToken(claims AdminClaims) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSigningKey))
	s.Require().NoError(err)
	return token
}

func (s *AdminAuthSuite) TestBearerToken() {
	s.Run("admin token is accepted and actor injected", func() {
		req := httptest.NewRequest(http.MethodPost, "/watchlist", nil)
		req.Header.Set("Authorization", "Bearer "+s.signToken(AdminClaims{
			Role: "admin",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "officer-7",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}))

		rec, actor := s.serve(req, "")
		s.Equal(http.StatusNoContent, rec.Code)
		s.Equal("officer-7", actor)
	})

	s.Run("missing credentials return 401", func() {
		req := httptest.NewRequest(http.MethodPost, "/watchlist", nil)
		rec, _ := s.serve(req, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("non-admin role returns 403", func() {
		req := httptest.NewRequest(http.MethodPost, "/watchlist", nil)
		req.Header.Set("Authorization", "Bearer "+s.signToken(AdminClaims{
			Role: "reviewer",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "officer-7",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}))

		rec, _ := s.serve(req, "")
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("expired token returns 401", func() {
		req := httptest.NewRequest(http.MethodPost, "/watchlist", nil)
		req.Header.Set("Authorization", "Bearer "+s.signToken(AdminClaims{
			Role: "admin",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "officer-7",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		}))

		rec, _ := s.serve(req, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("token signed with another key returns 401", func() {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, AdminClaims{
			Role: "admin",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "officer-7",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}).SignedString([]byte("some-other-key"))
		s.Require().NoError(err)

		req := httptest.NewRequest(http.MethodPost, "/watchlist", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		rec, _ := s.serve(req, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("mangled authorization header returns 401", func() {
		req := httptest.NewRequest(http.MethodPost, "/watchlist", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rec, _ := s.serve(req, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *AdminAuthSuite) TestAPIKey() {
	s.Run("valid api key is accepted", func() {
		req := httptest.NewRequest(http.MethodPost, "/watchlist", nil)
		req.Header.Set("X-Admin-Api-Key", s.apiKey)

		rec, actor := s.serve(req, s.apiKeyHash)
		s.Equal(http.StatusNoContent, rec.Code)
		s.Equal("admin-api-key", actor)
	})

	s.Run("wrong api key returns 401", func() {
		req := httptest.NewRequest(http.MethodPost, "/watchlist", nil)
		req.Header.Set("X-Admin-Api-Key", "wrong-key")

		rec, _ := s.serve(req, s.apiKeyHash)
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("api key path is disabled without a configured hash", func() {
		req := httptest.NewRequest(http.MethodPost, "/watchlist", nil)
		req.Header.Set("X-Admin-Api-Key", s.apiKey)

		rec, _ := s.serve(req, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}
