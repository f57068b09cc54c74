package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/treeservice_ops/internal/apperrors"
	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	"github.com/SscSPs/treeservice_ops/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testSecret = "test-secret-key-that-is-long-enough"

type mockTokenSvc struct {
	mock.Mock
}

func (m *mockTokenSvc) CreateToken(ctx context.Context, companyID, userID, name string, expiresIn *time.Duration) (string, *domain.APIToken, error) {
	args := m.Called(ctx, companyID, userID, name, expiresIn)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*domain.APIToken), args.Error(2)
}

func (m *mockTokenSvc) ListTokens(ctx context.Context, companyID string) ([]domain.APIToken, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).([]domain.APIToken), args.Error(1)
}

func (m *mockTokenSvc) RevokeToken(ctx context.Context, companyID, userID, tokenID string) error {
	return m.Called(ctx, companyID, userID, tokenID).Error(0)
}

func (m *mockTokenSvc) ValidateToken(ctx context.Context, tokenString string) (*domain.APIToken, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.APIToken), args.Error(1)
}

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router   *gin.Engine
	tokenSvc *mockTokenSvc
}

func (suite *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.tokenSvc = new(mockTokenSvc)
	suite.router = gin.New()
	suite.router.Use(
		middleware.APITokenAuth(suite.tokenSvc),
		middleware.AuthMiddleware(testSecret, "treeops-test"),
		middleware.RequireTenant(),
	)
	suite.router.GET("/whoami", func(c *gin.Context) {
		userID, _ := middleware.GetUserIDFromContext(c)
		companyID, _ := middleware.GetCompanyIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"user": userID, "company": companyID})
	})
}

func (suite *AuthMiddlewareTestSuite) signToken(claims middleware.Claims, secret string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	suite.Require().NoError(err)
	return signed
}

func (suite *AuthMiddlewareTestSuite) claims(userID, orgID string) middleware.Claims {
	return middleware.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "treeops-test",
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		OrgID: orgID,
	}
}

func (suite *AuthMiddlewareTestSuite) do(header, value string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if header != "" {
		req.Header.Set(header, value)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AuthMiddlewareTestSuite) TestValidTokenWithOrganization() {
	w := suite.do("Authorization", "Bearer "+suite.signToken(suite.claims("user-1", "org-1"), testSecret))

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"user":"user-1","company":"org-1"}`, w.Body.String())
}

func (suite *AuthMiddlewareTestSuite) TestTokenWithoutOrganizationIsRejected() {
	w := suite.do("Authorization", "Bearer "+suite.signToken(suite.claims("user-1", ""), testSecret))

	suite.Equal(http.StatusForbidden, w.Code)
	suite.Contains(w.Body.String(), apperrors.ErrNoTenantSelected.Error())
}

func (suite *AuthMiddlewareTestSuite) TestMissingHeader() {
	w := suite.do("", "")
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *AuthMiddlewareTestSuite) TestWrongSecret() {
	w := suite.do("Authorization", "Bearer "+suite.signToken(suite.claims("user-1", "org-1"), "another-secret"))
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *AuthMiddlewareTestSuite) TestWrongIssuer() {
	c := suite.claims("user-1", "org-1")
	c.Issuer = "someone-else"
	w := suite.do("Authorization", "Bearer "+suite.signToken(c, testSecret))
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *AuthMiddlewareTestSuite) TestExpiredToken() {
	c := suite.claims("user-1", "org-1")
	c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	w := suite.do("Authorization", "Bearer "+suite.signToken(c, testSecret))

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), "Token has expired")
}

func (suite *AuthMiddlewareTestSuite) TestAPIKeyResolvesOrganization() {
	suite.tokenSvc.On("ValidateToken", mock.Anything, "tok_abc.secret").
		Return(&domain.APIToken{ID: "abc", CompanyID: "org-9", CreatedBy: "user-9"}, nil).Once()

	w := suite.do("x-api-key", "tok_abc.secret")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"user":"user-9","company":"org-9"}`, w.Body.String())
	suite.tokenSvc.AssertExpectations(suite.T())
}

func (suite *AuthMiddlewareTestSuite) TestInvalidAPIKeyFallsThroughToJWT() {
	suite.tokenSvc.On("ValidateToken", mock.Anything, "bad").Return(nil, apperrors.ErrUnauthorized).Once()

	w := suite.do("x-api-key", "bad")

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func TestGetLoggerFromCtxFallsBackToDefault(t *testing.T) {
	assert.NotNil(t, middleware.GetLoggerFromCtx(context.Background()))
}
