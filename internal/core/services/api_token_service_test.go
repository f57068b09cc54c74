package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/treeservice_ops/internal/apperrors"
	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	portssvc "github.com/SscSPs/treeservice_ops/internal/core/ports/services"
	"github.com/SscSPs/treeservice_ops/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type APITokenServiceTestSuite struct {
	suite.Suite
	repo    *MockAPITokenRepository
	service portssvc.APITokenSvc
	ctx     context.Context
}

func (suite *APITokenServiceTestSuite) SetupTest() {
	suite.repo = new(MockAPITokenRepository)
	suite.service = services.NewAPITokenService(suite.repo, testClock())
	suite.ctx = context.Background()
}

func TestAPITokenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(APITokenServiceTestSuite))
}

// issue creates a key and returns it with the record the repository saw.
func (suite *APITokenServiceTestSuite) issue(expiresIn *time.Duration) (string, *domain.APIToken) {
	var saved *domain.APIToken
	suite.repo.On("Create", suite.ctx, mock.AnythingOfType("*domain.APIToken")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*domain.APIToken) }).
		Return(nil).Once()

	key, token, err := suite.service.CreateToken(suite.ctx, "org-1", "user-1", "  ci runner ", expiresIn)
	suite.Require().NoError(err)
	suite.Require().Same(saved, token)
	return key, token
}

func (suite *APITokenServiceTestSuite) TestCreateToken_KeyFormat() {
	ttl := 48 * time.Hour
	key, token := suite.issue(&ttl)

	suite.True(strings.HasPrefix(key, services.TokenPrefix+token.ID+"."))
	suite.Equal("ci runner", token.Name)
	suite.NotContains(token.TokenHash, strings.TrimPrefix(key, services.TokenPrefix+token.ID+"."))
	suite.Require().NotNil(token.ExpiresAt)
	suite.True(token.ExpiresAt.Equal(fixedNow.Add(ttl)))
}

func (suite *APITokenServiceTestSuite) TestCreateToken_Validation() {
	_, _, err := suite.service.CreateToken(suite.ctx, "org-1", "user-1", "   ", nil)
	suite.ErrorIs(err, apperrors.ErrValidation)

	negative := -time.Hour
	_, _, err = suite.service.CreateToken(suite.ctx, "org-1", "user-1", "ci", &negative)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, _, err = suite.service.CreateToken(suite.ctx, "", "user-1", "ci", nil)
	suite.ErrorIs(err, apperrors.ErrNoTenantSelected)
}

func (suite *APITokenServiceTestSuite) TestValidateToken_Success() {
	key, token := suite.issue(nil)
	suite.repo.On("FindByID", suite.ctx, token.ID).Return(token, nil).Once()
	suite.repo.On("TouchLastUsed", suite.ctx, token.ID, fixedNow).Return(nil).Once()

	got, err := suite.service.ValidateToken(suite.ctx, key)

	suite.Require().NoError(err)
	suite.Equal("org-1", got.CompanyID)
	suite.Require().NotNil(got.LastUsedAt)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *APITokenServiceTestSuite) TestValidateToken_TouchFailureIgnored() {
	key, token := suite.issue(nil)
	suite.repo.On("FindByID", suite.ctx, token.ID).Return(token, nil).Once()
	suite.repo.On("TouchLastUsed", suite.ctx, token.ID, fixedNow).Return(errors.New("db down")).Once()

	got, err := suite.service.ValidateToken(suite.ctx, key)

	suite.Require().NoError(err)
	suite.Nil(got.LastUsedAt)
}

func (suite *APITokenServiceTestSuite) TestValidateToken_Rejections() {
	key, token := suite.issue(nil)

	cases := map[string]func() string{
		"missing prefix": func() string { return strings.TrimPrefix(key, services.TokenPrefix) },
		"no secret":      func() string { return services.TokenPrefix + token.ID + "." },
		"wrong secret": func() string {
			suite.repo.On("FindByID", suite.ctx, token.ID).Return(token, nil).Once()
			return services.TokenPrefix + token.ID + ".nope"
		},
		"unknown id": func() string {
			suite.repo.On("FindByID", suite.ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()
			return services.TokenPrefix + "ghost.secret"
		},
		"revoked": func() string {
			revoked := *token
			at := fixedNow.Add(-time.Minute)
			revoked.RevokedAt = &at
			suite.repo.On("FindByID", suite.ctx, token.ID).Return(&revoked, nil).Once()
			return key
		},
		"expired": func() string {
			expired := *token
			at := fixedNow
			expired.ExpiresAt = &at
			suite.repo.On("FindByID", suite.ctx, token.ID).Return(&expired, nil).Once()
			return key
		},
	}
	for name, build := range cases {
		suite.Run(name, func() {
			_, err := suite.service.ValidateToken(suite.ctx, build())
			suite.ErrorIs(err, apperrors.ErrUnauthorized)
		})
	}
	suite.repo.AssertNotCalled(suite.T(), "TouchLastUsed", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *APITokenServiceTestSuite) TestRevokeToken() {
	suite.repo.On("FindByID", suite.ctx, "t-1").Return(&domain.APIToken{ID: "t-1", CompanyID: "org-1"}, nil).Once()
	suite.repo.On("Revoke", suite.ctx, "t-1", fixedNow).Return(nil).Once()

	suite.NoError(suite.service.RevokeToken(suite.ctx, "org-1", "user-1", "t-1"))
	suite.repo.AssertExpectations(suite.T())
}

func (suite *APITokenServiceTestSuite) TestRevokeToken_AlreadyRevokedAndForeign() {
	at := fixedNow
	suite.repo.On("FindByID", suite.ctx, "t-1").Return(&domain.APIToken{ID: "t-1", CompanyID: "org-1", RevokedAt: &at}, nil).Once()
	suite.repo.On("FindByID", suite.ctx, "t-2").Return(&domain.APIToken{ID: "t-2", CompanyID: "org-2"}, nil).Once()

	suite.NoError(suite.service.RevokeToken(suite.ctx, "org-1", "user-1", "t-1"))
	suite.ErrorIs(suite.service.RevokeToken(suite.ctx, "org-1", "user-1", "t-2"), apperrors.ErrForbidden)
	suite.repo.AssertNotCalled(suite.T(), "Revoke", mock.Anything, mock.Anything, mock.Anything)
}
