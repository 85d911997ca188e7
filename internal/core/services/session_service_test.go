package services_test

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/vidtube_backend/internal/apperrors"
	"github.com/SscSPs/vidtube_backend/internal/core/domain"
	portssvc "github.com/SscSPs/vidtube_backend/internal/core/ports/services"
	"github.com/SscSPs/vidtube_backend/internal/core/services"
	"github.com/SscSPs/vidtube_backend/internal/platform/config"
	"github.com/SscSPs/vidtube_backend/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTIssuer:                  "vidtube-test",
		AccessTokenSecret:          "access-secret-for-tests",
		AccessTokenExpiryDuration:  time.Hour,
		RefreshTokenSecret:         "refresh-secret-for-tests",
		RefreshTokenExpiryDuration: 24 * time.Hour,
	}
}

type SessionServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	cfg      *config.Config
	repo     *memUserRepo
	events   *recordingPublisher
	tokens   portssvc.TokenSvcFacade
	service  portssvc.SessionSvcFacade
	user     domain.User
	password string
}

func (suite *SessionServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.cfg = testConfig()
	suite.password = "s3cret-pass"

	hash, err := utils.HashPassword(suite.password)
	suite.Require().NoError(err)

	suite.user = domain.User{
		UserID:       uuid.NewString(),
		Username:     "alice",
		Email:        "alice@example.com",
		FullName:     "Alice Doe",
		AvatarURL:    "https://cdn.example/a.png",
		PasswordHash: hash,
	}
	suite.repo = newMemUserRepo(suite.user)
	suite.events = &recordingPublisher{}
	suite.tokens = services.NewTokenService(suite.cfg)
	suite.service = services.NewSessionService(suite.cfg, suite.repo, suite.tokens, suite.events)
}

func (suite *SessionServiceTestSuite) login() *domain.LoginResult {
	res, err := suite.service.Login(suite.ctx, suite.user.Email, suite.password)
	suite.Require().NoError(err)
	return res
}

// --- Login ---

func (suite *SessionServiceTestSuite) TestLogin_Success() {
	res := suite.login()

	suite.Equal(suite.user.UserID, res.User.UserID)
	suite.Empty(res.User.PasswordHash)
	suite.Nil(res.User.RefreshTokenHash)
	suite.NotEmpty(res.Tokens.AccessToken)
	suite.NotEmpty(res.Tokens.RefreshToken)

	stored := suite.repo.storedHash(suite.user.UserID)
	suite.Require().NotNil(stored)
	suite.Equal(utils.HashRefreshToken(res.Tokens.RefreshToken), *stored)
}

func (suite *SessionServiceTestSuite) TestLogin_NormalizesEmail() {
	_, err := suite.service.Login(suite.ctx, "  ALICE@Example.com ", suite.password)
	suite.NoError(err)
}

func (suite *SessionServiceTestSuite) TestLogin_UnknownUser() {
	_, err := suite.service.Login(suite.ctx, "bob@example.com", suite.password)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Equal(http.StatusNotFound, apperrors.HTTPStatus(err))
}

func (suite *SessionServiceTestSuite) TestLogin_WrongPassword() {
	_, err := suite.service.Login(suite.ctx, suite.user.Email, "nope")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(suite.repo.storedHash(suite.user.UserID))
}

func (suite *SessionServiceTestSuite) TestLogin_BlankFields() {
	_, err := suite.service.Login(suite.ctx, "   ", suite.password)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.Login(suite.ctx, suite.user.Email, "  ")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *SessionServiceTestSuite) TestLogin_SupersedesPreviousSession() {
	first := suite.login()
	suite.login()

	_, err := suite.service.Refresh(suite.ctx, first.Tokens.RefreshToken)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

// --- Refresh ---

func (suite *SessionServiceTestSuite) TestRefresh_RotatesToken() {
	res := suite.login()

	pair, err := suite.service.Refresh(suite.ctx, res.Tokens.RefreshToken)
	suite.Require().NoError(err)
	suite.NotEqual(res.Tokens.RefreshToken, pair.RefreshToken)

	stored := suite.repo.storedHash(suite.user.UserID)
	suite.Require().NotNil(stored)
	suite.Equal(utils.HashRefreshToken(pair.RefreshToken), *stored)

	// The old token is single use.
	_, err = suite.service.Refresh(suite.ctx, res.Tokens.RefreshToken)
	suite.Require().Error(err)
	suite.Equal(http.StatusUnauthorized, apperrors.HTTPStatus(err))

	// The new one still works.
	_, err = suite.service.Refresh(suite.ctx, pair.RefreshToken)
	suite.NoError(err)
}

func (suite *SessionServiceTestSuite) TestRefresh_ConcurrentUseOnlyOneWins() {
	res := suite.login()

	const attempts = 8
	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := suite.service.Refresh(suite.ctx, res.Tokens.RefreshToken); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	suite.Equal(1, wins)
}

func (suite *SessionServiceTestSuite) TestRefresh_RejectsAccessToken() {
	res := suite.login()
	_, err := suite.service.Refresh(suite.ctx, res.Tokens.AccessToken)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *SessionServiceTestSuite) TestRefresh_Blank() {
	_, err := suite.service.Refresh(suite.ctx, "")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *SessionServiceTestSuite) TestRefresh_AfterLogout() {
	res := suite.login()
	suite.Require().NoError(suite.service.Logout(suite.ctx, suite.user.UserID))

	_, err := suite.service.Refresh(suite.ctx, res.Tokens.RefreshToken)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

// --- Logout ---

func (suite *SessionServiceTestSuite) TestLogout_Idempotent() {
	suite.login()

	suite.NoError(suite.service.Logout(suite.ctx, suite.user.UserID))
	suite.NoError(suite.service.Logout(suite.ctx, suite.user.UserID))
	suite.Nil(suite.repo.storedHash(suite.user.UserID))
}

func (suite *SessionServiceTestSuite) TestLogout_UnknownUser() {
	err := suite.service.Logout(suite.ctx, uuid.NewString())
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

// --- ChangePassword ---

func (suite *SessionServiceTestSuite) TestChangePassword_Success() {
	err := suite.service.ChangePassword(suite.ctx, suite.user.UserID, suite.password, "brand-new")
	suite.Require().NoError(err)

	_, err = suite.service.Login(suite.ctx, suite.user.Email, suite.password)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	_, err = suite.service.Login(suite.ctx, suite.user.Email, "brand-new")
	suite.NoError(err)

	suite.Contains(suite.events.types(), domain.EventUserPasswordChanged)
}

func (suite *SessionServiceTestSuite) TestChangePassword_KeepsSessionByDefault() {
	res := suite.login()
	suite.Require().NoError(suite.service.ChangePassword(suite.ctx, suite.user.UserID, suite.password, "brand-new"))

	_, err := suite.service.Refresh(suite.ctx, res.Tokens.RefreshToken)
	suite.NoError(err)
}

func (suite *SessionServiceTestSuite) TestChangePassword_RevokesSessionWhenConfigured() {
	suite.cfg.RevokeSessionsOnPasswordChange = true
	res := suite.login()
	suite.Require().NoError(suite.service.ChangePassword(suite.ctx, suite.user.UserID, suite.password, "brand-new"))

	_, err := suite.service.Refresh(suite.ctx, res.Tokens.RefreshToken)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *SessionServiceTestSuite) TestChangePassword_WrongOldPassword() {
	err := suite.service.ChangePassword(suite.ctx, suite.user.UserID, "not-it", "brand-new")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidOldPassword)
	suite.Equal(http.StatusBadRequest, apperrors.HTTPStatus(err))
	suite.Empty(suite.events.types())
}

func (suite *SessionServiceTestSuite) TestChangePassword_Blank() {
	err := suite.service.ChangePassword(suite.ctx, suite.user.UserID, suite.password, " ")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- VerifyAccess ---

func (suite *SessionServiceTestSuite) TestVerifyAccess_Success() {
	res := suite.login()

	user, err := suite.service.VerifyAccess(suite.ctx, res.Tokens.AccessToken)
	suite.Require().NoError(err)
	suite.Equal(suite.user.UserID, user.UserID)
	suite.Empty(user.PasswordHash)
}

func (suite *SessionServiceTestSuite) TestVerifyAccess_RejectsRefreshToken() {
	res := suite.login()
	_, err := suite.service.VerifyAccess(suite.ctx, res.Tokens.RefreshToken)
	suite.Require().Error(err)
	suite.Equal(http.StatusUnauthorized, apperrors.HTTPStatus(err))
}

func (suite *SessionServiceTestSuite) TestVerifyAccess_DeletedUser() {
	pair, err := suite.tokens.IssuePair(suite.ctx, &domain.User{UserID: uuid.NewString(), Username: "ghost"})
	suite.Require().NoError(err)

	_, err = suite.service.VerifyAccess(suite.ctx, pair.AccessToken)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestSessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}
