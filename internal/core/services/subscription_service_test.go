package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/vidtube_backend/internal/apperrors"
	"github.com/SscSPs/vidtube_backend/internal/core/domain"
	portssvc "github.com/SscSPs/vidtube_backend/internal/core/ports/services"
	"github.com/SscSPs/vidtube_backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SubscriptionServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	userRepo *MockUserRepository
	subRepo  *MockSubscriptionRepository
	service  portssvc.SubscriptionSvcFacade
}

func (suite *SubscriptionServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.userRepo = new(MockUserRepository)
	suite.subRepo = new(MockSubscriptionRepository)
	suite.service = services.NewSubscriptionService(suite.userRepo, suite.subRepo)
}

func (suite *SubscriptionServiceTestSuite) TearDownTest() {
	suite.userRepo.AssertExpectations(suite.T())
	suite.subRepo.AssertExpectations(suite.T())
}

func (suite *SubscriptionServiceTestSuite) TestSubscribe() {
	subscriber, channel := uuid.NewString(), uuid.NewString()
	suite.userRepo.On("FindUserByID", suite.ctx, channel).Return(&domain.User{UserID: channel}, nil).Once()
	suite.subRepo.On("SaveSubscription", suite.ctx, mock.MatchedBy(func(s domain.Subscription) bool {
		return s.SubscriberID == subscriber && s.ChannelID == channel && s.SubscriptionID != ""
	})).Return(nil).Once()

	suite.NoError(suite.service.Subscribe(suite.ctx, subscriber, channel))
}

func (suite *SubscriptionServiceTestSuite) TestSubscribe_Self() {
	id := uuid.NewString()
	err := suite.service.Subscribe(suite.ctx, id, id)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *SubscriptionServiceTestSuite) TestSubscribe_InvalidChannelID() {
	err := suite.service.Subscribe(suite.ctx, uuid.NewString(), "abc")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *SubscriptionServiceTestSuite) TestSubscribe_UnknownChannel() {
	channel := uuid.NewString()
	suite.userRepo.On("FindUserByID", suite.ctx, channel).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.Subscribe(suite.ctx, uuid.NewString(), channel)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *SubscriptionServiceTestSuite) TestUnsubscribe() {
	subscriber, channel := uuid.NewString(), uuid.NewString()
	suite.subRepo.On("DeleteSubscription", suite.ctx, subscriber, channel).Return(nil).Once()

	suite.NoError(suite.service.Unsubscribe(suite.ctx, subscriber, channel))
}

func TestSubscriptionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SubscriptionServiceTestSuite))
}
