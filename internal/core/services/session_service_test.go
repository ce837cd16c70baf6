package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/digital_khata_client/internal/adapters/storage"
	"github.com/SscSPs/digital_khata_client/internal/apperrors"
	"github.com/SscSPs/digital_khata_client/internal/core/domain"
	portssvc "github.com/SscSPs/digital_khata_client/internal/core/ports/services"
	"github.com/SscSPs/digital_khata_client/internal/core/router"
	"github.com/SscSPs/digital_khata_client/internal/core/services"
	"github.com/SscSPs/digital_khata_client/internal/core/state"
	"github.com/SscSPs/digital_khata_client/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SessionServiceTestSuite struct {
	suite.Suite
	api      *MockBackendAPI
	storage  *storage.FileStorage
	store    *state.Store
	router   *router.Router
	notifier *notifierSpy
	service  portssvc.SessionSvcFacade
}

func (suite *SessionServiceTestSuite) SetupTest() {
	suite.api = new(MockBackendAPI)
	suite.storage = storage.NewMemoryStorage()
	suite.store = state.NewStore(suite.storage, state.NewDocumentRoot(), nil)
	suite.router = router.NewRouter(suite.store, nil)
	suite.router.Start()
	suite.notifier = &notifierSpy{}
	suite.service = services.NewSessionService(suite.api, suite.store, suite.router, suite.notifier)
}

func (suite *SessionServiceTestSuite) TearDownTest() {
	suite.router.Stop()
	suite.api.AssertExpectations(suite.T())
}

func (suite *SessionServiceTestSuite) login() domain.User {
	user := domain.User{ID: "1", Name: "Asha", Email: "asha@example.com", BusinessName: "Asha Stores"}
	suite.api.On("Login", mock.Anything, "asha@example.com", "secret").Return(&user, nil).Once()
	_, err := suite.service.Login(context.Background(), dto.LoginRequest{Email: "asha@example.com", Password: "secret"})
	suite.Require().NoError(err)
	return user
}

func (suite *SessionServiceTestSuite) TestLogin_Success() {
	user := suite.login()

	st := suite.store.State()
	suite.True(st.Session.IsAuthenticated)
	suite.Equal(&user, st.Session.User)

	flag, ok := suite.storage.GetItem("isAuthenticated")
	suite.True(ok)
	suite.Equal("true", flag)

	suite.Equal(recordedNotification{Kind: domain.NotificationSuccess, Message: "Login successful!"}, suite.notifier.last())
	suite.Equal(domain.PageDashboard, suite.router.Navigate(domain.PageLogin))
}

func (suite *SessionServiceTestSuite) TestLogin_InvalidCredentials() {
	suite.api.On("Login", mock.Anything, "asha@example.com", "wrong").Return(nil, apperrors.ErrInvalidCredentials).Once()

	_, err := suite.service.Login(context.Background(), dto.LoginRequest{Email: "asha@example.com", Password: "wrong"})

	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	suite.False(suite.store.State().Session.IsAuthenticated)
	suite.Equal(recordedNotification{Kind: domain.NotificationError, Message: "Invalid email or password"}, suite.notifier.last())
}

func (suite *SessionServiceTestSuite) TestLogin_ValidationSkipsBackend() {
	_, err := suite.service.Login(context.Background(), dto.LoginRequest{Email: "not-an-email", Password: "x"})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal("Please enter a valid email address", suite.notifier.last().Message)
	suite.api.AssertNotCalled(suite.T(), "Login", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SessionServiceTestSuite) TestSignup_NavigatesToLogin() {
	req := dto.SignupRequest{Name: "Ravi", BusinessName: "Ravi Traders", Email: "ravi@example.com", Password: "longenough"}
	suite.api.On("Signup", mock.Anything, req).Return(nil).Once()
	suite.router.Navigate(domain.PageSignup)

	err := suite.service.Signup(context.Background(), req)

	suite.NoError(err)
	suite.Equal(domain.PageLogin, suite.router.Current())
	suite.Equal("Account created successfully! Please log in.", suite.notifier.last().Message)
}

func (suite *SessionServiceTestSuite) TestSignup_BackendFailure() {
	req := dto.SignupRequest{Name: "Ravi", BusinessName: "Ravi Traders", Email: "ravi@example.com", Password: "longenough"}
	suite.api.On("Signup", mock.Anything, req).Return(apperrors.NewRequestFailedError(400, "400 Bad Request")).Once()

	err := suite.service.Signup(context.Background(), req)

	suite.ErrorIs(err, apperrors.ErrRequestFailed)
	suite.Equal(recordedNotification{Kind: domain.NotificationError, Message: "Failed to create account"}, suite.notifier.last())
}

func (suite *SessionServiceTestSuite) TestLogout_ClearsLocalSessionEvenWhenBackendFails() {
	suite.login()
	suite.api.On("Logout", mock.Anything).Return(errors.New("connection refused")).Once()

	suite.NoError(suite.service.Logout(context.Background()))

	suite.False(suite.store.State().Session.IsAuthenticated)
	_, ok := suite.storage.GetItem("user")
	suite.False(ok)
	suite.Equal(domain.PageLanding, suite.router.Current())
}

func (suite *SessionServiceTestSuite) TestRefresh_RequiresSession() {
	_, err := suite.service.Refresh(context.Background())
	suite.ErrorIs(err, apperrors.ErrUnauthenticated)
}

func (suite *SessionServiceTestSuite) TestRefresh_UpdatesUser() {
	suite.login()
	renamed := domain.User{ID: "1", Name: "Asha K", Email: "asha@example.com"}
	suite.api.On("Profile", mock.Anything).Return(&renamed, nil).Once()

	user, err := suite.service.Refresh(context.Background())

	suite.Require().NoError(err)
	suite.Equal("Asha K", user.Name)
	suite.Equal("Asha K", suite.store.State().Session.User.Name)
}

func (suite *SessionServiceTestSuite) TestRefresh_ExpiredSessionLogsOut() {
	suite.login()
	suite.api.On("Profile", mock.Anything).Return(nil, apperrors.NewRequestFailedError(403, "403 Forbidden")).Once()

	_, err := suite.service.Refresh(context.Background())

	suite.ErrorIs(err, apperrors.ErrUnauthenticated)
	suite.False(suite.store.State().Session.IsAuthenticated)
}

func (suite *SessionServiceTestSuite) TestRefresh_ServerErrorKeepsSession() {
	suite.login()
	suite.api.On("Profile", mock.Anything).Return(nil, apperrors.NewRequestFailedError(502, "Bad Gateway")).Once()

	_, err := suite.service.Refresh(context.Background())

	suite.ErrorIs(err, apperrors.ErrRequestFailed)
	suite.True(suite.store.State().Session.IsAuthenticated)
}

func (suite *SessionServiceTestSuite) TestChangePassword() {
	suite.ErrorIs(suite.service.ChangePassword(context.Background(), dto.ChangePasswordRequest{}), apperrors.ErrUnauthenticated)

	suite.login()

	err := suite.service.ChangePassword(context.Background(), dto.ChangePasswordRequest{Current: "secret", New: "newsecret1", ConfirmNew: "newsecret2"})
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal(recordedNotification{Kind: domain.NotificationError, Message: "New passwords do not match."}, suite.notifier.last())

	err = suite.service.ChangePassword(context.Background(), dto.ChangePasswordRequest{Current: "secret", New: "newsecret1", ConfirmNew: "newsecret1"})
	suite.NoError(err)
	suite.Equal(recordedNotification{Kind: domain.NotificationSuccess, Message: "Password changed successfully!"}, suite.notifier.last())
}

func (suite *SessionServiceTestSuite) TestUpdateProfile() {
	suite.login()

	err := suite.service.UpdateProfile(context.Background(), dto.UpdateProfileRequest{Name: "Asha", Email: "asha@example.com", BusinessName: "Asha Stores"})

	suite.NoError(err)
	suite.Equal("Profile updated successfully!", suite.notifier.last().Message)
}

func TestSessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}
