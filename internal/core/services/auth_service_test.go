package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/lilad25/intranet-portal/internal/apperrors"
	"github.com/lilad25/intranet-portal/internal/core/domain"
	portssvc "github.com/lilad25/intranet-portal/internal/core/ports/services"
	"github.com/lilad25/intranet-portal/internal/core/services"
	"github.com/lilad25/intranet-portal/internal/core/store"
	"github.com/lilad25/intranet-portal/internal/dto"
)

// --- Test Suite ---
type AuthServiceTestSuite struct {
	suite.Suite
	store   *store.Store
	repo    *recordingSnapshotRepo
	markers *memoryMarkers
	service portssvc.AuthSvcFacade
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.store, suite.repo, suite.markers = newSeededStore(suite.T())
	suite.service = services.NewAuthService(suite.store)
}

func (suite *AuthServiceTestSuite) register(email string) *domain.Account {
	account, err := suite.service.Register(context.Background(), dto.RegisterRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     email,
		Password:  "secret1",
	})
	suite.Require().NoError(err)
	return account
}

// --- Register Tests ---

func (suite *AuthServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()

	account := suite.register("jane@example.com")

	suite.NotEmpty(account.ID)
	suite.Equal(domain.RoleUser, account.Role)
	suite.False(account.Verified)
	suite.Equal("secret1", account.Password)

	// The new account is persisted and its e-mail is pending verification.
	saved := suite.repo.LastSaved()
	suite.Require().NotNil(saved)
	suite.Len(saved.Accounts, 2)

	pending, err := suite.store.PendingEmail(ctx)
	suite.Require().NoError(err)
	suite.Equal("jane@example.com", pending)
}

func (suite *AuthServiceTestSuite) TestRegister_DuplicateEmail() {
	before := suite.repo.SaveCount()

	account, err := suite.service.Register(context.Background(), dto.RegisterRequest{
		FirstName: "Evil",
		LastName:  "Twin",
		Email:     store.SeedAdminEmail,
		Password:  "secret1",
	})

	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(account)
	suite.Equal(before, suite.repo.SaveCount())
	suite.False(suite.markers.has("unverified_email"))
}

// --- VerifyPendingEmail Tests ---

func (suite *AuthServiceTestSuite) TestVerifyPendingEmail_Success() {
	ctx := context.Background()
	suite.register("jane@example.com")

	verified, err := suite.service.VerifyPendingEmail(ctx)
	suite.Require().NoError(err)
	suite.True(verified.Verified)
	suite.Equal("jane@example.com", verified.Email)

	// Marker cleared and the verification persisted.
	suite.False(suite.markers.has("unverified_email"))
	saved := suite.repo.LastSaved()
	suite.Require().NotNil(saved)
	suite.True(saved.FindAccountByEmail("jane@example.com").Verified)
}

func (suite *AuthServiceTestSuite) TestVerifyPendingEmail_NoMarker() {
	verified, err := suite.service.VerifyPendingEmail(context.Background())
	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(verified)
}

func (suite *AuthServiceTestSuite) TestVerifyPendingEmail_MarkerMatchesNoAccount() {
	ctx := context.Background()
	suite.Require().NoError(suite.store.SetPendingEmail(ctx, "ghost@example.com"))

	verified, err := suite.service.VerifyPendingEmail(ctx)
	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(verified)
	// The marker stays; nothing was verified.
	suite.True(suite.markers.has("unverified_email"))
}

// --- Login Tests ---

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()

	account, err := suite.service.Login(ctx, dto.LoginRequest{
		Email:    store.SeedAdminEmail,
		Password: store.SeedAdminPassword,
	})
	suite.Require().NoError(err)
	suite.Equal(store.SeedAdminEmail, account.Email)
	suite.Equal(domain.RoleAdmin, account.Role)

	email, err := suite.store.SessionEmail(ctx)
	suite.Require().NoError(err)
	suite.Equal(store.SeedAdminEmail, email)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	account, err := suite.service.Login(context.Background(), dto.LoginRequest{
		Email:    store.SeedAdminEmail,
		Password: "wrong",
	})
	suite.Require().ErrorIs(err, apperrors.ErrAuth)
	suite.Nil(account)
	suite.False(suite.markers.has("auth_token"))
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownEmail() {
	account, err := suite.service.Login(context.Background(), dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	suite.Require().ErrorIs(err, apperrors.ErrAuth)
	suite.Nil(account)
}

func (suite *AuthServiceTestSuite) TestLogin_UnverifiedAccount() {
	suite.register("jane@example.com")

	// Correct credentials, but the account has not verified its e-mail.
	// The error is indistinguishable from a wrong password.
	account, err := suite.service.Login(context.Background(), dto.LoginRequest{
		Email:    "jane@example.com",
		Password: "secret1",
	})
	suite.Require().ErrorIs(err, apperrors.ErrAuth)
	suite.Nil(account)
}

func (suite *AuthServiceTestSuite) TestLogin_CaseSensitiveEmail() {
	account, err := suite.service.Login(context.Background(), dto.LoginRequest{
		Email:    "Admin@Example.com",
		Password: store.SeedAdminPassword,
	})
	suite.Require().ErrorIs(err, apperrors.ErrAuth)
	suite.Nil(account)
}

// --- Logout / RestoreSession Tests ---

func (suite *AuthServiceTestSuite) TestLogout_ClearsSession() {
	ctx := context.Background()
	_, err := suite.service.Login(ctx, dto.LoginRequest{
		Email:    store.SeedAdminEmail,
		Password: store.SeedAdminPassword,
	})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.service.Logout(ctx))
	suite.False(suite.markers.has("auth_token"))
}

func (suite *AuthServiceTestSuite) TestRestoreSession_Success() {
	ctx := context.Background()
	_, err := suite.service.Login(ctx, dto.LoginRequest{
		Email:    store.SeedAdminEmail,
		Password: store.SeedAdminPassword,
	})
	suite.Require().NoError(err)

	account, err := suite.service.RestoreSession(ctx)
	suite.Require().NoError(err)
	suite.Equal(store.SeedAdminEmail, account.Email)
}

func (suite *AuthServiceTestSuite) TestRestoreSession_NoMarker() {
	account, err := suite.service.RestoreSession(context.Background())
	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(account)
}

func (suite *AuthServiceTestSuite) TestRestoreSession_StaleMarkerDiscarded() {
	ctx := context.Background()
	suite.Require().NoError(suite.store.SetSessionEmail(ctx, "gone@example.com"))

	account, err := suite.service.RestoreSession(ctx)
	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(account)
	suite.False(suite.markers.has("auth_token"))
}

// --- AccountByID Tests ---

func (suite *AuthServiceTestSuite) TestAccountByID_Success() {
	account, err := suite.service.AccountByID(context.Background(), "acc_1")
	suite.Require().NoError(err)
	suite.Equal(store.SeedAdminEmail, account.Email)
}

func (suite *AuthServiceTestSuite) TestAccountByID_NotFound() {
	account, err := suite.service.AccountByID(context.Background(), "acc_missing")
	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(account)
}

// --- Run Suite ---
func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
