package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/lilad25/intranet-portal/internal/apperrors"
	"github.com/lilad25/intranet-portal/internal/core/domain"
	"github.com/lilad25/intranet-portal/internal/core/store"
)

// --- Mock SnapshotRepository ---
type MockSnapshotRepository struct {
	mock.Mock
}

func (m *MockSnapshotRepository) LoadSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Snapshot), args.Error(1)
}

func (m *MockSnapshotRepository) SaveSnapshot(ctx context.Context, snap *domain.Snapshot) error {
	args := m.Called(ctx, snap)
	return args.Error(0)
}

// --- Mock MarkerRepository ---
type MockMarkerRepository struct {
	mock.Mock
}

func (m *MockMarkerRepository) GetMarker(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockMarkerRepository) SetMarker(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockMarkerRepository) ClearMarker(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// --- Test Suite ---
type StoreTestSuite struct {
	suite.Suite
	mockRepo    *MockSnapshotRepository
	mockMarkers *MockMarkerRepository
	store       *store.Store
}

func (suite *StoreTestSuite) SetupTest() {
	suite.mockRepo = new(MockSnapshotRepository)
	suite.mockMarkers = new(MockMarkerRepository)
	suite.store = store.New(suite.mockRepo, suite.mockMarkers, nil)
}

func (suite *StoreTestSuite) TestLoad_UsesPersistedSnapshot() {
	ctx := context.Background()
	persisted := &domain.Snapshot{
		Accounts: []domain.Account{{ID: "acc_42", Email: "someone@example.com"}},
	}
	suite.mockRepo.On("LoadSnapshot", ctx).Return(persisted, nil).Once()

	err := suite.store.Load(ctx)
	suite.Require().NoError(err)

	var seen string
	_ = suite.store.View(func(snap *domain.Snapshot) error {
		suite.Require().Len(snap.Accounts, 1)
		seen = snap.Accounts[0].ID
		return nil
	})
	suite.Equal("acc_42", seen)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *StoreTestSuite) TestLoad_SeedsWhenNothingPersisted() {
	ctx := context.Background()
	suite.mockRepo.On("LoadSnapshot", ctx).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveSnapshot", ctx, mock.MatchedBy(func(snap *domain.Snapshot) bool {
		return len(snap.Accounts) == 1 && len(snap.Departments) == 2
	})).Return(nil).Once()

	err := suite.store.Load(ctx)
	suite.Require().NoError(err)

	_ = suite.store.View(func(snap *domain.Snapshot) error {
		suite.Require().Len(snap.Accounts, 1)
		admin := snap.Accounts[0]
		suite.Equal("acc_1", admin.ID)
		suite.Equal(store.SeedAdminEmail, admin.Email)
		suite.Equal(store.SeedAdminPassword, admin.Password)
		suite.Equal(domain.RoleAdmin, admin.Role)
		suite.True(admin.Verified)

		suite.Require().Len(snap.Departments, 2)
		suite.Equal("Engineering", snap.Departments[0].Name)
		suite.Equal("HR", snap.Departments[1].Name)
		suite.Empty(snap.Employees)
		suite.Empty(snap.Requests)
		return nil
	})
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *StoreTestSuite) TestLoad_SeedsWhenBlobCorrupt() {
	ctx := context.Background()
	suite.mockRepo.On("LoadSnapshot", ctx).Return(nil, errors.New("failed to decode persisted snapshot")).Once()
	suite.mockRepo.On("SaveSnapshot", ctx, mock.AnythingOfType("*domain.Snapshot")).Return(nil).Once()

	err := suite.store.Load(ctx)
	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *StoreTestSuite) TestUpdate_PersistsWholeSnapshot() {
	ctx := context.Background()
	suite.mockRepo.On("LoadSnapshot", ctx).Return(&domain.Snapshot{}, nil).Once()
	suite.Require().NoError(suite.store.Load(ctx))

	suite.mockRepo.On("SaveSnapshot", ctx, mock.MatchedBy(func(snap *domain.Snapshot) bool {
		return len(snap.Departments) == 1 && snap.Departments[0].Name == "Facilities"
	})).Return(nil).Once()

	err := suite.store.Update(ctx, func(snap *domain.Snapshot) error {
		snap.Departments = append(snap.Departments, domain.Department{ID: "dept_9", Name: "Facilities"})
		return nil
	})
	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *StoreTestSuite) TestUpdate_FnErrorSkipsPersist() {
	ctx := context.Background()
	suite.mockRepo.On("LoadSnapshot", ctx).Return(&domain.Snapshot{}, nil).Once()
	suite.Require().NoError(suite.store.Load(ctx))

	boom := errors.New("boom")
	err := suite.store.Update(ctx, func(snap *domain.Snapshot) error {
		snap.Departments = append(snap.Departments, domain.Department{ID: "dept_9"})
		return boom
	})
	suite.Require().ErrorIs(err, boom)

	// SaveSnapshot must not have been called.
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveSnapshot", mock.Anything, mock.Anything)
}

func (suite *StoreTestSuite) TestUpdate_SaveErrorSurfaces() {
	ctx := context.Background()
	suite.mockRepo.On("LoadSnapshot", ctx).Return(&domain.Snapshot{}, nil).Once()
	suite.Require().NoError(suite.store.Load(ctx))

	saveErr := errors.New("disk full")
	suite.mockRepo.On("SaveSnapshot", ctx, mock.AnythingOfType("*domain.Snapshot")).Return(saveErr).Once()

	err := suite.store.Update(ctx, func(snap *domain.Snapshot) error { return nil })
	suite.Require().Error(err)
	suite.ErrorIs(err, saveErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *StoreTestSuite) TestSessionMarker() {
	ctx := context.Background()
	suite.mockMarkers.On("SetMarker", ctx, "auth_token", "admin@example.com").Return(nil).Once()
	suite.mockMarkers.On("GetMarker", ctx, "auth_token").Return("admin@example.com", nil).Once()
	suite.mockMarkers.On("ClearMarker", ctx, "auth_token").Return(nil).Once()

	suite.Require().NoError(suite.store.SetSessionEmail(ctx, "admin@example.com"))
	email, err := suite.store.SessionEmail(ctx)
	suite.Require().NoError(err)
	suite.Equal("admin@example.com", email)
	suite.Require().NoError(suite.store.ClearSessionEmail(ctx))

	suite.mockMarkers.AssertExpectations(suite.T())
}

func (suite *StoreTestSuite) TestPendingEmailMarker() {
	ctx := context.Background()
	suite.mockMarkers.On("SetMarker", ctx, "unverified_email", "new@example.com").Return(nil).Once()
	suite.mockMarkers.On("GetMarker", ctx, "unverified_email").Return("new@example.com", nil).Once()
	suite.mockMarkers.On("ClearMarker", ctx, "unverified_email").Return(nil).Once()

	suite.Require().NoError(suite.store.SetPendingEmail(ctx, "new@example.com"))
	email, err := suite.store.PendingEmail(ctx)
	suite.Require().NoError(err)
	suite.Equal("new@example.com", email)
	suite.Require().NoError(suite.store.ClearPendingEmail(ctx))

	suite.mockMarkers.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestStore(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}
