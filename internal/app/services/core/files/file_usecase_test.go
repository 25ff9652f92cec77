package files

import (
	"context"
	"testing"
	"time"
	"vitaliv-service/internal/app/config"
	"vitaliv-service/internal/app/contracts"
	"vitaliv-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) ListObjects(ctx context.Context, bucketName, prefix string) ([]contracts.StorageObject, error) {
	args := m.Called(ctx, bucketName, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]contracts.StorageObject), args.Error(1)
}

func (m *MockStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiryTime)
	return args.String(0), args.Error(1)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	args := m.Called(ctx, sessionData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func newTestFileUsecase(storage *MockStorage, sessionService *MockSessionService, customerFilePrefix string) *fileUsecase {
	return &fileUsecase{
		Storage:        storage,
		SessionService: sessionService,
		InternalConfig: &config.InternalConfig{
			Minio: config.AppMinio{
				BucketName:                         "customer-files-test",
				CustomerFilePrefix:                 customerFilePrefix,
				PresignedURLObjectExpiryTimeInHour: 1,
			},
		},
		Log: zap.NewNop(),
	}
}

func TestFileUsecase_ListFilesBySession(t *testing.T) {
	session := &models.Session{
		SessionID: "session-id",
		UserID:    "user-1",
		Role:      "customer",
	}

	t.Run("Lists Under the Customer Prefix", func(t *testing.T) {
		storage := new(MockStorage)
		sessionService := new(MockSessionService)
		uc := newTestFileUsecase(storage, sessionService, "customers")

		modified := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
		sessionService.On("ParseSessionData", mock.Anything, "session-data").Return(session, nil)
		storage.On("ListObjects", mock.Anything, "customer-files-test", "customers/user-1/").Return([]contracts.StorageObject{
			{Name: "customers/user-1/lab-results.pdf", Size: 2048, LastModified: modified},
		}, nil)
		storage.On("GetObjectUrlWithExpiryTime", mock.Anything, "customer-files-test", "customers/user-1/lab-results.pdf", time.Hour).Return("https://minio.local/signed", nil)

		files, err := uc.ListFilesBySession(context.Background(), "session-data")

		assert.NoError(t, err)
		assert.Len(t, files, 1)
		assert.Equal(t, "lab-results.pdf", files[0].Name)
		assert.Equal(t, int64(2048), files[0].Size)
		assert.Equal(t, "https://minio.local/signed", files[0].URL)
		storage.AssertExpectations(t)
	})

	t.Run("Trailing Slash in Configured Prefix is Tolerated", func(t *testing.T) {
		storage := new(MockStorage)
		sessionService := new(MockSessionService)
		uc := newTestFileUsecase(storage, sessionService, "customers/")

		sessionService.On("ParseSessionData", mock.Anything, "session-data").Return(session, nil)
		storage.On("ListObjects", mock.Anything, "customer-files-test", "customers/user-1/").Return([]contracts.StorageObject{}, nil)

		files, err := uc.ListFilesBySession(context.Background(), "session-data")

		assert.NoError(t, err)
		assert.Empty(t, files)
		storage.AssertExpectations(t)
	})
}
