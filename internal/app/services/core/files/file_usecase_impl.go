package files

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
	"vitaliv-service/internal/app/config"
	"vitaliv-service/internal/app/contracts"
	"vitaliv-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type fileUsecase struct {
	Storage        contracts.Storage
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

var (
	fileUsecaseInstance contracts.FileUsecase
	onceFileUsecase     sync.Once
)

func NewFileUsecase(
	storage contracts.Storage,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.FileUsecase {
	onceFileUsecase.Do(func() {
		instance := &fileUsecase{
			Storage:        storage,
			SessionService: sessionService,
			InternalConfig: internalConfig,
			Log:            logger,
		}
		fileUsecaseInstance = instance
	})
	return fileUsecaseInstance
}

func (uc *fileUsecase) ListFilesBySession(ctx context.Context, sessionData string) ([]responses.CustomerFile, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	bucketName := uc.InternalConfig.Minio.BucketName
	filePrefix := strings.TrimSuffix(uc.InternalConfig.Minio.CustomerFilePrefix, "/")
	prefix := fmt.Sprintf("%s/%s/", filePrefix, session.UserID)

	objects, err := uc.Storage.ListObjects(ctx, bucketName, prefix)
	if err != nil {
		return nil, err
	}

	urlExpiry := time.Duration(uc.InternalConfig.Minio.PresignedURLObjectExpiryTimeInHour) * time.Hour
	customerFiles := make([]responses.CustomerFile, 0, len(objects))
	for _, object := range objects {
		presignedURL, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, bucketName, object.Name, urlExpiry)
		if err != nil {
			return nil, err
		}
		customerFiles = append(customerFiles, responses.CustomerFile{
			Name:         object.Name[len(prefix):],
			Size:         object.Size,
			LastModified: object.LastModified.Format(time.RFC3339),
			URL:          presignedURL,
		})
	}
	return customerFiles, nil
}
