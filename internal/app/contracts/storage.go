package contracts

import (
	"context"
	"time"
)

type StorageObject struct {
	Name         string
	Size         int64
	LastModified time.Time
}

type Storage interface {
	ListObjects(ctx context.Context, bucketName, prefix string) ([]StorageObject, error)
	GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error)
}
