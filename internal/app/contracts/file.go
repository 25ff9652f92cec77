package contracts

import (
	"context"
	"vitaliv-service/internal/pkg/dto/responses"
)

type FileUsecase interface {
	ListFilesBySession(ctx context.Context, sessionData string) ([]responses.CustomerFile, error)
}
