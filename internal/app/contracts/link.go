package contracts

import (
	"context"
	"vitaliv-service/internal/app/models"
	"vitaliv-service/internal/pkg/dto/requests"
	"vitaliv-service/internal/pkg/dto/responses"
)

type LinkUsecase interface {
	ListLinks(ctx context.Context) ([]responses.Link, error)
	CreateLink(ctx context.Context, request *requests.CreateLink) (*responses.Link, error)
	UpdateLink(ctx context.Context, linkID string, request *requests.UpdateLink) (*responses.Link, error)
	DeleteLink(ctx context.Context, linkID string) error
}

type LinkRepository interface {
	CreateLink(ctx context.Context, link *models.Link) (linkID string, err error)
	FindLinkByID(ctx context.Context, linkID string) (*models.Link, error)
	FindAllLinks(ctx context.Context) ([]models.Link, error)
	UpdateLink(ctx context.Context, link *models.Link) error
	DeleteLinkByID(ctx context.Context, linkID string) error
}
