package links

import (
	"context"
	"sync"
	"time"
	"vitaliv-service/internal/app/contracts"
	"vitaliv-service/internal/app/models"
	"vitaliv-service/internal/pkg/dto/requests"
	"vitaliv-service/internal/pkg/dto/responses"
	"vitaliv-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type linkUsecase struct {
	LinkRepository contracts.LinkRepository
	Log            *zap.Logger
}

var (
	linkUsecaseInstance contracts.LinkUsecase
	onceLinkUsecase     sync.Once
)

func NewLinkUsecase(linkRepository contracts.LinkRepository, logger *zap.Logger) contracts.LinkUsecase {
	onceLinkUsecase.Do(func() {
		instance := &linkUsecase{
			LinkRepository: linkRepository,
			Log:            logger,
		}
		linkUsecaseInstance = instance
	})
	return linkUsecaseInstance
}

func (uc *linkUsecase) ListLinks(ctx context.Context) ([]responses.Link, error) {
	links, err := uc.LinkRepository.FindAllLinks(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Link, 0, len(links))
	for _, link := range links {
		response = append(response, buildLinkResponse(&link))
	}
	return response, nil
}

func (uc *linkUsecase) CreateLink(ctx context.Context, request *requests.CreateLink) (*responses.Link, error) {
	now := time.Now()
	link := &models.Link{
		Title: request.Title,
		URL:   request.URL,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	linkID, err := uc.LinkRepository.CreateLink(ctx, link)
	if err != nil {
		return nil, err
	}
	link.ID = linkID

	response := buildLinkResponse(link)
	return &response, nil
}

func (uc *linkUsecase) UpdateLink(ctx context.Context, linkID string, request *requests.UpdateLink) (*responses.Link, error) {
	link, err := uc.LinkRepository.FindLinkByID(ctx, linkID)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, exceptions.ErrLinkNotFound(nil)
	}

	if request.Title != "" {
		link.Title = request.Title
	}
	if request.URL != "" {
		link.URL = request.URL
	}
	link.UpdatedAt = time.Now()

	if err := uc.LinkRepository.UpdateLink(ctx, link); err != nil {
		return nil, err
	}

	response := buildLinkResponse(link)
	return &response, nil
}

func (uc *linkUsecase) DeleteLink(ctx context.Context, linkID string) error {
	link, err := uc.LinkRepository.FindLinkByID(ctx, linkID)
	if err != nil {
		return err
	}
	if link == nil {
		return exceptions.ErrLinkNotFound(nil)
	}

	return uc.LinkRepository.DeleteLinkByID(ctx, linkID)
}

func buildLinkResponse(link *models.Link) responses.Link {
	return responses.Link{
		ID:        link.ID,
		Title:     link.Title,
		URL:       link.URL,
		CreatedAt: link.CreatedAt.Format(time.RFC3339),
	}
}
