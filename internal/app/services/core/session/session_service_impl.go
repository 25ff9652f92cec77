package session

import (
	"context"
	"fmt"
	"time"
	"vitaliv-service/internal/app/contracts"
	"vitaliv-service/internal/app/models"
	"vitaliv-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type sessionService struct {
	RedisRepository  contracts.RedisRepository
	SessionExpiredIn time.Duration
}

func NewSessionService(redisRepository contracts.RedisRepository, sessionExpiredTimeInHours int) contracts.SessionService {
	return &sessionService{
		RedisRepository:  redisRepository,
		SessionExpiredIn: time.Duration(sessionExpiredTimeInHours) * time.Hour,
	}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

func (svc *sessionService) CreateSession(ctx context.Context, session *models.Session) error {
	session.ExpiresAt = time.Now().Add(svc.SessionExpiredIn)
	return svc.RedisRepository.Set(ctx, sessionKey(session.SessionID), session, svc.SessionExpiredIn)
}

func (svc *sessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	session := new(models.Session)
	err := json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (svc *sessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	sessionData, err := svc.RedisRepository.Get(ctx, sessionKey(sessionID))
	if err != nil {
		return "", exceptions.ErrSessionInvalid(err)
	}
	if sessionData == "" {
		return "", exceptions.ErrSessionInvalid(nil)
	}
	return sessionData, nil
}

func (svc *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return svc.RedisRepository.Delete(ctx, sessionKey(sessionID))
}
