package auth

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"
	"vitaliv-service/internal/app/config"
	"vitaliv-service/internal/app/contracts"
	"vitaliv-service/internal/app/models"
	"vitaliv-service/internal/pkg/constvars"
	"vitaliv-service/internal/pkg/dto/requests"
	"vitaliv-service/internal/pkg/dto/responses"
	"vitaliv-service/internal/pkg/exceptions"
	"vitaliv-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository  contracts.UserRepository
	SessionService  contracts.SessionService
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		instance := &authUsecase{
			UserRepository:  userRepository,
			SessionService:  sessionService,
			RedisRepository: redisRepository,
			InternalConfig:  internalConfig,
			Log:             logger,
		}
		authUsecaseInstance = instance
	})
	return authUsecaseInstance
}

func (uc *authUsecase) RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error) {
	existingUser, err := uc.UserRepository.FindByEmailOrUsername(ctx, request.Email, request.Username)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		if existingUser.Email == request.Email {
			return nil, exceptions.ErrEmailAlreadyExist(nil)
		}
		return nil, exceptions.ErrUsernameAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now()
	userModel := &models.User{
		Email:    request.Email,
		Username: request.Username,
		Password: hashedPassword,
		Role:     constvars.RoleCustomer,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	userID, err := uc.UserRepository.CreateUser(ctx, userModel)
	if err != nil {
		return nil, err
	}

	return &responses.RegisterUser{UserID: userID}, nil
}

func (uc *authUsecase) LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	attemptsKey := fmt.Sprintf(constvars.LoginAttemptKeyFormat, request.Username)
	attemptsData, err := uc.RedisRepository.Get(ctx, attemptsKey)
	if err != nil {
		return nil, err
	}
	if attempts, parseErr := strconv.Atoi(attemptsData); parseErr == nil && attempts >= constvars.MaxFailedLoginAttempts {
		return nil, exceptions.ErrTooManyLoginAttempts(nil)
	}

	user, err := uc.UserRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		uc.recordFailedLogin(ctx, attemptsKey, request.Username)
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}

	if !utils.CheckPasswordHash(request.Password, user.Password) {
		uc.recordFailedLogin(ctx, attemptsKey, request.Username)
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}

	if err := uc.RedisRepository.Delete(ctx, attemptsKey); err != nil {
		return nil, err
	}

	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
	}
	if err := uc.SessionService.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(
		session.SessionID,
		uc.InternalConfig.JWT.Secret,
		time.Duration(uc.InternalConfig.JWT.ExpTimeInHour)*time.Hour,
	)
	if err != nil {
		return nil, err
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("AuthUsecase.LoginUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("username", user.Username),
	)

	return &responses.LoginUser{Token: token}, nil
}

func (uc *authUsecase) recordFailedLogin(ctx context.Context, attemptsKey, username string) {
	window := time.Duration(constvars.FailedLoginWindowInMinutes) * time.Minute
	attempts, err := uc.RedisRepository.Increment(ctx, attemptsKey, window)
	if err != nil {
		uc.Log.Warn("AuthUsecase.recordFailedLogin failed to track attempt",
			zap.String("username", username),
			zap.Error(err),
		)
		return
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("AuthUsecase.LoginUser attempt failed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("username", username),
		zap.Int64("failed_attempts", attempts),
	)
}

func (uc *authUsecase) LogoutUser(ctx context.Context, sessionData string) error {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}
	return uc.SessionService.DeleteSession(ctx, session.SessionID)
}
