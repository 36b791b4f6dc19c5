package locker

import (
	"context"
	"edunexus-service/internal/app/contracts"
	"edunexus-service/internal/pkg/constvars"
	"edunexus-service/internal/pkg/exceptions"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var (
	lockerServiceInstance contracts.LockerService
	onceLockerService     sync.Once
)

type lockService struct {
	client *redis.Client
	Log    *zap.Logger
}

func NewLockService(client *redis.Client, logger *zap.Logger) contracts.LockerService {
	onceLockerService.Do(func() {
		lockerServiceInstance = &lockService{
			client: client,
			Log:    logger,
		}
	})
	return lockerServiceInstance
}

func (s *lockService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	lockValue := uuid.NewString()
	acquired, err := s.client.SetNX(ctx, key, lockValue, expiration).Result()
	if err != nil {
		s.Log.Error("lockService.TryLock error calling SetNX",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return false, "", exceptions.ErrLockAcquire(err, key)
	}

	if !acquired {
		s.Log.Info("lockService.TryLock not acquired",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
		)
		return false, "", nil
	}

	s.Log.Info("lockService.TryLock acquired lock",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
		zap.String(constvars.LoggingLockValueKey, lockValue),
		zap.Duration(constvars.LoggingLockExpirationTimeKey, expiration),
	)
	return true, lockValue, nil
}

func (s *lockService) Unlock(ctx context.Context, key, lockValue string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	storedVal, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		// already expired; nothing to release
		return nil
	} else if err != nil {
		return exceptions.ErrLockAcquire(err, key)
	}

	if storedVal != lockValue {
		err := fmt.Errorf("lock not owned by this client")
		s.Log.Error("lockService.Unlock lock ownership mismatch",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
		)
		return exceptions.ErrLockAcquire(err, key)
	}

	if err := s.client.Del(ctx, key).Err(); err != nil {
		return exceptions.ErrLockAcquire(err, key)
	}
	return nil
}

func (s *lockService) IsHeld(ctx context.Context, key, lockValue string) (bool, error) {
	storedVal, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	} else if err != nil {
		return false, exceptions.ErrLockAcquire(err, key)
	}
	return storedVal == lockValue, nil
}
