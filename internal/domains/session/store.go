package session

//go:generate go run go.uber.org/mock/mockgen -source=./store.go -destination=./mocks/store_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"comfort/config"
	"comfort/infras/otel"
	"comfort/shared/constant"
	"comfort/shared/logger"

	goRedis "github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

var ErrSessionNotFound = errors.New("session not found")

// Store keeps sessions in redis under an absolute TTL. A session that
// expires is simply gone, there is no sliding renewal.
type Store interface {
	Create(ctx context.Context, session Session) error
	Get(ctx context.Context, id string) (Session, error)
	Delete(ctx context.Context, id string) error
}

type storeImpl struct {
	redis *goRedis.Client
	ttl   time.Duration
	otel  otel.Otel
}

func NewStore(redis *goRedis.Client, cfg *config.Config, otl otel.Otel) Store {
	return &storeImpl{
		redis: redis,
		ttl:   time.Duration(cfg.Session.TTLHours) * time.Hour,
		otel:  otl,
	}
}

func (s *storeImpl) Create(ctx context.Context, session Session) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSessionScopeName, constant.OtelSessionScopeName+".Create")
	defer scope.End()

	payload, err := json.Marshal(session)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.redis.Set(ctx, keyPrefix+session.ID, payload, s.ttl).Err(); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to store session: %w", err)
	}

	return nil
}

func (s *storeImpl) Get(ctx context.Context, id string) (Session, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSessionScopeName, constant.OtelSessionScopeName+".Get")
	defer scope.End()

	var session Session

	payload, err := s.redis.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, goRedis.Nil) {
		return session, ErrSessionNotFound
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return session, fmt.Errorf("failed to get session: %w", err)
	}

	if err := json.Unmarshal(payload, &session); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return session, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return session, nil
}

func (s *storeImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSessionScopeName, constant.OtelSessionScopeName+".Delete")
	defer scope.End()

	if err := s.redis.Del(ctx, keyPrefix+id).Err(); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
