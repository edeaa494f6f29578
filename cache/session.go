package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"booking-client/domain"

	"github.com/go-redis/redis"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const cacheSession = "sessions:%s"

// SessionCache persists sessions in Redis so a logged-in guest survives a
// process restart. Entries expire on their own when the token does.
type SessionCache struct {
	cli    *redis.Client
	logger *logrus.Logger
	Tracer trace.Tracer
}

func NewSessionCache(cli *redis.Client, logger *logrus.Logger, tracer trace.Tracer) *SessionCache {
	return &SessionCache{
		cli:    cli,
		logger: logger,
		Tracer: tracer,
	}
}

func NewRedisClient(redisHost, redisPort string) *redis.Client {
	redisAddress := fmt.Sprintf("%s:%s", redisHost, redisPort)
	return redis.NewClient(&redis.Options{
		Addr: redisAddress,
	})
}

func (sc *SessionCache) Ping() error {
	_, err := sc.cli.Ping().Result()
	return err
}

func (sc *SessionCache) PostSession(sessionID string, session *domain.Session, ctx context.Context) error {
	_, span := sc.Tracer.Start(ctx, "SessionCache.PostSession")
	defer span.End()

	key := constructSessionKey(sessionID)

	encoded, err := json.Marshal(session)
	if err != nil {
		span.SetStatus(codes.Error, "Error encoding session"+err.Error())
		return err
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		span.SetStatus(codes.Error, "Session already expired")
		return fmt.Errorf("session already expired")
	}

	err = sc.cli.Set(key, encoded, ttl).Err()
	if err != nil {
		span.SetStatus(codes.Error, "Error setting session in Redis"+err.Error())
		return err
	}
	return nil
}

func (sc *SessionCache) GetSession(sessionID string, ctx context.Context) (*domain.Session, error) {
	_, span := sc.Tracer.Start(ctx, "SessionCache.GetSession")
	defer span.End()

	key := constructSessionKey(sessionID)
	data, err := sc.cli.Get(key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	sc.logger.WithFields(logrus.Fields{"path": "cache/session"}).Debug("Session cache hit")
	return &session, nil
}

func (sc *SessionCache) DeleteSession(sessionID string, ctx context.Context) error {
	_, span := sc.Tracer.Start(ctx, "SessionCache.DeleteSession")
	defer span.End()

	key := constructSessionKey(sessionID)
	err := sc.cli.Del(key).Err()
	if err != nil && err != redis.Nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func constructSessionKey(sessionID string) string {
	return fmt.Sprintf(cacheSession, sessionID)
}
