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

const (
	cacheRoomTypes = "rooms:types"
	cacheSearch    = "rooms:search:%s:%s:%s"

	roomTypesTTL = 300 * time.Second
	searchTTL    = 30 * time.Second
)

// RoomCache keeps room-type lists and recent search results. Search entries
// are keyed by the exact query that produced them, so a cached result can
// never be served for a different input.
type RoomCache struct {
	cli    *redis.Client
	logger *logrus.Logger
	Tracer trace.Tracer
}

func NewRoomCache(cli *redis.Client, logger *logrus.Logger, tracer trace.Tracer) *RoomCache {
	return &RoomCache{
		cli:    cli,
		logger: logger,
		Tracer: tracer,
	}
}

func (rc *RoomCache) PostRoomTypes(types []string, ctx context.Context) error {
	_, span := rc.Tracer.Start(ctx, "RoomCache.PostRoomTypes")
	defer span.End()

	encoded, err := json.Marshal(types)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	err = rc.cli.Set(cacheRoomTypes, encoded, roomTypesTTL).Err()
	if err != nil {
		span.SetStatus(codes.Error, "Error setting room types in Redis"+err.Error())
		return err
	}
	return nil
}

func (rc *RoomCache) GetRoomTypes(ctx context.Context) ([]string, error) {
	_, span := rc.Tracer.Start(ctx, "RoomCache.GetRoomTypes")
	defer span.End()

	data, err := rc.cli.Get(cacheRoomTypes).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	var types []string
	if err := json.Unmarshal(data, &types); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	rc.logger.WithFields(logrus.Fields{"path": "cache/rooms"}).Debug("Room types cache hit")
	return types, nil
}

func (rc *RoomCache) PostSearchResults(checkIn, checkOut, roomType string, rooms []domain.Room, ctx context.Context) error {
	_, span := rc.Tracer.Start(ctx, "RoomCache.PostSearchResults")
	defer span.End()

	encoded, err := json.Marshal(rooms)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	key := constructSearchKey(checkIn, checkOut, roomType)
	err = rc.cli.Set(key, encoded, searchTTL).Err()
	if err != nil {
		span.SetStatus(codes.Error, "Error setting search results in Redis"+err.Error())
		return err
	}
	return nil
}

func (rc *RoomCache) GetSearchResults(checkIn, checkOut, roomType string, ctx context.Context) ([]domain.Room, bool, error) {
	_, span := rc.Tracer.Start(ctx, "RoomCache.GetSearchResults")
	defer span.End()

	key := constructSearchKey(checkIn, checkOut, roomType)
	data, err := rc.cli.Get(key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		span.SetStatus(codes.Error, err.Error())
		return nil, false, err
	}

	var rooms []domain.Room
	if err := json.Unmarshal(data, &rooms); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, false, err
	}
	rc.logger.WithFields(logrus.Fields{"path": "cache/rooms"}).Debug("Search cache hit")
	return rooms, true, nil
}

func constructSearchKey(checkIn, checkOut, roomType string) string {
	return fmt.Sprintf(cacheSearch, checkIn, checkOut, roomType)
}
