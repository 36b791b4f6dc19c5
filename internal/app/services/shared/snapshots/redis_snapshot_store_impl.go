package snapshots

import (
	"context"
	"edunexus-service/internal/app/contracts"
	"edunexus-service/internal/pkg/exceptions"

	"github.com/redis/go-redis/v9"
)

type redisSnapshotStore struct {
	client *redis.Client
}

// NewRedisSnapshotStore keeps one redis string per collection; the value is
// the serialized full collection, replaced on every write.
func NewRedisSnapshotStore(client *redis.Client) contracts.SnapshotStore {
	return &redisSnapshotStore{client: client}
}

func (s *redisSnapshotStore) Read(ctx context.Context, collection string) ([]byte, error) {
	data, err := s.client.Get(ctx, collection).Bytes()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrSnapshotRead(err, collection)
	}
	return data, nil
}

func (s *redisSnapshotStore) Write(ctx context.Context, collection string, data []byte) error {
	err := s.client.Set(ctx, collection, data, 0).Err()
	if err != nil {
		return exceptions.ErrSnapshotWrite(err, collection)
	}
	return nil
}
