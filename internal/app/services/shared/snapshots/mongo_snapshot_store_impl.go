package snapshots

import (
	"context"
	"edunexus-service/internal/app/contracts"
	"edunexus-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const snapshotMongoCollection = "snapshots"

type snapshotDocument struct {
	ID   string `bson:"_id"`
	Data []byte `bson:"data"`
}

type mongoSnapshotStore struct {
	db *mongo.Database
}

// NewMongoSnapshotStore keeps one document per collection inside a single
// mongo collection, upserted whole on every write. Same contract as the
// redis store; selected via APP_STORE_BACKEND.
func NewMongoSnapshotStore(db *mongo.Database) contracts.SnapshotStore {
	return &mongoSnapshotStore{db: db}
}

func (s *mongoSnapshotStore) Read(ctx context.Context, collection string) ([]byte, error) {
	var doc snapshotDocument
	err := s.db.Collection(snapshotMongoCollection).
		FindOne(ctx, bson.M{"_id": collection}).
		Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrSnapshotRead(err, collection)
	}
	return doc.Data, nil
}

func (s *mongoSnapshotStore) Write(ctx context.Context, collection string, data []byte) error {
	_, err := s.db.Collection(snapshotMongoCollection).ReplaceOne(
		ctx,
		bson.M{"_id": collection},
		snapshotDocument{ID: collection, Data: data},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return exceptions.ErrSnapshotWrite(err, collection)
	}
	return nil
}
