package contracts

import "context"

// SnapshotStore persists whole collections under a logical collection name.
// Read returns the last written snapshot, or (nil, nil) when the collection
// has never been written so the caller can seed defaults. Write replaces the
// entire snapshot in one operation; there are no partial-collection writes.
type SnapshotStore interface {
	Read(ctx context.Context, collection string) ([]byte, error)
	Write(ctx context.Context, collection string, data []byte) error
}
