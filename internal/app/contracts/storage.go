package contracts

import "context"

// PhotoStorage offloads student photos delivered as data URIs to object
// storage, returning the stored object's URL.
type PhotoStorage interface {
	UploadDataURI(ctx context.Context, objectName, dataURI string) (string, error)
}
