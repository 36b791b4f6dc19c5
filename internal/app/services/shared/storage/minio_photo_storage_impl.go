package storage

import (
	"context"
	"edunexus-service/internal/app/config"
	"edunexus-service/internal/app/contracts"
	"edunexus-service/internal/pkg/constvars"
	"edunexus-service/internal/pkg/exceptions"
	"encoding/base64"
	"fmt"
	"strings"
	"sync"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

var (
	minioPhotoStorageInstance contracts.PhotoStorage
	onceMinioPhotoStorage     sync.Once
)

type minioPhotoStorage struct {
	client *minio.Client
	cfg    config.AppMinio
	Log    *zap.Logger
}

func NewMinioPhotoStorage(client *minio.Client, cfg config.AppMinio, logger *zap.Logger) contracts.PhotoStorage {
	onceMinioPhotoStorage.Do(func() {
		minioPhotoStorageInstance = &minioPhotoStorage{
			client: client,
			cfg:    cfg,
			Log:    logger,
		}
	})
	return minioPhotoStorageInstance
}

var photoExtensionByMIME = map[string]string{
	constvars.MIMEImagePNG:  ".png",
	constvars.MIMEImageJPEG: ".jpg",
}

func (m *minioPhotoStorage) UploadDataURI(ctx context.Context, objectName, dataURI string) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	contentType, imageData, err := decodeDataURI(dataURI)
	if err != nil {
		return "", exceptions.ErrPhotoDecode(err)
	}

	maxBytes := int64(m.cfg.PhotoMaxUploadSizeInMB) * 1024 * 1024
	if int64(len(imageData)) > maxBytes {
		return "", exceptions.ErrPhotoDecode(fmt.Errorf("photo exceeds %d MB limit", m.cfg.PhotoMaxUploadSizeInMB))
	}

	extension, ok := photoExtensionByMIME[contentType]
	if !ok {
		return "", exceptions.ErrPhotoDecode(fmt.Errorf("unsupported photo content type %q", contentType))
	}
	fileName := objectName + extension

	_, err = m.client.PutObject(
		ctx,
		m.cfg.BucketName,
		fileName,
		strings.NewReader(string(imageData)),
		int64(len(imageData)),
		minio.PutObjectOptions{
			ContentType: contentType,
		},
	)
	if err != nil {
		m.Log.Error("minioPhotoStorage.UploadDataURI error storing object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrPhotoUpload(err)
	}

	objectURL := fmt.Sprintf("%s/%s/%s", m.client.EndpointURL().String(), m.cfg.BucketName, fileName)
	m.Log.Info("minioPhotoStorage.UploadDataURI photo stored",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDataKey, fileName),
	)
	return objectURL, nil
}

// decodeDataURI splits a "data:<mime>;base64,<payload>" URI into its content
// type and decoded bytes.
func decodeDataURI(dataURI string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(dataURI, "data:")
	if !ok {
		return "", nil, fmt.Errorf("missing data URI scheme")
	}
	contentType, payload, ok := strings.Cut(rest, ";base64,")
	if !ok {
		return "", nil, fmt.Errorf("data URI is not base64 encoded")
	}
	imageData, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, err
	}
	return contentType, imageData, nil
}
