package services

import (
	"context"

	"github.com/SscSPs/vidtube_backend/internal/core/domain"
)

// ObjectStorage persists uploaded files and serves them by URL.
type ObjectStorage interface {
	// UploadFile stores the local file and removes it from disk, whether or not the upload succeeded.
	UploadFile(ctx context.Context, localPath string) (*domain.StoredObject, error)

	// DeleteFile removes the object behind url. Failures are logged, never returned.
	DeleteFile(ctx context.Context, url string)
}

// EventPublisher announces account events to other services.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.AccountEvent) error
}
