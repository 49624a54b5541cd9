package interfaces

import (
	"context"
	"io"
	"time"
)

// Document is an uploaded file: a quote PDF or a client signature image.
type Document struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// IDocumentStore abstracts object storage (S3) for quote documents.
// Put returns the object key the quote record keeps; PresignGet returns a
// short-lived download link for a stored key.
type IDocumentStore interface {
	Put(ctx context.Context, key string, doc Document) (string, error)
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
}
