package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rental_quotes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// S3DocumentStore keeps quote PDFs and signature images in one bucket.
type S3DocumentStore struct {
	s3Client      *s3.Client
	presignClient *s3.PresignClient
	bucket        string
	log           *zap.Logger
}

var _ interfaces.IDocumentStore = (*S3DocumentStore)(nil)

func NewS3DocumentStore(client *s3.Client, bucket string, logger *zap.Logger) *S3DocumentStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &S3DocumentStore{
		s3Client:      client,
		presignClient: s3.NewPresignClient(client),
		bucket:        bucket,
		log:           logger.Named("s3"),
	}
}

func (s *S3DocumentStore) Put(ctx context.Context, key string, doc interfaces.Document) (string, error) {
	key = strings.TrimLeft(key, "/")
	if key == "" || doc.Body == nil {
		return "", fmt.Errorf("document key and body are required")
	}
	contentType := doc.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	in := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        doc.Body,
		ContentType: aws.String(contentType),
	}
	if doc.Size > 0 {
		in.ContentLength = aws.Int64(doc.Size)
	}
	if doc.FileName != "" {
		in.Metadata = map[string]string{"original-name": doc.FileName}
	}

	if _, err := s.s3Client.PutObject(ctx, in); err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	s.log.Debug("document stored", zap.String("key", key), zap.Int64("size", doc.Size))
	return key, nil
}

func (s *S3DocumentStore) PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error) {
	if key == "" {
		return "", fmt.Errorf("document key is required")
	}
	req, err := s.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", fmt.Errorf("failed to presign GET for key %s: %w", key, err)
	}
	return req.URL, nil
}
