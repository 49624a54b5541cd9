package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"rental_quotes/internal/usecase/interfaces"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	maxQuotePDFSize   = 10 << 20
	maxSignatureSize  = 5 << 20
	multipartMemLimit = 12 << 20
)

var errUploadTooLarge = errors.New("uploaded file is too large")

// formDocument opens an optional multipart file. A missing part returns (nil, nil).
// The returned closer must be called once the document has been stored.
func formDocument(c *gin.Context, field string, maxSize int64, allowed func(contentType, name string) bool) (*interfaces.Document, func(), error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, func() {}, nil
		}
		return nil, func() {}, err
	}
	if header.Size > maxSize {
		return nil, func() {}, fmt.Errorf("%w: %s exceeds %d MB", errUploadTooLarge, field, maxSize>>20)
	}
	contentType := header.Header.Get("Content-Type")
	if !allowed(contentType, header.Filename) {
		return nil, func() {}, fmt.Errorf("unsupported %s file type %q", field, contentType)
	}

	f, err := header.Open()
	if err != nil {
		return nil, func() {}, err
	}
	return documentFrom(header, f, contentType), func() { _ = f.Close() }, nil
}

func documentFrom(header *multipart.FileHeader, f multipart.File, contentType string) *interfaces.Document {
	return &interfaces.Document{
		FileName:    header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		Body:        f,
	}
}

func isPDF(contentType, name string) bool {
	return contentType == "application/pdf" || strings.HasSuffix(strings.ToLower(name), ".pdf")
}

func isImage(contentType, name string) bool {
	if strings.HasPrefix(contentType, "image/") {
		return true
	}
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".png") || strings.HasSuffix(lower, ".jpg") || strings.HasSuffix(lower, ".jpeg") || strings.HasSuffix(lower, ".webp")
}
