package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/pageza/homebar/backend/config"
)

// ErrNotAnImage is returned for upload requests with a non-image MIME type.
var ErrNotAnImage = errors.New("only image files are allowed")

// presignTTL bounds how long an upload URL stays valid.
const presignTTL = 5 * time.Minute

var unsafeKeyChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// UploadTicket is a presigned upload grant: the client PUTs the file to
// UploadURL and stores PublicURL on the recipe.
type UploadTicket struct {
	UploadURL string `json:"uploadUrl"`
	PublicURL string `json:"publicUrl"`
	Key       string `json:"key"`
}

// UploadService issues presigned S3 PUT URLs for recipe images so uploads
// bypass the API server entirely.
type UploadService struct {
	s3  *config.S3Config
	now func() time.Time
}

// NewUploadService creates a new UploadService instance
func NewUploadService(s3 *config.S3Config) *UploadService {
	return &UploadService{s3: s3, now: time.Now}
}

// PresignUpload validates the request and returns an upload ticket.
func (s *UploadService) PresignUpload(ctx context.Context, fileName, fileType string) (*UploadTicket, error) {
	if fileName == "" || fileType == "" {
		return nil, errors.New("fileName and fileType are required")
	}
	if !strings.HasPrefix(fileType, "image/") {
		return nil, ErrNotAnImage
	}

	sanitized := unsafeKeyChars.ReplaceAllString(fileName, "_")
	key := fmt.Sprintf("recipe-images/%d-%s", s.now().UnixMilli(), sanitized)

	uploadURL, err := s.s3.PresignUploadURL(ctx, key, fileType, presignTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate upload URL: %w", err)
	}

	return &UploadTicket{
		UploadURL: uploadURL,
		PublicURL: s.s3.PublicURL(key),
		Key:       key,
	}, nil
}
