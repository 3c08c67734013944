package certificates

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// BlobStore publishes a rendered document to durable storage and returns its
// public URL plus an opaque handle for later overwrite/delete.
type BlobStore interface {
	Publish(ctx context.Context, data []byte, folder, name, format string) (url, publicID string, err error)
}

// CloudinaryStore uploads certificate documents as raw assets on Cloudinary.
// Re-publishing under the same name overwrites the previous asset.
type CloudinaryStore struct {
	cld     *cloudinary.Cloudinary
	timeout time.Duration
}

func NewCloudinaryStore(cloudName, apiKey, apiSecret string, timeout time.Duration) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init failed: %w", err)
	}
	return &CloudinaryStore{cld: cld, timeout: timeout}, nil
}

func (s *CloudinaryStore) Publish(ctx context.Context, data []byte, folder, name, format string) (string, string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		PublicID:     name,
		Folder:       folder,
		ResourceType: "raw",
		Format:       format,
		Overwrite:    api.Bool(true),
	})
	if err != nil {
		return "", "", fmt.Errorf("cloudinary upload failed: %w", err)
	}
	if resp.Error.Message != "" {
		return "", "", fmt.Errorf("cloudinary upload failed: %s", resp.Error.Message)
	}
	return resp.SecureURL, resp.PublicID, nil
}
