package libs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// UploadToCloudinary pushes a locally stored image to Cloudinary and
// removes the local copy. Returns the hosted URL.
func UploadToCloudinary(cloudinaryURL, uploadDir, filename string) (string, error) {
	localPath := filepath.Join(uploadDir, filename)
	if _, err := os.Stat(localPath); os.IsNotExist(err) {
		return "", fmt.Errorf("file not found: %s", localPath)
	}

	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return "", fmt.Errorf("cloudinary init failed: %w", err)
	}

	resp, err := cld.Upload.Upload(context.Background(), localPath, uploader.UploadParams{
		PublicID: fmt.Sprintf("product_%d", time.Now().UnixNano()),
		Folder:   "products",
	})
	if err != nil {
		return "", err
	}
	if resp == nil || resp.SecureURL == "" {
		return "", fmt.Errorf("cloudinary returned no URL")
	}

	os.Remove(localPath)
	return resp.SecureURL, nil
}
