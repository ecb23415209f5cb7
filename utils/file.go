package utils

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// SaveImage stores an uploaded image under uploadDir and returns the
// generated filename.
func SaveImage(c *gin.Context, fileHeader *multipart.FileHeader, uploadDir string, maxSize int64) (string, error) {
	if fileHeader.Size > maxSize {
		return "", errors.New("file size exceeds maximum allowed size")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExtensions[ext] {
		return "", errors.New("only image files are allowed")
	}

	if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
	if err := c.SaveUploadedFile(fileHeader, filepath.Join(uploadDir, filename)); err != nil {
		return "", err
	}

	return filename, nil
}

// DeleteImage removes a stored image. Missing files and remote URLs
// are ignored.
func DeleteImage(uploadDir, filename string) error {
	if filename == "" || strings.HasPrefix(filename, "http") {
		return nil
	}
	fullPath := filepath.Join(uploadDir, filename)
	if _, err := os.Stat(fullPath); err == nil {
		return os.Remove(fullPath)
	}
	return nil
}
