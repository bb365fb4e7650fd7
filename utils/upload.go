package utils

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxImageSize is the largest accepted image upload
const MaxImageSize = 5 * 1024 * 1024

// UploadDir is where images are stored when no image host is configured
const UploadDir = "uploads"

// AllowedImageTypes defines the allowed image file extensions
var AllowedImageTypes = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// ValidateImageFile checks if the uploaded file is a valid image
func ValidateImageFile(file *multipart.FileHeader) error {
	if file.Size > MaxImageSize {
		return fmt.Errorf("file size exceeds 5MB limit")
	}
	if file.Size == 0 {
		return fmt.Errorf("file is empty")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !AllowedImageTypes[ext] {
		return fmt.Errorf("invalid file type. Allowed types: jpg, jpeg, png, gif, webp")
	}
	return nil
}

// SaveUploadedFile saves an uploaded file under uploadDir and returns its relative URL
func SaveUploadedFile(file *multipart.FileHeader, uploadDir string) (string, error) {
	if err := ValidateImageFile(file); err != nil {
		return "", err
	}

	filename := uuid.New().String() + strings.ToLower(filepath.Ext(file.Filename))
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create uploads directory: %v", err)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %v", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(uploadDir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %v", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to save file: %v", err)
	}

	return "/" + filepath.ToSlash(filepath.Join(uploadDir, filename)), nil
}

// DeleteLocalImage removes a file previously returned by SaveUploadedFile.
// URLs pointing elsewhere are ignored.
func DeleteLocalImage(url, uploadDir string) error {
	prefix := "/" + filepath.ToSlash(uploadDir) + "/"
	if !strings.HasPrefix(url, prefix) {
		return nil
	}
	name := filepath.Base(strings.TrimPrefix(url, prefix))
	if err := os.Remove(filepath.Join(uploadDir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %v", err)
	}
	return nil
}

// ImageHost forwards images to an imgbb-compatible hosting API
type ImageHost struct {
	URL    string
	APIKey string
	Client *http.Client
}

// NewImageHost returns nil when no API key is configured
func NewImageHost(url, apiKey string) *ImageHost {
	if apiKey == "" {
		return nil
	}
	return &ImageHost{URL: url, APIKey: apiKey, Client: &http.Client{Timeout: 30 * time.Second}}
}

type imageHostResponse struct {
	Success bool `json:"success"`
	Data    struct {
		URL        string `json:"url"`
		DisplayURL string `json:"display_url"`
	} `json:"data"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload sends the image and returns its public URL
func (h *ImageHost) Upload(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if err := ValidateImageFile(file); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %v", err)
	}
	defer src.Close()
	raw, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("failed to read uploaded file: %v", err)
	}

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	if err := form.WriteField("key", h.APIKey); err != nil {
		return "", err
	}
	if err := form.WriteField("image", base64.StdEncoding.EncodeToString(raw)); err != nil {
		return "", err
	}
	if err := form.WriteField("name", strings.TrimSuffix(filepath.Base(file.Filename), filepath.Ext(file.Filename))); err != nil {
		return "", err
	}
	if err := form.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.URL, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := h.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("image host request failed: %v", err)
	}
	defer resp.Body.Close()

	var result imageHostResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&result); err != nil {
		return "", fmt.Errorf("invalid image host response (status %d): %v", resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK || !result.Success {
		return "", fmt.Errorf("image host rejected upload (status %d): %s", resp.StatusCode, result.Error.Message)
	}
	if result.Data.URL != "" {
		return result.Data.URL, nil
	}
	return result.Data.DisplayURL, nil
}
