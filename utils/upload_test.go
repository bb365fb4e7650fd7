package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// multipartFile builds a FileHeader the same way gin does for a real upload
func multipartFile(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("image", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(MaxImageSize))
	return req.MultipartForm.File["image"][0]
}

func TestValidateImageFile(t *testing.T) {
	assert.NoError(t, ValidateImageFile(multipartFile(t, "photo.PNG", []byte("png"))))
	assert.Error(t, ValidateImageFile(multipartFile(t, "script.exe", []byte("exe"))))
	assert.Error(t, ValidateImageFile(multipartFile(t, "empty.jpg", nil)))
	assert.Error(t, ValidateImageFile(&multipart.FileHeader{Filename: "big.jpg", Size: MaxImageSize + 1}))
}

func TestSaveAndDeleteLocalImage(t *testing.T) {
	dir := t.TempDir()
	url, err := SaveUploadedFile(multipartFile(t, "photo.jpg", []byte("jpeg-bytes")), dir)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, ".jpg"))

	stored := filepath.Join(dir, filepath.Base(url))
	content, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(content))

	require.NoError(t, DeleteLocalImage(url, dir))
	_, err = os.Stat(stored)
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, DeleteLocalImage("https://cdn.example.com/a.png", dir))
}

func TestImageHostUpload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(MaxImageSize); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if r.FormValue("key") != "secret" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "error": map[string]string{"message": "bad key"}})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": map[string]string{"url": "https://i.example.com/x.png"}})
	}))
	defer server.Close()

	host := NewImageHost(server.URL, "secret")
	url, err := host.Upload(context.Background(), multipartFile(t, "x.png", []byte("png")))
	require.NoError(t, err)
	assert.Equal(t, "https://i.example.com/x.png", url)

	bad := NewImageHost(server.URL, "wrong")
	_, err = bad.Upload(context.Background(), multipartFile(t, "x.png", []byte("png")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad key")
}

func TestNewImageHostWithoutKey(t *testing.T) {
	assert.Nil(t, NewImageHost("https://api.example.com", ""))
}
