package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/laundry-marketplace/internal/config"
)

func TestPublicBaseURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com",
		publicBaseURL(config.S3Config{Bucket: "b", PublicBaseURL: "https://cdn.example.com/"}))
	assert.Equal(t, "http://minio:9000/b",
		publicBaseURL(config.S3Config{Bucket: "b", Endpoint: "http://minio:9000"}))
	assert.Equal(t, "https://b.s3.sa-east-1.amazonaws.com",
		publicBaseURL(config.S3Config{Bucket: "b", Region: "sa-east-1"}))
}

func TestS3StorePutUploadsToBucket(t *testing.T) {
	var (
		mu          sync.Mutex
		method      string
		objectPath  string
		contentType string
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		method = r.Method
		objectPath = r.URL.Path
		contentType = r.Header.Get("Content-Type")
		mu.Unlock()

		_, _ = io.Copy(io.Discard, r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	store := NewS3Store(config.S3Config{
		Bucket:    "merchant-images",
		Region:    "us-east-1",
		Endpoint:  srv.URL,
		AccessKey: "key",
		SecretKey: "secret",
	})

	url, err := store.Put(context.Background(), "merchants/3", ".png", "image/png", []byte("fake-png"))
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()

	assert.Equal(t, http.MethodPut, method)
	assert.True(t, strings.HasPrefix(objectPath, "/merchant-images/merchants/3/"), objectPath)
	assert.True(t, strings.HasSuffix(objectPath, ".png"), objectPath)
	assert.Equal(t, "image/png", contentType)
	assert.Equal(t, srv.URL+objectPath, url)
}
