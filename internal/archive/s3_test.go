package archive

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
)

func TestNewS3Store_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  S3Config
		err  string
	}{
		{"missing endpoint", S3Config{AccessKey: "a", SecretKey: "s", Bucket: "b"}, "endpoint is required"},
		{"missing keys", S3Config{Endpoint: "localhost:9000", AccessKey: "a", Bucket: "b"}, "access key and secret key are required"},
		{"missing bucket", S3Config{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s", Bucket: " "}, "bucket is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := NewS3Store(tt.cfg)

			assert.Nil(t, store)
			assert.ErrorContains(t, err, tt.err)
		})
	}
}

func TestNewS3Store_DefaultsRegion(t *testing.T) {
	store, err := NewS3Store(S3Config{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s", Bucket: "reports"})

	require.NoError(t, err)
	assert.Equal(t, "us-east-1", store.region)
	assert.Equal(t, "reports", store.bucketName)
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/json", contentType("1/.docs-reports/docs-accuracy-report.json"))
	assert.Equal(t, "text/markdown; charset=utf-8", contentType("1/.trivy-reports/trivy-report.md"))
	assert.Equal(t, "text/csv", contentType("1/.complexity-reports/complexity-report.csv"))
	assert.Equal(t, "application/octet-stream", contentType("1/blob"))
}

type fakeS3 struct {
	mu           sync.Mutex
	bucketExists bool
	requests     []string
	objects      map[string]string
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.requests = append(f.requests, r.Method+" "+r.URL.Path)
	parts := strings.SplitN(strings.Trim(r.URL.Path, "/"), "/", 2)

	switch {
	case r.Method == http.MethodHead && len(parts) == 1:
		if !f.bucketExists {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	case r.Method == http.MethodPut && len(parts) == 1:
		f.bucketExists = true
		w.WriteHeader(http.StatusOK)
	case r.Method == http.MethodPut && len(parts) == 2:
		body, _ := io.ReadAll(r.Body)
		f.objects[parts[1]] = string(body)
		w.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
		w.WriteHeader(http.StatusOK)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func TestS3Store_PutCreatesBucketOnce(t *testing.T) {
	fake := &fakeS3{objects: map[string]string{}}
	server := httptest.NewServer(fake)
	defer server.Close()

	store, err := NewS3Store(S3Config{
		Endpoint:  strings.TrimPrefix(server.URL, "http://"),
		AccessKey: "access",
		SecretKey: "secret",
		Bucket:    "reports",
	})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "42/.docs-reports/docs-structure-report.json", []byte(`{"valid": true}`)))
	require.NoError(t, store.Put(ctx, "42/.docs-reports/docs-accuracy-report.json", []byte(`{"clean": true}`)))

	fake.mu.Lock()
	defer fake.mu.Unlock()

	// uploads over plain HTTP arrive aws-chunked encoded
	assert.Contains(t, fake.objects["42/.docs-reports/docs-structure-report.json"], `{"valid": true}`)
	assert.Contains(t, fake.objects["42/.docs-reports/docs-accuracy-report.json"], `{"clean": true}`)

	bucketCalls := 0
	for _, req := range fake.requests {
		if strings.TrimSuffix(req, "/") == "HEAD /reports" || strings.TrimSuffix(req, "/") == "PUT /reports" {
			bucketCalls++
		}
	}
	assert.Equal(t, 2, bucketCalls)
}

func TestS3Store_PutRequiresKey(t *testing.T) {
	store, err := NewS3Store(S3Config{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s", Bucket: "b"})
	require.NoError(t, err)

	assert.ErrorContains(t, store.Put(context.Background(), "  ", nil), "object key is required")
}
