package supabase_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nut-orders-backend/internal/models"
	"nut-orders-backend/internal/supabase"
)

const testBase = "https://project.supabase.co"

func newTestStorage(t *testing.T, baseURL string) *supabase.StorageClient {
	t.Helper()
	client, err := supabase.NewStorageClient(baseURL, "service-key", "order-media")
	require.NoError(t, err)
	return client
}

func TestNewStorageClient_RequiresBucketAndURL(t *testing.T) {
	_, err := supabase.NewStorageClient(testBase, "key", "")
	assert.Error(t, err)

	_, err = supabase.NewStorageClient("", "key", "order-media")
	assert.Error(t, err)
}

func TestPublicURL(t *testing.T) {
	client := newTestStorage(t, testBase+"/")

	assert.Equal(t,
		"https://project.supabase.co/storage/v1/object/public/order-media/order-media/o1/abc.jpg",
		client.PublicURL("order-media/o1/abc.jpg"))
}

func TestPathFromURL_ReversesPublicURL(t *testing.T) {
	client := newTestStorage(t, testBase)
	path := "order-media/7b1c/abc123def456ghij.mp4"

	got, ok := client.PathFromURL(client.PublicURL(path))

	require.True(t, ok)
	assert.Equal(t, path, got)
}

func TestPathFromURL_Rejects(t *testing.T) {
	client := newTestStorage(t, testBase)

	tests := []struct {
		name string
		url  string
	}{
		{name: "other host", url: "https://elsewhere.example.com/storage/v1/object/public/order-media/a.jpg"},
		{name: "other bucket", url: testBase + "/storage/v1/object/public/avatars/a.jpg"},
		{name: "traversal", url: testBase + "/storage/v1/object/public/order-media/../secrets.txt"},
		{name: "bucket root", url: testBase + "/storage/v1/object/public/order-media/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := client.PathFromURL(tt.url)
			assert.False(t, ok)
		})
	}
}

func TestPathFromURL_StripsQuery(t *testing.T) {
	client := newTestStorage(t, testBase)

	got, ok := client.PathFromURL(client.PublicURL("order-media/o1/a.jpg") + "?download=1")

	require.True(t, ok)
	assert.Equal(t, "order-media/o1/a.jpg", got)
}

func TestValidateObjectPath(t *testing.T) {
	valid := []string{"a.jpg", "order-media/o1/abc.jpg"}
	invalid := []string{"", "/abs.jpg", "dir/", "a//b.jpg", "a/./b.jpg", "a/../b.jpg"}

	for _, p := range valid {
		assert.NoError(t, supabase.ValidateObjectPath(p), p)
	}
	for _, p := range invalid {
		assert.ErrorIs(t, supabase.ValidateObjectPath(p), models.ErrInvalidPath, p)
	}
}

func TestUpload_InvalidPathSkipsNetwork(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer server.Close()
	client := newTestStorage(t, server.URL)

	_, err := client.Upload("../escape.jpg", strings.NewReader("x"), "image/jpeg")

	assert.ErrorIs(t, err, models.ErrInvalidPath)
	assert.Zero(t, hits)
}

func TestUpload_SendsObjectToBucket(t *testing.T) {
	path := "order-media/o1/abc123def456ghij.jpg"
	var gotPath, gotBody, gotType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Key":"order-media/` + path + `"}`))
	}))
	defer server.Close()
	client := newTestStorage(t, server.URL)

	obj, err := client.Upload(path, strings.NewReader("jpeg-bytes"), "image/jpeg")

	require.NoError(t, err)
	assert.Equal(t, &models.StorageObject{Bucket: "order-media", Path: path}, obj)
	assert.True(t, strings.HasSuffix(gotPath, "/order-media/"+path), gotPath)
	assert.Equal(t, "image/jpeg", gotType)
	assert.Equal(t, "jpeg-bytes", gotBody)
}

func TestUpload_UnreachableStorage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()
	client := newTestStorage(t, url)

	_, err := client.Upload("order-media/o1/a.jpg", strings.NewReader("x"), "image/jpeg")

	assert.ErrorIs(t, err, models.ErrStorageUnavailable)
}

func TestRemove_NothingRemovedIsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()
	client := newTestStorage(t, server.URL)

	err := client.Remove("order-media/o1/missing.jpg")

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestList_ReturnsFullPaths(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"name":"abc.jpg"},{"name":"def.mp4"}]`))
	}))
	defer server.Close()
	client := newTestStorage(t, server.URL)

	paths, err := client.List("order-media/o1/")

	require.NoError(t, err)
	assert.Equal(t, []string{"order-media/o1/abc.jpg", "order-media/o1/def.mp4"}, paths)
}
