package repository

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/storage"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	bCtx "github.com/x-xyz/gosdk/base/ctx"
	"github.com/x-xyz/gosdk/base/log"
)

func Test_cloudStorageWriterRepo_StoreFake(t *testing.T) {
	log.Nop()
	req := require.New(t)
	ctx := bCtx.Background()

	var (
		mu     sync.Mutex
		paths  []string
		bodies []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		paths = append(paths, r.Method+" "+r.URL.Path)
		bodies = append(bodies, string(b))
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"bucket":"assets","name":"0xabc/meta.json"}`))
	}))
	defer srv.Close()

	client, err := storage.NewClient(ctx, option.WithEndpoint(srv.URL+"/storage/v1/"), option.WithoutAuthentication())
	req.NoError(err)
	defer client.Close()

	repo, err := NewCloudStorageWriterRepo(&CloudStorageWriterRepoCfg{
		Timeout:    5 * time.Second,
		Client:     client,
		BucketName: "assets",
		Url:        "https://cdn.example.com/assets/",
	})
	req.NoError(err)

	url, err := repo.Store(ctx, "/0xabc/../0xabc/meta.json", []byte(`{"name":"gcs"}`), "")
	req.NoError(err)
	req.Equal("https://cdn.example.com/assets/0xabc/meta.json", url)

	mu.Lock()
	defer mu.Unlock()
	req.Len(paths, 1)
	req.True(strings.HasPrefix(paths[0], "POST "))
	req.Contains(paths[0], "/b/assets/o")
	req.Contains(bodies[0], `"cacheControl":"public, max-age=31536000, immutable"`)
	req.Contains(bodies[0], `"contentType":"application/json"`)
	req.Contains(bodies[0], `{"name":"gcs"}`)
}

// needs GOOGLE_APPLICATION_CREDENTIALS and GCS_TEST_BUCKET
func Test_cloudStorageWriterRepo_Store(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}
	bucket := os.Getenv("GCS_TEST_BUCKET")
	if len(bucket) == 0 {
		t.Skip("GCS_TEST_BUCKET not set")
	}
	req := require.New(t)
	ctx := bCtx.Background()
	client, err := storage.NewClient(ctx)
	req.NoError(err)
	defer client.Close()

	repo, err := NewCloudStorageWriterRepo(&CloudStorageWriterRepoCfg{
		Timeout:    10 * time.Second,
		Client:     client,
		BucketName: bucket,
		Url:        "https://storage.googleapis.com/" + bucket + "/",
	})
	req.NoError(err)

	name := "testing/" + time.Now().Format("20060102150405") + ".json"
	url, err := repo.Store(ctx, name, []byte(`{"name":"gcs"}`), "application/json")
	req.NoError(err)
	req.Equal("https://storage.googleapis.com/"+bucket+"/"+name, url)
	req.NoError(client.Bucket(bucket).Object(name).Delete(ctx))
}
