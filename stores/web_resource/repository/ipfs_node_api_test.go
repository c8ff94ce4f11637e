package repository

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	ipfsapi "github.com/ipfs/go-ipfs-api"
	"github.com/stretchr/testify/require"

	bCtx "github.com/x-xyz/gosdk/base/ctx"
	"github.com/x-xyz/gosdk/base/log"
)

// needs a local ipfs daemon
func Test_ipfsNodeApiRepo_RoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}
	req := require.New(t)
	ctx := bCtx.Background()
	shell := ipfsapi.NewShell("localhost:5001")
	if !shell.IsUp() {
		t.Skip("ipfs daemon not running")
	}

	writer := NewIpfsNodeApiWriterRepo(shell, 10*time.Second)
	reader := NewIpfsNodeApiReaderRepo(shell, 10*time.Second)

	uri, err := writer.Store(ctx, "meta.json", []byte(`{"name":"node"}`), "application/json")
	req.NoError(err)
	req.Contains(uri, ipfsPrefix)

	b, err := reader.Get(ctx, uri[len(ipfsPrefix):])
	req.NoError(err)
	req.Equal(`{"name":"node"}`, string(b))
}

func Test_ipfsNodeApiRepo_TooLarge(t *testing.T) {
	log.Nop()
	req := require.New(t)
	ctx := bCtx.Background()

	const body = `{"name":"node"}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/cat") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	defer func(n int64) { maxResourceSize = n }(maxResourceSize)
	reader := NewIpfsNodeApiReaderRepo(ipfsapi.NewShell(strings.TrimPrefix(srv.URL, "http://")), time.Second)

	maxResourceSize = int64(len(body))
	b, err := reader.Get(ctx, "QmMeta")
	req.NoError(err)
	req.Equal(body, string(b))

	maxResourceSize = 8
	b, err = reader.Get(ctx, "QmMeta")
	req.Error(err)
	req.Nil(b)
}
