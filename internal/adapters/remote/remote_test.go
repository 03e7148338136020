package remote

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSource_FetchKeepsBodyCompressed(t *testing.T) {
	var body bytes.Buffer
	zw := gzip.NewWriter(&body)
	zw.Write([]byte("a,b,c\n1,2,3\n"))
	require.NoError(t, zw.Close())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "identity", r.Header.Get("Accept-Encoding"))
		w.Header().Set("Content-Encoding", "gzip")
		w.Write(body.Bytes())
	}))
	defer srv.Close()

	h := NewHTTPSource(srv.Client(), time.Second)
	data, err := h.Fetch(context.Background(), srv.URL+"/meta.csv.gz")
	require.NoError(t, err)
	assert.Equal(t, body.Bytes(), data)
}

func TestHTTPSource_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "missing", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewHTTPSource(srv.Client(), 0).Fetch(context.Background(), srv.URL+"/nope.csv.gz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestHTTPSource_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	_, err := NewHTTPSource(srv.Client(), 50*time.Millisecond).Fetch(context.Background(), srv.URL)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestHTTPSource_Handles(t *testing.T) {
	h := NewHTTPSource(nil, 0)
	assert.True(t, h.Handles("https://airfire-data-exports.s3.us-west-2.amazonaws.com/meta.csv.gz"))
	assert.True(t, h.Handles("http://localhost/x"))
	assert.False(t, h.Handles("meta.csv.gz"))
}
