package imagehost

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(server *httptest.Server) *Client {
	return &Client{
		HttpClient: server.Client(),
		UploadUrl:  server.URL,
		ApiKey:     "test-key",
	}
}

func TestUpload_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "avatar.png", header.Filename)

		w.Write([]byte(`{"success":true,"data":{"url":"https://img/x.png"}}`))
	}))
	defer server.Close()

	url, err := newTestClient(server).Upload(context.Background(), []byte("png-bytes"), "avatar.png")

	require.NoError(t, err)
	assert.Equal(t, "https://img/x.png", url)
}

func TestUpload_RejectedByHost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false}`))
	}))
	defer server.Close()

	_, err := newTestClient(server).Upload(context.Background(), []byte("png-bytes"), "avatar.png")

	assert.Error(t, err)
}

func TestUpload_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := newTestClient(server).Upload(context.Background(), []byte("png-bytes"), "avatar.png")

	assert.Error(t, err)
}

func TestUpload_MissingUrlInResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{}}`))
	}))
	defer server.Close()

	_, err := newTestClient(server).Upload(context.Background(), []byte("png-bytes"), "avatar.png")

	assert.Error(t, err)
}
