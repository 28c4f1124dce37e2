package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchVideos(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "test_key", r.Header.Get(APIKeyHeader))

		response := `{
			"videos": [
				{"id": "1", "title": "Amazing Cat Video", "tags": ["#cat", "#funny"]},
				{"id": "2", "title": "Another Cat Video", "tags": ["#cat"], "flag": "spam"}
			]
		}`
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, response)
	}))
	defer server.Close()

	client, err := New(Config{URL: server.URL, APIKey: "test_key"})
	require.NoError(t, err)

	videos, err := client.FetchVideos(context.Background())
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, "Amazing Cat Video", videos[0].Title)
	assert.Equal(t, []string{"#cat", "#funny"}, videos[0].Tags)
	assert.Equal(t, "spam", videos[1].Flag)
}

func TestFetchVideos_NoAPIKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get(APIKeyHeader))
		fmt.Fprint(w, `{"videos": []}`)
	}))
	defer server.Close()

	client, err := New(Config{URL: server.URL})
	require.NoError(t, err)

	videos, err := client.FetchVideos(context.Background())
	require.NoError(t, err)
	assert.Empty(t, videos)
}

func TestFetchVideos_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"error": 10, "message": "Invalid API key"}`)
	}))
	defer server.Close()

	client, err := New(Config{URL: server.URL})
	require.NoError(t, err)

	_, err = client.FetchVideos(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog API error 10")
}

func TestFetchVideos_HTTPStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := New(Config{URL: server.URL})
	require.NoError(t, err)

	_, err = client.FetchVideos(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestFetchVideos_InvalidEntry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"videos": [{"id": "1"}]}`)
	}))
	defer server.Close()

	client, err := New(Config{URL: server.URL})
	require.NoError(t, err)

	_, err = client.FetchVideos(context.Background())
	assert.Error(t, err)
}

func TestNew_RequiresURL(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}
