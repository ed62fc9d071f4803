package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ListFeedback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/feedback", r.URL.Path)
		w.Write([]byte(`[{"id":2,"message":"b","source":"email","theme":null},{"id":1,"message":"a","source":"social","theme":"login"}]`))
	}))
	defer srv.Close()

	items, err := New(srv.URL+"/", time.Second).ListFeedback(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.False(t, items[0].IsAnalyzed())
	assert.True(t, items[1].IsAnalyzed())
}

func TestClient_Analyze(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]int64
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, int64(7), body["id"])
		w.Write([]byte(`{"id":7,"message":"m","source":"email","theme":"billing","sentiment":"negative","urgency":"high","summary":"s"}`))
	}))
	defer srv.Close()

	item, err := New(srv.URL, time.Second).Analyze(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, item.Theme)
	assert.Equal(t, "billing", *item.Theme)
}

func TestClient_ErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"No analyzed feedback yet"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, time.Second).Summary(context.Background())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "No analyzed feedback yet", apiErr.Message)
}

func TestClient_SendDigestAndStatus(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/send-digest", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"Digest workflow started","id":"run-1"}`))
	})
	mux.HandleFunc("/api/digests/run-1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"run-1","workflow":"digest","status":"completed","steps":["fetch-feedback"]}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(srv.URL, time.Second)
	handle, err := c.SendDigest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "run-1", handle.ID)

	inst, err := c.GetDigest(context.Background(), handle.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", string(inst.Status))
	assert.Equal(t, []string{"fetch-feedback"}, inst.Steps)
}

func TestClient_GetDigestEscapesID(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Digest run not found"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, time.Second).GetDigest(context.Background(), "../feedback?x=1")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "/api/digests/..%2Ffeedback%3Fx=1", gotPath)
}
