package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjornmorten/stoat-wh/internal/httpclient"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	hc, err := httpclient.NewClientBuilder(zerolog.Nop()).
		WithUserAgent("stoat-wh/test").
		Build()
	require.NoError(t, err)
	return NewClient(hc, zerolog.Nop(), false)
}

func TestClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "stoat-wh/test", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"01ABC","name":"deploys","creator_id":"01USER","channel_id":"01CHAN","permissions":1234,"token":"s3cret"}`))
	}))
	defer server.Close()

	info, raw, err := newTestClient(t).Get(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "01ABC", info.ID)
	assert.Equal(t, "deploys", info.Name)
	assert.Equal(t, "01USER", info.CreatorID)
	assert.Equal(t, "01CHAN", info.ChannelID)
	assert.Equal(t, int64(1234), info.Permissions)
	require.NotNil(t, info.Token)
	assert.Equal(t, "s3cret", *info.Token)
	assert.NotEmpty(t, raw)
}

func TestClient_Get_TokenAbsent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"01ABC","name":"deploys"}`))
	}))
	defer server.Close()

	info, _, err := newTestClient(t).Get(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Nil(t, info.Token)
}

func TestClient_Edit(t *testing.T) {
	var bodies []map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		bodies = append(bodies, body)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(t)
	require.NoError(t, client.Edit(context.Background(), server.URL, "renamed"))
	require.NoError(t, client.Edit(context.Background(), server.URL, ""))

	require.Len(t, bodies, 2)
	assert.Equal(t, map[string]any{"name": "renamed"}, bodies[0])
	assert.Equal(t, map[string]any{}, bodies[1])
}

func TestClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	require.NoError(t, newTestClient(t).Delete(context.Background(), server.URL))
}

func TestClient_Send_EmbedsOnly(t *testing.T) {
	var received map[string]any
	var idempotencyKeys []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		idempotencyKeys = append(idempotencyKeys, r.Header.Get("Idempotency-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	payload, err := NewMessagePayloadBuilder().
		AddEmbed(map[string]any{"title": "x"}).
		Build()
	require.NoError(t, err)

	client := newTestClient(t)
	require.NoError(t, client.Send(context.Background(), server.URL, payload))

	embeds, ok := received["embeds"].([]any)
	require.True(t, ok)
	assert.Len(t, embeds, 1)
	_, hasContent := received["content"]
	assert.False(t, hasContent)

	// A second send must carry a different idempotency key.
	require.NoError(t, client.Send(context.Background(), server.URL, payload))
	require.Len(t, idempotencyKeys, 2)
	assert.NotEmpty(t, idempotencyKeys[0])
	assert.NotEqual(t, idempotencyKeys[0], idempotencyKeys[1])
}

func TestClient_APIErrorClassification(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"type":"NotFound"}`))
	}))
	defer server.Close()

	_, _, err := newTestClient(t).Get(context.Background(), server.URL)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.True(t, apiErr.Decoded)
	assert.Equal(t, "Webhook not found - check if it exists and if the ID is correct", apiErr.FriendlyMessage())
}

func TestClient_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	err := newTestClient(t).Delete(context.Background(), url)
	require.Error(t, err)

	var netErr *httpclient.NetworkError
	assert.ErrorAs(t, err, &netErr)
}

func TestNewIdempotencyKey_Unique(t *testing.T) {
	assert.NotEqual(t, NewIdempotencyKey(), NewIdempotencyKey())
}
