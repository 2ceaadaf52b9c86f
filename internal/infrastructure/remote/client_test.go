package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vng-realisatie/klantinteracties/internal/core/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, string) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	root := srv.URL + "/zaken/api/v1/"
	creds := NewCredentials([]domain.Credential{{APIRoot: root, ClientID: "klantinteracties", Secret: "geheim"}})
	return NewClient(Config{RetryMax: 2}, creds, zerolog.Nop()), root
}

func TestClient_List(t *testing.T) {
	var gotAuth, gotPath, gotQuery string
	client, root := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[{"url":"x"}]`))
	})

	items, err := client.List(context.Background(), root+"zaken/1", "zaakcontactmoment",
		map[string]string{"zaak": root + "zaken/1"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "x", items[0]["url"])
	assert.Equal(t, "/zaken/api/v1/zaakcontactmomenten", gotPath)
	assert.Contains(t, gotQuery, "zaak=")
	assert.True(t, strings.HasPrefix(gotAuth, "Bearer "))
}

func TestClient_ListPaginated(t *testing.T) {
	client, root := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"count":2,"next":null,"results":[{"url":"a"},{"url":"b"}]}`))
	})

	items, err := client.List(context.Background(), root, "objectinformatieobject", nil)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestClient_CreateIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	client, root := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"detail":"down"}`))
	})

	_, err := client.Create(context.Background(), root, "zaakcontactmoment", map[string]string{"zaak": "z"})
	require.Error(t, err)

	var status *StatusError
	require.ErrorAs(t, err, &status)
	assert.Equal(t, http.StatusServiceUnavailable, status.Status)
	assert.Contains(t, status.Body, "down")
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_CreateSendsBody(t *testing.T) {
	var body map[string]string
	client, root := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"url":"created"}`))
	})

	created, err := client.Create(context.Background(), root, "zaakcontactmoment", map[string]string{"zaak": "z", "contactmoment": "c"})
	require.NoError(t, err)
	assert.Equal(t, "created", created["url"])
	assert.Equal(t, map[string]string{"zaak": "z", "contactmoment": "c"}, body)
}

func TestClient_DeleteIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	client, root := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	})

	err := client.Delete(context.Background(), root+"zaakcontactmomenten/1")

	var status *StatusError
	require.ErrorAs(t, err, &status)
	assert.Equal(t, http.StatusBadGateway, status.Status)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_RetrieveIsRetried(t *testing.T) {
	var calls atomic.Int32
	client, root := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"url":"found"}`))
	})

	obj, err := client.Retrieve(context.Background(), root+"zaakcontactmomenten/1")
	require.NoError(t, err)
	assert.Equal(t, "found", obj["url"])
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_UnknownAPI(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})

	_, err := client.List(context.Background(), "http://elsewhere.test/api/v1/zaken/1", "zaakcontactmoment", nil)
	assert.ErrorIs(t, err, ErrNoAPI)
}

func TestCredentials(t *testing.T) {
	creds, err := ParseCredentials([]string{
		"http://zrc.test/api/v1|kic|s1",
		" ",
		"http://zrc.test/api/v1/sub/|other|s2",
	})
	require.NoError(t, err)
	require.Len(t, creds, 2)
	assert.Equal(t, "http://zrc.test/api/v1/", creds[0].APIRoot)

	c := NewCredentials(creds)
	cred, ok := c.For("http://zrc.test/api/v1/sub/zaken/1")
	require.True(t, ok)
	assert.Equal(t, "other", cred.ClientID)

	_, ok = c.For("http://drc.test/api/v1/x")
	assert.False(t, ok)

	signed, err := c.Token(creds[0])
	require.NoError(t, err)
	parsed, err := jwt.Parse(signed, func(*jwt.Token) (any, error) { return []byte("s1"), nil })
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "kic", claims["client_id"])
	assert.Equal(t, "kic", claims["iss"])

	_, err = ParseCredentials([]string{"http://zrc.test|missing"})
	assert.Error(t, err)
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "zaakcontactmomenten", plural("zaakcontactmoment"))
	assert.Equal(t, "objectinformatieobjecten", plural("objectinformatieobject"))
	assert.Equal(t, "zaakverzoeken", plural("zaakverzoek"))
	assert.Equal(t, "zaken", plural("zaak"))
	assert.Equal(t, "zaakcontactmomenten", resourceOf("http://zrc.test/api/v1/zaakcontactmomenten/123"))
}
