package provider_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/niksmo/sportshop/internal/adapter/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	s := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(body))
		},
	))
	t.Cleanup(s.Close)
	return s
}

func TestClientFetchProducts(t *testing.T) {
	t.Run("Regular", func(t *testing.T) {
		body := `[
			{"id":1,"name":"T-Shirt Pro","category":"homme_tshirt",
			 "price":50,"featured":true},
			{"id":2,"name":"Legging Flex","category":"femme_legging",
			 "price":40,"image_url":"https://cdn.example/2.jpg","popular":true}
		]`
		s := newServer(t, http.StatusOK, body)
		c := provider.New(s.URL, time.Second, 1)

		ps, err := c.FetchProducts(t.Context())

		require.NoError(t, err)
		require.Len(t, ps, 2)
		assert.Equal(t, int64(1), ps[0].ID)
		assert.Equal(t, "T-Shirt Pro", ps[0].Name)
		assert.True(t, ps[0].Featured)
		assert.Equal(t, "https://cdn.example/2.jpg", ps[1].ImageURL)
		assert.True(t, ps[1].Popular)
	})

	t.Run("DropsMalformedRecords", func(t *testing.T) {
		body := `[
			{"id":1,"name":"Valid","category":"homme_short","price":30},
			{"name":"NoID","category":"homme_short","price":30},
			{"id":3,"category":"homme_short","price":30},
			{"id":4,"name":"NoPrice","category":"homme_short"},
			{"id":5,"name":"NegativePrice","category":"homme_short","price":-1}
		]`
		s := newServer(t, http.StatusOK, body)
		c := provider.New(s.URL, time.Second, 1)

		ps, err := c.FetchProducts(t.Context())

		require.NoError(t, err)
		require.Len(t, ps, 1)
		assert.Equal(t, int64(1), ps[0].ID)
	})

	t.Run("UnparsablePayload", func(t *testing.T) {
		s := newServer(t, http.StatusOK, `{"oops"`)
		c := provider.New(s.URL, time.Second, 1)

		_, err := c.FetchProducts(t.Context())

		require.Error(t, err)
		assert.ErrorContains(t, err, "unparsable payload")
	})

	t.Run("UpstreamError", func(t *testing.T) {
		s := newServer(t, http.StatusInternalServerError, "boom")
		c := provider.New(s.URL, time.Second, 1)

		_, err := c.FetchProducts(t.Context())

		require.Error(t, err)
		assert.ErrorContains(t, err, "unexpected status")
	})

	t.Run("Unreachable", func(t *testing.T) {
		c := provider.New("http://127.0.0.1:1/products", time.Second, 1)

		_, err := c.FetchProducts(t.Context())

		require.Error(t, err)
	})
}
