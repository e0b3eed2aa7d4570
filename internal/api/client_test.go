package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newTestBackend(t *testing.T, register func(r *mux.Router)) *httptest.Server {
	t.Helper()
	r := mux.NewRouter()
	register(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth, gotContentType string
	srv := newTestBackend(t, func(r *mux.Router) {
		r.HandleFunc("/products", func(w http.ResponseWriter, req *http.Request) {
			gotAuth = req.Header.Get("Authorization")
			gotContentType = req.Header.Get("Content-Type")
			json.NewEncoder(w).Encode([]any{})
		}).Methods(http.MethodGet)
	})

	c := NewClient(srv.URL, time.Second, staticToken("tok-123"))
	var out []any
	require.NoError(t, c.Get(context.Background(), "/products", &out))

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	srv := newTestBackend(t, func(r *mux.Router) {
		r.HandleFunc("/products", func(w http.ResponseWriter, req *http.Request) {
			gotAuth = req.Header.Get("Authorization")
			w.Write([]byte("[]"))
		})
	})

	c := NewClient(srv.URL, time.Second, staticToken(""))
	var out []any
	require.NoError(t, c.Get(context.Background(), "/products", &out))
	assert.Empty(t, gotAuth)
}

func TestClient_PostDecodesResponse(t *testing.T) {
	srv := newTestBackend(t, func(r *mux.Router) {
		r.HandleFunc("/bills", func(w http.ResponseWriter, req *http.Request) {
			var in map[string]any
			require.NoError(t, json.NewDecoder(req.Body).Decode(&in))
			assert.Equal(t, "BILL-1", in["bill_number"])
			json.NewEncoder(w).Encode(map[string]any{"id_key": 42})
		}).Methods(http.MethodPost)
	})

	c := NewClient(srv.URL, time.Second, nil)
	var out struct {
		IDKey int `json:"id_key"`
	}
	err := c.Post(context.Background(), "/bills", map[string]any{"bill_number": "BILL-1"}, &out)
	require.NoError(t, err)
	assert.Equal(t, 42, out.IDKey)
}

func TestClient_ErrorDetailExtraction(t *testing.T) {
	t.Run("detail wins over message", func(t *testing.T) {
		srv := newTestBackend(t, func(r *mux.Router) {
			r.HandleFunc("/orders", func(w http.ResponseWriter, req *http.Request) {
				w.WriteHeader(http.StatusUnprocessableEntity)
				w.Write([]byte(`{"detail":"bill_id is required","message":"bad request"}`))
			})
		})

		c := NewClient(srv.URL, time.Second, nil)
		err := c.Post(context.Background(), "/orders", map[string]any{}, nil)

		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
		assert.Equal(t, "bill_id is required", apiErr.Detail)
	})

	t.Run("message as fallback", func(t *testing.T) {
		srv := newTestBackend(t, func(r *mux.Router) {
			r.HandleFunc("/orders", func(w http.ResponseWriter, req *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"message":"bad request"}`))
			})
		})

		c := NewClient(srv.URL, time.Second, nil)
		err := c.Post(context.Background(), "/orders", map[string]any{}, nil)

		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "bad request", apiErr.Detail)
	})

	t.Run("non-json body keeps status text", func(t *testing.T) {
		srv := newTestBackend(t, func(r *mux.Router) {
			r.HandleFunc("/orders", func(w http.ResponseWriter, req *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte("boom"))
			})
		})

		c := NewClient(srv.URL, time.Second, nil)
		err := c.Post(context.Background(), "/orders", map[string]any{}, nil)

		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Empty(t, apiErr.Detail)
		assert.EqualError(t, apiErr, "backend: Internal Server Error")
	})
}

func TestIsNotFound(t *testing.T) {
	srv := newTestBackend(t, func(r *mux.Router) {
		r.HandleFunc("/products/99", func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"detail":"product not found"}`))
		})
	})

	c := NewClient(srv.URL, time.Second, nil)
	err := c.Get(context.Background(), "/products/99", nil)
	assert.True(t, IsNotFound(err))
}
