package app_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recirculate/storefront/internal/api"
	checkoutapp "github.com/recirculate/storefront/internal/checkout/app"
	"github.com/recirculate/storefront/internal/checkout/domain"
	orderrest "github.com/recirculate/storefront/internal/order/infra/rest"
)

type staticCart struct {
	lines   []domain.Line
	total   float64
	cleared bool
}

func (c *staticCart) Lines() []domain.Line { return c.lines }
func (c *staticCart) Total() float64       { return c.total }
func (c *staticCart) Clear()               { c.cleared = true }

type staticIdentity int

func (s staticIdentity) CurrentClientID() (int, bool) { return int(s), true }

type staticToken string

func (s staticToken) Token() string { return string(s) }

// backend records every request body the checkout sends, keyed by path.
type backend struct {
	mu     sync.Mutex
	bodies map[string][]map[string]any

	rejectBills bool
}

func (b *backend) record(path string, body map[string]any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.bodies == nil {
		b.bodies = make(map[string][]map[string]any)
	}
	b.bodies[path] = append(b.bodies[path], body)
}

func (b *backend) calls(path string) []map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bodies[path]
}

func (b *backend) serve(t *testing.T) *httptest.Server {
	t.Helper()

	r := mux.NewRouter()
	handle := func(path string, status int, reply map[string]any) {
		r.HandleFunc(path, func(w http.ResponseWriter, req *http.Request) {
			var body map[string]any
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			b.record(path, body)
			w.WriteHeader(status)
			json.NewEncoder(w).Encode(reply)
		}).Methods(http.MethodPost)
	}

	handle("/addresses", http.StatusCreated, map[string]any{"id_key": 5})
	if b.rejectBills {
		handle("/bills", http.StatusUnprocessableEntity, map[string]any{"detail": "invalid bill number"})
	} else {
		handle("/bills", http.StatusCreated, map[string]any{"id_key": 42})
	}
	handle("/orders", http.StatusCreated, map[string]any{"id_key": 77})
	handle("/order_details", http.StatusCreated, map[string]any{"id_key": 9})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestPlace_OverHTTP_WirePayloads(t *testing.T) {
	be := &backend{}
	srv := be.serve(t)

	gateway := api.NewClient(srv.URL, 5*time.Second, staticToken("tok"))
	writer := orderrest.NewOrderAPI(gateway)

	cart := &staticCart{
		lines: []domain.Line{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 1},
		},
		total: 25,
	}
	svc := checkoutapp.NewService(cart, staticIdentity(7), writer, checkoutapp.Options{}, nil)

	conf, err := svc.Place(context.Background(), domain.Input{
		Street:      "Av. Siempreviva",
		Number:      "742",
		City:        "Rosario",
		PaymentType: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 77, conf.OrderID)
	assert.True(t, cart.cleared)

	addresses := be.calls("/addresses")
	require.Len(t, addresses, 1)
	assert.Equal(t, map[string]any{
		"street":    "Av. Siempreviva",
		"number":    "742",
		"city":      "Rosario",
		"client_id": float64(7),
	}, addresses[0])

	bills := be.calls("/bills")
	require.Len(t, bills, 1)
	assert.Equal(t, float64(25), bills[0]["total"])
	assert.Equal(t, float64(2), bills[0]["payment_type"])
	assert.Equal(t, float64(7), bills[0]["client_id"])
	assert.Regexp(t, `^BILL-\d+$`, bills[0]["bill_number"])
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, bills[0]["date"])

	orders := be.calls("/orders")
	require.Len(t, orders, 1)
	assert.Equal(t, float64(42), orders[0]["bill_id"])
	assert.Equal(t, float64(25), orders[0]["total"])
	assert.Equal(t, float64(1), orders[0]["status"], "PENDING must go out as 1")
	assert.Equal(t, float64(3), orders[0]["delivery_method"], "home delivery must go out as 3")

	details := be.calls("/order_details")
	require.Len(t, details, 2)
	for _, d := range details {
		assert.Equal(t, float64(77), d["order_id"])
	}
}

func TestPlace_OverHTTP_BillRejectionSurfacesServerDetail(t *testing.T) {
	be := &backend{rejectBills: true}
	srv := be.serve(t)

	gateway := api.NewClient(srv.URL, 5*time.Second, staticToken("tok"))
	writer := orderrest.NewOrderAPI(gateway)

	cart := &staticCart{lines: []domain.Line{{ProductID: 1, Quantity: 1}}, total: 10}
	svc := checkoutapp.NewService(cart, staticIdentity(7), writer, checkoutapp.Options{}, nil)

	_, err := svc.Place(context.Background(), domain.Input{Street: "x", Number: "1", City: "y", PaymentType: 1})
	require.Error(t, err)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "invalid bill number", apiErr.Detail)

	assert.Empty(t, be.calls("/orders"), "no order call after a failed bill step")
	assert.Empty(t, be.calls("/order_details"))
	assert.False(t, cart.cleared)
}
