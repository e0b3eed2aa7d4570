package rest

import (
	"context"
	"fmt"

	"github.com/recirculate/storefront/internal/api"
	"github.com/recirculate/storefront/internal/client/domain"
)

type ClientAPI struct {
	c *api.Client
}

func NewClientAPI(c *api.Client) *ClientAPI {
	return &ClientAPI{c: c}
}

func (r *ClientAPI) List(ctx context.Context) ([]domain.Client, error) {
	var clients []domain.Client
	err := r.c.Get(ctx, "/clients", &clients)
	return clients, err
}

func (r *ClientAPI) Get(ctx context.Context, id int) (domain.Client, error) {
	var client domain.Client
	err := r.c.Get(ctx, fmt.Sprintf("/clients/%d", id), &client)
	return client, err
}

func (r *ClientAPI) Update(ctx context.Context, client domain.Client) (domain.Client, error) {
	var updated domain.Client
	err := r.c.Put(ctx, fmt.Sprintf("/clients/%d", client.IDKey), client, &updated)
	return updated, err
}
