package dummyjson

import (
	"context"
	"fmt"
)

func (c *Client) Carts(ctx context.Context, opts ...RequestOption) (*Response, error) {
	return c.get(ctx, "/carts", opts...)
}

func (c *Client) Cart(ctx context.Context, id int, opts ...RequestOption) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/carts/%d", id), opts...)
}

func (c *Client) CartsByUser(ctx context.Context, userID int, opts ...RequestOption) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/carts/user/%d", userID), opts...)
}

func (c *Client) AddCart(ctx context.Context, in CartInput, opts ...RequestOption) (*Response, error) {
	return c.post(ctx, "/carts/add", in, opts...)
}

// UpdateCart replaces the cart's products unless in.Merge is set.
func (c *Client) UpdateCart(ctx context.Context, id int, in CartInput, opts ...RequestOption) (*Response, error) {
	return c.put(ctx, fmt.Sprintf("/carts/%d", id), in, opts...)
}

func (c *Client) DeleteCart(ctx context.Context, id int, opts ...RequestOption) (*Response, error) {
	return c.delete(ctx, fmt.Sprintf("/carts/%d", id), opts...)
}
