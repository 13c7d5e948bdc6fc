package dummyjson

import (
	"context"
	"fmt"
)

func (c *Client) Quotes(ctx context.Context, opts ...RequestOption) (*Response, error) {
	return c.get(ctx, "/quotes", opts...)
}

func (c *Client) Quote(ctx context.Context, id int, opts ...RequestOption) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/quotes/%d", id), opts...)
}

func (c *Client) RandomQuote(ctx context.Context, opts ...RequestOption) (*Response, error) {
	return c.get(ctx, "/quotes/random", opts...)
}
