package dummyjson

import (
	"context"
	"fmt"
	"net/url"
)

func (c *Client) Products(ctx context.Context, opts ...RequestOption) (*Response, error) {
	return c.get(ctx, "/products", opts...)
}

func (c *Client) Product(ctx context.Context, id int, opts ...RequestOption) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/products/%d", id), opts...)
}

// ProductCategories returns a JSON array of Category.
func (c *Client) ProductCategories(ctx context.Context, opts ...RequestOption) (*Response, error) {
	return c.get(ctx, "/products/categories", opts...)
}

func (c *Client) ProductsByCategory(ctx context.Context, slug string, opts ...RequestOption) (*Response, error) {
	return c.get(ctx, "/products/category/"+url.PathEscape(slug), opts...)
}

func (c *Client) SearchProducts(ctx context.Context, q string, opts ...RequestOption) (*Response, error) {
	return c.get(ctx, "/products/search", append([]RequestOption{search(q)}, opts...)...)
}

func (c *Client) AddProduct(ctx context.Context, in ProductInput, opts ...RequestOption) (*Response, error) {
	return c.post(ctx, "/products/add", in, opts...)
}

func (c *Client) UpdateProduct(ctx context.Context, id int, in ProductInput, opts ...RequestOption) (*Response, error) {
	return c.put(ctx, fmt.Sprintf("/products/%d", id), in, opts...)
}

func (c *Client) DeleteProduct(ctx context.Context, id int, opts ...RequestOption) (*Response, error) {
	return c.delete(ctx, fmt.Sprintf("/products/%d", id), opts...)
}
