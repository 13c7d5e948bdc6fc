package dummyjson

import (
	"context"
	"fmt"
	"net/url"
)

func (c *Client) Users(ctx context.Context, opts ...RequestOption) (*Response, error) {
	return c.get(ctx, "/users", opts...)
}

func (c *Client) User(ctx context.Context, id int, opts ...RequestOption) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/users/%d", id), opts...)
}

// FilterUsers calls /users/filter?key=...&value=...; key may be a dotted
// path such as "address.city".
func (c *Client) FilterUsers(ctx context.Context, key, value string, opts ...RequestOption) (*Response, error) {
	q := Query(url.Values{"key": {key}, "value": {value}})
	return c.get(ctx, "/users/filter", append([]RequestOption{q}, opts...)...)
}

func (c *Client) SearchUsers(ctx context.Context, q string, opts ...RequestOption) (*Response, error) {
	return c.get(ctx, "/users/search", append([]RequestOption{search(q)}, opts...)...)
}

func (c *Client) AddUser(ctx context.Context, in UserInput, opts ...RequestOption) (*Response, error) {
	return c.post(ctx, "/users/add", in, opts...)
}

func (c *Client) UpdateUser(ctx context.Context, id int, in UserInput, opts ...RequestOption) (*Response, error) {
	return c.put(ctx, fmt.Sprintf("/users/%d", id), in, opts...)
}

func (c *Client) DeleteUser(ctx context.Context, id int, opts ...RequestOption) (*Response, error) {
	return c.delete(ctx, fmt.Sprintf("/users/%d", id), opts...)
}

func (c *Client) UserCarts(ctx context.Context, id int, opts ...RequestOption) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/users/%d/carts", id), opts...)
}

func (c *Client) UserPosts(ctx context.Context, id int, opts ...RequestOption) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/users/%d/posts", id), opts...)
}

func (c *Client) UserTodos(ctx context.Context, id int, opts ...RequestOption) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/users/%d/todos", id), opts...)
}

func search(q string) RequestOption {
	return Query(url.Values{"q": {q}})
}
