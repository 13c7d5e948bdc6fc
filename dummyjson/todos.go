package dummyjson

import (
	"context"
	"fmt"
)

func (c *Client) Todos(ctx context.Context, opts ...RequestOption) (*Response, error) {
	return c.get(ctx, "/todos", opts...)
}

func (c *Client) Todo(ctx context.Context, id int, opts ...RequestOption) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/todos/%d", id), opts...)
}

func (c *Client) RandomTodo(ctx context.Context, opts ...RequestOption) (*Response, error) {
	return c.get(ctx, "/todos/random", opts...)
}

func (c *Client) AddTodo(ctx context.Context, in TodoInput, opts ...RequestOption) (*Response, error) {
	return c.post(ctx, "/todos/add", in, opts...)
}

func (c *Client) UpdateTodo(ctx context.Context, id int, in TodoInput, opts ...RequestOption) (*Response, error) {
	return c.put(ctx, fmt.Sprintf("/todos/%d", id), in, opts...)
}

func (c *Client) DeleteTodo(ctx context.Context, id int, opts ...RequestOption) (*Response, error) {
	return c.delete(ctx, fmt.Sprintf("/todos/%d", id), opts...)
}
