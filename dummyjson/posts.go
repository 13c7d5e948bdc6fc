package dummyjson

import (
	"context"
	"fmt"
)

func (c *Client) Posts(ctx context.Context, opts ...RequestOption) (*Response, error) {
	return c.get(ctx, "/posts", opts...)
}

func (c *Client) Post(ctx context.Context, id int, opts ...RequestOption) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/posts/%d", id), opts...)
}

func (c *Client) PostsByUser(ctx context.Context, userID int, opts ...RequestOption) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/posts/user/%d", userID), opts...)
}

func (c *Client) SearchPosts(ctx context.Context, q string, opts ...RequestOption) (*Response, error) {
	return c.get(ctx, "/posts/search", append([]RequestOption{search(q)}, opts...)...)
}

func (c *Client) PostComments(ctx context.Context, id int, opts ...RequestOption) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/posts/%d/comments", id), opts...)
}

func (c *Client) AddPost(ctx context.Context, in PostInput, opts ...RequestOption) (*Response, error) {
	return c.post(ctx, "/posts/add", in, opts...)
}

func (c *Client) UpdatePost(ctx context.Context, id int, in PostInput, opts ...RequestOption) (*Response, error) {
	return c.put(ctx, fmt.Sprintf("/posts/%d", id), in, opts...)
}

func (c *Client) DeletePost(ctx context.Context, id int, opts ...RequestOption) (*Response, error) {
	return c.delete(ctx, fmt.Sprintf("/posts/%d", id), opts...)
}
