package dummyjson

import (
	"context"
	"fmt"
)

func (c *Client) Comments(ctx context.Context, opts ...RequestOption) (*Response, error) {
	return c.get(ctx, "/comments", opts...)
}

func (c *Client) Comment(ctx context.Context, id int, opts ...RequestOption) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/comments/%d", id), opts...)
}

func (c *Client) CommentsByPost(ctx context.Context, postID int, opts ...RequestOption) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/comments/post/%d", postID), opts...)
}

func (c *Client) AddComment(ctx context.Context, in CommentInput, opts ...RequestOption) (*Response, error) {
	return c.post(ctx, "/comments/add", in, opts...)
}

func (c *Client) UpdateComment(ctx context.Context, id int, in CommentInput, opts ...RequestOption) (*Response, error) {
	return c.put(ctx, fmt.Sprintf("/comments/%d", id), in, opts...)
}

func (c *Client) DeleteComment(ctx context.Context, id int, opts ...RequestOption) (*Response, error) {
	return c.delete(ctx, fmt.Sprintf("/comments/%d", id), opts...)
}
