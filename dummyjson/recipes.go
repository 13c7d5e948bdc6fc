package dummyjson

import (
	"context"
	"fmt"
	"net/url"
)

func (c *Client) Recipes(ctx context.Context, opts ...RequestOption) (*Response, error) {
	return c.get(ctx, "/recipes", opts...)
}

func (c *Client) Recipe(ctx context.Context, id int, opts ...RequestOption) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/recipes/%d", id), opts...)
}

// RecipeTags returns a JSON array of tag names.
func (c *Client) RecipeTags(ctx context.Context, opts ...RequestOption) (*Response, error) {
	return c.get(ctx, "/recipes/tags", opts...)
}

func (c *Client) RecipesByTag(ctx context.Context, tag string, opts ...RequestOption) (*Response, error) {
	return c.get(ctx, "/recipes/tag/"+url.PathEscape(tag), opts...)
}

func (c *Client) RecipesByMeal(ctx context.Context, meal string, opts ...RequestOption) (*Response, error) {
	return c.get(ctx, "/recipes/meal-type/"+url.PathEscape(meal), opts...)
}

func (c *Client) SearchRecipes(ctx context.Context, q string, opts ...RequestOption) (*Response, error) {
	return c.get(ctx, "/recipes/search", append([]RequestOption{search(q)}, opts...)...)
}

func (c *Client) AddRecipe(ctx context.Context, in RecipeInput, opts ...RequestOption) (*Response, error) {
	return c.post(ctx, "/recipes/add", in, opts...)
}

func (c *Client) UpdateRecipe(ctx context.Context, id int, in RecipeInput, opts ...RequestOption) (*Response, error) {
	return c.put(ctx, fmt.Sprintf("/recipes/%d", id), in, opts...)
}

func (c *Client) DeleteRecipe(ctx context.Context, id int, opts ...RequestOption) (*Response, error) {
	return c.delete(ctx, fmt.Sprintf("/recipes/%d", id), opts...)
}
