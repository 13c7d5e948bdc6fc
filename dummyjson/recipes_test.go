package dummyjson_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Wang-tianhao/dummyjson-apitest-go/dummyjson"
)

var recipeKeys = []string{"id", "name", "ingredients", "instructions", "tags", "prepTimeMinutes", "cookTimeMinutes", "difficulty", "image"}

type recipesSuite struct{ apiSuite }

func TestRecipes(t *testing.T) {
	suite.Run(t, new(recipesSuite))
}

// firstRecipe decodes a recipe list and checks the shape of its first entry.
func (s *recipesSuite) firstRecipe(resp *dummyjson.Response) (dummyjson.Recipe, map[string]any) {
	s.T().Helper()
	var list dummyjson.RecipeList
	s.decode(resp, &list)
	s.Require().NotEmpty(list.Recipes)

	var raw struct {
		Recipes []map[string]any `json:"recipes"`
	}
	s.decode(resp, &raw)
	for _, key := range recipeKeys {
		s.Contains(raw.Recipes[0], key)
	}
	return list.Recipes[0], raw.Recipes[0]
}

func (s *recipesSuite) TestListRecipes() {
	recipe, _ := s.firstRecipe(s.success(s.client.Recipes(s.ctx)))
	s.NotEmpty(recipe.Ingredients)
	s.NotEmpty(recipe.Instructions)
	s.NotNil(recipe.Tags)
}

func (s *recipesSuite) TestGetRecipe() {
	resp := s.success(s.client.Recipe(s.ctx, 1))
	s.hasKeys(resp, recipeKeys...)
	var recipe dummyjson.Recipe
	s.decode(resp, &recipe)
	s.Equal(1, recipe.ID)
}

func (s *recipesSuite) TestTags() {
	resp := s.success(s.client.RecipeTags(s.ctx))
	var tags []string
	s.decode(resp, &tags)
	s.NotEmpty(tags)
	s.Contains(tags, "Asian")
}

func (s *recipesSuite) TestRecipesByTag() {
	resp := s.success(s.client.RecipesByTag(s.ctx, "Asian"))
	recipe, _ := s.firstRecipe(resp)
	s.Contains(recipe.Tags, "Asian")
}

func (s *recipesSuite) TestRecipesByMeal() {
	resp := s.success(s.client.RecipesByMeal(s.ctx, "Breakfast"))
	recipe, _ := s.firstRecipe(resp)
	s.Contains(recipe.MealType, "Breakfast")
}

func (s *recipesSuite) TestSearchRecipes() {
	resp := s.success(s.client.SearchRecipes(s.ctx, "pasta", dummyjson.Page(10, -1)))
	s.firstRecipe(resp)
}

// Adding a recipe answers 200 rather than 201.
func (s *recipesSuite) TestAddRecipe() {
	resp := s.success(s.client.AddRecipe(s.ctx, dummyjson.RecipeInput{
		Ingredients:  []string{"ingredient1", "ingredient2"},
		Instructions: []string{"Test instructions", "should do this"},
	}))
	s.hasKeys(resp, "id")
}

func (s *recipesSuite) TestUpdateRecipe() {
	resp := s.success(s.client.UpdateRecipe(s.ctx, 1, dummyjson.RecipeInput{
		Ingredients:  []string{"updated ingredient1", "updated ingredient2"},
		Instructions: []string{"Updated instructions"},
	}))
	var recipe dummyjson.Recipe
	s.decode(resp, &recipe)
	s.Equal(1, recipe.ID)
	s.Equal([]string{"Updated instructions"}, recipe.Instructions)
}

func (s *recipesSuite) TestDeleteRecipe() {
	resp := s.success(s.client.DeleteRecipe(s.ctx, 1))
	var recipe dummyjson.Recipe
	s.decode(resp, &recipe)
	s.True(recipe.IsDeleted)
	s.NotEmpty(recipe.DeletedOn)
}

func (s *recipesSuite) TestUnknownRecipe() {
	resp, err := s.client.Recipe(s.ctx, unknownID)
	s.notFound(resp, err, "Recipe", unknownID)

	resp, err = s.client.UpdateRecipe(s.ctx, unknownID, dummyjson.RecipeInput{Name: "Updated Recipe"})
	s.notFound(resp, err, "Recipe", unknownID)

	resp, err = s.client.DeleteRecipe(s.ctx, unknownID)
	s.notFound(resp, err, "Recipe", unknownID)
}
