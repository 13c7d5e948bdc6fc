package fakeapi

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/Wang-tianhao/dummyjson-apitest-go/dummyjson"
)

func (s *Server) writeRecipes(c *gin.Context, recipes []dummyjson.Recipe) {
	page, meta, ok := paginate(c, recipes)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dummyjson.RecipeList{Recipes: page, ListMeta: meta})
}

func (s *Server) listRecipes(c *gin.Context) {
	s.writeRecipes(c, s.data.Recipes)
}

func (s *Server) searchRecipes(c *gin.Context) {
	q := c.Query("q")
	s.writeRecipes(c, filter(s.data.Recipes, func(r dummyjson.Recipe) bool {
		return containsFold(r.Name, q) || containsFold(r.Cuisine, q) || anyFold(r.Tags, q)
	}))
}

func (s *Server) recipeTags(c *gin.Context) {
	seen := map[string]bool{}
	tags := []string{}
	for _, r := range s.data.Recipes {
		for _, t := range r.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	sort.Strings(tags)
	c.JSON(http.StatusOK, tags)
}

func (s *Server) recipesByTag(c *gin.Context) {
	tag := c.Param("tag")
	s.writeRecipes(c, filter(s.data.Recipes, func(r dummyjson.Recipe) bool { return anyFold(r.Tags, tag) }))
}

func (s *Server) recipesByMeal(c *gin.Context) {
	meal := c.Param("meal")
	s.writeRecipes(c, filter(s.data.Recipes, func(r dummyjson.Recipe) bool { return anyFold(r.MealType, meal) }))
}

func (s *Server) getRecipe(c *gin.Context) {
	if recipe, _, ok := itemByID(c, "Recipe", s.data.Recipes); ok {
		c.JSON(http.StatusOK, recipe)
	}
}

// addRecipe answers 200, not 201, like the demo service.
func (s *Server) addRecipe(c *gin.Context) {
	var in dummyjson.RecipeInput
	if !bindBody(c, &in) {
		return
	}
	writeMerged(c, http.StatusOK, dummyjson.Recipe{}, in, map[string]any{"id": len(s.data.Recipes) + 1})
}

func (s *Server) updateRecipe(c *gin.Context) {
	recipe, _, ok := itemByID(c, "Recipe", s.data.Recipes)
	if !ok {
		return
	}
	var in dummyjson.RecipeInput
	if !bindBody(c, &in) {
		return
	}
	writeMerged(c, http.StatusOK, recipe, in, nil)
}

func (s *Server) deleteRecipe(c *gin.Context) {
	if recipe, _, ok := itemByID(c, "Recipe", s.data.Recipes); ok {
		writeMerged(c, http.StatusOK, recipe, nil, s.deletion())
	}
}
