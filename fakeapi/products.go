package fakeapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Wang-tianhao/dummyjson-apitest-go/dummyjson"
)

func (s *Server) writeProducts(c *gin.Context, products []dummyjson.Product) {
	page, meta, ok := paginate(c, products)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dummyjson.ProductList{Products: page, ListMeta: meta})
}

func (s *Server) listProducts(c *gin.Context) {
	s.writeProducts(c, s.data.Products)
}

func (s *Server) searchProducts(c *gin.Context) {
	q := c.Query("q")
	s.writeProducts(c, filter(s.data.Products, func(p dummyjson.Product) bool {
		return containsFold(p.Title, q) || containsFold(p.Description, q)
	}))
}

func (s *Server) productCategories(c *gin.Context) {
	c.JSON(http.StatusOK, s.data.Categories)
}

func (s *Server) productCategoryList(c *gin.Context) {
	slugs := make([]string, len(s.data.Categories))
	for i, cat := range s.data.Categories {
		slugs[i] = cat.Slug
	}
	c.JSON(http.StatusOK, slugs)
}

// productsByCategory answers an empty list for unknown slugs.
func (s *Server) productsByCategory(c *gin.Context) {
	slug := c.Param("slug")
	s.writeProducts(c, filter(s.data.Products, func(p dummyjson.Product) bool { return p.Category == slug }))
}

func (s *Server) getProduct(c *gin.Context) {
	if product, _, ok := itemByID(c, "Product", s.data.Products); ok {
		c.JSON(http.StatusOK, product)
	}
}

func (s *Server) addProduct(c *gin.Context) {
	var in dummyjson.ProductInput
	if !bindBody(c, &in) {
		return
	}
	writeMerged(c, http.StatusCreated, dummyjson.Product{}, in, map[string]any{"id": len(s.data.Products) + 1})
}

func (s *Server) updateProduct(c *gin.Context) {
	product, _, ok := itemByID(c, "Product", s.data.Products)
	if !ok {
		return
	}
	var in dummyjson.ProductInput
	if !bindBody(c, &in) {
		return
	}
	writeMerged(c, http.StatusOK, product, in, nil)
}

func (s *Server) deleteProduct(c *gin.Context) {
	if product, _, ok := itemByID(c, "Product", s.data.Products); ok {
		writeMerged(c, http.StatusOK, product, nil, s.deletion())
	}
}
