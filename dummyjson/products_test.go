package dummyjson_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Wang-tianhao/dummyjson-apitest-go/dummyjson"
)

type productsSuite struct{ apiSuite }

func TestProducts(t *testing.T) {
	suite.Run(t, new(productsSuite))
}

func (s *productsSuite) TestListProducts() {
	resp := s.success(s.client.Products(s.ctx))
	var list dummyjson.ProductList
	s.decode(resp, &list)
	s.NotNil(list.Products)
	s.Positive(list.Total)
}

func (s *productsSuite) TestGetProduct() {
	for _, id := range []int{1, 144} {
		resp := s.success(s.client.Product(s.ctx, id))
		var p dummyjson.Product
		s.decode(resp, &p)
		s.Equal(id, p.ID)
	}
}

func (s *productsSuite) TestCategories() {
	resp := s.success(s.client.ProductCategories(s.ctx))
	var categories []dummyjson.Category
	s.decode(resp, &categories)
	s.Require().NotEmpty(categories)
	for _, c := range categories {
		s.NotEmpty(c.Slug)
		s.NotEmpty(c.Name)
		s.True(strings.HasPrefix(c.URL, "https://dummyjson.com/products/category/"), c.URL)
	}
}

func (s *productsSuite) TestProductsByCategory() {
	for _, slug := range []string{"smartphones", "electronics"} {
		resp := s.success(s.client.ProductsByCategory(s.ctx, slug))
		var list dummyjson.ProductList
		s.decode(resp, &list)
		s.NotNil(list.Products, slug)
		for _, p := range list.Products {
			s.Equal(slug, p.Category)
		}
	}
}

func (s *productsSuite) TestSearchProducts() {
	resp := s.success(s.client.SearchProducts(s.ctx, "phone", dummyjson.Page(10, -1)))
	var list dummyjson.ProductList
	s.decode(resp, &list)
	s.Require().NotEmpty(list.Products)
	s.LessOrEqual(len(list.Products), 10)

	var raw struct {
		Products []map[string]any `json:"products"`
	}
	s.decode(resp, &raw)
	for _, p := range raw.Products {
		for _, key := range []string{"id", "title", "category", "price", "stock"} {
			s.Contains(p, key)
		}
	}
}

func (s *productsSuite) TestAddProduct() {
	resp, err := s.client.AddProduct(s.ctx, dummyjson.ProductInput{
		Title:       "New Product",
		Price:       100,
		Description: "This is a new product",
		Category:    "electronics",
		Thumbnail:   "https://example.com/image.jpg",
	})
	s.ok(resp, err, http.StatusCreated)
	s.hasKeys(resp, "id")
}

func (s *productsSuite) TestUpdateProduct() {
	resp := s.success(s.client.UpdateProduct(s.ctx, 1, dummyjson.ProductInput{Title: "Updated Product", Price: 120}))
	var p dummyjson.Product
	s.decode(resp, &p)
	s.Equal(1, p.ID)
	s.Equal("Updated Product", p.Title)
	s.InDelta(120, p.Price, 0.001)
}

func (s *productsSuite) TestDeleteProduct() {
	resp := s.success(s.client.DeleteProduct(s.ctx, 1))
	var p dummyjson.Product
	s.decode(resp, &p)
	s.True(p.IsDeleted)
	s.NotEmpty(p.DeletedOn)
}

func (s *productsSuite) TestUnknownProduct() {
	resp, err := s.client.Product(s.ctx, unknownID)
	s.notFound(resp, err, "Product", unknownID)

	resp, err = s.client.UpdateProduct(s.ctx, unknownID, dummyjson.ProductInput{Title: "Updated Product", Price: 120})
	s.notFound(resp, err, "Product", unknownID)

	resp, err = s.client.DeleteProduct(s.ctx, unknownID)
	s.notFound(resp, err, "Product", unknownID)
}
