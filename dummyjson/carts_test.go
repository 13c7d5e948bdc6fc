package dummyjson_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Wang-tianhao/dummyjson-apitest-go/dummyjson"
)

type cartsSuite struct{ apiSuite }

func TestCarts(t *testing.T) {
	suite.Run(t, new(cartsSuite))
}

func (s *cartsSuite) TestListCarts() {
	resp := s.success(s.client.Carts(s.ctx))
	var list dummyjson.CartList
	s.decode(resp, &list)
	s.NotEmpty(list.Carts)
}

func (s *cartsSuite) TestGetCart() {
	resp := s.success(s.client.Cart(s.ctx, 5))
	var cart dummyjson.Cart
	s.decode(resp, &cart)
	s.Equal(5, cart.ID)
	s.Equal(len(cart.Products), cart.TotalProducts)
}

func (s *cartsSuite) TestCartsByUser() {
	resp := s.success(s.client.CartsByUser(s.ctx, 5))
	s.hasKeys(resp, "carts", "total")

	var list dummyjson.CartList
	s.decode(resp, &list)
	for _, cart := range list.Carts {
		s.Equal(5, cart.UserID)
	}
}

func (s *cartsSuite) TestAddCart() {
	resp, err := s.client.AddCart(s.ctx, dummyjson.CartInput{
		UserID:   51,
		Products: []dummyjson.CartItem{{ID: 144, Quantity: 2}},
	})
	s.ok(resp, err, http.StatusCreated)
	s.hasKeys(resp, "id", "total", "products")

	var cart dummyjson.Cart
	s.decode(resp, &cart)
	s.Equal(51, cart.UserID)
	s.Require().Len(cart.Products, 1)
	item := cart.Products[0]
	s.Equal(144, item.ID)
	s.NotEmpty(item.Title)
	s.Positive(item.Price)
	s.Equal(2, item.Quantity)
	s.InDelta(item.Price*2, item.Total, 0.01)
	s.Equal(2, cart.TotalQuantity)
}

func (s *cartsSuite) TestUpdateCart() {
	resp := s.success(s.client.UpdateCart(s.ctx, 31, dummyjson.CartInput{
		Products: []dummyjson.CartItem{{ID: 1, Quantity: 2}},
	}))
	var cart dummyjson.Cart
	s.decode(resp, &cart)
	s.Equal(31, cart.ID)
}

func (s *cartsSuite) TestMergeCart() {
	before := s.success(s.client.Cart(s.ctx, 31))
	var original dummyjson.Cart
	s.decode(before, &original)

	resp := s.success(s.client.UpdateCart(s.ctx, 31, dummyjson.CartInput{
		Merge:    true,
		Products: []dummyjson.CartItem{{ID: 1, Quantity: 1}},
	}))
	var merged dummyjson.Cart
	s.decode(resp, &merged)
	s.GreaterOrEqual(len(merged.Products), len(original.Products))
	s.GreaterOrEqual(merged.TotalQuantity, original.TotalQuantity+1)
}

func (s *cartsSuite) TestDeleteCart() {
	resp := s.success(s.client.DeleteCart(s.ctx, 1))
	var cart dummyjson.Cart
	s.decode(resp, &cart)
	s.True(cart.IsDeleted)
	s.NotEmpty(cart.DeletedOn)
}

func (s *cartsSuite) TestUnknownCart() {
	resp, err := s.client.Cart(s.ctx, unknownID)
	s.notFound(resp, err, "Cart", unknownID)

	resp, err = s.client.UpdateCart(s.ctx, unknownID, dummyjson.CartInput{
		Products: []dummyjson.CartItem{{ID: 1, Quantity: 2}},
	})
	s.notFound(resp, err, "Cart", unknownID)

	resp, err = s.client.DeleteCart(s.ctx, unknownID)
	s.notFound(resp, err, "Cart", unknownID)
}

func (s *cartsSuite) TestAddCartValidation() {
	if s.cfg.Live {
		s.T().Skip("validation messages are only pinned for the local service")
	}
	resp, err := s.client.AddCart(s.ctx, dummyjson.CartInput{Products: []dummyjson.CartItem{{ID: 1, Quantity: 1}}})
	s.ok(resp, err, http.StatusBadRequest)
	s.Equal("User id is required", resp.Message())

	resp, err = s.client.AddCart(s.ctx, dummyjson.CartInput{UserID: 1})
	s.ok(resp, err, http.StatusBadRequest)
	s.Equal("Products can not be empty", resp.Message())
}
