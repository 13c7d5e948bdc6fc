package fakeapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Wang-tianhao/dummyjson-apitest-go/dummyjson"
)

func (s *Server) listCarts(c *gin.Context) {
	page, meta, ok := paginate(c, s.data.Carts)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dummyjson.CartList{Carts: page, ListMeta: meta})
}

func (s *Server) getCart(c *gin.Context) {
	if cart, _, ok := itemByID(c, "Cart", s.data.Carts); ok {
		c.JSON(http.StatusOK, cart)
	}
}

func (s *Server) addCart(c *gin.Context) {
	var in dummyjson.CartInput
	if !bindBody(c, &in) {
		return
	}
	if in.UserID == 0 {
		respondMessage(c, http.StatusBadRequest, "User id is required")
		return
	}
	if len(in.Products) == 0 {
		respondMessage(c, http.StatusBadRequest, "Products can not be empty")
		return
	}
	if in.UserID < 1 || in.UserID > len(s.data.Users) {
		respondMessage(c, http.StatusNotFound, "User with id '%d' not found", in.UserID)
		return
	}
	cart, missing := assembleCart(len(s.data.Carts)+1, in.UserID, in.Products, s.data.Products)
	if missing != 0 {
		respondMessage(c, http.StatusNotFound, "Product with id '%d' not found", missing)
		return
	}
	c.JSON(http.StatusCreated, cart)
}

// updateCart replaces the cart's products, or appends to them when merge is
// set.
func (s *Server) updateCart(c *gin.Context) {
	cart, id, ok := itemByID(c, "Cart", s.data.Carts)
	if !ok {
		return
	}
	var in dummyjson.CartInput
	if !bindBody(c, &in) {
		return
	}

	items := in.Products
	if in.Merge || len(items) == 0 {
		existing := make([]dummyjson.CartItem, 0, len(cart.Products)+len(items))
		for _, p := range cart.Products {
			existing = append(existing, dummyjson.CartItem{ID: p.ID, Quantity: p.Quantity})
		}
		items = append(existing, items...)
	}

	updated, missing := assembleCart(id, cart.UserID, items, s.data.Products)
	if missing != 0 {
		respondMessage(c, http.StatusNotFound, "Product with id '%d' not found", missing)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteCart(c *gin.Context) {
	if cart, _, ok := itemByID(c, "Cart", s.data.Carts); ok {
		writeMerged(c, http.StatusOK, cart, nil, s.deletion())
	}
}
