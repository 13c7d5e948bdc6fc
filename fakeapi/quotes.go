package fakeapi

import (
	"math/rand/v2"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Wang-tianhao/dummyjson-apitest-go/dummyjson"
)

func (s *Server) listQuotes(c *gin.Context) {
	page, meta, ok := paginate(c, s.data.Quotes)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dummyjson.QuoteList{Quotes: page, ListMeta: meta})
}

func (s *Server) getQuote(c *gin.Context) {
	if quote, _, ok := itemByID(c, "Quote", s.data.Quotes); ok {
		c.JSON(http.StatusOK, quote)
	}
}

func (s *Server) randomQuote(c *gin.Context) {
	c.JSON(http.StatusOK, s.data.Quotes[rand.IntN(len(s.data.Quotes))])
}
