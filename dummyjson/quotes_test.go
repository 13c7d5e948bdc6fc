package dummyjson_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Wang-tianhao/dummyjson-apitest-go/dummyjson"
)

type quotesSuite struct{ apiSuite }

func TestQuotes(t *testing.T) {
	suite.Run(t, new(quotesSuite))
}

func (s *quotesSuite) TestListQuotes() {
	resp := s.success(s.client.Quotes(s.ctx))
	var list dummyjson.QuoteList
	s.decode(resp, &list)
	s.Require().NotEmpty(list.Quotes)
	s.NotEmpty(list.Quotes[0].Quote)
	s.NotEmpty(list.Quotes[0].Author)
}

func (s *quotesSuite) TestGetQuote() {
	resp := s.success(s.client.Quote(s.ctx, 1))
	s.hasKeys(resp, "id", "quote", "author")
}

func (s *quotesSuite) TestRandomQuote() {
	resp := s.success(s.client.RandomQuote(s.ctx))
	s.hasKeys(resp, "id", "quote", "author")
}

func (s *quotesSuite) TestUnknownQuote() {
	resp, err := s.client.Quote(s.ctx, unknownID)
	s.notFound(resp, err, "Quote", unknownID)
}
