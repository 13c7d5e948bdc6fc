package fakeapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Wang-tianhao/dummyjson-apitest-go/dummyjson"
)

func (s *Server) writePosts(c *gin.Context, posts []dummyjson.Post) {
	page, meta, ok := paginate(c, posts)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dummyjson.PostList{Posts: page, ListMeta: meta})
}

func (s *Server) listPosts(c *gin.Context) {
	s.writePosts(c, s.data.Posts)
}

func (s *Server) searchPosts(c *gin.Context) {
	q := c.Query("q")
	s.writePosts(c, filter(s.data.Posts, func(p dummyjson.Post) bool {
		return containsFold(p.Title, q) || containsFold(p.Body, q)
	}))
}

func (s *Server) getPost(c *gin.Context) {
	if post, _, ok := itemByID(c, "Post", s.data.Posts); ok {
		c.JSON(http.StatusOK, post)
	}
}

func (s *Server) addPost(c *gin.Context) {
	var in dummyjson.PostInput
	if !bindBody(c, &in) {
		return
	}
	if in.UserID != 0 && (in.UserID < 1 || in.UserID > len(s.data.Users)) {
		respondMessage(c, http.StatusNotFound, "User with id '%d' not found", in.UserID)
		return
	}
	writeMerged(c, http.StatusCreated, dummyjson.Post{}, in, map[string]any{"id": len(s.data.Posts) + 1})
}

func (s *Server) updatePost(c *gin.Context) {
	post, _, ok := itemByID(c, "Post", s.data.Posts)
	if !ok {
		return
	}
	var in dummyjson.PostInput
	if !bindBody(c, &in) {
		return
	}
	writeMerged(c, http.StatusOK, post, in, nil)
}

func (s *Server) deletePost(c *gin.Context) {
	if post, _, ok := itemByID(c, "Post", s.data.Posts); ok {
		writeMerged(c, http.StatusOK, post, nil, s.deletion())
	}
}
