package fakeapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Wang-tianhao/dummyjson-apitest-go/dummyjson"
)

func (s *Server) writeComments(c *gin.Context, comments []dummyjson.Comment) {
	page, meta, ok := paginate(c, comments)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dummyjson.CommentList{Comments: page, ListMeta: meta})
}

func (s *Server) listComments(c *gin.Context) {
	s.writeComments(c, s.data.Comments)
}

// postComments serves both /posts/:id/comments and /comments/post/:id.
func (s *Server) postComments(c *gin.Context) {
	_, id, ok := itemByID(c, "Post", s.data.Posts)
	if !ok {
		return
	}
	s.writeComments(c, filter(s.data.Comments, func(cm dummyjson.Comment) bool { return cm.PostID == id }))
}

func (s *Server) getComment(c *gin.Context) {
	if comment, _, ok := itemByID(c, "Comment", s.data.Comments); ok {
		c.JSON(http.StatusOK, comment)
	}
}

func (s *Server) addComment(c *gin.Context) {
	var in dummyjson.CommentInput
	if !bindBody(c, &in) {
		return
	}
	if in.Body == "" || in.PostID == 0 || in.UserID == 0 {
		respondMessage(c, http.StatusBadRequest, "Body, postId and userId are required")
		return
	}
	if in.PostID < 1 || in.PostID > len(s.data.Posts) {
		respondMessage(c, http.StatusNotFound, "Post with id '%d' not found", in.PostID)
		return
	}
	if in.UserID < 1 || in.UserID > len(s.data.Users) {
		respondMessage(c, http.StatusNotFound, "User with id '%d' not found", in.UserID)
		return
	}
	c.JSON(http.StatusCreated, dummyjson.Comment{
		ID:     len(s.data.Comments) + 1,
		Body:   in.Body,
		PostID: in.PostID,
		User:   commentUser(s.data.Users[in.UserID-1]),
	})
}

func (s *Server) updateComment(c *gin.Context) {
	comment, _, ok := itemByID(c, "Comment", s.data.Comments)
	if !ok {
		return
	}
	var in dummyjson.CommentInput
	if !bindBody(c, &in) {
		return
	}
	if in.Body != "" {
		comment.Body = in.Body
	}
	if in.PostID != 0 {
		comment.PostID = in.PostID
	}
	if in.UserID >= 1 && in.UserID <= len(s.data.Users) {
		comment.User = commentUser(s.data.Users[in.UserID-1])
	}
	c.JSON(http.StatusOK, comment)
}

func (s *Server) deleteComment(c *gin.Context) {
	if comment, _, ok := itemByID(c, "Comment", s.data.Comments); ok {
		writeMerged(c, http.StatusOK, comment, nil, s.deletion())
	}
}
