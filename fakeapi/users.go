package fakeapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Wang-tianhao/dummyjson-apitest-go/dummyjson"
)

func (s *Server) writeUsers(c *gin.Context, users []dummyjson.User) {
	page, meta, ok := paginate(c, users)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dummyjson.UserList{Users: page, ListMeta: meta})
}

func (s *Server) listUsers(c *gin.Context) {
	s.writeUsers(c, s.data.Users)
}

func (s *Server) searchUsers(c *gin.Context) {
	q := c.Query("q")
	s.writeUsers(c, filter(s.data.Users, func(u dummyjson.User) bool {
		return containsFold(u.FirstName, q) || containsFold(u.LastName, q) ||
			containsFold(u.Username, q) || containsFold(u.Email, q)
	}))
}

// filterUsers matches key, a dotted field path such as "address.city",
// against value case-insensitively.
func (s *Server) filterUsers(c *gin.Context) {
	key, value := c.Query("key"), c.Query("value")
	if key == "" {
		respondMessage(c, http.StatusBadRequest, "Filter key is required")
		return
	}
	s.writeUsers(c, filter(s.data.Users, func(u dummyjson.User) bool {
		got, ok := fieldPath(u, key)
		return ok && strings.EqualFold(got, value)
	}))
}

func fieldPath(v any, path string) (string, bool) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", false
	}
	var cur any
	if err := json.Unmarshal(raw, &cur); err != nil {
		return "", false
	}
	for _, part := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return "", false
		}
		if cur, ok = m[part]; !ok {
			return "", false
		}
	}
	return fmt.Sprint(cur), true
}

func (s *Server) getUser(c *gin.Context) {
	if user, _, ok := itemByID(c, "User", s.data.Users); ok {
		c.JSON(http.StatusOK, user)
	}
}

func (s *Server) addUser(c *gin.Context) {
	var in dummyjson.UserInput
	if !bindBody(c, &in) {
		return
	}
	writeMerged(c, http.StatusCreated, dummyjson.User{}, in, map[string]any{"id": len(s.data.Users) + 1})
}

func (s *Server) updateUser(c *gin.Context) {
	user, _, ok := itemByID(c, "User", s.data.Users)
	if !ok {
		return
	}
	var in dummyjson.UserInput
	if !bindBody(c, &in) {
		return
	}
	writeMerged(c, http.StatusOK, user, in, nil)
}

func (s *Server) deleteUser(c *gin.Context) {
	if user, _, ok := itemByID(c, "User", s.data.Users); ok {
		writeMerged(c, http.StatusOK, user, nil, s.deletion())
	}
}

func (s *Server) userCarts(c *gin.Context) {
	_, id, ok := itemByID(c, "User", s.data.Users)
	if !ok {
		return
	}
	carts := filter(s.data.Carts, func(cart dummyjson.Cart) bool { return cart.UserID == id })
	page, meta, ok := paginate(c, carts)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dummyjson.CartList{Carts: page, ListMeta: meta})
}

func (s *Server) userPosts(c *gin.Context) {
	_, id, ok := itemByID(c, "User", s.data.Users)
	if !ok {
		return
	}
	s.writePosts(c, filter(s.data.Posts, func(p dummyjson.Post) bool { return p.UserID == id }))
}

func (s *Server) userTodos(c *gin.Context) {
	_, id, ok := itemByID(c, "User", s.data.Users)
	if !ok {
		return
	}
	s.writeTodos(c, filter(s.data.Todos, func(t dummyjson.Todo) bool { return t.UserID == id }))
}

func (s *Server) deletion() map[string]any {
	return map[string]any{"isDeleted": true, "deletedOn": s.deletedOn()}
}
