package fakeapi

import (
	"math/rand/v2"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Wang-tianhao/dummyjson-apitest-go/dummyjson"
)

func (s *Server) writeTodos(c *gin.Context, todos []dummyjson.Todo) {
	page, meta, ok := paginate(c, todos)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dummyjson.TodoList{Todos: page, ListMeta: meta})
}

func (s *Server) listTodos(c *gin.Context) {
	s.writeTodos(c, s.data.Todos)
}

func (s *Server) randomTodo(c *gin.Context) {
	c.JSON(http.StatusOK, s.data.Todos[rand.IntN(len(s.data.Todos))])
}

func (s *Server) getTodo(c *gin.Context) {
	if todo, _, ok := itemByID(c, "Todo", s.data.Todos); ok {
		c.JSON(http.StatusOK, todo)
	}
}

func (s *Server) addTodo(c *gin.Context) {
	var in dummyjson.TodoInput
	if !bindBody(c, &in) {
		return
	}
	if in.Todo == "" {
		respondMessage(c, http.StatusBadRequest, "Todo is required")
		return
	}
	if in.UserID < 1 || in.UserID > len(s.data.Users) {
		respondMessage(c, http.StatusNotFound, "User with id '%d' not found", in.UserID)
		return
	}
	todo := dummyjson.Todo{ID: len(s.data.Todos) + 1, Todo: in.Todo, UserID: in.UserID}
	if in.Completed != nil {
		todo.Completed = *in.Completed
	}
	c.JSON(http.StatusCreated, todo)
}

func (s *Server) updateTodo(c *gin.Context) {
	todo, _, ok := itemByID(c, "Todo", s.data.Todos)
	if !ok {
		return
	}
	var in dummyjson.TodoInput
	if !bindBody(c, &in) {
		return
	}
	writeMerged(c, http.StatusOK, todo, in, nil)
}

func (s *Server) deleteTodo(c *gin.Context) {
	if todo, _, ok := itemByID(c, "Todo", s.data.Todos); ok {
		writeMerged(c, http.StatusOK, todo, nil, s.deletion())
	}
}
