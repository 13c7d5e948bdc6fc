package fakeapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Wang-tianhao/dummyjson-apitest-go/jwtauth"
)

// Cookie names set by login and refresh.
const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// Server serves the dataset over HTTP.
type Server struct {
	data       *Dataset
	auth       *jwtauth.Config
	issuer     *jwtauth.Issuer
	logger     *slog.Logger
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// Option configures a Server.
type Option func(*Server)

// WithDataset serves d instead of NewDataset(1).
func WithDataset(d *Dataset) Option {
	return func(s *Server) { s.data = d }
}

// WithLogger enables request logging.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// WithTokenTTL sets the default access and refresh token lifetimes.
// Non-positive values keep the defaults.
func WithTokenTTL(access, refresh time.Duration) Option {
	return func(s *Server) {
		if access > 0 {
			s.accessTTL = access
		}
		if refresh > 0 {
			s.refreshTTL = refresh
		}
	}
}

// WithClock overrides time.Now for deletedOn stamps and issued tokens.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// New creates a Server whose tokens are signed and checked with auth. The
// access-token type and cookie checks are layered on top of auth.
func New(auth *jwtauth.Config, opts ...Option) (*Server, error) {
	s := &Server{
		accessTTL:  jwtauth.DefaultAccessTTL,
		refreshTTL: jwtauth.DefaultRefreshTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.data == nil {
		s.data = NewDataset(1)
	}

	layered := []jwtauth.ConfigOption{
		jwtauth.WithCookie(AccessTokenCookie),
		jwtauth.WithTokenType(jwtauth.TokenTypeAccess),
	}
	if s.logger != nil {
		layered = append(layered, jwtauth.WithLogger(s.logger))
	}
	access, err := auth.With(layered...)
	if err != nil {
		return nil, err
	}
	s.auth = access
	s.issuer = jwtauth.NewIssuer(access, jwtauth.WithRefreshTTL(s.refreshTTL), jwtauth.WithIssuerClock(s.now))
	return s, nil
}

// Dataset returns the served content.
func (s *Server) Dataset() *Dataset {
	return s.data
}

// Handler returns the gin engine serving every route.
func (s *Server) Handler() http.Handler {
	return s.Router()
}

// Router builds the gin engine. Resources are served both publicly and
// under /auth behind the bearer middleware.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger))
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})

	r.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "method": c.Request.Method})
	})

	r.POST("/auth/login", s.login)
	r.POST("/auth/refresh", s.refresh)

	authed := r.Group("/auth", jwtauth.JWTAuth(s.auth))
	authed.GET("/me", s.me)

	s.registerResources(&r.RouterGroup)
	s.registerResources(authed)
	return r
}

func (s *Server) registerResources(g *gin.RouterGroup) {
	users := g.Group("/users")
	users.GET("", s.listUsers)
	users.GET("/search", s.searchUsers)
	users.GET("/filter", s.filterUsers)
	users.POST("/add", s.addUser)
	users.GET("/:id", s.getUser)
	users.PUT("/:id", s.updateUser)
	users.PATCH("/:id", s.updateUser)
	users.DELETE("/:id", s.deleteUser)
	users.GET("/:id/carts", s.userCarts)
	users.GET("/:id/posts", s.userPosts)
	users.GET("/:id/todos", s.userTodos)

	posts := g.Group("/posts")
	posts.GET("", s.listPosts)
	posts.GET("/search", s.searchPosts)
	posts.GET("/user/:id", s.userPosts)
	posts.POST("/add", s.addPost)
	posts.GET("/:id", s.getPost)
	posts.GET("/:id/comments", s.postComments)
	posts.PUT("/:id", s.updatePost)
	posts.PATCH("/:id", s.updatePost)
	posts.DELETE("/:id", s.deletePost)

	comments := g.Group("/comments")
	comments.GET("", s.listComments)
	comments.GET("/post/:id", s.postComments)
	comments.POST("/add", s.addComment)
	comments.GET("/:id", s.getComment)
	comments.PUT("/:id", s.updateComment)
	comments.PATCH("/:id", s.updateComment)
	comments.DELETE("/:id", s.deleteComment)

	carts := g.Group("/carts")
	carts.GET("", s.listCarts)
	carts.GET("/user/:id", s.userCarts)
	carts.POST("/add", s.addCart)
	carts.GET("/:id", s.getCart)
	carts.PUT("/:id", s.updateCart)
	carts.PATCH("/:id", s.updateCart)
	carts.DELETE("/:id", s.deleteCart)

	products := g.Group("/products")
	products.GET("", s.listProducts)
	products.GET("/search", s.searchProducts)
	products.GET("/categories", s.productCategories)
	products.GET("/category-list", s.productCategoryList)
	products.GET("/category/:slug", s.productsByCategory)
	products.POST("/add", s.addProduct)
	products.GET("/:id", s.getProduct)
	products.PUT("/:id", s.updateProduct)
	products.PATCH("/:id", s.updateProduct)
	products.DELETE("/:id", s.deleteProduct)

	recipes := g.Group("/recipes")
	recipes.GET("", s.listRecipes)
	recipes.GET("/search", s.searchRecipes)
	recipes.GET("/tags", s.recipeTags)
	recipes.GET("/tag/:tag", s.recipesByTag)
	recipes.GET("/meal-type/:meal", s.recipesByMeal)
	recipes.POST("/add", s.addRecipe)
	recipes.GET("/:id", s.getRecipe)
	recipes.PUT("/:id", s.updateRecipe)
	recipes.PATCH("/:id", s.updateRecipe)
	recipes.DELETE("/:id", s.deleteRecipe)

	quotes := g.Group("/quotes")
	quotes.GET("", s.listQuotes)
	quotes.GET("/random", s.randomQuote)
	quotes.GET("/:id", s.getQuote)

	todos := g.Group("/todos")
	todos.GET("", s.listTodos)
	todos.GET("/random", s.randomTodo)
	todos.GET("/user/:id", s.userTodos)
	todos.POST("/add", s.addTodo)
	todos.GET("/:id", s.getTodo)
	todos.PUT("/:id", s.updateTodo)
	todos.PATCH("/:id", s.updateTodo)
	todos.DELETE("/:id", s.deleteTodo)
}

// deletedOn is the timestamp format the demo service uses.
func (s *Server) deletedOn() string {
	return s.now().UTC().Format("2006-01-02T15:04:05.000Z")
}
