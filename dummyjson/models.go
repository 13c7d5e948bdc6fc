package dummyjson

// Deletion is set on resources returned by a delete call.
type Deletion struct {
	IsDeleted bool   `json:"isDeleted,omitempty"`
	DeletedOn string `json:"deletedOn,omitempty"`
}

// ListMeta is the pagination block of every list envelope.
type ListMeta struct {
	Total int `json:"total"`
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
}

type Address struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type Company struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	Title      string `json:"title"`
}

type User struct {
	ID        int     `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Age       int     `json:"age"`
	Gender    string  `json:"gender"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Username  string  `json:"username"`
	Password  string  `json:"password,omitempty"`
	BirthDate string  `json:"birthDate"`
	Image     string  `json:"image"`
	Role      string  `json:"role"`
	Address   Address `json:"address"`
	Company   Company `json:"company"`
	Deletion
}

type UserList struct {
	Users []User `json:"users"`
	ListMeta
}

type Reactions struct {
	Likes    int `json:"likes"`
	Dislikes int `json:"dislikes"`
}

type Post struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Tags      []string  `json:"tags"`
	Reactions Reactions `json:"reactions"`
	Views     int       `json:"views"`
	UserID    int       `json:"userId"`
	Deletion
}

type PostList struct {
	Posts []Post `json:"posts"`
	ListMeta
}

// CommentUser is the author block embedded in a comment.
type CommentUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
}

type Comment struct {
	ID     int         `json:"id"`
	Body   string      `json:"body"`
	PostID int         `json:"postId"`
	Likes  int         `json:"likes"`
	User   CommentUser `json:"user"`
	Deletion
}

type CommentList struct {
	Comments []Comment `json:"comments"`
	ListMeta
}

type CartProduct struct {
	ID                 int     `json:"id"`
	Title              string  `json:"title"`
	Price              float64 `json:"price"`
	Quantity           int     `json:"quantity"`
	Total              float64 `json:"total"`
	DiscountPercentage float64 `json:"discountPercentage"`
	DiscountedTotal    float64 `json:"discountedTotal"`
	Thumbnail          string  `json:"thumbnail"`
}

type Cart struct {
	ID              int           `json:"id"`
	Products        []CartProduct `json:"products"`
	Total           float64       `json:"total"`
	DiscountedTotal float64       `json:"discountedTotal"`
	UserID          int           `json:"userId"`
	TotalProducts   int           `json:"totalProducts"`
	TotalQuantity   int           `json:"totalQuantity"`
	Deletion
}

type CartList struct {
	Carts []Cart `json:"carts"`
	ListMeta
}

type Product struct {
	ID                 int      `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Category           string   `json:"category"`
	Price              float64  `json:"price"`
	DiscountPercentage float64  `json:"discountPercentage"`
	Rating             float64  `json:"rating"`
	Stock              int      `json:"stock"`
	Tags               []string `json:"tags"`
	Brand              string   `json:"brand,omitempty"`
	SKU                string   `json:"sku"`
	Thumbnail          string   `json:"thumbnail"`
	Images             []string `json:"images"`
	Deletion
}

type ProductList struct {
	Products []Product `json:"products"`
	ListMeta
}

// Category is an entry of /products/categories.
type Category struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

type Recipe struct {
	ID                 int      `json:"id"`
	Name               string   `json:"name"`
	Ingredients        []string `json:"ingredients"`
	Instructions       []string `json:"instructions"`
	PrepTimeMinutes    int      `json:"prepTimeMinutes"`
	CookTimeMinutes    int      `json:"cookTimeMinutes"`
	Servings           int      `json:"servings"`
	Difficulty         string   `json:"difficulty"`
	Cuisine            string   `json:"cuisine"`
	CaloriesPerServing int      `json:"caloriesPerServing"`
	Tags               []string `json:"tags"`
	UserID             int      `json:"userId"`
	Image              string   `json:"image"`
	Rating             float64  `json:"rating"`
	ReviewCount        int      `json:"reviewCount"`
	MealType           []string `json:"mealType"`
	Deletion
}

type RecipeList struct {
	Recipes []Recipe `json:"recipes"`
	ListMeta
}

type Quote struct {
	ID     int    `json:"id"`
	Quote  string `json:"quote"`
	Author string `json:"author"`
}

type QuoteList struct {
	Quotes []Quote `json:"quotes"`
	ListMeta
}

type Todo struct {
	ID        int    `json:"id"`
	Todo      string `json:"todo"`
	Completed bool   `json:"completed"`
	UserID    int    `json:"userId"`
	Deletion
}

type TodoList struct {
	Todos []Todo `json:"todos"`
	ListMeta
}
