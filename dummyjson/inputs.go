package dummyjson

// Request payloads for add and update calls. Zero fields are omitted so an
// update only touches what the caller set.

type UserInput struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Age       int    `json:"age,omitempty"`
	Gender    string `json:"gender,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Username  string `json:"username,omitempty"`
	Password  string `json:"password,omitempty"`
	Role      string `json:"role,omitempty"`
}

type PostInput struct {
	Title  string   `json:"title,omitempty"`
	Body   string   `json:"body,omitempty"`
	UserID int      `json:"userId,omitempty"`
	Tags   []string `json:"tags,omitempty"`
}

type CommentInput struct {
	Body   string `json:"body,omitempty"`
	PostID int    `json:"postId,omitempty"`
	UserID int    `json:"userId,omitempty"`
}

// CartItem references a product by id.
type CartItem struct {
	ID       int `json:"id"`
	Quantity int `json:"quantity"`
}

type CartInput struct {
	UserID   int        `json:"userId,omitempty"`
	Merge    bool       `json:"merge,omitempty"`
	Products []CartItem `json:"products,omitempty"`
}

type ProductInput struct {
	Title       string  `json:"title,omitempty"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	Price       float64 `json:"price,omitempty"`
	Stock       int     `json:"stock,omitempty"`
	Brand       string  `json:"brand,omitempty"`
	Thumbnail   string  `json:"thumbnail,omitempty"`
}

type RecipeInput struct {
	Name            string   `json:"name,omitempty"`
	Ingredients     []string `json:"ingredients,omitempty"`
	Instructions    []string `json:"instructions,omitempty"`
	PrepTimeMinutes int      `json:"prepTimeMinutes,omitempty"`
	CookTimeMinutes int      `json:"cookTimeMinutes,omitempty"`
	Difficulty      string   `json:"difficulty,omitempty"`
	Cuisine         string   `json:"cuisine,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	MealType        []string `json:"mealType,omitempty"`
}

type TodoInput struct {
	Todo      string `json:"todo,omitempty"`
	Completed *bool  `json:"completed,omitempty"`
	UserID    int    `json:"userId,omitempty"`
}
