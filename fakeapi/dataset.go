package fakeapi

import (
	"fmt"
	"math"
	"strings"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/Wang-tianhao/dummyjson-apitest-go/dummyjson"
)

// Dataset sizes follow the public service.
const (
	userCount    = 208
	postCount    = 251
	commentCount = 340
	cartCount    = 50
	productCount = 194
	recipeCount  = 50
	todoCount    = 254
)

// Login credentials of the first user, as published by the demo service.
const (
	DemoUsername = "emilys"
	DemoPassword = "emilyspass"
)

const categoryURLPrefix = "https://dummyjson.com/products/category/"

// Dataset is the read-only content served by the stand-in. Resource ids are
// 1-based slice positions.
type Dataset struct {
	Users      []dummyjson.User
	Posts      []dummyjson.Post
	Comments   []dummyjson.Comment
	Carts      []dummyjson.Cart
	Products   []dummyjson.Product
	Categories []dummyjson.Category
	Recipes    []dummyjson.Recipe
	Quotes     []dummyjson.Quote
	Todos      []dummyjson.Todo
}

// NewDataset builds the dataset for seed. The same seed always yields the
// same content; seed 0 is treated as 1.
func NewDataset(seed uint64) *Dataset {
	if seed == 0 {
		seed = 1
	}
	f := gofakeit.New(seed)

	d := &Dataset{}
	d.Users = buildUsers(f)
	d.Products, d.Categories = buildProducts(f)
	d.Posts = buildPosts(f)
	d.Comments = buildComments(f, d.Users)
	d.Carts = buildCarts(f, d.Products)
	d.Recipes = buildRecipes(f)
	d.Quotes = buildQuotes()
	d.Todos = buildTodos(f)
	return d
}

func buildUsers(f *gofakeit.Faker) []dummyjson.User {
	users := make([]dummyjson.User, userCount)
	for i := range users {
		first, last := f.FirstName(), f.LastName()
		users[i] = dummyjson.User{
			ID:        i + 1,
			FirstName: first,
			LastName:  last,
			Age:       f.IntRange(18, 70),
			Gender:    f.Gender(),
			Email:     strings.ToLower(fmt.Sprintf("%s.%s@x.dummyjson.com", first, last)),
			Phone:     f.Phone(),
			Username:  strings.ToLower(first) + string(strings.ToLower(last)[0]),
			Password:  f.Password(true, true, true, false, false, 10),
			BirthDate: f.Date().Format("2006-1-2"),
			Role:      userRoles[i%len(userRoles)],
			Address: dummyjson.Address{
				Address:    f.Street(),
				City:       f.City(),
				State:      f.State(),
				PostalCode: f.Zip(),
				Country:    "United States",
			},
			Company: dummyjson.Company{
				Name:       f.Company(),
				Department: f.JobDescriptor(),
				Title:      f.JobTitle(),
			},
		}
		users[i].Image = fmt.Sprintf("https://dummyjson.com/icon/%s/128", users[i].Username)
	}

	users[0] = dummyjson.User{
		ID:        1,
		FirstName: "Emily",
		LastName:  "Johnson",
		Age:       28,
		Gender:    "female",
		Email:     "emily.johnson@x.dummyjson.com",
		Phone:     "+81 965-431-3024",
		Username:  DemoUsername,
		Password:  DemoPassword,
		BirthDate: "1996-5-30",
		Image:     "https://dummyjson.com/icon/emilys/128",
		Role:      "admin",
		Address: dummyjson.Address{
			Address:    "626 Main Street",
			City:       "Phoenix",
			State:      "Mississippi",
			PostalCode: "29112",
			Country:    "United States",
		},
		Company: dummyjson.Company{Name: "Dooley, Kozey and Cronin", Department: "Engineering", Title: "Sales Manager"},
	}
	return users
}

func buildProducts(f *gofakeit.Faker) ([]dummyjson.Product, []dummyjson.Category) {
	categories := make([]dummyjson.Category, len(productCategories))
	for i, kind := range productCategories {
		categories[i] = dummyjson.Category{Slug: kind.slug, Name: kind.name, URL: categoryURLPrefix + kind.slug}
	}

	products := make([]dummyjson.Product, productCount)
	for i := range products {
		kind := productCategories[i%len(productCategories)]
		brand := kind.brands[f.Number(0, len(kind.brands)-1)]
		noun := kind.nouns[f.Number(0, len(kind.nouns)-1)]
		title := strings.TrimSpace(brand + " " + noun)
		id := i + 1
		products[i] = dummyjson.Product{
			ID:                 id,
			Title:              title,
			Description:        fmt.Sprintf("The %s is a %s product from the %s range.", title, strings.ToLower(kind.name), strings.ToLower(f.Word())),
			Category:           kind.slug,
			Price:              round2(f.Float64Range(1, 2000)),
			DiscountPercentage: round2(f.Float64Range(0, 20)),
			Rating:             round2(f.Float64Range(1, 5)),
			Stock:              f.IntRange(0, 150),
			Tags:               []string{kind.slug, strings.ToLower(strings.Fields(noun)[0])},
			Brand:              brand,
			SKU:                strings.ToUpper(f.UUID()[:8]),
			Thumbnail:          fmt.Sprintf("https://cdn.dummyjson.com/products/images/%s/%d/thumbnail.png", kind.slug, id),
			Images:             []string{fmt.Sprintf("https://cdn.dummyjson.com/products/images/%s/%d/1.png", kind.slug, id)},
		}
	}
	return products, categories
}

func buildPosts(f *gofakeit.Faker) []dummyjson.Post {
	posts := make([]dummyjson.Post, postCount)
	for i := range posts {
		topic := postTopics[i%len(postTopics)]
		opener := postOpeners[f.Number(0, len(postOpeners)-1)]
		posts[i] = dummyjson.Post{
			ID:     i + 1,
			Title:  fmt.Sprintf("%s %s.", opener, topic),
			Body:   fmt.Sprintf("%s %s, and %s %s.", opener, topic, strings.ToLower(postOpeners[f.Number(0, len(postOpeners)-1)]), f.Word()),
			Tags:   []string{postTags[f.Number(0, len(postTags)-1)], topic},
			Views:  f.IntRange(0, 5000),
			UserID: i%userCount + 1,
			Reactions: dummyjson.Reactions{
				Likes:    f.IntRange(0, 2000),
				Dislikes: f.IntRange(0, 100),
			},
		}
	}
	return posts
}

func buildComments(f *gofakeit.Faker, users []dummyjson.User) []dummyjson.Comment {
	comments := make([]dummyjson.Comment, commentCount)
	for i := range comments {
		author := users[f.Number(0, len(users)-1)]
		comments[i] = dummyjson.Comment{
			ID:     i + 1,
			Body:   fmt.Sprintf("This is %s!", strings.ToLower(f.Word())),
			PostID: i%postCount + 1,
			Likes:  f.IntRange(0, 10),
			User:   commentUser(author),
		}
	}
	return comments
}

func commentUser(u dummyjson.User) dummyjson.CommentUser {
	return dummyjson.CommentUser{ID: u.ID, Username: u.Username, FullName: u.FirstName + " " + u.LastName}
}

func buildCarts(f *gofakeit.Faker, products []dummyjson.Product) []dummyjson.Cart {
	carts := make([]dummyjson.Cart, cartCount)
	for i := range carts {
		n := f.IntRange(1, 5)
		items := make([]dummyjson.CartItem, n)
		for j := range items {
			items[j] = dummyjson.CartItem{ID: f.Number(1, len(products)), Quantity: f.IntRange(1, 5)}
		}
		cart, _ := assembleCart(i+1, i%userCount+1, items, products)
		carts[i] = cart
	}
	return carts
}

// assembleCart prices items against products. It returns the id of the
// first unknown product, or 0.
func assembleCart(id, userID int, items []dummyjson.CartItem, products []dummyjson.Product) (dummyjson.Cart, int) {
	cart := dummyjson.Cart{ID: id, UserID: userID, Products: make([]dummyjson.CartProduct, 0, len(items))}
	for _, item := range items {
		if item.ID < 1 || item.ID > len(products) {
			return dummyjson.Cart{}, item.ID
		}
		p := products[item.ID-1]
		total := p.Price * float64(item.Quantity)
		discounted := round2(total * (100 - p.DiscountPercentage) / 100)
		cart.Products = append(cart.Products, dummyjson.CartProduct{
			ID:                 p.ID,
			Title:              p.Title,
			Price:              p.Price,
			Quantity:           item.Quantity,
			Total:              round2(total),
			DiscountPercentage: p.DiscountPercentage,
			DiscountedTotal:    discounted,
			Thumbnail:          p.Thumbnail,
		})
		cart.Total += total
		cart.DiscountedTotal += discounted
		cart.TotalQuantity += item.Quantity
	}
	cart.Total = round2(cart.Total)
	cart.DiscountedTotal = round2(cart.DiscountedTotal)
	cart.TotalProducts = len(cart.Products)
	return cart, 0
}

func buildRecipes(f *gofakeit.Faker) []dummyjson.Recipe {
	recipes := make([]dummyjson.Recipe, recipeCount)
	for i := range recipes {
		kind := recipeSpecs[i%len(recipeSpecs)]
		name := kind.name
		if round := i / len(recipeSpecs); round > 0 {
			name = fmt.Sprintf("%s %s", titleCase(f.Word()), kind.name)
		}
		id := i + 1
		recipes[i] = dummyjson.Recipe{
			ID:                 id,
			Name:               name,
			Ingredients:        append([]string(nil), kind.base...),
			Instructions:       append([]string(nil), recipeInstructions[:f.IntRange(3, len(recipeInstructions))]...),
			PrepTimeMinutes:    f.IntRange(5, 30),
			CookTimeMinutes:    f.IntRange(0, 60),
			Servings:           f.IntRange(1, 6),
			Difficulty:         kind.difficulty,
			Cuisine:            kind.cuisine,
			CaloriesPerServing: f.IntRange(100, 600),
			Tags:               append([]string(nil), kind.tags...),
			UserID:             f.Number(1, userCount),
			Image:              fmt.Sprintf("https://cdn.dummyjson.com/recipe-images/%d.webp", id),
			Rating:             round2(f.Float64Range(3, 5)),
			ReviewCount:        f.IntRange(0, 100),
			MealType:           append([]string(nil), kind.mealType...),
		}
	}
	return recipes
}

func buildQuotes() []dummyjson.Quote {
	quotes := make([]dummyjson.Quote, len(quoteTexts))
	for i, q := range quoteTexts {
		quotes[i] = dummyjson.Quote{ID: i + 1, Quote: q.quote, Author: q.author}
	}
	return quotes
}

func buildTodos(f *gofakeit.Faker) []dummyjson.Todo {
	todos := make([]dummyjson.Todo, todoCount)
	for i := range todos {
		todos[i] = dummyjson.Todo{
			ID:        i + 1,
			Todo:      fmt.Sprintf("%s %s", todoVerbs[f.Number(0, len(todoVerbs)-1)], strings.ToLower(f.Word())),
			Completed: f.Bool(),
			UserID:    f.Number(1, userCount),
		}
	}
	return todos
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
