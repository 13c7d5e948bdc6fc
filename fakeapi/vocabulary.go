package fakeapi

// Fixed word lists keep searches, tags and categories populated no matter
// which seed generated the dataset.

type categorySpec struct {
	slug   string
	name   string
	brands []string
	nouns  []string
}

var productCategories = []categorySpec{
	{"beauty", "Beauty", []string{"Essence", "Glamour Beauty"}, []string{"Mascara", "Eyeshadow Palette", "Powder Canister", "Lipstick"}},
	{"fragrances", "Fragrances", []string{"Chanel", "Dior", "Gucci"}, []string{"Eau de Parfum", "Cologne", "Perfume"}},
	{"furniture", "Furniture", []string{"Annibale Colombo", "Furniture Co."}, []string{"Bed", "Sofa", "Bedside Table", "Office Chair"}},
	{"groceries", "Groceries", []string{""}, []string{"Apple", "Beef Steak", "Cooking Oil", "Green Bell Pepper"}},
	{"home-decoration", "Home Decoration", []string{""}, []string{"Decoration Swing", "Table Lamp", "Plant Pot", "Wall Mirror"}},
	{"kitchen-accessories", "Kitchen Accessories", []string{""}, []string{"Bamboo Spatula", "Chopping Board", "Electric Stove", "Fine Mesh Strainer"}},
	{"laptops", "Laptops", []string{"Apple", "Asus", "Lenovo", "Dell"}, []string{"MacBook Pro", "Zenbook", "Yoga", "XPS"}},
	{"mens-shirts", "Mens Shirts", []string{"Fashion Trends", "Gigabyte"}, []string{"Checkered Shirt", "Casual Shirt", "Polo"}},
	{"mens-shoes", "Mens Shoes", []string{"Nike", "Puma"}, []string{"Running Shoes", "Sneakers", "Loafers"}},
	{"mens-watches", "Mens Watches", []string{"Rolex", "Longines"}, []string{"Chronograph Watch", "Submariner Watch", "Field Watch"}},
	{"mobile-accessories", "Mobile Accessories", []string{"Apple", "Amazon"}, []string{"Phone Case", "Phone Charger", "Phone Holder", "Earbuds"}},
	{"motorcycle", "Motorcycle", []string{"Kawasaki", "MotoGP", "ScootMaster"}, []string{"Ninja", "Sportbike", "Scooter"}},
	{"skin-care", "Skin Care", []string{"Olay", "Vaseline"}, []string{"Aloe Vera Gel", "Body Lotion", "Sunscreen"}},
	{"smartphones", "Smartphones", []string{"Apple", "Samsung", "Oppo", "Realme"}, []string{"iPhone", "Galaxy Phone", "Smart Phone", "Phone Pro"}},
	{"sports-accessories", "Sports Accessories", []string{""}, []string{"Baseball Glove", "Basketball", "Cricket Bat", "Football"}},
	{"sunglasses", "Sunglasses", []string{""}, []string{"Aviator Sunglasses", "Sports Sunglasses", "Classic Sunglasses"}},
	{"tablets", "Tablets", []string{"Apple", "Samsung"}, []string{"iPad", "Galaxy Tab", "Tablet"}},
	{"tops", "Tops", []string{""}, []string{"Blue Frock", "Girl Summer Dress", "Short Frock"}},
	{"vehicle", "Vehicle", []string{"Chevrolet", "Dodge"}, []string{"Pickup Truck", "Sedan", "SUV"}},
	{"womens-bags", "Womens Bags", []string{"Prada", "Heshe"}, []string{"Handbag", "Tote Bag", "Women Purse"}},
	{"womens-dresses", "Womens Dresses", []string{""}, []string{"Black Women's Gown", "Corset Leather", "Dress Pea"}},
	{"womens-jewellery", "Womens Jewellery", []string{""}, []string{"Green Crystal Earring", "Green Oval Earring", "Tropical Earring"}},
	{"womens-shoes", "Womens Shoes", []string{""}, []string{"Black & Brown Slipper", "Calvin Klein Heel", "Golden Shoes"}},
	{"womens-watches", "Womens Watches", []string{"IWC", "Rolex"}, []string{"Women's Watch", "Cellini Moonphase", "Datejust"}},
}

var postTopics = []string{
	"love", "travel", "history", "music", "science", "family", "friendship",
	"nature", "technology", "food", "adventure", "dreams",
}

var postOpeners = []string{
	"His mother had always taught him about",
	"She had never been one to talk about",
	"Nobody ever asked what happened to",
	"The last thing she expected was",
	"There was something strange about",
	"He could not stop thinking about",
}

var postTags = []string{"history", "american", "crime", "french", "fiction", "english", "magical", "mystery", "love", "classic"}

type recipeSpec struct {
	name       string
	cuisine    string
	difficulty string
	tags       []string
	mealType   []string
	base       []string
}

var recipeSpecs = []recipeSpec{
	{"Classic Margherita Pizza", "Italian", "Easy", []string{"Pizza", "Italian"}, []string{"Dinner"}, []string{"Pizza dough", "Tomato sauce", "Fresh mozzarella cheese", "Fresh basil leaves"}},
	{"Vegetarian Stir-Fry", "Asian", "Medium", []string{"Vegetarian", "Stir-fry", "Asian"}, []string{"Lunch"}, []string{"Tofu, cubed", "Broccoli florets", "Soy sauce", "Ginger, minced"}},
	{"Chocolate Chip Cookies", "American", "Easy", []string{"Cookies", "Dessert", "Baking"}, []string{"Snack", "Dessert"}, []string{"All-purpose flour", "Butter, softened", "Brown sugar", "Chocolate chips"}},
	{"Creamy Garlic Pasta", "Italian", "Easy", []string{"Pasta", "Italian", "Quick"}, []string{"Dinner"}, []string{"Spaghetti", "Garlic, minced", "Heavy cream", "Parmesan cheese"}},
	{"Chicken Alfredo Pasta", "Italian", "Medium", []string{"Pasta", "Chicken"}, []string{"Dinner", "Lunch"}, []string{"Fettuccine pasta", "Chicken breast", "Butter", "Parmesan cheese"}},
	{"Fluffy Pancakes", "American", "Easy", []string{"Pancakes", "Breakfast"}, []string{"Breakfast"}, []string{"Flour", "Milk", "Eggs", "Baking powder"}},
	{"Shakshuka", "Middle Eastern", "Easy", []string{"Eggs", "Middle Eastern"}, []string{"Breakfast"}, []string{"Eggs", "Tomatoes, chopped", "Onion, diced", "Cumin"}},
	{"Japanese Ramen Soup", "Japanese", "Medium", []string{"Ramen", "Japanese", "Soup", "Asian"}, []string{"Dinner"}, []string{"Ramen noodles", "Chicken broth", "Soft-boiled eggs", "Green onions"}},
	{"Thai Green Curry", "Thai", "Medium", []string{"Curry", "Thai", "Asian"}, []string{"Dinner"}, []string{"Green curry paste", "Coconut milk", "Chicken thighs", "Thai basil"}},
	{"Korean Bibimbap", "Korean", "Medium", []string{"Bibimbap", "Korean", "Asian"}, []string{"Lunch", "Dinner"}, []string{"Cooked white rice", "Beef bulgogi", "Spinach", "Gochujang"}},
	{"Avocado Toast", "American", "Easy", []string{"Toast", "Breakfast", "Vegetarian"}, []string{"Breakfast", "Snack"}, []string{"Sourdough bread", "Avocado", "Lemon juice", "Chili flakes"}},
	{"Pesto Pasta Salad", "Italian", "Easy", []string{"Pasta", "Salad", "Vegetarian"}, []string{"Lunch"}, []string{"Fusilli pasta", "Basil pesto", "Cherry tomatoes", "Pine nuts"}},
	{"Mango Salsa Chicken", "Mexican", "Easy", []string{"Chicken", "Salsa", "Mexican"}, []string{"Dinner"}, []string{"Chicken breasts", "Mango, diced", "Red onion", "Cilantro"}},
	{"Greek Yogurt Parfait", "Greek", "Easy", []string{"Yogurt", "Breakfast", "Healthy"}, []string{"Breakfast"}, []string{"Greek yogurt", "Granola", "Mixed berries", "Honey"}},
	{"Beef and Broccoli", "Chinese", "Medium", []string{"Beef", "Stir-fry", "Asian"}, []string{"Dinner"}, []string{"Flank steak", "Broccoli florets", "Oyster sauce", "Garlic"}},
}

var recipeInstructions = []string{
	"Preheat the oven or pan to the required temperature.",
	"Prepare and measure all the ingredients.",
	"Combine the main ingredients in a large bowl.",
	"Cook until golden and fragrant, stirring occasionally.",
	"Season to taste and adjust the consistency.",
	"Garnish and serve immediately.",
}

var quoteTexts = []struct{ quote, author string }{
	{"Your heart is the size of an ocean. Go find yourself in its hidden depths.", "Rumi"},
	{"The Bay of Bengal is hit frequently by cyclones. The months of November and May, in particular, are dangerous in this regard.", "Abdul Kalam"},
	{"Thinking is the capital, Enterprise is the way, Hard Work is the solution.", "Abdul Kalam"},
	{"If You Can'T Make It Good, At Least Make It Look Good.", "Bill Gates"},
	{"Heart be brave. If you cannot be brave, just go. Love's glory is not a small thing.", "Rumi"},
	{"It is bad for a young man to sin; but it is worse for an old man to sin.", "Abu Bakr (R.A)"},
	{"If You Are Out To Describe The Truth, Leave Elegance To The Tailor.", "Albert Einstein"},
	{"O man you are busy working for the world, and the world is busy trying to turn you out.", "Abu Bakr (R.A)"},
	{"While children are struggling to be unique, the world around them is trying all means to make them look like everybody else.", "Abdul Kalam"},
	{"These Capitalists Generally Act Harmoniously And In Concert, To Fleece The People.", "Abraham Lincoln"},
	{"I Don'T Believe In Failure. It Is Not Failure If You Enjoyed The Process.", "Oprah Winfrey"},
	{"Do not get elated at any victory, for all such victory is subject to the will of God.", "Abu Bakr (R.A)"},
	{"I have learned silence from the talkative, toleration from the intolerant, and kindness from the unkind.", "Kahlil Gibran"},
	{"Life isn't about getting and having, it's about giving and being.", "Kevin Kruse"},
	{"Whatever the mind of man can conceive and believe, it can achieve.", "Napoleon Hill"},
	{"Strive not to be a success, but rather to be of value.", "Albert Einstein"},
	{"Two roads diverged in a wood, and I took the one less traveled by, And that has made all the difference.", "Robert Frost"},
	{"I attribute my success to this: I never gave or took any excuse.", "Florence Nightingale"},
	{"You miss 100% of the shots you don't take.", "Wayne Gretzky"},
	{"The most difficult thing is the decision to act, the rest is merely tenacity.", "Amelia Earhart"},
}

var todoVerbs = []string{
	"Do something nice for", "Memorize a poem about", "Watch a classic movie about",
	"Write a thank you letter to", "Invite friends over to talk about", "Learn more about",
	"Clean out", "Plan a trip to see", "Make a budget for", "Read a book about",
}

var userRoles = []string{"admin", "moderator", "user", "user", "user"}
