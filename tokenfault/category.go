package tokenfault

// Category identifies a class of invalid credential.
type Category string

const (
	CategoryEmpty             Category = "empty"
	CategoryNull              Category = "null"
	CategoryUndefined         Category = "undefined"
	CategoryRandom            Category = "random"
	CategoryMalformed         Category = "malformed"
	CategoryExpired           Category = "expired"
	CategoryInvalidSignature  Category = "invalid-signature"
	CategoryTamperedPayload   Category = "tampered-payload"
	CategorySpecialCharacters Category = "special-characters"
	CategoryTooLong           Category = "too-long"
	CategorySQLInjection      Category = "sql-injection"
	CategoryXSS               Category = "xss"
)

var allCategories = []Category{
	CategoryEmpty,
	CategoryNull,
	CategoryUndefined,
	CategoryRandom,
	CategoryMalformed,
	CategoryExpired,
	CategoryInvalidSignature,
	CategoryTamperedPayload,
	CategorySpecialCharacters,
	CategoryTooLong,
	CategorySQLInjection,
	CategoryXSS,
}

// randomInvalidCategories are the categories RandomInvalid draws from.
// None of them needs caller input.
var randomInvalidCategories = []Category{
	CategoryRandom,
	CategoryMalformed,
	CategoryExpired,
	CategoryInvalidSignature,
	CategorySpecialCharacters,
}

// Categories returns every category in a stable order.
func Categories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range allCategories {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}
