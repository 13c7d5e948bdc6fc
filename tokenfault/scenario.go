package tokenfault

import (
	"sort"
	"strings"
	"sync/atomic"
)

var scenarios = map[string]Category{
	"expired":           CategoryExpired,
	"malformed":         CategoryMalformed,
	"empty":             CategoryEmpty,
	"null":              CategoryNull,
	"undefined":         CategoryUndefined,
	"random":            CategoryRandom,
	"invalid-signature": CategoryInvalidSignature,
	"too-long":          CategoryTooLong,
	"special-chars":     CategorySpecialCharacters,
	"sql-injection":     CategorySQLInjection,
	"xss":               CategoryXSS,
}

// Scenarios returns the scenario names ByScenario recognises, sorted.
func Scenarios() []string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ScenarioCategory maps a scenario name to its category.
func ScenarioCategory(name string) (Category, bool) {
	c, ok := scenarios[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// ByScenario generates the specimen registered under name. Unknown names get
// a RandomInvalid specimen instead of an error so a typo in a test still
// yields an invalid credential.
func (g *Generator) ByScenario(name string) Specimen {
	if c, ok := ScenarioCategory(name); ok {
		return g.Generate(c)
	}
	_, s := g.RandomInvalid()
	return s
}

var defaultGenerator atomic.Pointer[Generator]

// Default returns the process-wide generator, creating it on first use.
func Default() *Generator {
	if g := defaultGenerator.Load(); g != nil {
		return g
	}
	defaultGenerator.CompareAndSwap(nil, New())
	return defaultGenerator.Load()
}

// SetDefault replaces the process-wide generator, e.g. with a seeded one for a
// reproducible run. A nil g resets it.
func SetDefault(g *Generator) {
	defaultGenerator.Store(g)
}

// ByScenario calls Default().ByScenario.
func ByScenario(name string) Specimen {
	return Default().ByScenario(name)
}

// All calls Default().All.
func All(original Specimen) map[Category]Specimen {
	return Default().All(original)
}

// RandomInvalid calls Default().RandomInvalid.
func RandomInvalid() (Category, Specimen) {
	return Default().RandomInvalid()
}
