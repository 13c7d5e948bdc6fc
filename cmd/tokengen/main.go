package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Wang-tianhao/dummyjson-apitest-go/config"
	"github.com/Wang-tianhao/dummyjson-apitest-go/jwtauth"
	"github.com/Wang-tianhao/dummyjson-apitest-go/tokenfault"
)

// record is one line of -json output. Value is omitted for absent specimens.
type record struct {
	Category string  `json:"category"`
	Value    *string `json:"value,omitempty"`
	Absent   string  `json:"absent,omitempty"`
}

func main() {
	suite, err := config.LoadSuite()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var (
		scenario  = flag.String("scenario", "", "Generate one invalid token for the named scenario")
		all       = flag.Bool("all", false, "Generate one invalid token per category")
		from      = flag.String("from", "", "Valid token to tamper with (tampered-payload category)")
		seed      = flag.Uint64("seed", suite.TokenSeed, "Seed for reproducible output (0 = random)")
		expSecret = flag.String("expired-secret", suite.TokenSecret, "Secret used to sign expired tokens")
		asJSON    = flag.Bool("json", false, "Print JSON instead of text")

		secret   = flag.String("secret", "your-256-bit-secret-key-min-32-bytes-here-for-demo!", "Secret key for valid tokens (minimum 32 bytes)")
		userID   = flag.Int("id", 1, "User ID")
		username = flag.String("username", "emilys", "Username")
		email    = flag.String("email", "emily.johnson@x.dummyjson.com", "Email address")
		role     = flag.String("role", "admin", "User role")
		minutes  = flag.Int("minutes", 60, "Access token validity in minutes")
	)
	flag.Parse()

	var opts []tokenfault.Option
	if *seed != 0 {
		opts = append(opts, tokenfault.WithSeed(*seed))
	}
	gen := tokenfault.New(opts...)

	switch {
	case *all:
		original := tokenfault.Undefined()
		if *from != "" {
			original = tokenfault.Text(*from)
		}
		specimens := gen.All(original)
		specimens[tokenfault.CategoryExpired] = tokenfault.Text(gen.ExpiredJWT(*expSecret))
		records := make([]record, 0, len(specimens))
		for _, c := range tokenfault.Categories() {
			records = append(records, toRecord(c, specimens[c]))
		}
		emit(records, *asJSON)

	case *scenario != "":
		var specimen tokenfault.Specimen
		category, known := tokenfault.ScenarioCategory(*scenario)
		if known && category == tokenfault.CategoryExpired {
			specimen = tokenfault.Text(gen.ExpiredJWT(*expSecret))
		} else {
			specimen = gen.ByScenario(*scenario)
		}
		if !known {
			fmt.Fprintf(os.Stderr, "unknown scenario %q, using a random invalid token\n", *scenario)
			category = "random-invalid"
		}
		emit([]record{toRecord(category, specimen)}, *asJSON)

	default:
		issueValid(*secret, jwtauth.Identity{
			ID:       *userID,
			Username: *username,
			Email:    *email,
			Role:     *role,
		}, time.Duration(*minutes)*time.Minute)
	}
}

func toRecord(c tokenfault.Category, s tokenfault.Specimen) record {
	r := record{Category: c.String()}
	if v, ok := s.Value(); ok {
		r.Value = &v
		return r
	}
	r.Absent = s.String()
	return r
}

func emit(records []record, asJSON bool) {
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			log.Fatalf("Failed to encode output: %v", err)
		}
		return
	}
	for _, r := range records {
		switch {
		case r.Value != nil:
			fmt.Printf("%-20s %s\n", r.Category, *r.Value)
		default:
			fmt.Printf("%-20s <%s>\n", r.Category, r.Absent)
		}
	}
}

func issueValid(secret string, id jwtauth.Identity, ttl time.Duration) {
	cfg, err := jwtauth.NewConfig(jwtauth.WithHS256([]byte(secret)))
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	pair, err := jwtauth.NewIssuer(cfg).Issue(id, ttl)
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}

	fmt.Println("\n=== Access Token Issued ===")
	fmt.Printf("\nAccess token:  %s\n", pair.AccessToken)
	fmt.Printf("Refresh token: %s\n\n", pair.RefreshToken)
	fmt.Println("Claims:")
	fmt.Printf("  ID:       %d\n", id.ID)
	fmt.Printf("  Username: %s\n", id.Username)
	fmt.Printf("  Email:    %s\n", id.Email)
	fmt.Printf("  Role:     %s\n", id.Role)
	fmt.Printf("  Expires:  %s\n\n", pair.AccessExpiresAt.Format(time.RFC3339))
	fmt.Println("Usage:")
	fmt.Printf("  curl -H 'Authorization: Bearer %s' http://localhost:8080/auth/me\n\n", pair.AccessToken)
}
