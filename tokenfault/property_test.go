package tokenfault_test

import (
	"strings"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/Wang-tianhao/dummyjson-apitest-go/tokenfault"
)

func TestGeneratorProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	generator := tokenfault.New()

	properties.Property("random strings have the requested length and alphabet", prop.ForAll(
		func(n int) bool {
			s := generator.RandomString(n)
			return len(s) == n && isAlphanumeric(s)
		},
		gen.IntRange(0, 600),
	))

	properties.Property("random strings never form an envelope", prop.ForAll(
		func(n int) bool {
			_, err := tokenfault.ParseEnvelope(generator.RandomString(n))
			return err != nil
		},
		gen.IntRange(1, 300),
	))

	properties.Property("tampering keeps header and signature and grants admin", prop.ForAll(
		func(subject, username string, ttl int) bool {
			claims := map[string]any{
				"sub":      subject,
				"username": username,
				"exp":      time.Now().Add(time.Duration(ttl) * time.Second).Unix(),
			}
			original, err := tokenfault.HS256Signer{}.Sign(claims, []byte("property-secret"))
			if err != nil {
				return false
			}
			res := generator.TamperedPayload(tokenfault.Text(original))
			tampered, _ := res.Specimen.Value()

			in, _ := tokenfault.ParseEnvelope(original)
			out, err := tokenfault.ParseEnvelope(tampered)
			if err != nil {
				return false
			}
			decoded, err := out.DecodePayload()
			if err != nil {
				return false
			}
			return res.Strategy == tokenfault.StrategyTampered &&
				in.Header == out.Header &&
				in.Signature == out.Signature &&
				in.Payload != out.Payload &&
				decoded["role"] == "admin" &&
				decoded["username"] == username
		},
		gen.Identifier(),
		gen.AlphaString(),
		gen.IntRange(-3600, 3600),
	))

	properties.Property("scenario lookup never yields an empty unknown-scenario specimen", prop.ForAll(
		func(name string) bool {
			if _, known := tokenfault.ScenarioCategory(name); known {
				return true
			}
			tok, ok := generator.ByScenario(name).Value()
			return ok && strings.TrimSpace(tok) != ""
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
