package tokenfault

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrSegmentCount is returned by ParseEnvelope when a token does not have
// exactly three dot-separated segments.
var ErrSegmentCount = errors.New("tokenfault: token must have exactly three segments")

// Envelope is the header.payload.signature structure of a signed token.
type Envelope struct {
	Header    string
	Payload   string
	Signature string
}

// ParseEnvelope splits token into its three segments. Segments may be empty;
// only the count is checked.
func ParseEnvelope(token string) (Envelope, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return Envelope{}, fmt.Errorf("%w: got %d", ErrSegmentCount, len(parts))
	}
	return Envelope{Header: parts[0], Payload: parts[1], Signature: parts[2]}, nil
}

func (e Envelope) String() string {
	return e.Header + "." + e.Payload + "." + e.Signature
}

// DecodeHeader decodes the header segment as a JSON object.
func (e Envelope) DecodeHeader() (map[string]any, error) {
	return decodeObject(e.Header)
}

// DecodePayload decodes the payload segment as a JSON object. Numbers are kept
// as json.Number so re-encoding does not lose precision.
func (e Envelope) DecodePayload() (map[string]any, error) {
	return decodeObject(e.Payload)
}

// EncodeSegment marshals v to JSON and encodes it as unpadded base64url.
func EncodeSegment(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal segment: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// DecodeSegment accepts unpadded base64url first, then the padded and
// standard alphabets some issuers emit.
func DecodeSegment(seg string) ([]byte, error) {
	encodings := []*base64.Encoding{
		base64.RawURLEncoding,
		base64.URLEncoding,
		base64.RawStdEncoding,
		base64.StdEncoding,
	}
	var lastErr error
	for _, enc := range encodings {
		raw, err := enc.DecodeString(seg)
		if err == nil {
			return raw, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("decode segment: %w", lastErr)
}

func decodeObject(seg string) (map[string]any, error) {
	raw, err := DecodeSegment(seg)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, fmt.Errorf("decode segment json: %w", err)
	}
	if obj == nil {
		return nil, errors.New("decode segment json: not an object")
	}
	return obj, nil
}
