package dummyjson

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/Wang-tianhao/dummyjson-apitest-go/tokenfault"
)

// RequestOption adjusts a single outgoing request.
type RequestOption func(*http.Request)

// Bearer sends token in the Authorization header as is, even when empty.
func Bearer(token string) RequestOption {
	return func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	}
}

// BearerSpecimen sends a generated credential. A null specimen is sent as
// the literal "Bearer null"; an undefined one omits the header.
func BearerSpecimen(s tokenfault.Specimen) RequestOption {
	return func(r *http.Request) {
		if s.IsUndefined() {
			r.Header.Del("Authorization")
			return
		}
		r.Header.Set("Authorization", "Bearer "+s.String())
	}
}

// Query merges values into the request's query string.
func Query(values url.Values) RequestOption {
	return func(r *http.Request) {
		q := r.URL.Query()
		for key, vs := range values {
			for _, v := range vs {
				q.Add(key, v)
			}
		}
		r.URL.RawQuery = q.Encode()
	}
}

// Page sets the limit and skip list parameters. Negative values are left
// out.
func Page(limit, skip int) RequestOption {
	values := url.Values{}
	if limit >= 0 {
		values.Set("limit", strconv.Itoa(limit))
	}
	if skip >= 0 {
		values.Set("skip", strconv.Itoa(skip))
	}
	return Query(values)
}

// Cookie attaches a cookie.
func Cookie(name, value string) RequestOption {
	return func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: name, Value: value})
	}
}

// Header sets an arbitrary header.
func Header(key, value string) RequestOption {
	return func(r *http.Request) {
		r.Header.Set(key, value)
	}
}
