package fakeapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Wang-tianhao/dummyjson-apitest-go/dummyjson"
)

const defaultLimit = 30

func respondMessage(c *gin.Context, status int, format string, args ...any) {
	c.AbortWithStatusJSON(status, gin.H{"message": fmt.Sprintf(format, args...)})
}

func notFound(c *gin.Context, resource, id string) {
	respondMessage(c, http.StatusNotFound, "%s with id '%s' not found", resource, id)
}

// paginate applies the limit and skip query parameters. limit=0 returns
// everything after skip. Invalid values answer 400 and report false.
func paginate[T any](c *gin.Context, items []T) ([]T, dummyjson.ListMeta, bool) {
	limit, ok := queryInt(c, "limit", defaultLimit)
	if !ok {
		return nil, dummyjson.ListMeta{}, false
	}
	skip, ok := queryInt(c, "skip", 0)
	if !ok {
		return nil, dummyjson.ListMeta{}, false
	}

	total := len(items)
	start := min(skip, total)
	end := total
	if limit > 0 {
		end = min(start+limit, total)
	}
	page := items[start:end]
	if page == nil {
		page = []T{}
	}
	return page, dummyjson.ListMeta{Total: total, Skip: skip, Limit: len(page)}, true
}

func queryInt(c *gin.Context, key string, def int) (int, bool) {
	raw, present := c.GetQuery(key)
	if !present || raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		respondMessage(c, http.StatusBadRequest, "Invalid %s '%s'", key, raw)
		return 0, false
	}
	return v, true
}

// itemByID resolves the :id parameter against items, whose ids are 1-based
// positions. It answers 400 for non-numeric ids and 404 for unknown ones.
func itemByID[T any](c *gin.Context, resource string, items []T) (T, int, bool) {
	var zero T
	raw := c.Param("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid %s id '%s'", strings.ToLower(resource), raw)
		return zero, 0, false
	}
	if id < 1 || id > len(items) {
		notFound(c, resource, raw)
		return zero, 0, false
	}
	return items[id-1], id, true
}

// filter returns the items keep accepts, never nil.
func filter[T any](items []T, keep func(T) bool) []T {
	out := []T{}
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func anyFold(values []string, want string) bool {
	for _, v := range values {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}

// merge overlays the non-empty JSON fields of patch, then extra, onto base.
func merge[T any](base T, patch any, extra map[string]any) (T, error) {
	var out T
	fields, err := toMap(base)
	if err != nil {
		return out, err
	}
	if patch != nil {
		overlay, err := toMap(patch)
		if err != nil {
			return out, err
		}
		for k, v := range overlay {
			fields[k] = v
		}
	}
	for k, v := range extra {
		fields[k] = v
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return out, fmt.Errorf("encode merged fields: %w", err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode merged fields: %w", err)
	}
	return out, nil
}

func toMap(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode %T: %w", v, err)
	}
	m := map[string]any{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode %T: %w", v, err)
	}
	return m, nil
}

// bindBody decodes the JSON body into in. An empty body leaves in untouched.
func bindBody(c *gin.Context, in any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(in); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body: %v", err)
		return false
	}
	return true
}

// writeMerged answers with merge(base, patch, extra) or 500.
func writeMerged[T any](c *gin.Context, status int, base T, patch any, extra map[string]any) {
	out, err := merge(base, patch, extra)
	if err != nil {
		respondMessage(c, http.StatusInternalServerError, "%v", err)
		return
	}
	c.JSON(status, out)
}
