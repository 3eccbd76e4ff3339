package util

import (
	"html/template"
	"log/slog"
	"net/url"
	"os"
	"sort"
	"strconv"
	"strings"
)

// =============================================================================
// Template Compilation Helpers
// =============================================================================

// MustCompileTemplate compiles a template with the given name and content.
// Panics with a fatal error if compilation fails.
// This is used during initialization when template failures are unrecoverable.
func MustCompileTemplate(name string, funcs template.FuncMap, content string) *template.Template {
	t, err := template.New(name).Funcs(funcs).Parse(content)
	if err != nil {
		slog.Error("failed to compile template", "template", name, "error", err)
		os.Exit(1)
	}
	return t
}

// =============================================================================
// URL Building Helpers
// =============================================================================

// URLParamOrder defines the canonical order for URL query parameters.
// Parameters are grouped semantically: resource -> filters -> pagination -> flags
var URLParamOrder = []string{
	// Resource
	"id", "ang", "source", "date",
	// Search filters
	"q", "type", "writer",
	// Pagination
	"offset",
	// UI flags
	"calendar", "highlight",
	// Redirect
	"return",
}

// BuildURL constructs a URL with query parameters in canonical order.
// Empty values are omitted. Parameters not in the canonical order are appended alphabetically.
func BuildURL(path string, params map[string]string) string {
	if len(params) == 0 {
		return path
	}

	var parts []string
	used := make(map[string]bool, len(params))

	for _, key := range URLParamOrder {
		if val, ok := params[key]; ok && val != "" {
			parts = append(parts, url.QueryEscape(key)+"="+url.QueryEscape(val))
			used[key] = true
		}
	}

	var remaining []string
	for key := range params {
		if !used[key] && params[key] != "" {
			remaining = append(remaining, key)
		}
	}
	sort.Strings(remaining)
	for _, key := range remaining {
		parts = append(parts, url.QueryEscape(key)+"="+url.QueryEscape(params[key]))
	}

	if len(parts) == 0 {
		return path
	}
	return path + "?" + strings.Join(parts, "&")
}

// =============================================================================
// Query Parsing Helpers
// =============================================================================

// ParseOptionalInt parses s as an int. ok is false when s is empty or not numeric.
func ParseOptionalInt(s string) (n int, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseIntDefault parses s as an int, returning def when it is empty or invalid
func ParseIntDefault(s string, def int) int {
	if n, ok := ParseOptionalInt(s); ok {
		return n
	}
	return def
}

// SplitList splits a comma-separated list, trimming and dropping empty items
func SplitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// =============================================================================
// Slice Utilities
// =============================================================================

// Contains reports whether slice holds value
func Contains[T comparable](slice []T, value T) bool {
	for _, v := range slice {
		if v == value {
			return true
		}
	}
	return false
}

// Sequence returns [1, 2, ..., n]; empty when n <= 0
func Sequence(n int) []int {
	if n <= 0 {
		return []int{}
	}
	seq := make([]int, n)
	for i := range seq {
		seq[i] = i + 1
	}
	return seq
}

// FilterSlice returns a new slice containing only elements that satisfy the predicate.
// The original slice is not modified.
func FilterSlice[T any](items []T, predicate func(T) bool) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if predicate(item) {
			result = append(result, item)
		}
	}
	return result
}
