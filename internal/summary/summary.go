// Package summary produces depth- and width-bounded structural summaries of
// JSON documents, so that very large or deeply nested telemetry files can be
// inspected without flooding the terminal.
package summary

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mikhailocampo/rift-rewind-hackathon/internal/errors"
	"github.com/mikhailocampo/rift-rewind-hackathon/internal/models"
)

// maxReprLen caps the textual representation of a primitive value.
const maxReprLen = 50

// Options bounds a summarization run.
type Options struct {
	// MaxDepth is the total recursion budget. Anything reached at this
	// depth degrades to a type-name marker, containers included.
	MaxDepth int

	// MaxArrayItems is the number of leading elements retained per array.
	// Elements beyond the cap collapse into a single omission marker.
	MaxArrayItems int
}

// DefaultOptions returns the bounds used by the exploration reports.
func DefaultOptions() Options {
	return Options{MaxDepth: 3, MaxArrayItems: 2}
}

// Validate reports whether the options are inside the contract.
func (o Options) Validate() error {
	if o.MaxDepth < 0 {
		return errors.NewSummaryError(
			fmt.Sprintf("max depth must be non-negative, got %d", o.MaxDepth),
			errors.ErrInvalidOptions,
		)
	}
	if o.MaxArrayItems < 0 {
		return errors.NewSummaryError(
			fmt.Sprintf("max array items must be non-negative, got %d", o.MaxArrayItems),
			errors.ErrInvalidOptions,
		)
	}
	return nil
}

// Summarize converts v into a bounded summary tree. Objects keep every key
// in order, arrays keep at most opts.MaxArrayItems elements plus an omission
// marker, and primitives become "<type>: <repr>" descriptor strings. The
// result is itself a models.JSONValue, so it renders with Render or any JSON
// encoder.
func Summarize(v models.JSONValue, opts Options) (models.JSONValue, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return summarize(v, opts.MaxDepth, 0, opts.MaxArrayItems), nil
}

// summarize walks v with an explicit depth counter. The depth check runs
// before shape inspection, so an empty container sitting exactly at the
// budget degrades to a marker like everything else.
func summarize(v models.JSONValue, maxDepth, depth, maxItems int) models.JSONValue {
	if depth >= maxDepth {
		return fmt.Sprintf("<depth_limit_reached: %s>", TypeName(v))
	}

	switch val := v.(type) {
	case *models.JSONObject:
		out := models.NewObject()
		for _, m := range val.Members() {
			out.Set(m.Key, summarize(m.Value, maxDepth, depth+1, maxItems))
		}
		return out
	case models.JSONArray:
		if len(val) == 0 {
			return models.JSONArray{}
		}
		keep := maxItems
		if keep > len(val) {
			keep = len(val)
		}
		out := make(models.JSONArray, 0, keep+1)
		for _, item := range val[:keep] {
			out = append(out, summarize(item, maxDepth, depth+1, maxItems))
		}
		if len(val) > maxItems {
			out = append(out, fmt.Sprintf("<...%d more items>", len(val)-maxItems))
		}
		return out
	default:
		return describePrimitive(v)
	}
}

// TypeName names a value within the JSON domain: str, int, float, bool,
// null, object, or array. json.Number is split on whether it parses as an
// integer.
func TypeName(v models.JSONValue) string {
	switch n := v.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case string:
		return "str"
	case json.Number:
		if _, err := n.Int64(); err == nil {
			return "int"
		}
		return "float"
	case models.JSONArray:
		return "array"
	case *models.JSONObject:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// describePrimitive renders a primitive as "<type>: <repr>" with the repr
// truncated to maxReprLen characters. The type-name prefix is never cut.
func describePrimitive(v models.JSONValue) string {
	var repr string
	switch val := v.(type) {
	case nil:
		repr = "null"
	case bool:
		repr = strconv.FormatBool(val)
	case string:
		repr = "'" + val + "'"
	case json.Number:
		repr = val.String()
	default:
		repr = fmt.Sprintf("%v", v)
	}
	if runes := []rune(repr); len(runes) > maxReprLen {
		repr = string(runes[:maxReprLen])
	}
	return TypeName(v) + ": " + repr
}

// Render serializes a summary (or any value in the model domain) as
// two-space indented JSON. Object key order is preserved and marker strings
// are not HTML-escaped.
func Render(v models.JSONValue) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", errors.NewOutputError("failed to render summary", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
