// Package report renders the match, timeline, and challenges inspection
// reports used while designing the telemetry schema. Reports read an
// already-parsed document and write plain text to an io.Writer; they never
// perform I/O of their own.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mikhailocampo/rift-rewind-hackathon/internal/errors"
	"github.com/mikhailocampo/rift-rewind-hackathon/internal/models"
	"github.com/mikhailocampo/rift-rewind-hackathon/internal/summary"
)

const bannerWidth = 80

// structureOptions bounds the HIGH-LEVEL STRUCTURE section of each report.
// Telemetry files run to tens of megabytes, so the view stays shallow.
var structureOptions = summary.Options{MaxDepth: 2, MaxArrayItems: 1}

func banner(w io.Writer, title string) {
	line := strings.Repeat("=", bannerWidth)
	fmt.Fprintf(w, "\n%s\n%s\n%s\n\n", line, title, line)
}

func structureSection(w io.Writer, root models.JSONValue) error {
	sum, err := summary.Summarize(root, structureOptions)
	if err != nil {
		return err
	}
	out, err := summary.Render(sum)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "HIGH-LEVEL STRUCTURE:\n%s\n", out)
	return nil
}

// rootObject returns the document root as an object, or a report error when
// the root has some other shape.
func rootObject(doc models.Document) (*models.JSONObject, error) {
	obj, ok := doc.Root.(*models.JSONObject)
	if !ok {
		return nil, errors.NewReportError(
			fmt.Sprintf("document root is %s, want object", summary.TypeName(doc.Root)),
			errors.ErrMissingField,
		)
	}
	return obj, nil
}

func childObject(o *models.JSONObject, key string) (*models.JSONObject, bool) {
	v, ok := o.Get(key)
	if !ok {
		return nil, false
	}
	obj, ok := v.(*models.JSONObject)
	return obj, ok
}

func childArray(o *models.JSONObject, key string) (models.JSONArray, bool) {
	v, ok := o.Get(key)
	if !ok {
		return nil, false
	}
	arr, ok := v.(models.JSONArray)
	return arr, ok
}

func childNumber(o *models.JSONObject, key string) (json.Number, bool) {
	v, ok := o.Get(key)
	if !ok {
		return "", false
	}
	n, ok := v.(json.Number)
	return n, ok
}

// formatValue renders a value for a one-line report field.
func formatValue(v models.JSONValue) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case bool:
		return fmt.Sprintf("%t", val)
	case string:
		return val
	case json.Number:
		return val.String()
	case models.JSONArray:
		return fmt.Sprintf("<array: %d items>", len(val))
	case *models.JSONObject:
		out, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("<object: %d keys>", val.Len())
		}
		return string(out)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// keyList renders key names as "[a, b, c]".
func keyList(keys []string) string {
	return "[" + strings.Join(keys, ", ") + "]"
}

func firstN(keys []string, n int) []string {
	if len(keys) <= n {
		return keys
	}
	return keys[:n]
}

// printField prints "name: value" when the key exists; absent keys are
// silently skipped, matching the exploratory nature of the reports.
func printField(w io.Writer, indent string, o *models.JSONObject, key string) {
	v, ok := o.Get(key)
	if !ok {
		return
	}
	fmt.Fprintf(w, "%s%s: %s\n", indent, key, formatValue(v))
}
