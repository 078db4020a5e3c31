package report

import (
	"fmt"
	"io"

	"github.com/iancoleman/strcase"

	"github.com/mikhailocampo/rift-rewind-hackathon/internal/models"
	"github.com/mikhailocampo/rift-rewind-hackathon/internal/summary"
)

// SchemaHints prints a suggested snake_case column name and a JSON type
// name for each key of obj, as a starting point for table design.
func SchemaHints(w io.Writer, obj *models.JSONObject, label string) {
	if obj.Len() == 0 {
		return
	}
	fmt.Fprintf(w, "\nSCHEMA HINTS (%s):\n", label)
	for _, m := range obj.Members() {
		fmt.Fprintf(w, "  %-40s -> %-40s (%s)\n",
			m.Key, strcase.ToSnake(m.Key), summary.TypeName(m.Value))
	}
}
