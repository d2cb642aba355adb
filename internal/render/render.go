package render

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/vk/dagforge/internal/ctxlog"
	"github.com/vk/dagforge/internal/taskgraph"
)

// Data is the full set of values a template can reference.
type Data struct {
	// DAGName is the identifier of the generated workflow.
	DAGName string

	// Schedule is the cron expression or @descriptor, possibly empty.
	Schedule string

	// Tasks is the ordered task-graph description.
	Tasks []taskgraph.Task
}

// templateFuncs are the helper functions available inside templates.
var templateFuncs = template.FuncMap{
	// pylist renders a string slice as a Python list literal.
	"pylist": func(items []string) string {
		var sb strings.Builder
		sb.WriteRune('[')
		for i, item := range items {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(fmt.Sprintf("%q", item))
		}
		sb.WriteRune(']')
		return sb.String()
	},

	// json serializes a value as a JSON string.
	"json": func(v any) string {
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("error: %v", err)
		}
		return string(b)
	},

	// join concatenates a string slice with a separator.
	"join": func(sep string, items []string) string {
		return strings.Join(items, sep)
	},

	// default returns the fallback when the value is empty.
	"default": func(def, val string) string {
		if val == "" {
			return def
		}
		return val
	},
}

// Render executes the template text against the data and returns the
// generated file content. Rendering the same data with the same template
// is byte-identical across runs.
func Render(ctx context.Context, tmplText string, data *Data) ([]byte, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Rendering task graph.", "dag_name", data.DAGName, "task_count", len(data.Tasks))

	tmpl, err := template.New("dagfile").Funcs(templateFuncs).Parse(tmplText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render template: %w", err)
	}

	logger.Debug("Rendering complete.", "bytes", buf.Len())
	return buf.Bytes(), nil
}
