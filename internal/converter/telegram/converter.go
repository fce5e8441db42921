package converter

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/you-humble/garage-ops/internal/model"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var templates = template.Must(
	template.New("events").
		Funcs(template.FuncMap{"join": join}).
		ParseFS(templatesFS, "templates/*.tmpl"),
)

type telegramConverter struct{}

func NewTelegramConverter() *telegramConverter { return &telegramConverter{} }

// BuildMessage renders the template named after the event type.
func (c *telegramConverter) BuildMessage(event model.Event) (string, error) {
	tmpl := templates.Lookup(string(event.Type) + ".tmpl")
	if tmpl == nil {
		return "", fmt.Errorf("%w: %q", model.ErrUnknownEventType, event.Type)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, event); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// join accepts both []string and the []any produced by JSON decoding.
func join(v any) string {
	switch list := v.(type) {
	case []string:
		return strings.Join(list, ", ")
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			out = append(out, fmt.Sprint(item))
		}
		return strings.Join(out, ", ")
	default:
		return fmt.Sprint(v)
	}
}
