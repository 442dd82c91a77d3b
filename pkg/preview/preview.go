// Package preview renders the configured rule rows to an HTML summary that
// surrounding pages can embed next to the editor. It follows the same row
// dispatch policy as the editor itself: one row per store entry, rows whose
// tag has no registry entry are skipped.
package preview

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-rulebuilder/pkg/builder"
	"github.com/goliatone/go-rulebuilder/pkg/catalog"
	"github.com/goliatone/go-rulebuilder/pkg/rules"
)

const templateName = "rules.html"

// Option customises renderer construction.
type Option func(*config)

type config struct {
	templates fs.FS
	catalog   *catalog.Catalog
}

// WithTemplates overrides the embedded template bundle.
func WithTemplates(fsys fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = fsys
	}
}

// WithCatalog supplies the catalog whose (already sanitized) descriptions
// annotate each row.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(cfg *config) {
		cfg.catalog = cat
	}
}

// Renderer turns builder rows into HTML.
type Renderer struct {
	tmpl    *pongo2.Template
	catalog *catalog.Catalog
}

// New constructs a Renderer using the embedded templates unless overridden.
func New(options ...Option) (*Renderer, error) {
	cfg := &config{templates: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	if cfg.templates == nil {
		return nil, errors.New("preview: template filesystem is nil")
	}

	set := pongo2.NewSet("rulebuilder", pongo2.NewFSLoader(cfg.templates))
	tmpl, err := set.FromFile(templateName)
	if err != nil {
		return nil, fmt.Errorf("preview: load template: %w", err)
	}

	return &Renderer{tmpl: tmpl, catalog: cfg.catalog}, nil
}

// Render produces the HTML summary for the provided rows.
func (r *Renderer) Render(rows []builder.Row) ([]byte, error) {
	if r == nil || r.tmpl == nil {
		return nil, errors.New("preview: renderer is not initialised")
	}

	view := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		entry := map[string]any{
			"tag":     string(row.Instance.Tag),
			"label":   row.Entry.Label,
			"enabled": row.Instance.Enabled,
			"summary": propsSummary(row.Instance.Props),
		}
		if r.catalog != nil {
			if def, ok := r.catalog.LookupID(row.Instance.DefinitionID); ok {
				entry["description"] = def.Description
			}
		}
		view = append(view, entry)
	}

	out, err := r.tmpl.ExecuteBytes(pongo2.Context{"rows": view})
	if err != nil {
		return nil, fmt.Errorf("preview: execute template: %w", err)
	}
	return out, nil
}

// propsSummary flattens a props payload into the short text shown beside the
// rule label. Unset payloads summarise to the empty string.
func propsSummary(props rules.Props) string {
	switch p := props.(type) {
	case rules.DateProps:
		if p.Date != nil {
			return *p.Date
		}
	case rules.ValueProps:
		if p.Value != nil {
			return formatFloat(*p.Value)
		}
	case rules.RangeProps:
		parts := make([]string, 0, 2)
		if p.Min != nil {
			parts = append(parts, "min "+formatFloat(*p.Min))
		}
		if p.Max != nil {
			parts = append(parts, "max "+formatFloat(*p.Max))
		}
		return strings.Join(parts, ", ")
	case rules.ListProps:
		return strings.Join(p.Values, ", ")
	case rules.PatternProps:
		if p.Pattern != nil {
			return *p.Pattern
		}
	case rules.CompareProps:
		if p.Field != nil {
			return *p.Field
		}
	case rules.DimensionsProps:
		var parts []string
		if p.MinWidth != nil {
			parts = append(parts, fmt.Sprintf("width ≥ %d", *p.MinWidth))
		}
		if p.MaxWidth != nil {
			parts = append(parts, fmt.Sprintf("width ≤ %d", *p.MaxWidth))
		}
		if p.MinHeight != nil {
			parts = append(parts, fmt.Sprintf("height ≥ %d", *p.MinHeight))
		}
		if p.MaxHeight != nil {
			parts = append(parts, fmt.Sprintf("height ≤ %d", *p.MaxHeight))
		}
		return strings.Join(parts, ", ")
	}
	return ""
}

func formatFloat(num float64) string {
	return strconv.FormatFloat(num, 'f', -1, 64)
}
