package validate

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-rulebuilder/pkg/rules"
)

// FileMeta describes an uploaded file as the host's upload layer reports it.
// Width and Height are zero for non-image uploads.
type FileMeta struct {
	Name     string
	SizeKB   float64
	MimeType string
	Width    int
	Height   int
}

// File builds a validator for an upload field from its declared rules.
// min_file_size and max_file_size thresholds are in kilobytes, mimes lists
// acceptable types or extensions, and dimensions constrains image pixel
// sizes. Values are *FileMeta; nil means no file was selected.
func File(field Field) Validator {
	label := field.DisplayLabel()
	required := field.Has(rules.TagRequired)

	var minSize, maxSize *float64
	var dims *rules.DimensionsProps
	var mimes []string
	for _, r := range field.Rules {
		switch r.Tag {
		case rules.TagMinFileSize:
			if props, ok := r.Props.(rules.ValueProps); ok && props.Value != nil {
				minSize = clonePtr(props.Value)
			}
		case rules.TagMaxFileSize:
			if props, ok := r.Props.(rules.ValueProps); ok && props.Value != nil {
				maxSize = clonePtr(props.Value)
			}
		case rules.TagDimensions:
			if props, ok := r.Props.(rules.DimensionsProps); ok {
				clone := props.Clone().(rules.DimensionsProps)
				dims = &clone
			}
		case rules.TagMimes:
			if props, ok := r.Props.(rules.ListProps); ok && len(props.Values) > 0 {
				mimes = props.Values
			}
		}
	}

	return func(value any) Result {
		meta, present := coerceFile(value)
		if !present {
			if required {
				return fail(fmt.Sprintf("%s is required", label))
			}
			return ok()
		}

		if minSize != nil && meta.SizeKB < *minSize {
			return fail(fmt.Sprintf("%s must be at least %s KB", label, formatNumber(*minSize)))
		}
		if maxSize != nil && meta.SizeKB > *maxSize {
			return fail(fmt.Sprintf("%s must be at most %s KB", label, formatNumber(*maxSize)))
		}
		if len(mimes) > 0 && !matchesMime(meta, mimes) {
			return fail(fmt.Sprintf("%s must be one of the following types: %s", label, strings.Join(mimes, ", ")))
		}
		if dims != nil {
			if msg := checkDimensions(label, meta, *dims); msg != "" {
				return fail(msg)
			}
		}
		return ok()
	}
}

func coerceFile(value any) (FileMeta, bool) {
	switch v := value.(type) {
	case nil:
		return FileMeta{}, false
	case FileMeta:
		return v, true
	case *FileMeta:
		if v == nil {
			return FileMeta{}, false
		}
		return *v, true
	default:
		return FileMeta{}, false
	}
}

func matchesMime(meta FileMeta, mimes []string) bool {
	mimeType := strings.ToLower(meta.MimeType)
	ext := strings.ToLower(strings.TrimPrefix(extension(meta.Name), "."))
	for _, candidate := range mimes {
		want := strings.ToLower(strings.TrimSpace(candidate))
		if want == "" {
			continue
		}
		if want == mimeType || strings.TrimPrefix(want, ".") == ext {
			return true
		}
	}
	return false
}

func extension(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return ""
	}
	return name[idx:]
}

func checkDimensions(label string, meta FileMeta, dims rules.DimensionsProps) string {
	if dims.MinWidth != nil && meta.Width < *dims.MinWidth {
		return fmt.Sprintf("%s must be at least %d pixels wide", label, *dims.MinWidth)
	}
	if dims.MaxWidth != nil && meta.Width > *dims.MaxWidth {
		return fmt.Sprintf("%s must be at most %d pixels wide", label, *dims.MaxWidth)
	}
	if dims.MinHeight != nil && meta.Height < *dims.MinHeight {
		return fmt.Sprintf("%s must be at least %d pixels tall", label, *dims.MinHeight)
	}
	if dims.MaxHeight != nil && meta.Height > *dims.MaxHeight {
		return fmt.Sprintf("%s must be at most %d pixels tall", label, *dims.MaxHeight)
	}
	return ""
}
