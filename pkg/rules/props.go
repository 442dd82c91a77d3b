package rules

import (
	"encoding/json"
	"fmt"
)

// Props carries the tag-specific payload of a rule instance. The concrete
// variant is fully determined by the instance tag, and the sealed interface
// forces a type assertion or switch before any payload access, so code can
// never read a min/max pair off a regex rule by accident.
//
// A freshly constructed variant holds only unset sentinels (nil pointers, nil
// slices); defaults are never partially filled.
type Props interface {
	// Clone returns a deep copy so copy-on-write snapshots never share
	// pointer state with live instances.
	Clone() Props

	sealed()
}

// EmptyProps backs rules that carry no configuration (required, numeric,
// integer, json, url, alpha family, latitude, longitude).
type EmptyProps struct{}

// DateProps backs date comparison rules (after, after_or_equal).
type DateProps struct {
	Date *string `json:"date"`
}

// ValueProps backs single-threshold rules (min, max, min_file_size,
// max_file_size).
type ValueProps struct {
	Value *float64 `json:"value"`
}

// RangeProps backs the aggregate between rule.
type RangeProps struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

// ListProps backs membership rules (in, not_in, mimes).
type ListProps struct {
	Values []string `json:"values"`
}

// PatternProps backs the regex rule.
type PatternProps struct {
	Pattern *string `json:"pattern"`
}

// CompareProps backs cross-field rules (same, different). Field names the
// sibling field to compare against; the comparison itself runs in a
// whole-form pass with access to sibling values.
type CompareProps struct {
	Field *string `json:"comparevalue"`
}

// DimensionsProps backs the image dimensions rule.
type DimensionsProps struct {
	MinWidth  *int `json:"min_width"`
	MaxWidth  *int `json:"max_width"`
	MinHeight *int `json:"min_height"`
	MaxHeight *int `json:"max_height"`
}

func (EmptyProps) sealed()      {}
func (DateProps) sealed()       {}
func (ValueProps) sealed()      {}
func (RangeProps) sealed()      {}
func (ListProps) sealed()       {}
func (PatternProps) sealed()    {}
func (CompareProps) sealed()    {}
func (DimensionsProps) sealed() {}

func (p EmptyProps) Clone() Props { return p }

func (p DateProps) Clone() Props {
	return DateProps{Date: clonePtr(p.Date)}
}

func (p ValueProps) Clone() Props {
	return ValueProps{Value: clonePtr(p.Value)}
}

func (p RangeProps) Clone() Props {
	return RangeProps{Min: clonePtr(p.Min), Max: clonePtr(p.Max)}
}

func (p ListProps) Clone() Props {
	if p.Values == nil {
		return ListProps{}
	}
	return ListProps{Values: append([]string(nil), p.Values...)}
}

func (p PatternProps) Clone() Props {
	return PatternProps{Pattern: clonePtr(p.Pattern)}
}

func (p CompareProps) Clone() Props {
	return CompareProps{Field: clonePtr(p.Field)}
}

func (p DimensionsProps) Clone() Props {
	return DimensionsProps{
		MinWidth:  clonePtr(p.MinWidth),
		MaxWidth:  clonePtr(p.MaxWidth),
		MinHeight: clonePtr(p.MinHeight),
		MaxHeight: clonePtr(p.MaxHeight),
	}
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

// UnmarshalProps decodes a tag's props payload from JSON. The tag selects the
// variant, so callers hydrating saved payloads recover the exact shape the
// editor produced.
func UnmarshalProps(tag Tag, data []byte) (Props, error) {
	decode := func(dst any) error {
		if len(data) == 0 {
			return nil
		}
		return json.Unmarshal(data, dst)
	}

	switch PropsShape(tag) {
	case ShapeEmpty:
		return EmptyProps{}, nil
	case ShapeDate:
		var p DateProps
		if err := decode(&p); err != nil {
			return nil, fmt.Errorf("rules: decode props for %q: %w", tag, err)
		}
		return p, nil
	case ShapeValue:
		var p ValueProps
		if err := decode(&p); err != nil {
			return nil, fmt.Errorf("rules: decode props for %q: %w", tag, err)
		}
		return p, nil
	case ShapeRange:
		var p RangeProps
		if err := decode(&p); err != nil {
			return nil, fmt.Errorf("rules: decode props for %q: %w", tag, err)
		}
		return p, nil
	case ShapeList:
		var p ListProps
		if err := decode(&p); err != nil {
			return nil, fmt.Errorf("rules: decode props for %q: %w", tag, err)
		}
		return p, nil
	case ShapePattern:
		var p PatternProps
		if err := decode(&p); err != nil {
			return nil, fmt.Errorf("rules: decode props for %q: %w", tag, err)
		}
		return p, nil
	case ShapeCompare:
		var p CompareProps
		if err := decode(&p); err != nil {
			return nil, fmt.Errorf("rules: decode props for %q: %w", tag, err)
		}
		return p, nil
	case ShapeDimensions:
		var p DimensionsProps
		if err := decode(&p); err != nil {
			return nil, fmt.Errorf("rules: decode props for %q: %w", tag, err)
		}
		return p, nil
	default:
		return nil, fmt.Errorf("rules: unknown tag %q", tag)
	}
}

// Shape names the props variant a tag uses.
type Shape int

const (
	ShapeUnknown Shape = iota
	ShapeEmpty
	ShapeDate
	ShapeValue
	ShapeRange
	ShapeList
	ShapePattern
	ShapeCompare
	ShapeDimensions
)

// PropsShape reports which props variant belongs to a tag. ShapeUnknown marks
// tags this build does not know, which callers treat as a warn-and-skip case.
func PropsShape(tag Tag) Shape {
	switch tag {
	case TagRequired, TagNumeric, TagInteger, TagJSON, TagURL,
		TagAlpha, TagAlphaNum, TagAlphaDash, TagLatitude, TagLongitude:
		return ShapeEmpty
	case TagAfter, TagAfterOrEqual:
		return ShapeDate
	case TagMin, TagMax, TagMinFileSize, TagMaxFileSize:
		return ShapeValue
	case TagBetween:
		return ShapeRange
	case TagIn, TagNotIn, TagMimes:
		return ShapeList
	case TagRegex:
		return ShapePattern
	case TagSame, TagDifferent:
		return ShapeCompare
	case TagDimensions:
		return ShapeDimensions
	default:
		return ShapeUnknown
	}
}

// defaultProps returns the unset variant for a tag.
func defaultProps(tag Tag) Props {
	switch PropsShape(tag) {
	case ShapeDate:
		return DateProps{}
	case ShapeValue:
		return ValueProps{}
	case ShapeRange:
		return RangeProps{}
	case ShapeList:
		return ListProps{}
	case ShapePattern:
		return PatternProps{}
	case ShapeCompare:
		return CompareProps{}
	case ShapeDimensions:
		return DimensionsProps{}
	default:
		return EmptyProps{}
	}
}
