package rules

// Tag identifies a validation rule kind. Tag values are shared verbatim with
// the backend rule catalog; string equality against a catalog definition's
// name is the join key, so they must never be renamed independently.
type Tag string

const (
	TagAfter        Tag = "after"
	TagAfterOrEqual Tag = "after_or_equal"
	TagRequired     Tag = "required"
	TagMin          Tag = "min"
	TagMax          Tag = "max"
	TagRegex        Tag = "regex"
	TagIn           Tag = "in"
	TagNotIn        Tag = "not_in"
	TagNumeric      Tag = "numeric"
	TagInteger      Tag = "integer"
	TagBetween      Tag = "between"
	TagSame         Tag = "same"
	TagDifferent    Tag = "different"
	TagJSON         Tag = "json"
	TagURL          Tag = "url"
	TagAlpha        Tag = "alpha"
	TagAlphaNum     Tag = "alpha_num"
	TagAlphaDash    Tag = "alpha_dash"
	TagLatitude     Tag = "latitude"
	TagLongitude    Tag = "longitude"
	TagMinFileSize  Tag = "min_file_size"
	TagMaxFileSize  Tag = "max_file_size"
	TagDimensions   Tag = "dimensions"
	TagMimes        Tag = "mimes"
)

// Tags lists every tag known to this build, in catalog display order.
func Tags() []Tag {
	return []Tag{
		TagAfter, TagAfterOrEqual, TagRequired, TagMin, TagMax, TagRegex,
		TagIn, TagNotIn, TagNumeric, TagInteger, TagBetween, TagSame,
		TagDifferent, TagJSON, TagURL, TagAlpha, TagAlphaNum, TagAlphaDash,
		TagLatitude, TagLongitude, TagMinFileSize, TagMaxFileSize,
		TagDimensions, TagMimes,
	}
}
