package validate

import (
	"testing"

	"github.com/goliatone/go-rulebuilder/pkg/rules"
)

func TestFile_SizeBounds(t *testing.T) {
	validator := File(Field{
		Name: "avatar",
		Rules: []Rule{
			{Tag: rules.TagMinFileSize, Props: rules.ValueProps{Value: ptr(10.0)}},
			{Tag: rules.TagMaxFileSize, Props: rules.ValueProps{Value: ptr(1024.0)}},
		},
	})

	if res := validator(FileMeta{Name: "a.png", SizeKB: 512}); !res.Valid {
		t.Fatalf("512KB within bounds: %q", res.Error)
	}
	if res := validator(FileMeta{Name: "a.png", SizeKB: 4}); res.Valid {
		t.Fatal("4KB below minimum")
	}
	if res := validator(FileMeta{Name: "a.png", SizeKB: 2048}); res.Valid {
		t.Fatal("2MB above maximum")
	}
}

func TestFile_Mimes(t *testing.T) {
	validator := File(Field{
		Name: "document",
		Rules: []Rule{
			{Tag: rules.TagMimes, Props: rules.ListProps{Values: []string{"application/pdf", "docx"}}},
		},
	})

	if res := validator(FileMeta{Name: "cv.pdf", MimeType: "application/pdf"}); !res.Valid {
		t.Fatalf("pdf by mime type: %q", res.Error)
	}
	if res := validator(FileMeta{Name: "cv.DOCX", MimeType: "application/octet-stream"}); !res.Valid {
		t.Fatalf("docx by extension: %q", res.Error)
	}
	if res := validator(FileMeta{Name: "cv.exe", MimeType: "application/x-dosexec"}); res.Valid {
		t.Fatal("exe accepted")
	}
}

func TestFile_Dimensions(t *testing.T) {
	validator := File(Field{
		Name: "banner",
		Rules: []Rule{
			{Tag: rules.TagDimensions, Props: rules.DimensionsProps{
				MinWidth: ptr(640), MaxWidth: ptr(1920), MinHeight: ptr(200),
			}},
		},
	})

	if res := validator(FileMeta{Name: "b.png", Width: 1280, Height: 300}); !res.Valid {
		t.Fatalf("1280x300 within bounds: %q", res.Error)
	}
	if res := validator(FileMeta{Name: "b.png", Width: 320, Height: 300}); res.Valid {
		t.Fatal("too narrow")
	}
	if res := validator(FileMeta{Name: "b.png", Width: 1280, Height: 100}); res.Valid {
		t.Fatal("too short")
	}
}

func TestFile_RequiredAndAbsent(t *testing.T) {
	required := File(Field{Name: "upload", Rules: []Rule{requiredRule()}})
	if res := required(nil); res.Valid {
		t.Fatal("missing required file accepted")
	}

	optional := File(Field{Name: "upload", Rules: []Rule{
		{Tag: rules.TagMaxFileSize, Props: rules.ValueProps{Value: ptr(1.0)}},
	}})
	if res := optional(nil); !res.Valid {
		t.Fatalf("absent optional file failed: %q", res.Error)
	}
	var meta *FileMeta
	if res := optional(meta); !res.Valid {
		t.Fatalf("nil pointer treated as present: %q", res.Error)
	}
}

func TestDate_AfterChain(t *testing.T) {
	validator := Date(Field{
		Name: "ends_at",
		Rules: []Rule{
			{Tag: rules.TagAfter, Props: rules.DateProps{Date: ptr("2024-01-01")}},
		},
	})

	if res := validator("2024-06-01"); !res.Valid {
		t.Fatalf("later date rejected: %q", res.Error)
	}
	if res := validator("2024-01-01"); res.Valid {
		t.Fatal("after is strict; boundary must fail")
	}
	if res := validator("not a date"); res.Valid {
		t.Fatal("unparseable date accepted")
	}

	orEqual := Date(Field{
		Name: "starts_at",
		Rules: []Rule{
			{Tag: rules.TagAfterOrEqual, Props: rules.DateProps{Date: ptr("2024-01-01")}},
		},
	})
	if res := orEqual("2024-01-01"); !res.Valid {
		t.Fatalf("after_or_equal admits the boundary: %q", res.Error)
	}
	if res := orEqual("2023-12-31"); res.Valid {
		t.Fatal("earlier date accepted")
	}
}

func TestDate_UnsetRulePropSkipped(t *testing.T) {
	validator := Date(Field{
		Name: "due",
		Rules: []Rule{
			{Tag: rules.TagAfter, Props: rules.DateProps{}},
		},
	})
	if res := validator("2020-01-01"); !res.Valid {
		t.Fatalf("unset comparison date must not constrain: %q", res.Error)
	}
}
