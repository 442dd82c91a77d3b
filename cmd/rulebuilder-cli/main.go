package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-rulebuilder/pkg/builder"
	"github.com/goliatone/go-rulebuilder/pkg/catalog"
	"github.com/goliatone/go-rulebuilder/pkg/payload"
	"github.com/goliatone/go-rulebuilder/pkg/preview"
	"github.com/goliatone/go-rulebuilder/pkg/rules"
)

func main() {
	source := flag.String("catalog", "rules.json", "catalog file path or URL")
	openapi := flag.Bool("openapi", false, "treat the catalog source as an OpenAPI document carrying x-validation-rules")
	output := flag.String("output", "", "save payload output file (stdout if empty)")
	htmlPreview := flag.String("preview", "", "optional HTML preview output file")
	verbose := flag.Bool("verbose", false, "log registry/catalog warnings to stderr")
	flag.Parse()

	logger := zerolog.Nop()
	if *verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	cat, err := loadCatalog(context.Background(), *source, *openapi)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	b := builder.New(builder.WithCatalog(cat), builder.WithLogger(logger))
	if len(b.Available()) == 0 {
		log.Fatalf("Catalog %q offers no rules this build understands", *source)
	}

	if err := runSession(b); err != nil {
		log.Fatalf("Session failed: %v", err)
	}

	codec := payload.Codec{Catalog: cat, Registry: b.Registry(), Log: logger}
	data, err := codec.Encode(b.Store().Snapshot())
	if err != nil {
		log.Fatalf("Failed to build save payload: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, data, 0o644); err != nil {
			log.Fatalf("Failed to write payload: %v", err)
		}
		fmt.Printf("Payload written to %s\n", *output)
	} else {
		fmt.Println(string(data))
	}

	if *htmlPreview != "" {
		renderer, err := preview.New(preview.WithCatalog(cat))
		if err != nil {
			log.Fatalf("Failed to build preview renderer: %v", err)
		}
		html, err := renderer.Render(b.Rows())
		if err != nil {
			log.Fatalf("Failed to render preview: %v", err)
		}
		if err := os.WriteFile(*htmlPreview, html, 0o644); err != nil {
			log.Fatalf("Failed to write preview: %v", err)
		}
		fmt.Printf("Preview written to %s\n", *htmlPreview)
	}
}

func loadCatalog(ctx context.Context, source string, openapi bool) (*catalog.Catalog, error) {
	if openapi {
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, err
		}
		return catalog.ExtractOpenAPI(ctx, data)
	}
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return catalog.LoadURL(ctx, nil, source)
	}
	return catalog.LoadFile(source)
}

func runSession(b *builder.Builder) error {
	for {
		action := ""
		prompt := &survey.Select{
			Message: "Rule builder",
			Options: []string{"add", "toggle", "remove", "list", "done"},
			Default: "add",
		}
		if err := survey.AskOne(prompt, &action); err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				return nil
			}
			return err
		}

		switch action {
		case "add":
			if err := addRule(b); err != nil {
				return err
			}
		case "toggle":
			if err := pickRow(b, "Toggle which rule?", func(row builder.Row) {
				b.Binding(row.Instance.ID).SetEnabled(!row.Instance.Enabled)
			}); err != nil {
				return err
			}
		case "remove":
			if err := pickRow(b, "Remove which rule?", func(row builder.Row) {
				b.Store().Remove(row.Instance.ID)
			}); err != nil {
				return err
			}
		case "list":
			for _, row := range b.Rows() {
				state := "off"
				if row.Instance.Enabled {
					state = "on"
				}
				fmt.Printf("  [%s] %s (%s)\n", state, row.Entry.Label, row.Instance.Tag)
			}
		case "done":
			return nil
		}
	}
}

func addRule(b *builder.Builder) error {
	available := b.Available()
	options := make([]string, 0, len(available))
	for _, def := range available {
		options = append(options, def.Name)
	}

	name := ""
	if err := survey.AskOne(&survey.Select{Message: "Add which rule?", Options: options}, &name); err != nil {
		return err
	}

	id, ok := b.AddByName(name)
	if !ok {
		// Version skew: warned upstream, selection state untouched.
		return nil
	}

	props, err := promptProps(rules.Tag(name))
	if err != nil {
		return err
	}
	if props != nil {
		b.Binding(id).Patch(rules.WithProps(props))
	}

	enable := true
	if err := survey.AskOne(&survey.Confirm{Message: "Enable this rule now?", Default: true}, &enable); err != nil {
		return err
	}
	b.Binding(id).SetEnabled(enable)
	return nil
}

func pickRow(b *builder.Builder, message string, apply func(builder.Row)) error {
	rows := b.Rows()
	if len(rows) == 0 {
		fmt.Println("  no rules configured")
		return nil
	}

	options := make([]string, 0, len(rows))
	for _, row := range rows {
		options = append(options, fmt.Sprintf("%s (%s)", row.Entry.Label, row.Instance.ID))
	}

	choice := ""
	if err := survey.AskOne(&survey.Select{Message: message, Options: options}, &choice); err != nil {
		return err
	}
	idx := indexOf(options, choice)
	if idx < 0 {
		return nil
	}
	apply(rows[idx])
	return nil
}

func indexOf(options []string, target string) int {
	for idx, option := range options {
		if option == target {
			return idx
		}
	}
	return -1
}

// promptProps collects the tag-specific payload. Returning nil keeps the
// unset defaults.
func promptProps(tag rules.Tag) (rules.Props, error) {
	switch rules.PropsShape(tag) {
	case rules.ShapeDate:
		text, err := askText("Date (YYYY-MM-DD):")
		if err != nil || text == "" {
			return nil, err
		}
		return rules.DateProps{Date: &text}, nil
	case rules.ShapeValue:
		num, ok, err := askNumber("Value:")
		if err != nil || !ok {
			return nil, err
		}
		return rules.ValueProps{Value: &num}, nil
	case rules.ShapeRange:
		props := rules.RangeProps{}
		if num, ok, err := askNumber("Minimum:"); err != nil {
			return nil, err
		} else if ok {
			props.Min = &num
		}
		if num, ok, err := askNumber("Maximum:"); err != nil {
			return nil, err
		} else if ok {
			props.Max = &num
		}
		if props.Min == nil && props.Max == nil {
			return nil, nil
		}
		return props, nil
	case rules.ShapeList:
		text, err := askText("Values (comma separated):")
		if err != nil || text == "" {
			return nil, err
		}
		parts := strings.Split(text, ",")
		values := make([]string, 0, len(parts))
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				values = append(values, trimmed)
			}
		}
		if len(values) == 0 {
			return nil, nil
		}
		return rules.ListProps{Values: values}, nil
	case rules.ShapePattern:
		text, err := askText("Pattern:")
		if err != nil || text == "" {
			return nil, err
		}
		return rules.PatternProps{Pattern: &text}, nil
	case rules.ShapeCompare:
		text, err := askText("Compare against field:")
		if err != nil || text == "" {
			return nil, err
		}
		return rules.CompareProps{Field: &text}, nil
	case rules.ShapeDimensions:
		props := rules.DimensionsProps{}
		bindings := []struct {
			message string
			target  **int
		}{
			{"Minimum width (px):", &props.MinWidth},
			{"Maximum width (px):", &props.MaxWidth},
			{"Minimum height (px):", &props.MinHeight},
			{"Maximum height (px):", &props.MaxHeight},
		}
		touched := false
		for _, binding := range bindings {
			num, ok, err := askNumber(binding.message)
			if err != nil {
				return nil, err
			}
			if ok {
				value := int(num)
				*binding.target = &value
				touched = true
			}
		}
		if !touched {
			return nil, nil
		}
		return props, nil
	default:
		return nil, nil
	}
}

func askText(message string) (string, error) {
	out := ""
	if err := survey.AskOne(&survey.Input{Message: message}, &out); err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func askNumber(message string) (float64, bool, error) {
	validator := func(ans interface{}) error {
		text, _ := ans.(string)
		if strings.TrimSpace(text) == "" {
			return nil
		}
		if _, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err != nil {
			return fmt.Errorf("%q is not a number", text)
		}
		return nil
	}

	out := ""
	if err := survey.AskOne(&survey.Input{Message: message}, &out, survey.WithValidator(validator)); err != nil {
		return 0, false, err
	}
	trimmed := strings.TrimSpace(out)
	if trimmed == "" {
		return 0, false, nil
	}
	num, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, false, err
	}
	return num, true, nil
}
