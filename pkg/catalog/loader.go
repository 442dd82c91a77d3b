package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const defaultRequestTimeout = 15 * time.Second

// LoadFS walks the provided filesystem and parses every JSON/YAML catalog
// file into a single catalog. When fsys is nil or no catalog files are
// present, the returned catalog is empty.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	var definitions []Definition
	if fsys == nil {
		return New(), nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		if !isCatalogFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("catalog: read %s: %w", path, err)
		}

		defs, err := parseDocument(data, path)
		if err != nil {
			return err
		}
		definitions = append(definitions, defs...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return New(definitions...), nil
}

// LoadFile parses a single catalog file from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	defs, err := parseDocument(data, path)
	if err != nil {
		return nil, err
	}
	return New(defs...), nil
}

// LoadURL fetches a catalog document over HTTP. A nil client gets a default
// with a request timeout applied.
func LoadURL(ctx context.Context, client *http.Client, url string) (*Catalog, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if client == nil {
		client = &http.Client{Timeout: defaultRequestTimeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("catalog: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog: fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("catalog: read response: %w", err)
	}

	defs, err := parseDocument(data, url)
	if err != nil {
		return nil, err
	}
	return New(defs...), nil
}

// documentFile accepts both the wrapped and the bare-array catalog layouts.
type documentFile struct {
	Rules []Definition `json:"rules" yaml:"rules"`
}

func parseDocument(data []byte, source string) ([]Definition, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("catalog: file %s is empty", source)
	}

	var bare []Definition
	if err := json.Unmarshal(data, &bare); err == nil {
		return bare, nil
	}

	var doc documentFile
	if err := json.Unmarshal(data, &doc); err == nil && doc.Rules != nil {
		return doc.Rules, nil
	}

	if err := yaml.Unmarshal(data, &bare); err == nil && bare != nil {
		return bare, nil
	}
	if err := yaml.Unmarshal(data, &doc); err == nil && doc.Rules != nil {
		return doc.Rules, nil
	}

	return nil, fmt.Errorf("catalog: parse %s: invalid JSON or YAML", source)
}

func isCatalogFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
