package scenario

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/*.yaml
var defaultFiles embed.FS

// Parse decodes YAML content holding one or more scenarios. Each YAML
// document may be a single scenario or a list of scenarios. Every scenario
// is validated.
func Parse(ctx context.Context, content []byte) ([]Scenario, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(content))

	var out []Scenario
	for {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Join(ErrFailedToParseYAML, err)
		}
		if len(doc.Content) == 0 {
			continue
		}

		root := doc.Content[0]
		switch root.Kind {
		case yaml.SequenceNode:
			var list []Scenario
			if err := root.Decode(&list); err != nil {
				return nil, errors.Join(ErrFailedToParseYAML, err)
			}
			out = append(out, list...)
		case yaml.MappingNode:
			var sc Scenario
			if err := root.Decode(&sc); err != nil {
				return nil, errors.Join(ErrFailedToParseYAML, err)
			}
			out = append(out, sc)
		default:
			return nil, fmt.Errorf("%w: expected mapping or sequence at line %d", ErrInvalidScenario, root.Line)
		}
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no scenarios found", ErrInvalidScenario)
	}
	for _, sc := range out {
		if err := sc.Validate(); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// LoadFiles parses every file in order and concatenates the scenarios.
func LoadFiles(ctx context.Context, paths ...string) ([]Scenario, error) {
	var out []Scenario
	for _, p := range paths {
		content, err := os.ReadFile(p)
		if err != nil {
			return nil, errors.Join(ErrReadingFile, err)
		}
		scs, err := Parse(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		out = append(out, scs...)
	}
	return out, nil
}

// Defaults returns the built-in scenarios covering the LRU contract.
func Defaults(ctx context.Context) ([]Scenario, error) {
	paths, err := fs.Glob(defaultFiles, "defaults/*.yaml")
	if err != nil {
		return nil, err
	}

	var out []Scenario
	for _, p := range paths {
		content, err := defaultFiles.ReadFile(p)
		if err != nil {
			return nil, errors.Join(ErrReadingFile, err)
		}
		scs, err := Parse(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		out = append(out, scs...)
	}
	return out, nil
}
