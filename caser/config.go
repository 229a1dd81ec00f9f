package caser

import (
	"errors"
	"fmt"
	"io"

	"go.yaml.in/yaml/v4"
)

// ErrConfig indicates an invalid case definition file.
var ErrConfig = errors.New("case config error")

// caseFile is the YAML schema for custom case definitions:
//
//	cases:
//	  toggle-phrase:
//	    boundaries: [space, underscore]
//	    pattern: toggle
//	    delimiter: " "
type caseFile struct {
	Cases map[string]caseDef `yaml:"cases"`
}

type caseDef struct {
	Boundaries []string `yaml:"boundaries"`
	Pattern    string   `yaml:"pattern"`
	Delimiter  string   `yaml:"delimiter"`
}

// LoadOption configures LoadCases.
type LoadOption func(*loadOptions)

type loadOptions struct {
	logger Logger
}

// WithLogger sets the logger used while loading case definitions.
// The default is NopLogger.
func WithLogger(logger Logger) LoadOption {
	return func(o *loadOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// LoadCases reads custom case definitions from YAML. Definition names do not
// collide with built-ins: the returned map is standalone, and callers decide
// how to merge it. An empty delimiter is valid and produces flat-style output.
//
// Errors unwrap to ErrConfig, ErrUnknownPattern, or ErrUnknownBoundary. The
// "random" pattern name resolves only in builds with the random tag.
func LoadCases(r io.Reader, opts ...LoadOption) (map[string]Case, error) {
	options := loadOptions{logger: NopLogger{}}
	for _, opt := range opts {
		opt(&options)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	var file caseFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if len(file.Cases) == 0 {
		return nil, fmt.Errorf("%w: no cases defined", ErrConfig)
	}

	loaded := make(map[string]Case, len(file.Cases))
	for name, def := range file.Cases {
		pattern, err := ParsePattern(def.Pattern)
		if err != nil {
			return nil, fmt.Errorf("case %q: %w", name, err)
		}

		boundaries := make([]Boundary, 0, len(def.Boundaries))
		for _, bn := range def.Boundaries {
			b, err := ParseBoundary(bn)
			if err != nil {
				return nil, fmt.Errorf("case %q: %w", name, err)
			}
			boundaries = append(boundaries, b)
		}

		loaded[name] = Case{
			Boundaries: boundaries,
			Pattern:    pattern,
			Delimiter:  def.Delimiter,
		}
		options.logger.Debug("loaded case definition",
			"name", name,
			"pattern", def.Pattern,
			"boundaries", def.Boundaries,
			"delimiter", def.Delimiter)
	}

	return loaded, nil
}
