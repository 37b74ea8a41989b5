// Package pattern extracts named fields from URL paths using colon-prefixed templates.
//
// A template such as "/:owner/:repo/:kind/:number" is compared segment by segment
// with an input path. Literal segments must be equal byte for byte, named segments
// capture the input segment verbatim. Templates may carry a query part
// ("/show_bug.cgi?id=:number"), in which case every templated query key must be
// present in the input.
package pattern

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

const (
	namedPrefix    = ":"
	querySeparator = "?"
	pairSeparator  = "&"
	keySeparator   = "="
)

// Fields holds the values captured by a template, keyed by placeholder name.
type Fields map[string]string

// Match compares input against template and returns the captured fields.
func Match(template, input string) (Fields, error) {
	templatePath, templateQuery, templateHasQuery := strings.Cut(template, querySeparator)
	inputPath, inputQuery, _ := strings.Cut(input, querySeparator)

	fields := make(Fields)
	if err := matchPath(templatePath, inputPath, fields); err != nil {
		return nil, err
	}

	if templateHasQuery {
		if err := matchQuery(templateQuery, inputQuery, fields); err != nil {
			return nil, err
		}
	}

	return fields, nil
}

// Decode matches input against template and decodes the captured fields into dst,
// which must be a pointer to a struct whose fields carry `pattern:"name"` tags.
// Every tagged field must be captured by the template.
func Decode(template, input string, dst interface{}) error {
	fields, err := Match(template, input)
	if err != nil {
		return err
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     dst,
		TagName:    "pattern",
		ErrorUnset: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(map[string]string(fields)); err != nil {
		return fmt.Errorf("%w: %w", ErrNoMatch, err)
	}

	return nil
}

func matchPath(template, input string, fields Fields) error {
	templateSegments := strings.Split(template, "/")
	inputSegments := strings.Split(input, "/")

	if len(templateSegments) != len(inputSegments) {
		return fmt.Errorf("%w: %q has %d segments, %q expects %d",
			ErrNoMatch, input, len(inputSegments), template, len(templateSegments))
	}

	for i, segment := range templateSegments {
		if err := matchSegment(segment, inputSegments[i], fields); err != nil {
			return err
		}
	}

	return nil
}

func matchQuery(template, input string, fields Fields) error {
	pairs := make(map[string]string)
	for _, pair := range strings.Split(input, pairSeparator) {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, keySeparator)
		if _, seen := pairs[key]; !seen {
			pairs[key] = value
		}
	}

	for _, pair := range strings.Split(template, pairSeparator) {
		key, value, _ := strings.Cut(pair, keySeparator)
		got, ok := pairs[key]
		if !ok {
			return fmt.Errorf("%w: missing query key %q", ErrNoMatch, key)
		}
		if err := matchSegment(value, got, fields); err != nil {
			return err
		}
	}

	return nil
}

func matchSegment(template, input string, fields Fields) error {
	if name, ok := strings.CutPrefix(template, namedPrefix); ok && name != "" {
		if input == "" {
			return fmt.Errorf("%w: empty value for %q", ErrNoMatch, name)
		}
		fields[name] = input
		return nil
	}

	if template != input {
		return fmt.Errorf("%w: expected %q, got %q", ErrNoMatch, template, input)
	}

	return nil
}
