package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/lerenn/issue-state/pkg/issue"
	"github.com/lerenn/issue-state/pkg/resolver"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

var stateColors = map[issue.State]*color.Color{
	issue.StateOpen:   color.New(color.FgGreen, color.Bold),
	issue.StateClosed: color.New(color.FgRed),
	issue.StateMerged: color.New(color.FgMagenta, color.Bold),
	issue.StateDraft:  color.New(color.FgYellow),
}

// Record is the serialized form of a result.
type Record struct {
	URL   string `json:"url" yaml:"url"`
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	State string `json:"state,omitempty" yaml:"state,omitempty"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewRecord converts a result into a record.
func NewRecord(result resolver.Result) Record {
	if result.Err != nil {
		return Record{URL: result.URL, Error: result.Err.Error()}
	}
	return Record{URL: result.URL, Title: result.Info.Title, State: result.Info.State.String()}
}

// WriteResults prints results in the given format. Successful results go to
// out and, in text format, failures go to errOut.
func WriteResults(out, errOut io.Writer, format string, results []resolver.Result) error {
	switch format {
	case OutputText:
		return writeText(out, errOut, results)
	case OutputJSON, OutputYAML:
		records := make([]Record, 0, len(results))
		for _, result := range results {
			records = append(records, NewRecord(result))
		}
		return writeStructured(out, format, records)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOutput, format)
	}
}

func writeText(out, errOut io.Writer, results []resolver.Result) error {
	for _, result := range results {
		if result.Err != nil {
			if _, err := fmt.Fprintf(errOut, "error\t%s\t%v\n", result.URL, result.Err); err != nil {
				return err
			}
			continue
		}

		state := result.Info.State.String()
		if c, ok := stateColors[result.Info.State]; ok {
			state = c.Sprint(state)
		}
		if _, err := fmt.Fprintf(out, "%s\t%s\t%s\n", state, result.Info.Title, result.URL); err != nil {
			return err
		}
	}
	return nil
}

func writeStructured(out io.Writer, format string, records []Record) error {
	if format == OutputYAML {
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(records); err != nil {
			return err
		}
		return encoder.Close()
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}
