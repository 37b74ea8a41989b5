package forge

import (
	"fmt"
	"strings"

	"github.com/lerenn/issue-state/pkg/issue"
)

// Rule adjusts the state computed so far for a forge response.
type Rule func(data map[string]interface{}, title string, state issue.State) issue.State

// Rules are applied in order after the base state is parsed; the last rule
// to change the state wins.
var Rules = []Rule{
	MergedRule,
	DraftRule,
	WIPTitleRule,
}

// WIPPrefixes mark a pull request as draft on forges without a draft flag.
var WIPPrefixes = []string{"wip:", "[wip]"}

// Normalize turns a GitHub, GitLab or Gitea issue or pull request payload
// into an issue.Info.
func Normalize(data map[string]interface{}) (issue.Info, error) {
	title, ok := data["title"].(string)
	if !ok {
		return issue.Info{}, fmt.Errorf("%w: missing string field %q", issue.ErrFailedMatch, "title")
	}

	rawState, ok := data["state"].(string)
	if !ok {
		return issue.Info{}, fmt.Errorf("%w: missing string field %q", issue.ErrFailedMatch, "state")
	}

	state, err := parseState(rawState)
	if err != nil {
		return issue.Info{}, err
	}

	for _, rule := range Rules {
		state = rule(data, title, state)
	}

	return issue.Info{Title: title, State: state}, nil
}

func parseState(state string) (issue.State, error) {
	switch state {
	case "open", "opened":
		return issue.StateOpen, nil
	case "closed", "locked":
		return issue.StateClosed, nil
	case "merged":
		return issue.StateMerged, nil
	default:
		return 0, fmt.Errorf("%w: %q", issue.ErrUnknownState, state)
	}
}

// MergedRule marks the state as merged when the "merged" flag is true.
// GitHub and Gitea expose it, GitLab does not.
func MergedRule(data map[string]interface{}, _ string, state issue.State) issue.State {
	if merged, ok := data["merged"].(bool); ok && merged {
		return issue.StateMerged
	}
	return state
}

// DraftRule marks the state as draft when the GitHub "draft" flag is true.
func DraftRule(data map[string]interface{}, _ string, state issue.State) issue.State {
	if draft, ok := data["draft"].(bool); ok && draft {
		return issue.StateDraft
	}
	return state
}

// WIPTitleRule marks the state as draft when the title starts with one of
// WIPPrefixes. The comparison is case-sensitive.
func WIPTitleRule(_ map[string]interface{}, title string, state issue.State) issue.State {
	for _, prefix := range WIPPrefixes {
		if strings.HasPrefix(title, prefix) {
			return issue.StateDraft
		}
	}
	return state
}
