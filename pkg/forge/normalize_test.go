//go:build unit

package forge

import (
	"encoding/json"
	"testing"

	"github.com/lerenn/issue-state/pkg/issue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, payload string) map[string]interface{} {
	t.Helper()
	var data map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(payload), &data))
	return data
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected issue.Info
	}{
		{
			name:     "github merged pull request",
			payload:  `{"title":"Add Kitty themes","merged":true,"state":"closed"}`,
			expected: issue.Info{Title: "Add Kitty themes", State: issue.StateMerged},
		},
		{
			name:     "github closed unmerged pull request",
			payload:  `{"title":"fix: typo","merged":false,"draft":false,"state":"closed"}`,
			expected: issue.Info{Title: "fix: typo", State: issue.StateClosed},
		},
		{
			name:     "github draft pull request",
			payload:  `{"title":"feat: things","merged":false,"draft":true,"state":"open"}`,
			expected: issue.Info{Title: "feat: things", State: issue.StateDraft},
		},
		{
			name:     "gitlab opened issue",
			payload:  `{"title":"OpenDKIM rights problem","state":"opened"}`,
			expected: issue.Info{Title: "OpenDKIM rights problem", State: issue.StateOpen},
		},
		{
			name:     "gitlab merged merge request",
			payload:  `{"title":"dovecot: support new sieve API in nixpkgs","state":"merged"}`,
			expected: issue.Info{Title: "dovecot: support new sieve API in nixpkgs", State: issue.StateMerged},
		},
		{
			name:     "gitlab locked issue",
			payload:  `{"title":"Locked","state":"locked"}`,
			expected: issue.Info{Title: "Locked", State: issue.StateClosed},
		},
		{
			name:     "gitea wip title without draft field",
			payload:  `{"title":"wip: something","state":"open","merged":false}`,
			expected: issue.Info{Title: "wip: something", State: issue.StateDraft},
		},
		{
			name:     "gitea bracketed wip title on closed pull",
			payload:  `{"title":"[wip] other","state":"closed"}`,
			expected: issue.Info{Title: "[wip] other", State: issue.StateDraft},
		},
		{
			name:     "wip prefix is case sensitive",
			payload:  `{"title":"WIP: shouting","state":"open"}`,
			expected: issue.Info{Title: "WIP: shouting", State: issue.StateOpen},
		},
		{
			name:     "draft overrides merged overrides base state",
			payload:  `{"title":"x","state":"opened","merged":true,"draft":true}`,
			expected: issue.Info{Title: "x", State: issue.StateDraft},
		},
		{
			name:     "wip title wins over merged flag",
			payload:  `{"title":"wip: merged anyway","state":"closed","merged":true}`,
			expected: issue.Info{Title: "wip: merged anyway", State: issue.StateDraft},
		},
		{
			name:     "non boolean flags are ignored",
			payload:  `{"title":"x","state":"open","merged":"yes","draft":1}`,
			expected: issue.Info{Title: "x", State: issue.StateOpen},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := Normalize(decode(t, tt.payload))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, info)
		})
	}
}

func TestNormalize_Errors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr error
	}{
		{"missing title", `{"state":"open"}`, issue.ErrFailedMatch},
		{"non string title", `{"title":12,"state":"open"}`, issue.ErrFailedMatch},
		{"missing state", `{"title":"x"}`, issue.ErrFailedMatch},
		{"unknown state", `{"title":"x","state":"reopened"}`, issue.ErrUnknownState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(decode(t, tt.payload))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := Normalize(decode(t, `{"title":"x","state":"reopened"}`))
	assert.Contains(t, err.Error(), `"reopened"`)
}

func TestRules(t *testing.T) {
	t.Run("merged rule keeps state when false", func(t *testing.T) {
		assert.Equal(t, issue.StateClosed, MergedRule(map[string]interface{}{"merged": false}, "", issue.StateClosed))
		assert.Equal(t, issue.StateMerged, MergedRule(map[string]interface{}{"merged": true}, "", issue.StateClosed))
		assert.Equal(t, issue.StateOpen, MergedRule(map[string]interface{}{}, "", issue.StateOpen))
	})

	t.Run("draft rule keeps state when false", func(t *testing.T) {
		assert.Equal(t, issue.StateMerged, DraftRule(map[string]interface{}{"draft": false}, "", issue.StateMerged))
		assert.Equal(t, issue.StateDraft, DraftRule(map[string]interface{}{"draft": true}, "", issue.StateMerged))
	})

	t.Run("wip title rule", func(t *testing.T) {
		assert.Equal(t, issue.StateDraft, WIPTitleRule(nil, "wip: a", issue.StateMerged))
		assert.Equal(t, issue.StateDraft, WIPTitleRule(nil, "[wip] a", issue.StateOpen))
		assert.Equal(t, issue.StateOpen, WIPTitleRule(nil, "a wip: b", issue.StateOpen))
	})

	t.Run("rules run in declared order", func(t *testing.T) {
		require.Len(t, Rules, 3)
	})
}
