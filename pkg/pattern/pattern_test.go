//go:build unit

package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name     string
		template string
		input    string
		expected Fields
		wantErr  bool
	}{
		{
			name:     "github pull request",
			template: "/:owner/:repo/:kind/:number",
			input:    "/catppuccin/nvim/pull/8",
			expected: Fields{"owner": "catppuccin", "repo": "nvim", "kind": "pull", "number": "8"},
		},
		{
			name:     "gitlab merge request with dash separator",
			template: "/:owner/:repo/-/:kind/:number",
			input:    "/simple-nixos-mailserver/nixos-mailserver/-/merge_requests/319",
			expected: Fields{
				"owner":  "simple-nixos-mailserver",
				"repo":   "nixos-mailserver",
				"kind":   "merge_requests",
				"number": "319",
			},
		},
		{
			name:     "bugzilla query template",
			template: "/show_bug.cgi?id=:number",
			input:    "/show_bug.cgi?id=54692",
			expected: Fields{"number": "54692"},
		},
		{
			name:     "query template tolerates extra keys",
			template: "/show_bug.cgi?id=:number",
			input:    "/show_bug.cgi?format=multiple&id=12",
			expected: Fields{"number": "12"},
		},
		{
			name:     "values are captured raw",
			template: "/:owner/:repo/:kind/:number",
			input:    "/a%20b/repo/issues/1",
			expected: Fields{"owner": "a%20b", "repo": "repo", "kind": "issues", "number": "1"},
		},
		{
			name:     "too many segments",
			template: "/:owner/:repo/:kind/:number",
			input:    "/catppuccin/nvim/pull/8/files",
			wantErr:  true,
		},
		{
			name:     "too few segments",
			template: "/:owner/:repo/:kind/:number",
			input:    "/catppuccin/nvim",
			wantErr:  true,
		},
		{
			name:     "literal segment mismatch",
			template: "/:owner/:repo/-/:kind/:number",
			input:    "/owner/repo/x/issues/1",
			wantErr:  true,
		},
		{
			name:     "missing query key",
			template: "/show_bug.cgi?id=:number",
			input:    "/show_bug.cgi?bug=1",
			wantErr:  true,
		},
		{
			name:     "missing query string",
			template: "/show_bug.cgi?id=:number",
			input:    "/show_bug.cgi",
			wantErr:  true,
		},
		{
			name:     "literal path mismatch on query template",
			template: "/show_bug.cgi?id=:number",
			input:    "/buglist.cgi?id=1",
			wantErr:  true,
		},
		{
			name:     "empty named segment",
			template: "/:owner/:repo/:kind/:number",
			input:    "/owner//issues/1",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, err := Match(tt.template, tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNoMatch)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, fields)
		})
	}
}

func TestDecode(t *testing.T) {
	type repoFields struct {
		Owner  string `pattern:"owner"`
		Repo   string `pattern:"repo"`
		Kind   string `pattern:"kind"`
		Number string `pattern:"number"`
	}

	t.Run("declared fields are filled", func(t *testing.T) {
		var fields repoFields
		err := Decode("/:owner/:repo/:kind/:number", "/catppuccin/nvim/pull/8", &fields)
		require.NoError(t, err)
		assert.Equal(t, repoFields{Owner: "catppuccin", Repo: "nvim", Kind: "pull", Number: "8"}, fields)
	})

	t.Run("declared field without capture fails", func(t *testing.T) {
		var fields repoFields
		err := Decode("/:owner/:repo/issues/:number", "/catppuccin/nvim/issues/8", &fields)
		assert.ErrorIs(t, err, ErrNoMatch)
	})

	t.Run("shape mismatch fails before decoding", func(t *testing.T) {
		var fields repoFields
		err := Decode("/:owner/:repo/:kind/:number", "/catppuccin", &fields)
		assert.ErrorIs(t, err, ErrNoMatch)
	})
}
