package forge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/lerenn/issue-state/pkg/host"
	"github.com/lerenn/issue-state/pkg/issue"
)

const (
	// BugzillaName is the name identifier for Bugzilla forge.
	BugzillaName = "bugzilla"
)

// Bugzilla fetches bug reports through the REST API or, for 4.x
// instances, the JSON-RPC endpoint.
type Bugzilla struct {
	requester
}

// NewBugzilla creates a new Bugzilla forge instance.
func NewBugzilla(params NewManagerParams) *Bugzilla {
	return &Bugzilla{requester: newRequester(params.HTTPClient, params.Credentials, params.Logger)}
}

type bugsResponse struct {
	Bugs *[]bug `json:"bugs"`
}

type bug struct {
	Summary *string `json:"summary"`
	IsOpen  *bool   `json:"is_open"`
}

type jsonRPCResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *jsonRPCError   `json:"error"`
}

type jsonRPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Name returns the name of the forge.
func (b *Bugzilla) Name() string {
	return BugzillaName
}

// Fetch returns the first bug of the response.
func (b *Bugzilla) Fetch(ctx context.Context, h host.Host, fields host.Fields) (issue.Info, error) {
	infos, err := b.FetchAll(ctx, h, fields)
	if err != nil {
		return issue.Info{}, err
	}

	if len(infos) == 0 {
		return issue.Info{}, fmt.Errorf("%w: no bug returned for id %s", issue.ErrUnreachable, fields.Number)
	}

	return infos[0], nil
}

// FetchAll returns every bug of the response, in order.
func (b *Bugzilla) FetchAll(ctx context.Context, h host.Host, fields host.Fields) ([]issue.Info, error) {
	endpoint, err := h.Endpoint(fields)
	if err != nil {
		return nil, err
	}

	var resp bugsResponse
	switch h.Provider {
	case host.ProviderBugzilla:
		if err := b.getJSON(ctx, h, endpoint, &resp); err != nil {
			return nil, err
		}
	case host.ProviderBugzillaJSONRPC:
		var rpc jsonRPCResponse
		if err := b.getJSON(ctx, h, endpoint, &rpc); err != nil {
			return nil, err
		}
		if resp, err = unwrapJSONRPC(rpc); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedForge, h)
	}

	return normalizeBugs(resp)
}

func unwrapJSONRPC(rpc jsonRPCResponse) (bugsResponse, error) {
	if rpc.Error != nil {
		return bugsResponse{}, fmt.Errorf("%w: %w: %s (code %d)",
			issue.ErrTransport, ErrRPC, rpc.Error.Message, rpc.Error.Code)
	}

	if len(rpc.Result) == 0 || bytes.Equal(rpc.Result, []byte("null")) {
		return bugsResponse{}, fmt.Errorf("%w: json-rpc response has no result", issue.ErrInvalidURL)
	}

	var resp bugsResponse
	if err := json.Unmarshal(rpc.Result, &resp); err != nil {
		return bugsResponse{}, fmt.Errorf("%w: %w", issue.ErrFailedMatch, err)
	}

	return resp, nil
}

// normalizeBugs turns a Bugzilla bug list into issue.Info values.
func normalizeBugs(resp bugsResponse) ([]issue.Info, error) {
	if resp.Bugs == nil {
		return nil, fmt.Errorf("%w: missing field %q", issue.ErrFailedMatch, "bugs")
	}

	infos := make([]issue.Info, 0, len(*resp.Bugs))
	for i, bug := range *resp.Bugs {
		if bug.Summary == nil {
			return nil, fmt.Errorf("%w: bug %d has no %q", issue.ErrFailedMatch, i, "summary")
		}
		if bug.IsOpen == nil {
			return nil, fmt.Errorf("%w: bug %d has no %q", issue.ErrFailedMatch, i, "is_open")
		}

		state := issue.StateClosed
		if *bug.IsOpen {
			state = issue.StateOpen
		}

		infos = append(infos, issue.Info{Title: *bug.Summary, State: state})
	}

	return infos, nil
}
