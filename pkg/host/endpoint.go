package host

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	githubPullKind    = "pull"
	githubPullAPIKind = "pulls"
	jsonRPCBugMethod  = "Bug.get"
)

// Endpoint builds the API URL describing the resource found in fields.
func (h Host) Endpoint(fields Fields) (string, error) {
	switch h.Provider {
	case ProviderGitHub:
		kind := fields.Kind
		if kind == githubPullKind {
			kind = githubPullAPIKind
		}
		return fmt.Sprintf("https://%s/repos/%s",
			GitHubAPIDomain, joinSegments(fields.Owner, fields.Repo, kind, fields.Number)), nil

	case ProviderGitLab:
		project := url.QueryEscape(fields.Owner + "/" + fields.Repo)
		return fmt.Sprintf("https://%s/api/v4/projects/%s/%s",
			h.Domain, project, joinSegments(fields.Kind, fields.Number)), nil

	case ProviderGitea:
		return fmt.Sprintf("https://%s/api/v1/repos/%s",
			h.Domain, joinSegments(fields.Owner, fields.Repo, fields.Kind, fields.Number)), nil

	case ProviderBugzilla:
		return fmt.Sprintf("https://%s/rest/bug/%s", h.Domain, url.PathEscape(fields.Number)), nil

	case ProviderBugzillaJSONRPC:
		return jsonRPCEndpoint(h.Domain, fields.Number)

	default:
		return "", fmt.Errorf("%w: no endpoint for %s", ErrUnsupportedProvider, h)
	}
}

// joinSegments escapes each decoded path segment and joins them with "/".
func joinSegments(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, segment := range segments {
		escaped[i] = url.PathEscape(segment)
	}
	return strings.Join(escaped, "/")
}

func jsonRPCEndpoint(domain, number string) (string, error) {
	// The id is embedded as a JSON number, so it is re-formatted from its parsed value.
	id, err := strconv.ParseUint(number, 10, 64)
	if err != nil {
		return "", fmt.Errorf("%w: bug id %q is not a number", ErrInvalidEndpoint, number)
	}

	u, err := url.Parse(fmt.Sprintf("https://%s/jsonrpc.cgi", domain))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)
	}

	query := url.Values{}
	query.Set("method", jsonRPCBugMethod)
	query.Set("params", fmt.Sprintf(`[{"ids":[%s]}]`, strconv.FormatUint(id, 10)))
	u.RawQuery = query.Encode()

	return u.String(), nil
}
