package transport

import (
	"net/http"
	"strings"
)

// ExemptionRules decides which requests are sent without a bearer token.
// The table ships with defaults matching the marketplace API but is plain
// configuration: deployments where, say, categories require auth can swap
// the lists without touching the transport.
type ExemptionRules struct {
	// Public endpoints are exempt regardless of method: registration,
	// token issuance, token refresh. Matched by exact path.
	Public []string

	// PublicRead prefixes are exempt for GET requests only: anonymous
	// browsing of the catalog.
	PublicRead []string

	// Private prefixes are never exempt, regardless of method. Takes
	// precedence over PublicRead: /products/my/ is the caller's own data
	// even though /products/ is public to read.
	Private []string

	// RefreshPath is the token refresh endpoint. A 401 from it is final;
	// retrying it through itself would loop.
	RefreshPath string
}

// DefaultRules returns the marketplace exemption table. basePath is the path
// prefix the API is mounted under ("" when it lives at the root).
func DefaultRules(basePath string) *ExemptionRules {
	basePath = strings.TrimSuffix(basePath, "/")
	p := func(s string) string { return basePath + s }

	return &ExemptionRules{
		Public: []string{
			p("/auth/users/"),
			p("/auth/token/"),
			p("/auth/token/refresh/"),
		},
		PublicRead: []string{
			p("/categories/"),
			p("/products/"),
			p("/tenders/"),
		},
		Private: []string{
			p("/products/my/"),
			p("/tenders/my/"),
		},
		RefreshPath: p("/auth/token/refresh/"),
	}
}

// Exempt reports whether a request with the given method and URL path may be
// sent without an Authorization header.
func (r *ExemptionRules) Exempt(method, path string) bool {
	for _, prefix := range r.Private {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	for _, public := range r.Public {
		if path == public {
			return true
		}
	}
	if method == http.MethodGet {
		for _, prefix := range r.PublicRead {
			if strings.HasPrefix(path, prefix) {
				return true
			}
		}
	}
	return false
}

// IsRefresh reports whether path targets the token refresh endpoint.
func (r *ExemptionRules) IsRefresh(path string) bool {
	return path == r.RefreshPath
}
