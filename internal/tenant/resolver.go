// Package tenant maps an incoming Host header to the logical site being
// addressed: the marketing site on the bare domain, the authenticated app on
// the reserved "app" subdomain, or a couple's public microsite on any other
// subdomain.
package tenant

import "strings"

// Reserved subdomain labels that never resolve to a couple site.
const (
	AppLabel = "app"
	WWWLabel = "www"
)

// DashboardPath is where the app domain's root path is rewritten to.
const DashboardPath = "/dashboard"

// TenantPathPrefix is the path prefix tenant requests are rewritten under.
const TenantPathPrefix = "/couple/"

// Kind identifies which logical site a request targets.
type Kind int

const (
	// KindMainSite serves the marketing/application router unchanged.
	KindMainSite Kind = iota
	// KindAppDomain serves the authenticated application.
	KindAppDomain
	// KindTenantSite serves a couple's public microsite.
	KindTenantSite
)

func (k Kind) String() string {
	switch k {
	case KindAppDomain:
		return "app"
	case KindTenantSite:
		return "tenant"
	default:
		return "main"
	}
}

// Decision is the outcome of resolving a host/path pair. Path carries the
// possibly rewritten request path; Subdomain is set only for KindTenantSite.
type Decision struct {
	Kind      Kind
	Subdomain string
	Path      string
}

// Resolver resolves hosts against a primary domain and an optional
// local-development domain. It is pure and safe for concurrent use.
type Resolver struct {
	primaryDomain string
	localDomain   string
}

// NewResolver creates a Resolver for the given primary domain (e.g.
// "duetly.app"). localDomain covers development hosts such as "lvh.me" and
// may be empty.
func NewResolver(primaryDomain, localDomain string) *Resolver {
	return &Resolver{
		primaryDomain: strings.ToLower(primaryDomain),
		localDomain:   strings.ToLower(localDomain),
	}
}

// Resolve decides which site the request targets and rewrites the path
// accordingly. Resolving an already-rewritten path yields the same target.
func (r *Resolver) Resolve(host, path string) Decision {
	if path == "" {
		path = "/"
	}

	label, ok := r.subdomain(host)
	if !ok || label == "" || label == WWWLabel {
		return Decision{Kind: KindMainSite, Path: path}
	}

	if label == AppLabel {
		if path == "/" {
			return Decision{Kind: KindAppDomain, Path: DashboardPath}
		}
		return Decision{Kind: KindAppDomain, Path: path}
	}

	return Decision{Kind: KindTenantSite, Subdomain: label, Path: tenantPath(label, path)}
}

// subdomain extracts the single leftmost label from a host under the primary
// or local domain. Hosts that are the bare domain, hosts under neither
// domain, and multi-level labels all report false.
func (r *Resolver) subdomain(host string) (string, bool) {
	host = strings.ToLower(stripPort(host))

	var label string
	switch {
	case host == r.primaryDomain || (r.localDomain != "" && host == r.localDomain):
		return "", false
	case strings.HasSuffix(host, "."+r.primaryDomain):
		label = strings.TrimSuffix(host, "."+r.primaryDomain)
	case r.localDomain != "" && strings.HasSuffix(host, "."+r.localDomain):
		label = strings.TrimSuffix(host, "."+r.localDomain)
	default:
		return "", false
	}

	// Only a single level of subdomain is recognized.
	if label == "" || strings.Contains(label, ".") {
		return "", false
	}
	return label, true
}

// tenantPath prefixes the path with the tenant scope, leaving paths that are
// already scoped untouched so re-resolution is idempotent.
func tenantPath(label, path string) string {
	prefix := TenantPathPrefix + label
	if path == prefix || strings.HasPrefix(path, prefix+"/") {
		return path
	}
	return prefix + path
}

func stripPort(host string) string {
	if i := strings.LastIndex(host, ":"); i >= 0 && !strings.Contains(host[i:], "]") {
		return host[:i]
	}
	return host
}
