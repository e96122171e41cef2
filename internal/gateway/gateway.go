// Package gateway is the public edge of the platform. It resolves the Host
// header to a logical site, verifies that tenant subdomains are registered,
// and proxies to the right upstream with the rewritten path.
package gateway

import (
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/duetly/backend/internal/tenant"
	"github.com/duetly/backend/pkg/client"
)

// Gateway routes incoming requests to the marketing site, the authenticated
// app, or a couple's public site.
type Gateway struct {
	resolver  *tenant.Resolver
	existence *client.ExistenceClient

	mainSite   *httputil.ReverseProxy
	appSite    *httputil.ReverseProxy
	tenantSite *httputil.ReverseProxy

	mainURL string
}

// Config holds the gateway's upstream URLs and domains.
type Config struct {
	PrimaryDomain string
	LocalDomain   string
	APIBaseURL    string
	MainSiteURL   string
	AppSiteURL    string
	TenantSiteURL string
}

// New builds a Gateway. Upstream URLs must be absolute.
func New(cfg Config) (*Gateway, error) {
	mainProxy, err := proxyTo(cfg.MainSiteURL)
	if err != nil {
		return nil, err
	}
	appProxy, err := proxyTo(cfg.AppSiteURL)
	if err != nil {
		return nil, err
	}
	tenantProxy, err := proxyTo(cfg.TenantSiteURL)
	if err != nil {
		return nil, err
	}

	return &Gateway{
		resolver:   tenant.NewResolver(cfg.PrimaryDomain, cfg.LocalDomain),
		existence:  client.NewExistenceClient(cfg.APIBaseURL),
		mainSite:   mainProxy,
		appSite:    appProxy,
		tenantSite: tenantProxy,
		mainURL:    cfg.MainSiteURL,
	}, nil
}

func proxyTo(rawURL string) (*httputil.ReverseProxy, error) {
	target, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	return httputil.NewSingleHostReverseProxy(target), nil
}

// ServeHTTP resolves the request and forwards it. Tenant requests whose
// subdomain is not registered redirect to the marketing site instead of
// rendering; a backend that cannot be reached counts as not registered.
func (g *Gateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	decision := g.resolver.Resolve(r.Host, r.URL.Path)

	switch decision.Kind {
	case tenant.KindAppDomain:
		r.URL.Path = decision.Path
		g.appSite.ServeHTTP(w, r)

	case tenant.KindTenantSite:
		if !g.existence.CheckExists(r.Context(), decision.Subdomain) {
			log.Printf("gateway: unknown tenant %q, redirecting to main site", decision.Subdomain)
			http.Redirect(w, r, g.mainURL, http.StatusFound)
			return
		}
		r.URL.Path = decision.Path
		g.tenantSite.ServeHTTP(w, r)

	default:
		r.URL.Path = decision.Path
		g.mainSite.ServeHTTP(w, r)
	}
}
