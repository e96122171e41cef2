package main

import (
	"log"
	"net/http"
	"time"

	"github.com/duetly/backend/config"
	"github.com/duetly/backend/internal/gateway"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	gw, err := gateway.New(gateway.Config{
		PrimaryDomain: cfg.PrimaryDomain,
		LocalDomain:   cfg.LocalDomain,
		APIBaseURL:    cfg.APIBaseURL,
		MainSiteURL:   cfg.MainSiteURL,
		AppSiteURL:    cfg.AppSiteURL,
		TenantSiteURL: cfg.TenantSiteURL,
	})
	if err != nil {
		log.Fatalf("Failed to build gateway: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.GatewayPort,
		Handler:           gw,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("Gateway listening on %s for *.%s", srv.Addr, cfg.PrimaryDomain)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Gateway error: %v", err)
	}
}
