package session

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ImSingee/shopify-cli/internal/config"
	"github.com/ImSingee/shopify-cli/internal/ui"
)

// AdminSession grants access to the Admin API of one store
type AdminSession struct {
	Token     string
	StoreFqdn string
}

// Provider hands out API credentials.
//
// Interactive login flows are out of scope; tokens come from the environment.
type Provider interface {
	EnsureAuthenticatedPartners(ctx context.Context) (string, error)
	EnsureAuthenticatedAdmin(ctx context.Context, store string) (*AdminSession, error)
}

type EnvProvider struct {
	Getenv func(string) string // nil means os.Getenv
}

func (p EnvProvider) getenv(key string) string {
	if p.Getenv != nil {
		return p.Getenv(key)
	}
	return os.Getenv(key)
}

func (p EnvProvider) EnsureAuthenticatedPartners(context.Context) (string, error) {
	token := p.getenv(config.EnvPartnersToken)
	if token == "" {
		return "", ui.NewAbortError(
			"No Partners token available.",
			fmt.Sprintf("Create a CLI token in the Partners Dashboard and export it as %s.", config.EnvPartnersToken),
		)
	}

	return token, nil
}

func (p EnvProvider) EnsureAuthenticatedAdmin(_ context.Context, store string) (*AdminSession, error) {
	fqdn, err := NormalizeStoreFqdn(store)
	if err != nil {
		return nil, err
	}

	token := p.getenv(config.EnvAdminToken)
	if token == "" {
		return nil, ui.NewAbortError(
			fmt.Sprintf("No Admin API token available for %s.", fqdn),
			fmt.Sprintf("Export an Admin API access token as %s.", config.EnvAdminToken),
		)
	}

	return &AdminSession{Token: token, StoreFqdn: fqdn}, nil
}

// NormalizeStoreFqdn turns `my-store`, `my-store.myshopify.com` or
// `https://my-store.myshopify.com/` into `my-store.myshopify.com`
func NormalizeStoreFqdn(store string) (string, error) {
	s := strings.TrimSpace(store)
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	s = strings.TrimRight(s, "/")

	if s == "" {
		return "", ui.NewAbortError("A store is required.", "Pass it with --store.")
	}

	if !strings.Contains(s, ".") {
		s += ".myshopify.com"
	}

	return s, nil
}
