package themeext

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ImSingee/go-ex/ee"

	"github.com/ImSingee/shopify-cli/internal/config"
	"github.com/ImSingee/shopify-cli/internal/partners"
	"github.com/ImSingee/shopify-cli/internal/session"
)

const (
	RoleDevelopment = "DEVELOPMENT"

	themeGIDPrefix = "gid://shopify/OnlineStoreTheme/"
	// archive used as the initial content of created themes
	skeletonThemeURL = "https://cdn.shopify.com/static/online-store/theme-skeleton.zip"
)

type Theme struct {
	ID   int64
	Name string
	Role string
}

// ThemeAPI reads and creates themes of a store
type ThemeAPI interface {
	// FetchTheme returns nil when the theme does not exist
	FetchTheme(ctx context.Context, id int64, s *session.AdminSession) (*Theme, error)
	ListThemes(ctx context.Context, s *session.AdminSession, role string) ([]Theme, error)
	CreateTheme(ctx context.Context, s *session.AdminSession, name, role string) (*Theme, error)
}

var themeQuery = partners.Operation{
	Name: "Theme",
	Query: `query Theme($id: ID!) {
  theme(id: $id) {
    id
    name
    role
  }
}`,
}

var themesQuery = partners.Operation{
	Name: "Themes",
	Query: `query Themes($roles: [ThemeRole!]) {
  themes(first: 50, roles: $roles) {
    nodes {
      id
      name
      role
    }
  }
}`,
}

var themeCreateMutation = partners.Operation{
	Name: "ThemeCreate",
	Query: `mutation ThemeCreate($source: URL!, $name: String!, $role: ThemeRole!) {
  themeCreate(source: $source, name: $name, role: $role) {
    theme {
      id
      name
      role
    }
    userErrors {
      field
      message
    }
  }
}`,
}

type themeNode struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

func (n themeNode) theme() (Theme, error) {
	id, err := parseThemeGID(n.ID)
	if err != nil {
		return Theme{}, err
	}
	return Theme{ID: id, Name: n.Name, Role: n.Role}, nil
}

func themeGID(id int64) string {
	return themeGIDPrefix + strconv.FormatInt(id, 10)
}

func parseThemeGID(gid string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(gid, themeGIDPrefix), 10, 64)
	if err != nil {
		return 0, ee.Errorf("invalid theme id %q", gid)
	}
	return id, nil
}

// AdminThemeAPI talks to the Admin GraphQL API of the session's store
type AdminThemeAPI struct {
	APIVersion string
	// NewClient builds the client for an Admin API endpoint, defaults to partners.NewClient
	NewClient func(endpoint string) partners.Client
}

func NewAdminThemeAPI(cfg *config.Config) *AdminThemeAPI {
	return &AdminThemeAPI{APIVersion: cfg.AdminAPIVersion}
}

func (a *AdminThemeAPI) request(ctx context.Context, s *session.AdminSession, op partners.Operation, variables map[string]any, out any) error {
	version := a.APIVersion
	if version == "" {
		version = config.DefaultAdminAPIVersion
	}
	endpoint := fmt.Sprintf("https://%s/admin/api/%s/graphql.json", s.StoreFqdn, version)

	var client partners.Client
	if a.NewClient != nil {
		client = a.NewClient(endpoint)
	} else {
		client = partners.NewClient(endpoint)
	}

	return client.Request(ctx, op, s.Token, variables, out)
}

func (a *AdminThemeAPI) FetchTheme(ctx context.Context, id int64, s *session.AdminSession) (*Theme, error) {
	var result struct {
		Theme *themeNode `json:"theme"`
	}
	err := a.request(ctx, s, themeQuery, map[string]any{"id": themeGID(id)}, &result)
	if err != nil {
		return nil, err
	}
	if result.Theme == nil {
		return nil, nil
	}

	t, err := result.Theme.theme()
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (a *AdminThemeAPI) ListThemes(ctx context.Context, s *session.AdminSession, role string) ([]Theme, error) {
	var result struct {
		Themes struct {
			Nodes []themeNode `json:"nodes"`
		} `json:"themes"`
	}
	err := a.request(ctx, s, themesQuery, map[string]any{"roles": []string{role}}, &result)
	if err != nil {
		return nil, err
	}

	themes := make([]Theme, 0, len(result.Themes.Nodes))
	for _, n := range result.Themes.Nodes {
		t, err := n.theme()
		if err != nil {
			return nil, err
		}
		themes = append(themes, t)
	}
	return themes, nil
}

func (a *AdminThemeAPI) CreateTheme(ctx context.Context, s *session.AdminSession, name, role string) (*Theme, error) {
	var result struct {
		ThemeCreate struct {
			Theme      *themeNode           `json:"theme"`
			UserErrors []partners.UserError `json:"userErrors"`
		} `json:"themeCreate"`
	}
	variables := map[string]any{
		"source": skeletonThemeURL,
		"name":   name,
		"role":   role,
	}
	err := a.request(ctx, s, themeCreateMutation, variables, &result)
	if err != nil {
		return nil, err
	}

	if errs := result.ThemeCreate.UserErrors; len(errs) != 0 {
		return nil, ee.Errorf("cannot create theme %s: %s", name, partners.JoinMessages(errs))
	}
	if result.ThemeCreate.Theme == nil {
		return nil, ee.Errorf("cannot create theme %s", name)
	}

	t, err := result.ThemeCreate.Theme.theme()
	if err != nil {
		return nil, err
	}
	return &t, nil
}
