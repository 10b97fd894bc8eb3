package config

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/ImSingee/go-ex/ee"
	"github.com/ImSingee/go-ex/exjson"
	"github.com/ysmood/gson"
)

var Debug bool

var ConfigFileNames = []string{
	".shopifyrc",
	".shopifyrc.json",
	"shopify.config.json",
}

const (
	DefaultPartnersEndpoint   = "https://partners.shopify.com/api/cli/graphql"
	DefaultAdminAPIVersion    = "2024-01"
	DefaultThemeExtensionPort = 9293
)

const (
	EnvPartnersToken    = "SHOPIFY_CLI_PARTNERS_TOKEN"
	EnvPartnersEndpoint = "SHOPIFY_CLI_PARTNERS_ENDPOINT"
	EnvAdminToken       = "SHOPIFY_CLI_ADMIN_TOKEN"
	EnvPackageManager   = "SHOPIFY_CLI_PACKAGE_MANAGER"
)

type TunnelPlugin struct {
	Name    string
	Command string // may contain {port} and {url}
}

type Config struct {
	Path string // empty when no config file exists

	PartnersEndpoint   string
	AdminAPIVersion    string
	ThemeExtensionPort int
	PackageManager     string
	TunnelPlugins      []TunnelPlugin // sorted by name
}

func Default() *Config {
	return &Config{
		PartnersEndpoint:   DefaultPartnersEndpoint,
		AdminAPIVersion:    DefaultAdminAPIVersion,
		ThemeExtensionPort: DefaultThemeExtensionPort,
	}
}

func ReadConfigFile(filename string) (map[string]gson.JSON, error) {
	// only parse json now

	var obj map[string]any
	err := exjson.Read(filename, &obj)
	if err != nil {
		return nil, err
	}

	return gson.New(obj).Map(), nil
}

// FindConfigFile returns the first existing config file inside dir
func FindConfigFile(dir string) (string, error) {
	for _, name := range ConfigFileNames {
		p := filepath.Join(dir, name)

		_, err := os.Stat(p)
		if err == nil {
			return p, nil
		}
		if !os.IsNotExist(err) {
			return "", ee.Wrapf(err, "cannot access %s", p)
		}
	}

	return "", ErrNotExist
}

// Load reads the CLI config of an app directory and applies environment overrides.
//
// A missing config file is not an error.
func Load(dir string) (*Config, error) {
	c := Default()

	p, err := FindConfigFile(dir)
	if err != nil && !IsNotExist(err) {
		return nil, err
	}

	if p != "" {
		raw, err := ReadConfigFile(p)
		if err != nil {
			return nil, ee.Wrapf(err, "cannot read config file %s", p)
		}

		if err := c.apply(raw); err != nil {
			return nil, ee.Wrapf(err, "invalid config file %s", p)
		}
		c.Path = p
	}

	c.applyEnv()

	return c, nil
}

func (c *Config) apply(raw map[string]gson.JSON) error {
	if v := raw["partners-endpoint"].Val(); v != nil {
		s, ok := v.(string)
		if !ok {
			return ee.New("`partners-endpoint` must be a string")
		}
		c.PartnersEndpoint = s
	}

	if v := raw["admin-api-version"].Val(); v != nil {
		s, ok := v.(string)
		if !ok {
			return ee.New("`admin-api-version` must be a string")
		}
		c.AdminAPIVersion = s
	}

	if v := raw["package-manager"].Val(); v != nil {
		s, ok := v.(string)
		if !ok {
			return ee.New("`package-manager` must be a string")
		}
		c.PackageManager = s
	}

	if v := raw["theme-extension-port"].Val(); v != nil {
		n, ok := v.(float64)
		if !ok || n <= 0 || n > 65535 || n != float64(int(n)) {
			return ee.New("`theme-extension-port` must be a valid port number")
		}
		c.ThemeExtensionPort = int(n)
	}

	if v := raw["tunnel-plugins"].Val(); v != nil {
		plugins, ok := v.(map[string]any)
		if !ok {
			return ee.New("`tunnel-plugins` must be a name-to-command map")
		}

		for name, command := range plugins {
			command, ok := command.(string)
			if !ok || command == "" {
				return ee.Errorf("tunnel plugin %s must have a command", name)
			}

			c.TunnelPlugins = append(c.TunnelPlugins, TunnelPlugin{Name: name, Command: command})
		}

		sort.Slice(c.TunnelPlugins, func(i, j int) bool {
			return c.TunnelPlugins[i].Name < c.TunnelPlugins[j].Name
		})
	}

	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvPartnersEndpoint); v != "" {
		c.PartnersEndpoint = v
	}
	if v := os.Getenv(EnvPackageManager); v != "" {
		c.PackageManager = v
	}
}

// PortString is a helper for flags defaults
func (c *Config) PortString() string {
	return strconv.Itoa(c.ThemeExtensionPort)
}
