package app

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/ImSingee/go-ex/ee"
	"github.com/pelletier/go-toml/v2"

	"github.com/ImSingee/shopify-cli/internal/lib/glob"
)

const (
	ConfigFileName          = "shopify.app.toml"
	ExtensionConfigFileName = "shopify.extension.toml"
)

var DefaultExtensionDirectories = []string{"extensions/*"}

type Configuration struct {
	ClientID             string   `toml:"client_id"`
	Name                 string   `toml:"name"`
	ApplicationURL       string   `toml:"application_url,omitempty"`
	Embedded             bool     `toml:"embedded,omitempty"`
	Scopes               string   `toml:"scopes,omitempty"`
	ExtensionDirectories []string `toml:"extension_directories,omitempty"`

	Auth struct {
		RedirectURLs []string `toml:"redirect_urls,omitempty"`
	} `toml:"auth,omitempty"`
}

type App struct {
	Directory         string
	ConfigurationPath string
	Configuration     Configuration
	PackageManager    string
	Extensions        []*Extension
}

// Load reads shopify.app.toml from dir and discovers its extensions
func Load(dir string) (*App, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, ee.Wrapf(err, "cannot get absolute path of %s", dir)
	}

	configPath := filepath.Join(dir, ConfigFileName)
	content, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ee.Errorf("couldn't find %s in %s", ConfigFileName, dir)
		}
		return nil, ee.Wrapf(err, "cannot read %s", configPath)
	}

	a := &App{
		Directory:         dir,
		ConfigurationPath: configPath,
	}
	if err := toml.Unmarshal(content, &a.Configuration); err != nil {
		return nil, ee.Wrapf(err, "invalid %s", configPath)
	}

	a.PackageManager = DetectPackageManager(dir)

	a.Extensions, err = loadExtensions(dir, a.ExtensionDirectories())
	if err != nil {
		return nil, err
	}

	slog.Debug("Loaded app", "name", a.Configuration.Name, "extensions", len(a.Extensions), "packageManager", a.PackageManager)

	return a, nil
}

func (a *App) ExtensionDirectories() []string {
	if len(a.Configuration.ExtensionDirectories) == 0 {
		return DefaultExtensionDirectories
	}
	return a.Configuration.ExtensionDirectories
}

func (a *App) ThemeExtensions() []*Extension {
	var result []*Extension
	for _, e := range a.Extensions {
		if e.IsThemeExtension() {
			result = append(result, e)
		}
	}
	return result
}

// Save writes the configuration back to ConfigurationPath
func (a *App) Save() error {
	b, err := toml.Marshal(a.Configuration)
	if err != nil {
		return ee.Wrap(err, "cannot encode app configuration")
	}

	if err := os.WriteFile(a.ConfigurationPath, b, 0644); err != nil {
		return ee.Wrapf(err, "cannot write %s", a.ConfigurationPath)
	}

	return nil
}

func loadExtensions(appDir string, patterns []string) ([]*Extension, error) {
	seen := make(map[string]bool)
	var result []*Extension

	for _, pattern := range patterns {
		p, err := glob.Compile(pattern)
		if err != nil {
			return nil, err
		}

		root := filepath.Join(appDir, filepath.FromSlash(p.Root()))
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					return nil
				}
				return err
			}
			if !d.IsDir() {
				return nil
			}
			if name := d.Name(); name == "node_modules" || name == ".git" {
				return filepath.SkipDir
			}

			rel, err := filepath.Rel(appDir, path)
			if err != nil || !p.Match(filepath.ToSlash(rel)) || seen[path] {
				return nil
			}

			ext, err := LoadExtension(path)
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					return nil // not an extension directory
				}
				return err
			}

			seen[path] = true
			result = append(result, ext)
			return filepath.SkipDir
		})
		if err != nil {
			return nil, ee.Wrapf(err, "cannot load extensions from %s", pattern)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Directory < result[j].Directory
	})

	return result, nil
}
