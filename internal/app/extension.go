package app

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ImSingee/go-ex/ee"
	"github.com/pelletier/go-toml/v2"
)

const ThemeExtensionType = "theme"

type ExtensionConfiguration struct {
	Name   string `toml:"name"`
	Type   string `toml:"type"`
	Handle string `toml:"handle,omitempty"`
	UID    string `toml:"uid,omitempty"`
}

type Extension struct {
	Directory         string
	ConfigurationPath string
	Configuration     ExtensionConfiguration
}

// LoadExtension reads shopify.extension.toml in dir.
// The returned error wraps fs.ErrNotExist when the file is missing.
func LoadExtension(dir string) (*Extension, error) {
	p := filepath.Join(dir, ExtensionConfigFileName)

	content, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}

	e := &Extension{Directory: dir, ConfigurationPath: p}
	if err := toml.Unmarshal(content, &e.Configuration); err != nil {
		return nil, ee.Wrapf(err, "invalid %s", p)
	}
	if e.Configuration.Type == "" {
		return nil, ee.Errorf("%s: missing `type`", p)
	}

	return e, nil
}

func (e *Extension) IsThemeExtension() bool {
	return e.Configuration.Type == ThemeExtensionType
}

// Handle falls back to the directory name when not configured
func (e *Extension) Handle() string {
	if e.Configuration.Handle != "" {
		return e.Configuration.Handle
	}
	return Slugify(filepath.Base(e.Directory))
}

// Slugify lowercases s and replaces every run of non alphanumerics with a dash
func Slugify(s string) string {
	b := strings.Builder{}
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
