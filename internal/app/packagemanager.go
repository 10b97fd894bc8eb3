package app

import (
	"os"
	"path/filepath"
)

var lockFiles = []struct {
	file    string
	manager string
}{
	{"yarn.lock", "yarn"},
	{"pnpm-lock.yaml", "pnpm"},
	{"bun.lockb", "bun"},
	{"package-lock.json", "npm"},
}

// DetectPackageManager looks at lock files in dir, defaulting to npm
func DetectPackageManager(dir string) string {
	for _, l := range lockFiles {
		if _, err := os.Stat(filepath.Join(dir, l.file)); err == nil {
			return l.manager
		}
	}
	return "npm"
}

// CommandPrefix is what a user types before `shopify ...` with this package manager
func CommandPrefix(manager string) string {
	switch manager {
	case "yarn":
		return "yarn"
	case "pnpm":
		return "pnpm"
	case "bun":
		return "bun run"
	default:
		return "npm run"
	}
}

// FormatPackageManagerCommand builds e.g. `yarn shopify app versions list`
func FormatPackageManagerCommand(manager string, command string) string {
	return CommandPrefix(manager) + " " + command
}
