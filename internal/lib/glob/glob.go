package glob

import (
	"path/filepath"
	"strings"

	"github.com/ImSingee/go-ex/ee"
	"github.com/gobwas/glob"
)

func Match(pattern string, g glob.Glob, name string) bool {
	if strings.Contains(pattern, "/") {
		return match(g, filepath.ToSlash(name))
	} else {
		return match(g, filepath.Base(name))
	}
}

func match(g glob.Glob, target string) bool {
	return g.Match(target)
}

// Pattern is a compiled glob which remembers its source
type Pattern struct {
	Source string
	g      glob.Glob
}

func Compile(pattern string) (*Pattern, error) {
	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return nil, ee.Wrapf(err, "invalid glob pattern %q", pattern)
	}

	return &Pattern{Source: pattern, g: g}, nil
}

func (p *Pattern) Match(name string) bool {
	return Match(p.Source, p.g, name)
}

// Root is the longest leading part of the pattern without meta characters,
// used as the directory to start walking from.
func (p *Pattern) Root() string {
	parts := strings.Split(p.Source, "/")
	fixed := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.ContainsAny(part, "*?[{\\") {
			break
		}
		fixed = append(fixed, part)
	}

	if len(fixed) == 0 {
		return "."
	}

	return strings.Join(fixed, "/")
}
