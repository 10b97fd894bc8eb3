package ignore

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/ImSingee/go-ex/ee"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

type Matcher = gitignore.Matcher
type Pattern = gitignore.Pattern

const (
	commentPrefix = "#"
	gitDir        = ".git"

	// FileName is the ignore file honored inside theme extension directories
	FileName = ".shopifyignore"
)

// always ignored, lowest priority so a `!pattern` line can re-include them
var defaultPatterns = []string{
	".git",
	"node_modules",
	".DS_Store",
	"*.swp",
	"*~",
}

func NewMatcher(ps []Pattern) Matcher {
	return gitignore.NewMatcher(ps)
}

// Filter answers whether a path below root should be ignored
type Filter struct {
	root    string
	matcher Matcher
}

// Load reads every .shopifyignore below root
func Load(root string) (*Filter, error) {
	ps := make([]Pattern, 0, len(defaultPatterns))
	for _, p := range defaultPatterns {
		ps = append(ps, gitignore.ParsePattern(p, nil))
	}

	found, err := ReadPatterns(root, nil, FileName)
	if err != nil {
		return nil, ee.Wrapf(err, "cannot read %s files in %s", FileName, root)
	}
	ps = append(ps, found...)

	return &Filter{root: root, matcher: NewMatcher(ps)}, nil
}

// Ignored accepts absolute paths or paths relative to root
func (f *Filter) Ignored(path string, isDir bool) bool {
	rel := path
	if filepath.IsAbs(path) {
		r, err := filepath.Rel(f.root, path)
		if err != nil || strings.HasPrefix(r, "..") {
			return false
		}
		rel = r
	}

	rel = filepath.ToSlash(filepath.Clean(rel))
	if rel == "." {
		return false
	}

	return f.matcher.Match(strings.Split(rel, "/"), isDir)
}

// ReadPatterns read and parse ignoreFileNames recursively
//
// The result is in the ascending order of priority (last higher).
func ReadPatterns(root string, dirs []string, ignoreFileNames ...string) ([]Pattern, error) {
	ps, err := readIgnoreFiles(root, dirs, ignoreFileNames...)
	if err != nil {
		return nil, err
	}

	sub, err := os.ReadDir(filepath.Join(root, filepath.Join(dirs...)))
	if err != nil {
		return nil, err
	}

	for _, fi := range sub {
		if !fi.IsDir() || fi.Name() == gitDir || fi.Name() == "node_modules" {
			continue
		}

		nextDirs := make([]string, 0, len(dirs)+1)
		nextDirs = append(nextDirs, dirs...)
		nextDirs = append(nextDirs, fi.Name())

		subps, err := ReadPatterns(root, nextDirs, ignoreFileNames...)
		if err != nil {
			return nil, err
		}
		ps = append(ps, subps...)
	}

	return ps, nil
}

func readIgnoreFiles(root string, dirs []string, ignoreFiles ...string) (ps []Pattern, err error) {
	for _, ignoreFile := range ignoreFiles {
		subps, err := readIgnoreFile(root, dirs, ignoreFile)
		if err != nil {
			return nil, err
		}

		ps = append(ps, subps...)
	}
	return
}

func readIgnoreFile(root string, dirs []string, ignoreFile string) (ps []Pattern, err error) {
	filename := filepath.Join(root, filepath.Join(dirs...), ignoreFile)

	f, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		s := strings.TrimSpace(scanner.Text())
		if s == "" || strings.HasPrefix(s, commentPrefix) {
			continue
		}

		ps = append(ps, gitignore.ParsePattern(s, dirs))
	}

	return ps, scanner.Err()
}
