package templates

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ImSingee/go-ex/ee"
)

// copyDir copies every regular file below from into to, skipping .git
func copyDir(from, to string) error {
	return filepath.WalkDir(from, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(from, path)
		if err != nil {
			return err
		}
		target := filepath.Join(to, rel)

		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return os.MkdirAll(target, 0755)
		}
		if !d.Type().IsRegular() {
			return nil
		}

		return copyFile(path, target)
	})
}

func copyFile(from, to string) error {
	fromF, err := os.Open(from)
	if err != nil {
		return ee.Wrapf(err, "cannot open source file %s", from)
	}
	defer fromF.Close()

	stat, err := fromF.Stat()
	if err != nil {
		return ee.Wrapf(err, "cannot stat source file %s", from)
	}

	toF, err := os.OpenFile(to, os.O_WRONLY|os.O_CREATE|os.O_EXCL, stat.Mode())
	if err != nil {
		return ee.Wrapf(err, "cannot open destination file %s", to)
	}
	defer toF.Close()

	_, err = io.Copy(toF, fromF)
	if err != nil {
		return ee.Wrap(err, "cannot copy data")
	}

	return nil
}
