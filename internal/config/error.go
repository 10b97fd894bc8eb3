package config

import (
	"os"

	"github.com/ImSingee/go-ex/ee"
)

// ErrNotExist is returned by FindConfigFile when none of ConfigFileNames exists
var ErrNotExist = ee.Wrap(os.ErrNotExist, "no shopify cli config file")

func IsNotExist(err error) bool {
	return ee.Is(err, os.ErrNotExist)
}
