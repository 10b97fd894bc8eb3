package version

import (
	"fmt"
	"runtime"
)

var (
	version = "DEV"
	commit  = ""
	buildAt = ""
)

func Version() string {
	return version
}
func Commit() string {
	return commit
}
func BuildAt() string {
	return buildAt
}

func IsDev() bool {
	return version == "DEV"
}

func GetVersionString() string {
	return fmt.Sprintf("%s\nCommit: %s\nBuild At: %s", version, commit, buildAt)
}

// UserAgent is sent with every API request
func UserAgent() string {
	return fmt.Sprintf("Shopify CLI (Go); v=%s; %s/%s", version, runtime.GOOS, runtime.GOARCH)
}
