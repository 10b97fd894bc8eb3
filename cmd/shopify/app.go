package main

import (
	"github.com/ImSingee/shopify-cli/internal/dev"
	"github.com/ImSingee/shopify-cli/internal/release"
	"github.com/ImSingee/shopify-cli/internal/templates"
	"github.com/ImSingee/shopify-cli/internal/versions"
)

func init() {
	appCommands = append(appCommands, release.Command())
	appCommands = append(appCommands, templates.Commands()...)
	appCommands = append(appCommands, dev.Commands()...)
	appCommands = append(appCommands, versions.Commands()...)
}
