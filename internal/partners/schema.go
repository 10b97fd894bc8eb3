package partners

import (
	"strings"

	"github.com/ImSingee/go-ex/mr"
)

type UserError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

// JoinMessages joins all user error messages in their returned order
func JoinMessages(errs []UserError) string {
	return strings.Join(mr.Map(errs, func(e UserError, _ int) string {
		return e.Message
	}), ", ")
}

type VersionDiffEntry struct {
	UUID              string `json:"uuid"`
	RegistrationTitle string `json:"registrationTitle"`
}

type VersionsDiff struct {
	Added   []VersionDiffEntry `json:"added"`
	Updated []VersionDiffEntry `json:"updated"`
	Removed []VersionDiffEntry `json:"removed"`
}

func (d VersionsDiff) Empty() bool {
	return len(d.Added) == 0 && len(d.Updated) == 0 && len(d.Removed) == 0
}

type AppVersionsDiffSchema struct {
	App struct {
		VersionsDiff VersionsDiff `json:"versionsDiff"`
	} `json:"app"`
}

type Deployment struct {
	Location   string `json:"location"`
	VersionTag string `json:"versionTag"`
	Message    string `json:"message"`
}

type AppReleaseSchema struct {
	AppRelease struct {
		Deployment Deployment  `json:"deployment"`
		UserErrors []UserError `json:"userErrors"`
	} `json:"appRelease"`
}

type TemplateFlavor struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Path  string `json:"path,omitempty"`
}

type TemplateType struct {
	URL              string           `json:"url"`
	Type             string           `json:"type"`
	ExtensionPoints  []string         `json:"extensionPoints"`
	SupportedFlavors []TemplateFlavor `json:"supportedFlavors"`
}

type TemplateSpecification struct {
	Identifier   string         `json:"identifier"`
	Name         string         `json:"name"`
	DefaultName  string         `json:"defaultName"`
	Group        string         `json:"group"`
	SupportLinks []string       `json:"supportLinks"`
	Types        []TemplateType `json:"types"`
}

type RemoteTemplateSpecificationsSchema struct {
	TemplateSpecifications []TemplateSpecification `json:"templateSpecifications"`
}

type UpdateURLsSchema struct {
	AppUpdate struct {
		UserErrors []UserError `json:"userErrors"`
	} `json:"appUpdate"`
}

type AppVersion struct {
	Status     string `json:"status"`
	VersionTag string `json:"versionTag"`
	Message    string `json:"message"`
	CreatedAt  string `json:"createdAt"`
	CreatedBy  struct {
		DisplayName string `json:"displayName"`
	} `json:"createdBy"`
}

type AppVersionsSchema struct {
	App struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		AppVersions struct {
			Nodes []AppVersion `json:"nodes"`
		} `json:"appVersions"`
	} `json:"app"`
}
