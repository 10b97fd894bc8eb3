package templates

import (
	"github.com/ImSingee/go-ex/mr"

	"github.com/ImSingee/shopify-cli/internal/partners"
)

type Flavor struct {
	Name  string
	Value string
	Path  string // directory inside the template repository
}

type TemplateType struct {
	Type             string
	URL              string // repository, optionally suffixed with #branch
	ExtensionPoints  []string
	SupportedFlavors []Flavor
}

// ExtensionTemplate describes how to scaffold one kind of extension
type ExtensionTemplate struct {
	Identifier   string
	Name         string
	DefaultName  string
	Group        string
	SupportLinks []string
	Types        []TemplateType
}

// MainType is the first declared type, used for specification matching
func (t ExtensionTemplate) MainType() (TemplateType, bool) {
	if len(t.Types) == 0 {
		return TemplateType{}, false
	}
	return t.Types[0], true
}

// Flavor returns the flavor with the given value, or the first one when value is empty
func (tt TemplateType) Flavor(value string) (Flavor, bool) {
	for _, f := range tt.SupportedFlavors {
		if value == "" || f.Value == value {
			return f, true
		}
	}
	return Flavor{}, false
}

func fromRemote(spec partners.TemplateSpecification) ExtensionTemplate {
	return ExtensionTemplate{
		Identifier:   spec.Identifier,
		Name:         spec.Name,
		DefaultName:  spec.DefaultName,
		Group:        spec.Group,
		SupportLinks: spec.SupportLinks,
		Types: mr.Map(spec.Types, func(t partners.TemplateType, _ int) TemplateType {
			return TemplateType{
				Type:            t.Type,
				URL:             t.URL,
				ExtensionPoints: t.ExtensionPoints,
				SupportedFlavors: mr.Map(t.SupportedFlavors, func(f partners.TemplateFlavor, _ int) Flavor {
					return Flavor{Name: f.Name, Value: f.Value, Path: f.Path}
				}),
			}
		}),
	}
}
