package templates

const (
	cliRepository          = "https://github.com/Shopify/cli"
	uiExtensionsRepository = "https://github.com/Shopify/extensions-templates"
)

var jsFlavors = []Flavor{
	{Name: "JavaScript React", Value: "react"},
	{Name: "JavaScript", Value: "vanilla-js"},
	{Name: "TypeScript React", Value: "typescript-react"},
	{Name: "TypeScript", Value: "typescript"},
}

func flavorsAt(dir string, flavors []Flavor) []Flavor {
	result := make([]Flavor, len(flavors))
	for i, f := range flavors {
		f.Path = dir
		result[i] = f
	}
	return result
}

// LocalExtensionTemplates returns the templates bundled with the CLI, in display order
func LocalExtensionTemplates() []ExtensionTemplate {
	return []ExtensionTemplate{
		{
			Identifier:  "theme_app_extension",
			Name:        "Theme app extension",
			DefaultName: "theme-extension",
			Group:       "Online store",
			Types: []TemplateType{{
				Type: "theme",
				URL:  cliRepository,
				SupportedFlavors: []Flavor{
					{Name: "Liquid", Value: "liquid", Path: "packages/app/templates/theme-extension"},
				},
			}},
		},
		{
			Identifier:   "checkout_post_purchase",
			Name:         "Post-purchase UI",
			DefaultName:  "checkout-post-purchase",
			Group:        "Discounts and checkout",
			SupportLinks: []string{"https://shopify.dev/docs/apps/checkout/post-purchase"},
			Types: []TemplateType{{
				Type:             "checkout_post_purchase",
				URL:              uiExtensionsRepository,
				SupportedFlavors: flavorsAt("checkout-extension", jsFlavors),
			}},
		},
		{
			Identifier:  "checkout_ui",
			Name:        "Checkout UI",
			DefaultName: "checkout-ui",
			Group:       "Discounts and checkout",
			Types: []TemplateType{{
				Type:             "checkout_ui_extension",
				URL:              uiExtensionsRepository,
				ExtensionPoints:  []string{"Checkout::Dynamic::Render"},
				SupportedFlavors: flavorsAt("checkout-extension", jsFlavors),
			}},
		},
		{
			Identifier:  "customer_accounts_ui_extension",
			Name:        "Customer accounts UI",
			DefaultName: "customer-accounts-ui",
			Group:       "Customer accounts",
			Types: []TemplateType{{
				Type:             "customer_accounts_ui_extension",
				URL:              uiExtensionsRepository,
				ExtensionPoints:  []string{"CustomerAccount::FullPage::RenderWithin"},
				SupportedFlavors: flavorsAt("customer-accounts-extension", jsFlavors[:2]),
			}},
		},
		{
			Identifier:  "pos_ui",
			Name:        "POS UI",
			DefaultName: "pos-ui",
			Group:       "Point-of-Sale",
			Types: []TemplateType{{
				Type:             "pos_ui_extension",
				URL:              uiExtensionsRepository,
				SupportedFlavors: flavorsAt("pos-extension", jsFlavors),
			}},
		},
		{
			Identifier:  "subscription_ui",
			Name:        "Subscription UI",
			DefaultName: "subscription-ui",
			Group:       "Merchant admin",
			Types: []TemplateType{{
				Type:             "product_subscription",
				URL:              uiExtensionsRepository,
				SupportedFlavors: flavorsAt("subscription-extension", jsFlavors),
			}},
		},
		{
			Identifier:  "tax_calculation",
			Name:        "Tax calculation",
			DefaultName: "tax-calculation",
			Group:       "Discounts and checkout",
			Types: []TemplateType{{
				Type: "tax_calculation",
				URL:  cliRepository,
				SupportedFlavors: []Flavor{
					{Name: "Config only", Value: "config-only", Path: "packages/app/templates/tax-calculation"},
				},
			}},
		},
		{
			Identifier:  "ui_extension",
			Name:        "UI extension",
			DefaultName: "ui-extension",
			Group:       "Shopify private",
			Types: []TemplateType{{
				Type:             "ui_extension",
				URL:              uiExtensionsRepository,
				SupportedFlavors: flavorsAt("ui-extension", jsFlavors),
			}},
		},
		{
			Identifier:   "web_pixel",
			Name:         "Web pixel",
			DefaultName:  "web-pixel",
			Group:        "Analytics",
			SupportLinks: []string{"https://shopify.dev/docs/apps/marketing"},
			Types: []TemplateType{{
				Type: "web_pixel_extension",
				URL:  uiExtensionsRepository,
				SupportedFlavors: []Flavor{
					{Name: "JavaScript", Value: "vanilla-js", Path: "web-pixel-extension"},
					{Name: "TypeScript", Value: "typescript", Path: "web-pixel-extension"},
				},
			}},
		},
		{
			Identifier:  "flow_trigger",
			Name:        "Flow trigger",
			DefaultName: "flow-trigger",
			Group:       "Flow",
			Types: []TemplateType{{
				Type: "flow_trigger",
				URL:  uiExtensionsRepository,
				SupportedFlavors: []Flavor{
					{Name: "Config only", Value: "config-only", Path: "flow-trigger"},
				},
			}},
		},
		{
			Identifier:  "flow_action",
			Name:        "Flow action",
			DefaultName: "flow-action",
			Group:       "Flow",
			Types: []TemplateType{{
				Type: "flow_action",
				URL:  uiExtensionsRepository,
				SupportedFlavors: []Flavor{
					{Name: "Config only", Value: "config-only", Path: "flow-action"},
				},
			}},
		},
	}
}

// KnownSpecifications lists every identifier and main type of the local templates
func KnownSpecifications() []string {
	local := LocalExtensionTemplates()
	result := make([]string, 0, len(local)*2)
	for _, t := range local {
		result = append(result, t.Identifier)
		if main, ok := t.MainType(); ok && main.Type != t.Identifier {
			result = append(result, main.Type)
		}
	}
	return result
}
