package content

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Link is a navigation entry pointing at a section anchor.
type Link struct {
	Label  string `yaml:"label"`
	Anchor string `yaml:"anchor"`
}

type Hero struct {
	Badge        string `yaml:"badge"`
	Headline     string `yaml:"headline"`
	Highlight    string `yaml:"highlight"`
	Body         string `yaml:"body"`
	PrimaryCTA   string `yaml:"primary_cta"`
	SecondaryCTA string `yaml:"secondary_cta"`
}

type Feature struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
}

type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

type Plan struct {
	Name     string   `yaml:"name"`
	Price    string   `yaml:"price"`
	Features []string `yaml:"features"`
	CTA      string   `yaml:"cta"`
	Popular  bool     `yaml:"popular"`
}

type CallToAction struct {
	Headline  string `yaml:"headline"`
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Note      string `yaml:"note"`
}

type FooterColumn struct {
	Title string   `yaml:"title"`
	Links []string `yaml:"links"`
}

type Footer struct {
	Blurb   string         `yaml:"blurb"`
	Social  []string       `yaml:"social"`
	Columns []FooterColumn `yaml:"columns"`
	Legal   string         `yaml:"legal"`
	Bottom  []string       `yaml:"bottom"`
}

// Site is the full set of static copy rendered by the page.
type Site struct {
	Brand         string       `yaml:"brand"`
	Links         []Link       `yaml:"links"`
	NavCTA        string       `yaml:"nav_cta"`
	Hero          Hero         `yaml:"hero"`
	FeaturesTitle string       `yaml:"features_title"`
	FeaturesIntro string       `yaml:"features_intro"`
	Features      []Feature    `yaml:"features"`
	Stats         []Stat       `yaml:"stats"`
	PricingTitle  string       `yaml:"pricing_title"`
	PricingIntro  string       `yaml:"pricing_intro"`
	Plans         []Plan       `yaml:"plans"`
	CTA           CallToAction `yaml:"cta"`
	Footer        Footer       `yaml:"footer"`
}

// Default returns the built-in NexusFlow copy.
func Default() Site {
	return Site{
		Brand: "NexusFlow",
		Links: []Link{
			{Label: "Features", Anchor: "features"},
			{Label: "Solutions", Anchor: "solutions"},
			{Label: "Pricing", Anchor: "pricing"},
		},
		NavCTA: "Get Started",
		Hero: Hero{
			Badge:        "New: Version 2.0 is here",
			Headline:     "Scale your workflow",
			Highlight:    "without the friction.",
			Body:         "The all-in-one platform to manage projects, automate tasks, and collaborate with your team in real-time. Built for modern teams.",
			PrimaryCTA:   "Start Free Trial",
			SecondaryCTA: "Book a Demo",
		},
		FeaturesTitle: "Everything you need to grow",
		FeaturesIntro: "Powerful features to help you manage your business more effectively and scale faster than ever.",
		Features: []Feature{
			{Title: "Real-time Collaboration", Description: "Work together with your team in real-time with built-in chat and live editing.", Icon: "globe"},
			{Title: "Smart Automation", Description: "Automate repetitive tasks with our powerful drag-and-drop workflow builder.", Icon: "zap"},
			{Title: "Enterprise Security", Description: "Your data is safe with bank-grade encryption and SOC2 compliance.", Icon: "shield"},
			{Title: "Mobile Ready", Description: "Access your workspace from anywhere with our native iOS and Android apps.", Icon: "smartphone"},
			{Title: "Custom Layouts", Description: "Personalize your dashboard with modular widgets and custom themes.", Icon: "layout"},
			{Title: "Deep Analytics", Description: "Gain insights into your team's performance with advanced reporting tools.", Icon: "layers"},
		},
		Stats: []Stat{
			{Value: "99.9%", Label: "Uptime"},
			{Value: "250k+", Label: "Users"},
			{Value: "50+", Label: "Integrations"},
			{Value: "24/7", Label: "Support"},
		},
		PricingTitle: "Simple, transparent pricing",
		PricingIntro: "Choose the plan that's right for your business.",
		Plans: []Plan{
			{Name: "Starter", Price: "0", Features: []string{"Up to 3 projects", "Basic analytics", "24h support", "1GB storage"}, CTA: "Get Started"},
			{Name: "Pro", Price: "29", Features: []string{"Unlimited projects", "Advanced analytics", "Priority support", "10GB storage", "Custom domains"}, CTA: "Start Free Trial", Popular: true},
			{Name: "Enterprise", Price: "99", Features: []string{"Everything in Pro", "SSO & SAML", "Dedicated manager", "Unlimited storage", "Custom contracts"}, CTA: "Contact Sales"},
		},
		CTA: CallToAction{
			Headline:  "Ready to transform your team's productivity?",
			Primary:   "Get Started for Free",
			Secondary: "Talk to Sales",
			Note:      "No credit card required. 14-day free trial.",
		},
		Footer: Footer{
			Blurb:  "Making workflow management simple and efficient for teams of all sizes.",
			Social: []string{"Twitter", "GitHub", "LinkedIn"},
			Columns: []FooterColumn{
				{Title: "Product", Links: []string{"Features", "Integrations", "Pricing", "Changelog"}},
				{Title: "Company", Links: []string{"About Us", "Careers", "Blog", "Contact"}},
				{Title: "Legal", Links: []string{"Privacy", "Terms", "Cookie Policy"}},
			},
			Legal:  "© 2024 NexusFlow Inc. All rights reserved.",
			Bottom: []string{"Status", "Security"},
		},
	}
}

// Load reads a YAML content file over the defaults. Keys absent from the
// file keep their default copy; lists present in the file replace the
// default list.
func Load(path string) (Site, error) {
	site := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return site, fmt.Errorf("reading content %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &site); err != nil {
		return site, fmt.Errorf("parsing content %s: %w", path, err)
	}

	if err := validate(site); err != nil {
		return site, fmt.Errorf("content %s: %w", path, err)
	}
	return site, nil
}

func validate(site Site) error {
	if site.Brand == "" {
		return fmt.Errorf("brand must not be empty")
	}
	for i, l := range site.Links {
		if l.Label == "" || l.Anchor == "" {
			return fmt.Errorf("links[%d] needs both label and anchor", i)
		}
	}
	return nil
}
