package main

import "gurbani-server/internal/config"

// NavItem represents a navigation destination
type NavItem struct {
	Name   string // "search", "hukamnama", "settings"
	Title  string // Display text
	Href   string // URL
	Icon   string // Optional icon
	Active bool   // Is this the current page
}

// GetNavItems returns the main navigation with activePage highlighted
func GetNavItems(activePage string) []NavItem {
	items := []NavItem{
		{Name: "search", Title: config.I18n("btn.search"), Href: "/", Icon: "🔍"},
		{Name: "hukamnama", Title: config.I18n("hukamnama.heading"), Href: "/hukamnama", Icon: "📜"},
		{Name: "settings", Title: config.I18n("nav.settings"), Href: "/settings", Icon: "⚙"},
	}
	for i := range items {
		items[i].Active = items[i].Name == activePage
	}
	return items
}
