package entity

import (
	"fmt"
	"html"
)

type Plugin struct {
	Name    string `json:"name,omitempty"`
	Slug    string `json:"slug,omitempty"`
	Version string `json:"version,omitempty"`
	Author  string `json:"author,omitempty"`
}

// DisplayName returns the plugin name with HTML entities decoded.
// The directory API returns names like "S&#038;S Forms".
func (p *Plugin) DisplayName() string {
	return html.UnescapeString(p.Name)
}

// Link returns the canonical plugin page, base URL plus slug.
func (p *Plugin) Link(baseURL string) string {
	return fmt.Sprintf("%s%s/", baseURL, p.Slug)
}

// HTMLLink renders the plugin page link as an HTML anchor, ready to
// paste into a support forum answer.
func (p *Plugin) HTMLLink(baseURL string) string {
	return fmt.Sprintf("<a href=\"%s\">%s</a>", p.Link(baseURL), p.DisplayName())
}

type SearchInfo struct {
	Page    int `json:"page,omitempty"`
	Pages   int `json:"pages,omitempty"`
	Results int `json:"results,omitempty"`
}

// ResultPage is one size-10 window into the search results, together
// with the totals the directory reports alongside every page.
type ResultPage struct {
	Info    SearchInfo `json:"info,omitempty"`
	Plugins []*Plugin  `json:"plugins,omitempty"`
}

// Offset is the number of records that precede this page.
func (p *ResultPage) Offset() int {
	if p.Info.Page < 1 {
		return 0
	}
	return (p.Info.Page - 1) * PageSize
}

// HasMore reports whether the directory has pages beyond this one.
func (p *ResultPage) HasMore() bool {
	return p.Info.Page < p.Info.Pages
}
