package nav

// Detector identifies one structural pattern for a navigation region.
// Detectors are tried in order; the first whose selector matches a region
// containing at least one usable link wins.
type Detector struct {
	// Name identifies the pattern for logging.
	Name string

	// Selector is the goquery/CSS selector for the region container.
	Selector string
}

// DefaultDetectors lists the recognized navigation containers, most specific
// first. The trailing bare <nav> entry catches sites using semantic markup
// without generator-specific classes.
func DefaultDetectors() []Detector {
	return []Detector{
		{Name: "vuepress-sidebar", Selector: "aside.sidebar"},
		{Name: "sidebar-links", Selector: "ul.sidebar-links"},
		{Name: "docusaurus-sidebar", Selector: "nav.menu, div.theme-doc-sidebar-container"},
		{Name: "mkdocs-nav", Selector: "nav.md-nav--primary"},
		{Name: "generic-sidebar", Selector: "nav.sidebar, div.sidebar, aside"},
		{Name: "semantic-nav", Selector: "nav"},
	}
}
