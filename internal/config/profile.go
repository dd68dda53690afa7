package config

// Profile holds style overrides for a family of mirrored sites, typically
// keyed by the generator that produced them (vuepress, mkdocs, docusaurus).
// Profiles tune what gets hidden and waited for during rendering without
// touching the command line every run.
type Profile struct {
	// HideSelectors are CSS selectors hidden in addition to the built-in
	// sidebar/navigation set when sidebar hiding is enabled.
	HideSelectors []string `yaml:"hideSelectors,omitempty"`

	// ContentSelectors are CSS selectors the renderer waits for before
	// capturing, so the main content is known to be attached.
	ContentSelectors []string `yaml:"contentSelectors,omitempty"`

	// SettleMS overrides the settle interval, in milliseconds.
	// Zero keeps the global setting.
	SettleMS int `yaml:"settleMS,omitempty"`

	// Scale overrides the capture scale factor. Zero keeps the global setting.
	Scale float64 `yaml:"scale,omitempty"`

	// Paper overrides the sheet size. Empty keeps the global setting.
	Paper string `yaml:"paper,omitempty"`
}

// File represents the structure of the .mirrorpress profile file.
type File struct {
	// Profiles maps profile names to their style overrides.
	Profiles map[string]Profile `yaml:"profiles,omitempty"`

	// Defaults contains overrides applied to every run unless a named
	// profile overrides them again.
	Defaults Profile `yaml:"defaults,omitempty"`
}

// GetProfile returns the merged profile for the given name: Defaults
// overlaid with the named profile's non-zero fields. An empty or unknown
// name yields Defaults alone.
func (f *File) GetProfile(name string) Profile {
	result := f.Defaults

	p, ok := f.Profiles[name]
	if !ok {
		return result
	}

	if len(p.HideSelectors) > 0 {
		result.HideSelectors = append(result.HideSelectors, p.HideSelectors...)
	}
	if len(p.ContentSelectors) > 0 {
		result.ContentSelectors = p.ContentSelectors
	}
	if p.SettleMS > 0 {
		result.SettleMS = p.SettleMS
	}
	if p.Scale > 0 {
		result.Scale = p.Scale
	}
	if p.Paper != "" {
		result.Paper = p.Paper
	}

	return result
}
