package model

// SettingsGroup is an optional middle layer in the settings override chain.
// A group can replace the processing mode or either settings struct for the
// pages it covers; nil fields fall through to the global values.
type SettingsGroup struct {
	// ID distinguishes groups in preview cache keys.
	ID         string
	Mode       *Mode
	Extraction *ExtractionSettings
	Output     *OutputSettings
}

// Effective is the fully resolved settings for one request, produced by
// Resolve. It is computed once per request and passed by value; nothing in
// the engine mutates it.
type Effective struct {
	Mode       Mode
	Extraction ExtractionSettings
	Output     OutputSettings
	// GroupID is the resolved group's ID, or "" when no group applies.
	GroupID string
}

// Resolve merges the override chain global → group → page into an Effective
// settings value. Precedence is strictly positional: a page override beats a
// group override, which beats the global value. Only the processing mode can
// be overridden at the page level; extraction and output settings vary at
// most per group.
func Resolve(mode Mode, extraction ExtractionSettings, output OutputSettings, group *SettingsGroup, page *Page) Effective {
	eff := Effective{
		Mode:       mode,
		Extraction: extraction,
		Output:     output,
	}
	if group != nil {
		eff.GroupID = group.ID
		if group.Mode != nil {
			eff.Mode = *group.Mode
		}
		if group.Extraction != nil {
			eff.Extraction = *group.Extraction
		}
		if group.Output != nil {
			eff.Output = *group.Output
		}
	}
	if page != nil && page.ModeOverride != nil {
		eff.Mode = *page.ModeOverride
	}
	return eff
}
