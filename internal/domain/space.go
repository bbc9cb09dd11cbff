package domain

// Space is a versioned, org-scoped arrangement of widgets shown to a set of
// user groups.
type Space struct {
	VersionMeta

	OrganizationID  int64
	Name            string
	Icon            *string
	VisibleToGroups []map[string]any
	Widgets         []map[string]any
}

// Scope locates the space's permission boundary.
func (s *Space) Scope() Scope { return Scope{OrganizationID: &s.OrganizationID} }

// Widget is a versioned, org-scoped embeddable content block placed inside
// spaces.
type Widget struct {
	VersionMeta

	OrganizationID int64
	Contents       map[string]any
	Inputs         []map[string]any
}

// Scope locates the widget's permission boundary.
func (w *Widget) Scope() Scope { return Scope{OrganizationID: &w.OrganizationID} }
