package domain

// Tool is a versioned snippet: a named, parameterized piece of content that
// runs through a frontend component (text insertion, link opener, etc.).
type Tool struct {
	VersionMeta

	CollectionID  int64
	Name          string
	Description   string
	Icon          *string
	Component     string
	Inputs        []map[string]any
	Configuration map[string]any
	Keywords      []string
}

// Scope locates the tool's permission boundary.
func (t *Tool) Scope() Scope { return Scope{CollectionID: &t.CollectionID} }

// Workflow is a versioned playbook: an ordered rich-text document that may
// embed tools and links.
type Workflow struct {
	VersionMeta

	CollectionID int64
	Name         string
	Description  string
	Icon         *string
	Contents     []map[string]any
	Keywords     []string
}

// Scope locates the workflow's permission boundary.
func (w *Workflow) Scope() Scope { return Scope{CollectionID: &w.CollectionID} }
