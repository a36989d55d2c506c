package models

// Badge is a colored pill shown on a project card
type Badge struct {
	Text  string `json:"text" yaml:"text"`
	Color string `json:"color" yaml:"color"`
}

// Project represents a portfolio project
type Project struct {
	ID          string  `json:"id,omitempty" yaml:"id,omitempty"`
	Title       string  `json:"title" yaml:"title"`
	Description string  `json:"description" yaml:"description"`
	Link        string  `json:"link" yaml:"link"`
	Badges      []Badge `json:"badges" yaml:"badges,omitempty"`
}

// Key identifies a project across the featured and regular lists.
// An explicit ID wins; otherwise the exact title is used.
func (p Project) Key() string {
	if p.ID != "" {
		return p.ID
	}
	return p.Title
}

// ProjectList is the JSON shape served by the projects API
type ProjectList struct {
	Featured []Project `json:"featured"`
	Projects []Project `json:"projects"`
}
