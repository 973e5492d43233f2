// Package menu projects the static capability-tagged navigation tree
// through the authorization gate: each session sees only the entries its
// role can actually open.
package menu

import (
	_ "embed"
	"fmt"

	"github.com/kimloan/loanctl/internal/authz"
	"github.com/kimloan/loanctl/internal/session"
	"gopkg.in/yaml.v3"
)

//go:embed menu.yaml
var menuYAML []byte

// Item is one node of the navigation tree. Permission, when set, names the
// permission a session needs for the item to be projected.
type Item struct {
	Title      string `yaml:"title"`
	Path       string `yaml:"path,omitempty"`
	Permission string `yaml:"permission,omitempty"`
	Children   []Item `yaml:"children,omitempty"`
}

// Load parses the embedded menu definition. The definition ships with the
// binary, so a parse failure is a build defect rather than a runtime
// condition; it is still returned as an error so callers can fail loudly.
func Load() ([]Item, error) {
	var items []Item
	if err := yaml.Unmarshal(menuYAML, &items); err != nil {
		return nil, fmt.Errorf("parsing embedded menu definition: %w", err)
	}

	return items, nil
}

// ProjectFor filters the tree for a session. Unauthenticated sessions see
// nothing. A parent that loses all its children and has no path of its own
// is dropped entirely.
func ProjectFor(items []Item, snap session.Snapshot) []Item {
	if !snap.IsAuthenticated {
		return nil
	}

	var visible []Item

	for _, item := range items {
		if authz.Require(snap, item.Permission) != authz.Allow {
			continue
		}

		projected := item
		projected.Children = ProjectFor(item.Children, snap)

		if projected.Path == "" && len(item.Children) > 0 && len(projected.Children) == 0 {
			continue
		}

		visible = append(visible, projected)
	}

	return visible
}
