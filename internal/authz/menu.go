package authz

import (
	"sort"

	"github.com/JuanDPAffi/redelex-api/internal/session"
)

// MenuEntry is a declarative sidebar link. Entries carrying neither roles
// nor permissions are public to any authenticated session. Disabled takes
// the zero value, so an entry declared without it is visible.
type MenuEntry struct {
	ID          string         `json:"id"`
	Label       string         `json:"label"`
	Icon        string         `json:"icon,omitempty"`
	Route       string         `json:"route"`
	Roles       []session.Role `json:"roles,omitempty"`
	Permissions []string       `json:"permissions,omitempty"`
	Disabled    bool           `json:"disabled,omitempty"`
	Order       int            `json:"order"`
}

type MenuSection struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Entries     []MenuEntry    `json:"entries"`
	Roles       []session.Role `json:"roles,omitempty"`
	Permissions []string       `json:"permissions,omitempty"`
	Order       int            `json:"order"`
}

func entryVisible(e MenuEntry, s *session.Session) bool {
	if e.Disabled {
		return false
	}
	if len(e.Roles) == 0 && len(e.Permissions) == 0 {
		return s != nil
	}
	if len(e.Roles) > 0 && HasRole(s, e.Roles...) {
		return true
	}
	return len(e.Permissions) > 0 && HasAnyPermission(s, e.Permissions)
}

func sectionVisible(sec MenuSection, s *session.Session) bool {
	if len(sec.Roles) == 0 && len(sec.Permissions) == 0 {
		return s != nil
	}
	if len(sec.Roles) > 0 && HasRole(s, sec.Roles...) {
		return true
	}
	return len(sec.Permissions) > 0 && HasAnyPermission(s, sec.Permissions)
}

// FilterMenu produces the visible subset of the declared menu for a
// session. It goes through the same evaluator as the route guards, so
// what is shown and what is reachable cannot diverge. Input is never
// mutated; sections and entries come back sorted ascending by Order.
func FilterMenu(sections []MenuSection, s *session.Session) []MenuSection {
	visible := make([]MenuSection, 0, len(sections))
	for _, sec := range sections {
		if !sectionVisible(sec, s) {
			continue
		}
		entries := make([]MenuEntry, 0, len(sec.Entries))
		for _, e := range sec.Entries {
			if entryVisible(e, s) {
				entries = append(entries, e)
			}
		}
		if len(entries) == 0 {
			continue
		}
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].Order < entries[j].Order })
		out := sec
		out.Entries = entries
		visible = append(visible, out)
	}
	sort.SliceStable(visible, func(i, j int) bool { return visible[i].Order < visible[j].Order })
	return visible
}
