package nav

import "smartevents/internal/domain/session"

// Panel identifiers. One panel is a single screen inside a role's
// dashboard shell; the active panel is derived from the `page` URL query
// parameter and nothing else.
const (
	PanelDashboard  = "dashboard"
	PanelEvents     = "events"
	PanelMyTickets  = "mytickets"
	PanelCategories = "categories"
	PanelUsers      = "users"
	PanelAnalytics  = "analytics"
	PanelProfile    = "profile"
	PanelSettings   = "settings"
)

// panelsByRole maps each role to the panels its dashboard shell offers.
var panelsByRole = map[string][]string{
	session.RoleStudent:   {PanelDashboard, PanelEvents, PanelMyTickets, PanelProfile, PanelSettings},
	session.RoleOrganizer: {PanelDashboard, PanelEvents, PanelAnalytics, PanelProfile, PanelSettings},
	session.RoleAdmin:     {PanelDashboard, PanelEvents, PanelCategories, PanelUsers, PanelAnalytics, PanelProfile, PanelSettings},
}

// Resolve maps (role, page query parameter) to the panel to render.
// Unknown roles, unknown pages, and pages not allowed for the role all
// resolve to the dashboard panel. The mapping is pure: resolving the same
// inputs always yields the same panel, so re-reading the URL after a
// navigation reproduces the selection.
func Resolve(role, page string) string {
	for _, p := range panelsByRole[role] {
		if p == page {
			return p
		}
	}
	return PanelDashboard
}

// Panels returns the ordered panel list for a role's sidebar.
// Unknown roles get an empty list.
func Panels(role string) []string {
	ps := panelsByRole[role]
	out := make([]string, len(ps))
	copy(out, ps)
	return out
}

// Allowed reports whether a page names a panel the role may open.
func Allowed(role, page string) bool {
	for _, p := range panelsByRole[role] {
		if p == page {
			return true
		}
	}
	return false
}

// ShellPath returns the dashboard shell URL for a role, used after login
// and when a 401 forces a fresh session. Unknown roles land on /login.
func ShellPath(role string) string {
	switch role {
	case session.RoleStudent:
		return "/student"
	case session.RoleOrganizer:
		return "/organizer"
	case session.RoleAdmin:
		return "/admin"
	}
	return "/login"
}
