package view

import (
	"strings"

	"github.com/Nawaf-Almansour/prep-manger/internal/session"
)

var allRoles = []string{session.RolePrep, session.RoleSupervisor, session.RoleManager}

// NavItem is one sidebar entry. Its roles also guard the routes under Href.
type NavItem struct {
	LabelKey string
	Href     string
	Icon     string
	Roles    []string
}

// NavLink is a NavItem resolved for the current request.
type NavLink struct {
	NavItem
	Active bool
}

var Navigation = []NavItem{
	{LabelKey: "nav.dashboard", Href: "/dashboard", Icon: "layout-dashboard", Roles: allRoles},
	{LabelKey: "nav.myTasks", Href: "/tasks/my-tasks", Icon: "check-square", Roles: allRoles},
	{LabelKey: "nav.allTasks", Href: "/tasks", Icon: "clipboard-list", Roles: []string{session.RoleSupervisor, session.RoleManager}},
	{LabelKey: "nav.products", Href: "/products", Icon: "package", Roles: allRoles},
	{LabelKey: "nav.categories", Href: "/categories", Icon: "tag", Roles: []string{session.RoleManager}},
	{LabelKey: "nav.inventory", Href: "/inventory", Icon: "warehouse", Roles: allRoles},
	{LabelKey: "nav.reports", Href: "/reports", Icon: "bar-chart", Roles: []string{session.RoleSupervisor, session.RoleManager}},
	{LabelKey: "nav.users", Href: "/users", Icon: "users", Roles: []string{session.RoleManager}},
}

// IsActive reports whether path is href or below it.
func IsActive(path, href string) bool {
	return path == href || strings.HasPrefix(path, href+"/")
}

// VisibleNav returns the items user may see, flagged active against path.
func VisibleNav(user *session.Principal, path string) []NavLink {
	if user == nil {
		return nil
	}
	links := make([]NavLink, 0, len(Navigation))
	for _, item := range Navigation {
		if !user.HasRole(item.Roles...) {
			continue
		}
		links = append(links, NavLink{NavItem: item, Active: IsActive(path, item.Href)})
	}
	return links
}

// RolesFor returns the roles of the navigation entry with href.
func RolesFor(href string) []string {
	for _, item := range Navigation {
		if item.Href == href {
			return item.Roles
		}
	}
	return allRoles
}
