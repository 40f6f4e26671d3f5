package ui

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	"maragu.dev/gomponents/html"
)

// Collapsible controls how a sidebar may be collapsed by the user.
type Collapsible string

const (
	// CollapsibleNone disables user collapse entirely; only CSS breakpoints decide visibility.
	CollapsibleNone Collapsible = "none"
	// CollapsibleIcon lets the user shrink the sidebar to its icon rail.
	CollapsibleIcon Collapsible = "icon"
)

// SidebarProps configures a Sidebar.
type SidebarProps struct {
	ID          string
	Collapsible Collapsible
	Class       string
}

// Sidebar renders a vertical panel. When the sidebar is collapsible a trigger
// button is rendered at its top; with CollapsibleNone no trigger exists.
func Sidebar(props SidebarProps, children ...g.Node) g.Node {
	collapsible := props.Collapsible
	if collapsible == "" {
		collapsible = CollapsibleNone
	}

	return html.Aside(
		g.If(props.ID != "", html.ID(props.ID)),
		html.Class(cx("bg-sidebar text-sidebar-foreground flex h-full flex-col border-r", props.Class)),
		g.Attr("data-sidebar", "sidebar"),
		g.Attr("data-collapsible", string(collapsible)),
		g.If(collapsible != CollapsibleNone, sidebarTrigger(props.ID)),
		g.Group(children),
	)
}

// sidebarTrigger toggles the data-state of its enclosing sidebar on the client.
func sidebarTrigger(id string) g.Node {
	return html.Button(
		html.Type("button"),
		html.Class("m-2 rounded p-1 hover:bg-sidebar-accent"),
		g.Attr("data-sidebar", "trigger"),
		html.Aria("label", "Toggle sidebar"),
		hx.On("click", "this.closest('[data-sidebar=sidebar]').toggleAttribute('data-collapsed')"),
		g.Text("☰"),
	)
}

// SidebarHeader is the top region of a sidebar.
func SidebarHeader(class string, children ...g.Node) g.Node {
	return html.Div(g.Attr("data-sidebar", "header"), html.Class(cx("flex flex-col gap-2 p-2", class)), g.Group(children))
}

// SidebarContent is the scrollable body region of a sidebar.
func SidebarContent(children ...g.Node) g.Node {
	return html.Div(g.Attr("data-sidebar", "content"), html.Class("flex min-h-0 flex-1 flex-col gap-2 overflow-auto"), g.Group(children))
}

// SidebarFooter is the bottom region of a sidebar.
func SidebarFooter(children ...g.Node) g.Node {
	return html.Div(g.Attr("data-sidebar", "footer"), html.Class("flex flex-col gap-2 p-2"), g.Group(children))
}

// SidebarGroup groups related content inside SidebarContent.
func SidebarGroup(class string, children ...g.Node) g.Node {
	return html.Div(g.Attr("data-sidebar", "group"), html.Class(cx("relative flex w-full min-w-0 flex-col p-2", class)), g.Group(children))
}

// SidebarGroupContent wraps a group's items. id may be empty.
func SidebarGroupContent(id string, children ...g.Node) g.Node {
	return html.Div(
		g.If(id != "", html.ID(id)),
		g.Attr("data-sidebar", "group-content"),
		html.Class("w-full text-sm"),
		g.Group(children),
	)
}

// SidebarInput is a compact text input styled for sidebars.
func SidebarInput(name, placeholder string) g.Node {
	return html.Input(
		html.Type("search"),
		html.Name(name),
		html.Placeholder(placeholder),
		g.Attr("data-sidebar", "input"),
		html.Class("bg-background h-8 w-full rounded-md border px-2 shadow-none"),
	)
}
