package layouts

import (
	"github.com/nfrund/docchat/internal/ui"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// AppShell places page content beside the persistent navigation rail.
// active is the Href of the current section.
func AppShell(active string, content g.Node) g.Node {
	return html.Div(
		html.Class("flex h-screen w-full"),
		NavRail(active),
		content,
	)
}

// NavRail is the icon navigation shared by every page. Unlike section
// sidebars it may be collapsed to icons by the user.
func NavRail(active string) g.Node {
	return ui.Sidebar(
		ui.SidebarProps{ID: "app-sidebar", Collapsible: ui.CollapsibleIcon, Class: "w-[calc(var(--rail-width)+1px)] shrink-0"},
		ui.SidebarContent(
			html.Nav(
				html.Class("flex flex-col items-center gap-1 p-2"),
				g.Map(DefaultNav, func(item NavItem) g.Node {
					return navLink(item, item.Href == active)
				}),
			),
		),
	)
}

func navLink(item NavItem, active bool) g.Node {
	return html.A(
		html.Href(item.Href),
		g.Attr("title", item.Label),
		html.Class("flex h-9 w-9 items-center justify-center rounded-md hover:bg-sidebar-accent"),
		g.If(active, html.Aria("current", "page")),
		html.Span(g.Text(item.Icon)),
		html.Span(g.Attr("data-label", ""), html.Class("sr-only"), g.Text(item.Label)),
	)
}
