package chatshell

import (
	"github.com/nfrund/docchat/internal/domain"
	"github.com/nfrund/docchat/internal/ui"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// ChatListID is the id of the sidebar region reserved for the chat-thread list.
// Nothing populates it yet; it exists so a list can be swapped in without
// changing the layout.
const ChatListID = "chat-list"

// LayoutProps is everything the chat layout needs besides its children.
type LayoutProps struct {
	User     domain.UserIdentity
	Unreads  UnreadsProps
	Viewport Viewport
}

// Layout renders the chat section: a fixed-width secondary sidebar beside the
// main region holding children. The sidebar is hidden below the md breakpoint
// by CSS and cannot be collapsed by the user. children is rendered exactly once
// and never inspected.
func Layout(props LayoutProps, children g.Node) g.Node {
	return html.Div(
		html.Class("flex h-screen w-full"),
		g.If(props.Viewport.ShowsSidebar(), Sidebar(props)),
		html.Main(
			html.ID("chat-main"),
			html.Class("flex h-screen min-w-0 flex-1 flex-col"),
			children,
		),
	)
}

// Sidebar is the chat-only secondary sidebar.
func Sidebar(props LayoutProps) g.Node {
	return ui.Sidebar(
		ui.SidebarProps{ID: "chat-sidebar", Collapsible: ui.CollapsibleNone, Class: "hidden w-[350px] md:flex"},
		ui.SidebarHeader("gap-3.5 border-b p-4",
			html.Div(
				html.Class("flex w-full items-center justify-between"),
				html.Div(html.Class("text-foreground text-base font-medium"), g.Text("Chat")),
				ui.Label("flex items-center gap-2 text-sm",
					html.Span(g.Text("Unreads")),
					UnreadsSwitch(props.Unreads),
				),
			),
			ui.SidebarInput("q", "Type to search..."),
		),
		ui.SidebarContent(
			ui.SidebarGroup("px-0",
				ui.SidebarGroupContent(ChatListID),
			),
		),
		ui.SidebarFooter(
			ui.NavUser(props.User),
		),
	)
}

// Home is the main-region content shown when no conversation is open.
func Home() g.Node {
	return html.Div(
		html.Class("flex h-full w-full flex-col items-center justify-center gap-2"),
		html.P(html.Class("text-xl font-bold text-gray-700"), g.Text("No conversation selected")),
		html.P(html.Class("text-base text-gray-500"), g.Text("Pick a chat from the list to start.")),
	)
}
