package ui

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	"maragu.dev/gomponents/html"
)

// DialogProps configures a Dialog. The dialog holds no state itself: the owner
// passes Open and supplies the Dismiss action the dialog fires on close button,
// backdrop click and Escape.
type DialogProps struct {
	ID          string
	Open        bool
	Title       string
	Description string
	Class       string
	Dismiss     Action
}

// Dialog renders a modal region. When closed it renders only an empty anchor
// element so the owner can swap content into it later; no content is mounted.
func Dialog(props DialogProps, body ...g.Node) g.Node {
	if !props.Open {
		return html.Div(html.ID(props.ID), g.Attr("data-state", "closed"))
	}

	titleID := props.ID + "-title"
	descID := props.ID + "-description"

	return html.Div(
		html.ID(props.ID),
		g.Attr("data-state", "open"),
		html.Div(
			html.Class("fixed inset-0 z-50 bg-black/50"),
			g.Attr("data-dialog", "overlay"),
			props.Dismiss.Attrs(),
			hx.Trigger("click"),
		),
		html.Div(
			html.Role("dialog"),
			html.Aria("modal", "true"),
			html.Aria("labelledby", titleID),
			html.Aria("describedby", descID),
			g.Attr("data-dialog", "content"),
			html.Class(cx("bg-background fixed left-1/2 top-1/2 z-50 grid w-full -translate-x-1/2 -translate-y-1/2 gap-4 rounded-lg border p-6 shadow-lg", props.Class)),
			html.Div(
				g.Attr("data-dialog", "escape"),
				html.Class("hidden"),
				props.Dismiss.Attrs(),
				hx.Trigger("keyup[key=='Escape'] from:body"),
			),
			DialogHeader(
				DialogTitle(titleID, props.Title),
				DialogDescription(descID, props.Description),
			),
			g.Group(body),
			html.Button(
				html.Type("button"),
				g.Attr("data-dialog", "close"),
				html.Aria("label", "Close"),
				html.Class("absolute right-4 top-4 rounded-sm opacity-70 hover:opacity-100"),
				props.Dismiss.Attrs(),
				g.Text("×"),
			),
		),
	)
}

// DialogHeader stacks the title and description.
func DialogHeader(children ...g.Node) g.Node {
	return html.Div(html.Class("flex flex-col gap-2 text-center sm:text-left"), g.Group(children))
}

// DialogTitle is the dialog's accessible name.
func DialogTitle(id, text string) g.Node {
	return html.H2(html.ID(id), html.Class("text-lg font-semibold leading-none"), g.Text(text))
}

// DialogDescription is the dialog's accessible description.
func DialogDescription(id, text string) g.Node {
	return html.P(html.ID(id), html.Class("text-muted-foreground text-sm"), g.Text(text))
}

// DialogTrigger renders a button that fires action to open a dialog.
func DialogTrigger(action Action, label string) g.Node {
	return Button(ButtonProps{}, action.Attrs(), g.Attr("data-dialog", "trigger"), g.Text(label))
}
