package ui

import (
	"strconv"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// ButtonVariant selects a button's visual style.
type ButtonVariant string

const (
	ButtonDefault ButtonVariant = "default"
	ButtonOutline ButtonVariant = "outline"
	ButtonGhost   ButtonVariant = "ghost"
)

var buttonVariantClasses = map[ButtonVariant]string{
	ButtonDefault: "bg-primary text-primary-foreground hover:bg-primary/90",
	ButtonOutline: "border bg-background hover:bg-accent",
	ButtonGhost:   "hover:bg-accent",
}

// ButtonProps configures a Button.
type ButtonProps struct {
	Variant ButtonVariant
	// Type defaults to "button".
	Type  string
	Class string
}

// Button renders a styled button; extra attributes and children follow in children.
func Button(props ButtonProps, children ...g.Node) g.Node {
	variant := props.Variant
	if variant == "" {
		variant = ButtonDefault
	}
	typ := props.Type
	if typ == "" {
		typ = "button"
	}
	return html.Button(
		html.Type(typ),
		html.Class(cx("inline-flex h-9 items-center justify-center gap-2 rounded-md px-4 text-sm font-medium", buttonVariantClasses[variant], props.Class)),
		g.Group(children),
	)
}

// Label renders a form label.
func Label(class string, children ...g.Node) g.Node {
	return html.Label(html.Class(cx("text-sm font-medium leading-none", class)), g.Group(children))
}

// SwitchProps is the controlled contract of a Switch: the owner supplies the
// current state and the endpoint that receives change events.
type SwitchProps struct {
	ID      string
	Name    string
	Checked bool
	// OnChange is fired with the requested state in the Name field. A switch
	// without OnChange renders disabled so it never looks interactive while inert.
	OnChange Action
	Class    string
}

// Switch renders a two-state toggle.
func Switch(props SwitchProps) g.Node {
	state := "unchecked"
	if props.Checked {
		state = "checked"
	}

	wired := props.OnChange.URL != ""
	var change g.Node = g.Group{}
	if wired {
		action := props.OnChange
		values := map[string]string{props.Name: strconv.FormatBool(!props.Checked)}
		for k, v := range action.Values {
			values[k] = v
		}
		action.Values = values
		change = action.Attrs()
	}

	return html.Button(
		html.Type("button"),
		g.If(props.ID != "", html.ID(props.ID)),
		html.Role("switch"),
		html.Aria("checked", strconv.FormatBool(props.Checked)),
		g.Attr("data-state", state),
		html.Class(cx("peer inline-flex h-5 w-9 shrink-0 items-center rounded-full border-2 border-transparent data-[state=checked]:bg-primary data-[state=unchecked]:bg-input", props.Class)),
		g.If(!wired, html.Disabled()),
		change,
		html.Span(
			g.Attr("data-state", state),
			html.Class("bg-background block h-4 w-4 rounded-full shadow-lg transition-transform data-[state=checked]:translate-x-4 data-[state=unchecked]:translate-x-0"),
		),
	)
}
