package ui

import (
	"github.com/nfrund/docchat/internal/domain"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// NavUser renders the identity badge shown in sidebar footers. Fields are
// rendered exactly as supplied.
func NavUser(user domain.UserIdentity) g.Node {
	return html.Div(
		g.Attr("data-slot", "nav-user"),
		html.Class("flex items-center gap-2 rounded-lg p-2 text-left text-sm"),
		html.Img(
			html.Class("h-8 w-8 rounded-lg"),
			html.Src(user.AvatarURL),
			html.Alt(user.Name),
		),
		html.Div(
			html.Class("grid flex-1 text-left text-sm leading-tight"),
			html.Span(html.Class("truncate font-medium"), g.Attr("data-field", "name"), g.Text(user.Name)),
			html.Span(html.Class("text-muted-foreground truncate text-xs"), g.Attr("data-field", "email"), g.Text(user.Email)),
		),
	)
}
