package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/nfrund/docchat/internal/view"
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	"maragu.dev/gomponents/html"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// htmxConfig lets 4xx responses swap in, so rejected uploads show their message.
const htmxConfig = `{"responseHandling":[{"code":"204","swap":false},{"code":"[23]..","swap":true},{"code":"4..","swap":true},{"code":"...","swap":false,"error":true}]}`

// BaseProps carries the document-level data of a page render.
type BaseProps struct {
	Meta    view.PageMeta
	AppName string
	Lang    string
	Flash   view.FlashData
}

// Base wraps page content in the HTML document. It is exposed as a templ
// component so handlers can render it through the universal renderer.
func Base(props BaseProps, content g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return Document(props, content).Render(w)
	})
}

// Document builds the full gomponents document tree.
func Document(props BaseProps, content g.Node) g.Node {
	lang := props.Lang
	if lang == "" {
		lang = "en"
	}

	return c.HTML5(c.HTML5Props{
		Title:    CalculateTitle(props.Meta.Title, props.AppName),
		Language: lang,
		Head: []g.Node{
			html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
			html.Meta(html.Name("htmx-config"), html.Content(htmxConfig)),
			html.Script(html.Src("https://cdn.tailwindcss.com")),
			html.Script(html.Src(htmxSrc), html.Defer()),
			html.Link(html.Rel("stylesheet"), html.Href("/static/app.css")),
		},
		Body: []g.Node{
			html.Class("h-screen overflow-hidden antialiased"),
			Flash(props.Flash),
			content,
		},
	})
}

// Flash renders one-shot messages. The region is always present so htmx
// responses can target it.
func Flash(data view.FlashData) g.Node {
	return html.Div(
		html.ID("flash"),
		html.Class("fixed right-4 top-4 z-50 flex flex-col gap-2"),
		g.Map(data.Success, func(msg string) g.Node {
			return html.Div(html.Class("rounded-md bg-green-50 p-3 text-sm text-green-800"), html.Role("status"), g.Text(msg))
		}),
		g.Map(data.Error, func(msg string) g.Node {
			return html.Div(html.Class("rounded-md bg-red-50 p-3 text-sm text-red-800"), html.Role("alert"), g.Text(msg))
		}),
	)
}
