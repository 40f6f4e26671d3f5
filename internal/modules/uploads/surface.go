package uploads

import (
	"github.com/nfrund/docchat/internal/ui"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	"maragu.dev/gomponents/html"
)

const (
	// FormID is the id of the upload form.
	FormID = "file-upload"
	// ResultID is the id of the region receiving the ingest result.
	ResultID = "upload-result"
	// FileField is the multipart field carrying the document.
	FileField = "file"
)

// Surface renders the upload control. It posts through htmx when available
// and degrades to a plain multipart form post otherwise.
func Surface() g.Node {
	return html.Div(
		g.Attr("data-slot", "upload-surface"),
		html.Class("flex flex-col gap-3"),
		html.Form(
			html.ID(FormID),
			html.Action(uploadPath),
			html.Method("post"),
			g.Attr("enctype", "multipart/form-data"),
			hx.Post(uploadPath),
			hx.Encoding("multipart/form-data"),
			hx.Target("#"+ResultID),
			hx.Swap("innerHTML"),
			html.Class("flex items-center gap-2"),
			html.Input(
				html.Type("file"),
				html.Name(FileField),
				g.Attr("accept", ".pdf,application/pdf"),
				html.Required(),
				html.Class("file:bg-muted block w-full text-sm file:mr-3 file:rounded-md file:border-0 file:px-3 file:py-1.5"),
			),
			ui.Button(ui.ButtonProps{Type: "submit"}, g.Text("Upload")),
		),
		html.Div(html.ID(ResultID), html.Role("status"), html.Class("text-sm")),
	)
}

// Result is the fragment swapped into the result region after an upload.
func Result(ok bool, message string) g.Node {
	class := "text-green-700"
	if !ok {
		class = "text-red-700"
	}
	return html.P(
		g.Attr("data-ok", boolString(ok)),
		html.Class(class),
		g.Text(message),
	)
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
