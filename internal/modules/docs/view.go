package docs

import (
	"github.com/nfrund/docchat/internal/ui"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// DialogID is the id of the region the upload dialog is swapped into.
const DialogID = "upload-dialog"

const (
	stateField = "state"
	eventField = "event"
)

// Surface renders the upload control hosted by the dialog.
type Surface func() g.Node

// Prompt is the empty-state call to action of the docs page together with
// the dialog region in state.
func Prompt(state DialogState, surface Surface) g.Node {
	return html.Div(
		html.ID("docs-prompt"),
		html.Class("flex h-full w-full flex-col items-center justify-center gap-2"),
		html.P(html.Class("text-xl font-bold text-gray-700"), g.Text("You haven't uploaded any files yet.")),
		html.P(html.Class("text-base text-gray-500"), g.Text("Click the button below to upload files")),
		html.Div(
			html.Class("mt-2"),
			ui.DialogTrigger(dialogAction(DialogClosed, DialogEventTrigger), "Upload"),
		),
		UploadDialog(state, surface),
	)
}

// UploadDialog renders the dialog region. The surface is only built, and
// mounted exactly once, while the dialog is open.
func UploadDialog(state DialogState, surface Surface) g.Node {
	props := ui.DialogProps{
		ID:          DialogID,
		Open:        state == DialogOpen,
		Title:       "Upload Files",
		Description: "Select and upload your files to get started.",
		Class:       "max-w-2xl",
		Dismiss:     dialogAction(DialogOpen, DialogEventDismiss),
	}
	if !props.Open {
		return ui.Dialog(props)
	}
	return ui.Dialog(props, html.Div(html.Class("py-2"), surface()))
}

func dialogAction(from DialogState, event DialogEvent) ui.Action {
	return ui.Action{
		URL:    dialogPath,
		Target: DialogID,
		Values: map[string]string{
			stateField: string(from),
			eventField: string(event),
		},
	}
}
