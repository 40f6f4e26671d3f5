package ui_test

import (
	"strings"
	"testing"

	"github.com/nfrund/docchat/internal/domain"
	"github.com/nfrund/docchat/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, node g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, node.Render(&b))
	return b.String()
}

func TestSidebar_Collapsible(t *testing.T) {
	t.Run("none renders no trigger", func(t *testing.T) {
		out := render(t, ui.Sidebar(ui.SidebarProps{Collapsible: ui.CollapsibleNone}, g.Text("body")))
		assert.Contains(t, out, `data-collapsible="none"`)
		assert.NotContains(t, out, `data-sidebar="trigger"`)
		assert.Contains(t, out, "body")
	})

	t.Run("zero value defaults to none", func(t *testing.T) {
		out := render(t, ui.Sidebar(ui.SidebarProps{}))
		assert.Contains(t, out, `data-collapsible="none"`)
		assert.NotContains(t, out, `data-sidebar="trigger"`)
	})

	t.Run("icon renders a trigger", func(t *testing.T) {
		out := render(t, ui.Sidebar(ui.SidebarProps{ID: "rail", Collapsible: ui.CollapsibleIcon}))
		assert.Contains(t, out, `data-sidebar="trigger"`)
		assert.Contains(t, out, `id="rail"`)
	})
}

func TestSidebarInput(t *testing.T) {
	out := render(t, ui.SidebarInput("q", "Type to search..."))
	assert.Contains(t, out, `name="q"`)
	assert.Contains(t, out, `placeholder="Type to search..."`)
}

func TestDialog(t *testing.T) {
	dismiss := ui.Action{URL: "/docs/dialog", Values: map[string]string{"event": "dismiss"}, Target: "upload-dialog"}

	t.Run("closed mounts nothing", func(t *testing.T) {
		out := render(t, ui.Dialog(ui.DialogProps{ID: "upload-dialog", Title: "Upload Files", Dismiss: dismiss}, g.Text("surface")))
		assert.Equal(t, `<div id="upload-dialog" data-state="closed"></div>`, out)
	})

	t.Run("open mounts chrome and body", func(t *testing.T) {
		out := render(t, ui.Dialog(ui.DialogProps{
			ID:          "upload-dialog",
			Open:        true,
			Title:       "Upload Files",
			Description: "Select and upload your files to get started.",
			Dismiss:     dismiss,
		}, g.Text("surface")))

		assert.Contains(t, out, `data-state="open"`)
		assert.Contains(t, out, `role="dialog"`)
		assert.Contains(t, out, "Upload Files")
		assert.Contains(t, out, "Select and upload your files to get started.")
		assert.Equal(t, 1, strings.Count(out, "surface"))
		assert.Contains(t, out, `data-dialog="close"`)
		assert.Contains(t, out, `data-dialog="overlay"`)
		assert.Contains(t, out, `data-dialog="escape"`)
		assert.Equal(t, 3, strings.Count(out, `hx-post="/docs/dialog"`), "close, overlay and escape all dismiss")
		assert.Contains(t, out, `hx-target="#upload-dialog"`)
	})
}

func TestSwitch(t *testing.T) {
	t.Run("controlled and wired", func(t *testing.T) {
		out := render(t, ui.Switch(ui.SwitchProps{
			ID:       "unreads",
			Name:     "unreads",
			Checked:  false,
			OnChange: ui.Action{URL: "/chat/unreads"},
		}))
		assert.Contains(t, out, `role="switch"`)
		assert.Contains(t, out, `aria-checked="false"`)
		assert.Contains(t, out, `hx-post="/chat/unreads"`)
		assert.Contains(t, out, `hx-target="this"`)
		assert.Contains(t, out, "hx-vals=")
		assert.NotContains(t, out, "disabled")
	})

	t.Run("checked state", func(t *testing.T) {
		out := render(t, ui.Switch(ui.SwitchProps{Name: "unreads", Checked: true, OnChange: ui.Action{URL: "/x"}}))
		assert.Contains(t, out, `aria-checked="true"`)
		assert.Contains(t, out, `data-state="checked"`)
	})

	t.Run("unwired switch is disabled", func(t *testing.T) {
		out := render(t, ui.Switch(ui.SwitchProps{Name: "unreads"}))
		assert.Contains(t, out, "disabled")
		assert.NotContains(t, out, "hx-post")
	})
}

func TestButton(t *testing.T) {
	out := render(t, ui.Button(ui.ButtonProps{}, g.Text("Upload")))
	assert.Contains(t, out, `type="button"`)
	assert.Contains(t, out, "bg-primary")
	assert.Contains(t, out, ">Upload</button>")

	out = render(t, ui.Button(ui.ButtonProps{Type: "submit", Variant: ui.ButtonOutline}, g.Text("Send")))
	assert.Contains(t, out, `type="submit"`)
	assert.Contains(t, out, "border bg-background")
}

func TestNavUser_RendersIdentityVerbatim(t *testing.T) {
	user := domain.UserIdentity{Name: "shadcn", Email: "m@example.com", AvatarURL: "/avatars/shadcn.svg"}

	out := render(t, ui.NavUser(user))

	assert.Contains(t, out, `src="/avatars/shadcn.svg"`)
	assert.Contains(t, out, `alt="shadcn"`)
	assert.Contains(t, out, `data-field="name">shadcn</span>`)
	assert.Contains(t, out, `data-field="email">m@example.com</span>`)
}
