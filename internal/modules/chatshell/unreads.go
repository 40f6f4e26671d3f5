package chatshell

import (
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/docchat/internal/ui"
	g "maragu.dev/gomponents"
)

const (
	prefsSessionName = "chat-prefs"
	unreadsKey       = "unreads_only"

	// UnreadsField is the form field carrying the requested switch state.
	UnreadsField = "unreads"
	// UnreadsChangedEvent is the HX-Trigger event emitted after the filter changes.
	UnreadsChangedEvent = "unreads-changed"
)

// UnreadsProps is the controlled contract of the "Unreads" switch: the state
// is owned by the handler (persisted in the session) and changes are posted
// to ChangeURL. The layout only renders what it is given.
type UnreadsProps struct {
	Checked   bool
	ChangeURL string
}

// UnreadsSwitch renders the switch for props.
func UnreadsSwitch(props UnreadsProps) g.Node {
	return ui.Switch(ui.SwitchProps{
		ID:       "unreads-toggle",
		Name:     UnreadsField,
		Checked:  props.Checked,
		OnChange: ui.Action{URL: props.ChangeURL},
		Class:    "shadow-none",
	})
}

// loadUnreads returns the stored filter, false when nothing was stored.
func loadUnreads(c echo.Context) bool {
	sess, err := session.Get(prefsSessionName, c)
	if err != nil {
		return false
	}
	checked, _ := sess.Values[unreadsKey].(bool)
	return checked
}

// saveUnreads persists the filter in the session cookie.
func saveUnreads(c echo.Context, checked bool) error {
	sess, err := session.Get(prefsSessionName, c)
	if err != nil {
		return err
	}
	sess.Values[unreadsKey] = checked
	return sess.Save(c.Request(), c.Response())
}
