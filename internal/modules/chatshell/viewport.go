package chatshell

import (
	"net/http"
	"strconv"
)

// MediumBreakpoint is the viewport width, in CSS pixels, from which the
// secondary sidebar is shown. It matches the md: prefix of the sidebar classes.
const MediumBreakpoint = 768

// ViewportWidthHeader is the client hint carrying the layout viewport width.
const ViewportWidthHeader = "Sec-CH-Viewport-Width"

// Viewport is what the server knows about the client's viewport. A zero Width
// means unknown, in which case visibility is left to CSS alone.
type Viewport struct {
	Width int
}

// ViewportFromRequest reads the viewport client hint. Missing or malformed
// hints yield an unknown viewport.
func ViewportFromRequest(r *http.Request) Viewport {
	width, err := strconv.Atoi(r.Header.Get(ViewportWidthHeader))
	if err != nil || width < 0 {
		return Viewport{}
	}
	return Viewport{Width: width}
}

// ShowsSidebar reports whether the secondary sidebar belongs in the output.
func (v Viewport) ShowsSidebar() bool {
	return v.Width == 0 || v.Width >= MediumBreakpoint
}
