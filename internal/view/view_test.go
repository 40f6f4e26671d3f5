package view_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/docchat/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

func TestLanguage(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"", "en"},
		{"en-GB,en;q=0.9", "en"},
		{"de-DE,de;q=0.9", "en"},
		{"not a header;;", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Accept-Language", tt.header)
			c := echo.New().NewContext(req, httptest.NewRecorder())
			assert.Equal(t, tt.want, view.Language(c))
		})
	}
}

func TestAdapters(t *testing.T) {
	node := html.Em(g.Text("both ways"))

	var buf strings.Builder
	require.NoError(t, view.AdaptGomponentToTempl(node).Render(context.Background(), &buf))
	assert.Equal(t, "<em>both ways</em>", buf.String())

	buf.Reset()
	back := view.AdaptTemplToGomponent(context.Background(), templ.Raw("<b>raw</b>"))
	require.NoError(t, back.Render(&buf))
	assert.Equal(t, "<b>raw</b>", buf.String())
}
