package layouts

// CalculateTitle picks the document title: the page's own title when it
// declares one, the application name otherwise.
func CalculateTitle(title, appName string) string {
	if title != "" {
		return title
	}
	return appName
}

// NavItem is an entry of the navigation rail.
type NavItem struct {
	Label string
	Href  string
	Icon  string
}

// DefaultNav is the navigation shown on every page.
var DefaultNav = []NavItem{
	{Label: "Chat", Href: "/chat", Icon: "💬"},
	{Label: "Docs", Href: "/docs", Icon: "📄"},
}
