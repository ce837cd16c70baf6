package domain

import "fmt"

// Page is the client-side view selector. It is not a server route.
type Page string

const (
	PageLanding    Page = "landing"
	PageLogin      Page = "login"
	PageSignup     Page = "signup"
	PageDashboard  Page = "dashboard"
	PageInventory  Page = "inventory"
	PageSales      Page = "sales"
	PagePurchases  Page = "purchases"
	PageAccounting Page = "accounting"
	PageReports    Page = "reports"
	PageSettings   Page = "settings"
)

// AllPages lists every page in navigation order.
var AllPages = []Page{
	PageLanding, PageLogin, PageSignup,
	PageDashboard, PageInventory, PageSales, PagePurchases, PageAccounting, PageReports, PageSettings,
}

// IsPublic reports whether the page may be shown without a session.
func (p Page) IsPublic() bool {
	switch p {
	case PageLanding, PageLogin, PageSignup:
		return true
	}
	return false
}

// ParsePage converts a page name into a Page.
func ParsePage(s string) (Page, error) {
	for _, p := range AllPages {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown page %q", s)
}
