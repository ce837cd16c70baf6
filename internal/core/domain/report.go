package domain

import "fmt"

// ReportKind selects one of the backend reports.
type ReportKind string

const (
	ReportSales     ReportKind = "sales"
	ReportPurchases ReportKind = "purchases"
	ReportInventory ReportKind = "inventory"
)

// Report is an opaque report document; its shape is owned by the backend.
type Report map[string]any

// ParseReportKind converts a string into a ReportKind.
func ParseReportKind(s string) (ReportKind, error) {
	switch ReportKind(s) {
	case ReportSales, ReportPurchases, ReportInventory:
		return ReportKind(s), nil
	}
	return "", fmt.Errorf("unknown report %q", s)
}

// Title is the heading shown for the report.
func (k ReportKind) Title() string {
	switch k {
	case ReportSales:
		return "Sales Report"
	case ReportPurchases:
		return "Purchases Report"
	case ReportInventory:
		return "Inventory Summary"
	}
	return string(k)
}
