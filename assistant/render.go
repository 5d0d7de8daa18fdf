package assistant

import (
	"fmt"
	"strings"

	"github.com/hupe1980/shopmesh/core"
)

// renderProductTable formats products as a GitHub-flavored markdown table.
func renderProductTable(products []core.Product) string {
	var b strings.Builder
	b.WriteString("| Name | Category | Price | Rating | Reviews | Stock |\n")
	b.WriteString("|---|---|---|---|---|---|\n")
	for _, p := range products {
		stock := "In Stock"
		if !p.InStock {
			stock = "Out of Stock"
		}
		fmt.Fprintf(&b, "| %s | %s | $%.2f | %.1f | %d | %s |\n",
			p.Name, p.Category, p.Price, p.Rating, p.Reviews, stock)
	}
	return b.String()
}

// renderFilterTable formats filtered products as a compact markdown table.
func renderFilterTable(products []core.Product) string {
	var b strings.Builder
	b.WriteString("| Name | Category | Price | Rating | Stock |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, p := range products {
		stock := "In Stock"
		if !p.InStock {
			stock = "Out of Stock"
		}
		fmt.Fprintf(&b, "| %s | %s | $%.2f | %.1f | %s |\n",
			p.Name, p.Category, p.Price, p.Rating, stock)
	}
	return b.String()
}

// renderComparisonTable formats products side by side, one row per product.
func renderComparisonTable(products []core.Product) string {
	var b strings.Builder
	b.WriteString("| Product | Price | Rating | Reviews | Stock | Category |\n")
	b.WriteString("|---|---|---|---|---|---|\n")
	for _, p := range products {
		stock := "In Stock"
		if !p.InStock {
			stock = "Out of Stock"
		}
		fmt.Fprintf(&b, "| %s | $%.2f | %.1f | %d | %s | %s |\n",
			p.Name, p.Price, p.Rating, p.Reviews, stock, p.Category)
	}
	return b.String()
}

// renderProductDetails formats a single product as a display-ready card.
func renderProductDetails(p core.Product) string {
	stock := "In Stock"
	if !p.InStock {
		stock = "Out of Stock"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "### %s\n\n", p.Name)
	fmt.Fprintf(&b, "**Category**: %s\n", p.Category)
	fmt.Fprintf(&b, "**Price**: $%.2f\n", p.Price)
	fmt.Fprintf(&b, "**Rating**: %.1f\n", p.Rating)
	fmt.Fprintf(&b, "**Reviews**: %d customer reviews\n", p.Reviews)
	fmt.Fprintf(&b, "**Availability**: %s", stock)
	return b.String()
}
