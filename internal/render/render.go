// Package render formats query results for the terminal: tables for
// listings, colored one-line confirmations for mutations.
package render

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"bq/internal/core"
	"bq/internal/storage"
)

var (
	expenseC  = color.New(color.FgRed)
	incomeC   = color.New(color.FgGreen)
	transferC = color.New(color.FgBlue)
	dimC      = color.New(color.Faint)
	boldC     = color.New(color.Bold)
)

// Amount formats a monetary value with thousands separators and two
// decimals.
func Amount(v float64) string {
	return humanize.FormatFloat("#,###.##", v)
}

func newTable(w io.Writer, headers []string) *tablewriter.Table {
	t := tablewriter.NewWriter(w)
	t.SetHeader(headers)
	t.SetBorder(false)
	t.SetHeaderLine(false)
	t.SetColumnSeparator("")
	t.SetAutoWrapText(false)
	t.SetAlignment(tablewriter.ALIGN_LEFT)
	t.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	return t
}

// RecordsTable renders the `last` listing. Amounts carry a sign prefix
// instead of color so column widths stay stable.
func RecordsTable(w io.Writer, recs []core.Record) {
	if len(recs) == 0 {
		dimC.Fprintln(w, "No records found.")
		return
	}
	t := newTable(w, []string{"Date", "Label", "Amount", "Category", "Account"})
	t.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
	})
	for _, r := range recs {
		t.Append([]string{r.Date, r.Label, signedAmount(r), orDash(r.Category), accountCell(r)})
	}
	t.Render()
}

// AccountsTable renders the `accs` listing.
func AccountsTable(w io.Writer, accs []core.Account) {
	t := newTable(w, []string{"Name", "Description", "Starting Balance"})
	t.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT,
	})
	for _, a := range accs {
		t.Append([]string{a.Name, orDash(a.Description), Amount(a.BeginningBalance)})
	}
	t.Render()
}

// BalancesTable renders per-account balances with a total row.
func BalancesTable(w io.Writer, rows []storage.AccountWithBalance) {
	t := newTable(w, []string{"Account", "Current Balance", "Starting Balance"})
	t.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})
	var total float64
	for _, r := range rows {
		total += r.Current
		t.Append([]string{r.Name, Amount(r.Current), Amount(r.BeginningBalance)})
	}
	t.SetFooter([]string{"Total", Amount(total), ""})
	t.SetFooterAlignment(tablewriter.ALIGN_RIGHT)
	t.Render()
}

// CategoriesTable renders the flat `cats --flat` listing, children
// indented under their parent.
func CategoriesTable(w io.Writer, cats []core.Category) {
	t := newTable(w, []string{"Name", "Type"})
	for _, c := range cats {
		name := c.Name
		if c.ParentID != nil {
			name = "    " + name
		}
		t.Append([]string{name, c.Nature})
	}
	t.Render()
}

// CategoriesTree renders the default `cats` view: parents in bold,
// children indented beneath them.
func CategoriesTree(w io.Writer, cats []core.Category) {
	children := make(map[int64][]core.Category)
	var parents []core.Category
	for _, c := range cats {
		if c.ParentID == nil {
			parents = append(parents, c)
		} else {
			children[*c.ParentID] = append(children[*c.ParentID], c)
		}
	}
	for _, p := range parents {
		fmt.Fprintf(w, "%s %s\n", boldC.Sprint(p.Name), dimC.Sprintf("(%s)", p.Nature))
		for _, c := range children[p.ID] {
			fmt.Fprintf(w, "  - %s %s\n", c.Name, dimC.Sprintf("(%s)", c.Nature))
		}
	}
}

// SettingsTable renders the `config show` listing.
func SettingsTable(w io.Writer, rows [][3]string) {
	t := newTable(w, []string{"Setting", "Value", "Description"})
	for _, r := range rows {
		t.Append(r[:])
	}
	t.Render()
}

// AddedLine is the confirmation printed after a successful add.
func AddedLine(amount float64, label, category, account string, isIncome bool) string {
	kind := expenseC.Sprint("Expense")
	if isIncome {
		kind = incomeC.Sprint("Income")
	}
	cat := ""
	if category != "" {
		cat = " [" + category + "]"
	}
	return fmt.Sprintf("%s: %s - %s%s (%s)", kind, boldC.Sprint(Amount(amount)), label, cat, dimC.Sprint(account))
}

// TransferLine is the confirmation printed after a successful transfer.
func TransferLine(amount float64, label, from, to string) string {
	return fmt.Sprintf("%s: %s - %s (%s)",
		transferC.Sprint("Transfer"), boldC.Sprint(Amount(amount)), label,
		dimC.Sprintf("%s -> %s", from, to))
}

// RecordSummary is the one-line form used by undo and edit.
func RecordSummary(r core.Record) string {
	switch {
	case r.IsTransfer:
		return fmt.Sprintf("%s %s - %s (%s -> %s) (%s)",
			transferC.Sprint("Transfer"), Amount(r.Amount), r.Label, r.Account, r.TransferTo, orDash(r.Date))
	case r.IsIncome:
		return fmt.Sprintf("%s +%s - %s [%s] (%s)",
			incomeC.Sprint("Income"), Amount(r.Amount), r.Label, orDash(r.Category), orDash(r.Date))
	default:
		return fmt.Sprintf("%s -%s - %s [%s] (%s)",
			expenseC.Sprint("Expense"), Amount(r.Amount), r.Label, orDash(r.Category), orDash(r.Date))
	}
}

// Dim prints a de-emphasized line.
func Dim(w io.Writer, format string, args ...any) {
	dimC.Fprintf(w, format+"\n", args...)
}

// Bold returns s emphasized.
func Bold(s string) string {
	return boldC.Sprint(s)
}

// Good returns s in the success color.
func Good(s string) string {
	return incomeC.Sprint(s)
}

// Bad returns s in the warning color.
func Bad(s string) string {
	return expenseC.Sprint(s)
}

func signedAmount(r core.Record) string {
	switch {
	case r.IsTransfer:
		return Amount(r.Amount)
	case r.IsIncome:
		return "+" + Amount(r.Amount)
	default:
		return "-" + Amount(r.Amount)
	}
}

func accountCell(r core.Record) string {
	if r.IsTransfer {
		return r.Account + " -> " + r.TransferTo
	}
	return orDash(r.Account)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
