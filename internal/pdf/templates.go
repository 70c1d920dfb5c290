package pdf

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/septivank/energy-billing-service/internal/domain"
)

// TemplateEngine renders the bill and receipt documents from business data.
type TemplateEngine struct {
	bill    *template.Template
	receipt *template.Template
	rate    decimal.Decimal
}

// NewTemplateEngine parses the built-in document templates.
func NewTemplateEngine(unitRate decimal.Decimal) (*TemplateEngine, error) {
	funcMap := template.FuncMap{
		"formatMoney": func(d decimal.Decimal) string {
			return "$" + humanize.CommafWithDigits(d.InexactFloat64(), 2)
		},
		"formatKWh": func(v float64) string {
			return humanize.CommafWithDigits(v, 1) + " kWh"
		},
		// Accepts both time.Time and *time.Time; PaidOn is a pointer.
		"formatDate": func(v any) string {
			switch t := v.(type) {
			case time.Time:
				return t.Format("Jan 02, 2006")
			case *time.Time:
				if t == nil {
					return ""
				}
				return t.Format("Jan 02, 2006")
			}
			return ""
		},
	}

	bill, err := template.New("bill").Funcs(funcMap).Parse(billTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bill template: %w", err)
	}
	receipt, err := template.New("receipt").Funcs(funcMap).Parse(receiptTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse receipt template: %w", err)
	}

	return &TemplateEngine{bill: bill, receipt: receipt, rate: unitRate}, nil
}

// BillDocument is the data fed to the bill template.
type BillDocument struct {
	Bill     domain.Bill
	User     domain.User
	UnitRate decimal.Decimal
	IssuedAt time.Time
}

// ReceiptDocument is the data fed to the receipt template.
type ReceiptDocument struct {
	Receipt domain.Receipt
	Bill    domain.Bill
	User    domain.User
}

// RenderBill produces the electricity bill HTML for one bill/user pair.
func (e *TemplateEngine) RenderBill(bill domain.Bill, user domain.User) (string, error) {
	var buf bytes.Buffer
	doc := BillDocument{Bill: bill, User: user, UnitRate: e.rate, IssuedAt: time.Now()}
	if err := e.bill.Execute(&buf, doc); err != nil {
		return "", fmt.Errorf("failed to render bill document: %w", err)
	}
	return buf.String(), nil
}

// RenderReceipt produces the payment receipt HTML for one receipt, its bill
// and the owning user.
func (e *TemplateEngine) RenderReceipt(receipt domain.Receipt, bill domain.Bill, user domain.User) (string, error) {
	var buf bytes.Buffer
	doc := ReceiptDocument{Receipt: receipt, Bill: bill, User: user}
	if err := e.receipt.Execute(&buf, doc); err != nil {
		return "", fmt.Errorf("failed to render receipt document: %w", err)
	}
	return buf.String(), nil
}

const documentStyle = `
  body { font-family: Helvetica, Arial, sans-serif; color: #1a1a1a; margin: 40px; }
  .header { text-align: center; border-bottom: 2px solid #0072bd; padding-bottom: 12px; }
  .header h1 { color: #0072bd; margin: 0; font-size: 24px; }
  .header p { color: #666; margin: 4px 0 0; font-size: 12px; }
  h2 { font-size: 16px; margin: 24px 0 8px; }
  .meta td { padding: 2px 16px 2px 0; font-size: 12px; }
  table.lines { width: 100%; border-collapse: collapse; margin-top: 8px; }
  table.lines th, table.lines td { border-bottom: 1px solid #333; text-align: left; padding: 6px 4px; font-size: 12px; }
  .total { font-weight: bold; }
  .paid { color: #009600; font-weight: bold; }
  .unpaid { color: #ff0000; font-weight: bold; }
  .footer { margin-top: 60px; text-align: center; color: #666; font-size: 10px; }
`

const billTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Electricity Bill {{.Bill.ID}}</title><style>` + documentStyle + `</style></head>
<body>
  <div class="header">
    <h1>EnergyTrack Solutions</h1>
    <p>Smart Electricity Monitoring System</p>
  </div>

  <h2>ELECTRICITY BILL</h2>
  <table class="meta">
    <tr><td>Bill #</td><td>{{.Bill.ID}}</td></tr>
    <tr><td>Date</td><td>{{formatDate .IssuedAt}}</td></tr>
    <tr><td>Billing Period</td><td>{{.Bill.Month}} {{.Bill.Year}}</td></tr>
    <tr><td>Due Date</td><td>{{formatDate .Bill.DueDate}}</td></tr>
  </table>

  <h2>CUSTOMER DETAILS</h2>
  <table class="meta">
    <tr><td>Name</td><td>{{.User.Name}}</td></tr>
    <tr><td>Address</td><td>{{.User.Address}}</td></tr>
    <tr><td>Meter Number</td><td>{{.User.MeterNumber}}</td></tr>
    <tr><td>Account ID</td><td>{{.User.ID}}</td></tr>
  </table>

  <h2>USAGE DETAILS</h2>
  <table class="lines">
    <tr><th>Description</th><th>Quantity</th><th>Rate</th><th>Amount</th></tr>
    <tr>
      <td>Electricity Consumption</td>
      <td>{{formatKWh .Bill.TotalUsage}}</td>
      <td>{{formatMoney .UnitRate}}/kWh</td>
      <td>{{formatMoney .Bill.Amount}}</td>
    </tr>
    <tr class="total"><td colspan="3">TOTAL AMOUNT DUE</td><td>{{formatMoney .Bill.Amount}}</td></tr>
  </table>

  {{if .Bill.Paid}}
  <p class="paid">PAID{{if .Bill.PaidOn}} - Payment Date: {{formatDate .Bill.PaidOn}}{{end}}</p>
  {{else}}
  <p class="unpaid">UNPAID</p>
  {{end}}

  <div class="footer">
    <p>Thank you for using our services. For any queries, please contact support@energytrack.com</p>
    <p>&copy; EnergyTrack Solutions</p>
  </div>
</body>
</html>`

const receiptTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Payment Receipt {{.Receipt.ID}}</title><style>` + documentStyle + `</style></head>
<body>
  <div class="header">
    <h1>EnergyTrack Solutions</h1>
    <p>Smart Electricity Monitoring System</p>
  </div>

  <h2>PAYMENT RECEIPT</h2>
  <table class="meta">
    <tr><td>Receipt #</td><td>{{.Receipt.ID}}</td></tr>
    <tr><td>Date</td><td>{{formatDate .Receipt.PaidOn}}</td></tr>
    <tr><td>Transaction ID</td><td>{{.Receipt.TransactionID}}</td></tr>
    <tr><td>Payment Method</td><td>{{.Receipt.PaymentMethod}}</td></tr>
  </table>

  <h2>CUSTOMER DETAILS</h2>
  <table class="meta">
    <tr><td>Name</td><td>{{.User.Name}}</td></tr>
    <tr><td>Address</td><td>{{.User.Address}}</td></tr>
    <tr><td>Meter Number</td><td>{{.User.MeterNumber}}</td></tr>
    <tr><td>Account ID</td><td>{{.User.ID}}</td></tr>
  </table>

  <h2>BILL DETAILS</h2>
  <table class="meta">
    <tr><td>Bill #</td><td>{{.Bill.ID}}</td></tr>
    <tr><td>Billing Period</td><td>{{.Bill.Month}} {{.Bill.Year}}</td></tr>
    <tr><td>Total Usage</td><td>{{formatKWh .Bill.TotalUsage}}</td></tr>
  </table>

  <h2>PAYMENT DETAILS</h2>
  <table class="lines">
    <tr><th>Description</th><th>Amount</th></tr>
    <tr>
      <td>Electricity Bill Payment ({{.Bill.Month}} {{.Bill.Year}})</td>
      <td>{{formatMoney .Receipt.PaidAmount}}</td>
    </tr>
    <tr class="total"><td>TOTAL PAID</td><td>{{formatMoney .Receipt.PaidAmount}}</td></tr>
  </table>

  <p class="paid" style="text-align:center">PAYMENT SUCCESSFUL</p>

  <div class="footer">
    <p>Thank you for your payment. For any queries, please contact support@energytrack.com</p>
    <p>&copy; EnergyTrack Solutions</p>
  </div>
</body>
</html>`
