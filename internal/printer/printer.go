// Package printer renders an order into a static, self-contained HTML
// document suitable for handing to a printing mechanism. Formatting is a
// pure function of the order; the package has no side effects.
package printer

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"sweet-orders/internal/model"
)

// dateLayout is the Greek day/month/year display format.
const dateLayout = "2/1/2006"

var documentTemplate = template.Must(template.New("order").Parse(`<div style="font-family: Arial, sans-serif; padding: 20px;">
  <h1 style="text-align: center; color: #d47f98;">Παραγγελία #{{.DisplayNumber}}</h1>
  <hr style="margin: 20px 0;">
  <h2>Στοιχεία Πελάτη:</h2>
  <p><strong>Όνομα:</strong> {{.CustomerName}}</p>
  <p><strong>ΑΦΜ:</strong> {{.AFM}}</p>
  <p><strong>Τηλέφωνο:</strong> {{.Phone}}</p>
  {{- if .DeliveryDate}}
  <p><strong>Ημερομηνία Παράδοσης:</strong> {{.DeliveryDate}}</p>
  {{- end}}
  {{- if .Communication}}
  <p><strong>Επικοινωνία:</strong> {{.Communication}}</p>
  {{- end}}
  <h2>Προϊόντα:</h2>
  {{- range .Categories}}
  <h3>{{.Name}}:</h3>
  <ul>
    {{- range .Items}}
    <li>{{.Type}} - {{.Quantity}} τεμάχια</li>
    {{- end}}
  </ul>
  {{- end}}
  {{- if .TotalCookies}}
  <h2>Συνολικά Μπισκότα:</h2>
  <p style="font-size: 18px; font-weight: bold; color: #d47f98;">{{.TotalCookies}} τεμάχια</p>
  {{- end}}
  {{- if .Remarks}}
  <h2>Παρατηρήσεις:</h2>
  <p>{{.Remarks}}</p>
  {{- end}}
  <h2>Έκπτωση:</h2>
  <p>{{.Discount}}</p>
  <h2>Ημερομηνία:</h2>
  <p>{{.CreatedAt}}</p>
  <h2>Κατάσταση:</h2>
  <p>{{.Status}}</p>
</div>
`))

type categorySection struct {
	Name  string
	Items []model.LineItem
}

type documentData struct {
	DisplayNumber string
	CustomerName  string
	AFM           string
	Phone         string
	DeliveryDate  string
	Communication string
	Categories    []categorySection
	TotalCookies  int
	Remarks       string
	Discount      string
	CreatedAt     string
	Status        string
}

// Format renders the printable document for the order.
//
// Omission rules: the delivery date, remarks and communication line appear
// only when present (communication needs both method and value); a category
// is listed only when selected and non-empty; the cookie total is dropped
// when zero.
func Format(o model.Order) (string, error) {
	data := documentData{
		DisplayNumber: o.DisplayNumber(),
		CustomerName:  o.CustomerName,
		AFM:           o.AFM,
		Phone:         o.Phone,
		DeliveryDate:  formatDeliveryDate(o.OrderFor),
		TotalCookies:  o.TotalCookies(),
		Remarks:       o.Remarks,
		Discount:      discountLine(o.Discount),
		CreatedAt:     o.CreatedAt.Format(dateLayout),
		Status:        o.Status.Label(),
	}

	if o.CommunicationMethod != "" && o.CommunicationValue != "" {
		data.Communication = o.CommunicationMethod + ": " + o.CommunicationValue
	}

	for _, c := range model.Categories {
		items := o.ProductDetails[c]
		if !o.Products[c] || len(items) == 0 {
			continue
		}
		data.Categories = append(data.Categories, categorySection{
			Name:  c.Name(),
			Items: items,
		})
	}

	var buf strings.Builder
	if err := documentTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render order document: %w", err)
	}
	return buf.String(), nil
}

// formatDeliveryDate renders the optional delivery date. Values that do not
// parse as a date pass through unchanged rather than disappearing.
func formatDeliveryDate(raw string) string {
	if raw == "" {
		return ""
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t.Format(dateLayout)
	}
	return raw
}

func discountLine(d model.Discount) string {
	if d == model.DiscountNone {
		return "Χωρίς έκπτωση"
	}
	return string(d) + "%"
}
