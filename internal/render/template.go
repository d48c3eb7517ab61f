package render

import "html/template"

var documentTmpl = template.Must(template.New("document").Parse(documentHTML))

const documentHTML = `<!DOCTYPE html>
<html lang="el">
<head>
<meta charset="utf-8">
<title>{{.TypeLabel}} {{.Number}}</title>
<style>
  body { font-family: "Helvetica Neue", Arial, sans-serif; color: #1a1a1a; margin: 40px; font-size: 13px; }
  header { display: flex; justify-content: space-between; border-bottom: 2px solid #1a1a1a; padding-bottom: 12px; }
  h1 { font-size: 22px; margin: 0; text-transform: uppercase; }
  .meta { text-align: right; }
  .parties { display: flex; justify-content: space-between; margin: 24px 0; }
  .party h3 { margin: 0 0 6px; font-size: 13px; border-bottom: 1px solid #ccc; }
  .party p { margin: 2px 0; }
  table.items { width: 100%; border-collapse: collapse; margin: 16px 0; }
  table.items th { background: #f0f0f0; text-align: left; padding: 6px 8px; border-bottom: 1px solid #999; }
  table.items td { padding: 6px 8px; border-bottom: 1px solid #e0e0e0; }
  td.num, th.num { text-align: right; }
  .totals { width: 280px; margin-left: auto; }
  .totals td { padding: 4px 8px; }
  .totals tr.grand td { border-top: 2px solid #1a1a1a; font-weight: bold; font-size: 15px; }
  .notes { margin-top: 24px; white-space: pre-line; }
  .disclaimer { margin-top: 16px; font-style: italic; color: #555; }
  .signature { margin-top: 48px; width: 220px; border-top: 1px solid #1a1a1a; text-align: center; padding-top: 4px; }
  footer { margin-top: 32px; font-size: 11px; color: #777; }
</style>
</head>
<body>
<header>
  <div>
    <h1>{{.TypeLabel}}</h1>
    {{if .ProjectTitle}}<p>Έργο: {{.ProjectTitle}}</p>{{end}}
  </div>
  <div class="meta">
    <p><strong>Αριθμός:</strong> {{.Number}}</p>
    <p><strong>Ημερομηνία:</strong> {{.Date}}</p>
    {{if .DueDate}}<p><strong>Ημ. Λήξης:</strong> {{.DueDate}}</p>{{end}}
    {{if .ValidUntil}}<p><strong>Ισχύει έως:</strong> {{.ValidUntil}}</p>{{end}}
  </div>
</header>

<div class="parties">
  {{template "party" .Company}}
  {{template "party" .Client}}
</div>

<table class="items">
  <tr><th>#</th><th>Περιγραφή</th><th class="num">Ποσότητα</th><th>Μονάδα</th><th class="num">Τιμή Μον.</th><th class="num">Σύνολο</th></tr>
  {{range .Items}}
  <tr>
    <td>{{.Index}}</td>
    <td>{{.Description}}</td>
    <td class="num">{{.Quantity}}</td>
    <td>{{.Unit}}</td>
    <td class="num">{{.UnitPrice}}</td>
    <td class="num">{{.Total}}</td>
  </tr>
  {{end}}
</table>

<table class="totals">
  <tr><td>Υποσύνολο</td><td class="num">{{.Subtotal}}</td></tr>
  {{if .TransportCost}}<tr><td>Μεταφορικά{{if .TransportMethod}} ({{.TransportMethod}}){{end}}</td><td class="num">{{.TransportCost}}</td></tr>{{end}}
  {{if .TaxAmount}}<tr><td>{{.TaxLabel}}</td><td class="num">{{.TaxAmount}}</td></tr>{{end}}
  <tr class="grand"><td>{{.TotalLabel}}</td><td class="num">{{.Total}}</td></tr>
</table>

{{if .Notes}}<div class="notes"><strong>Σημειώσεις:</strong> {{.Notes}}</div>{{end}}
{{if .Terms}}<div class="notes">{{.Terms}}</div>{{end}}
{{if .TaxSubmissionID}}<footer>Αρ. Υποβολής myDATA: {{.TaxSubmissionID}}</footer>{{end}}
{{if .ShowQuoteDisclaimer}}<div class="disclaimer">Η παρούσα προσφορά δεν αποτελεί φορολογικό παραστατικό.</div>{{end}}
{{if .ShowSignature}}<div class="signature">{{.Signature}}</div>{{end}}
</body>
</html>

{{define "party"}}
<div class="party">
  <h3>{{.Title}}</h3>
  {{if .Name}}<p><strong>{{.Name}}</strong></p>{{end}}
  {{if .Address}}<p>{{.Address}}</p>{{end}}
  {{if .Phone}}<p>Τηλ: {{.Phone}}</p>{{end}}
  {{if .Email}}<p>{{.Email}}</p>{{end}}
  {{if .TaxID}}<p>ΑΦΜ: {{.TaxID}}</p>{{end}}
</div>
{{end}}`
