package export

import (
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"glassdesk/internal/render"
)

var (
	colorInk  = &props.Color{Red: 26, Green: 26, Blue: 26}
	colorGray = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// scratch is the page working area of one export. Acquired fresh per export
// and released when the run ends, so no layout state survives between
// documents.
type scratch struct {
	m core.Maroto
}

func newScratch(v *render.View) *scratch {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(v.TypeLabel+" "+v.Number, true).
		Build()

	return &scratch{m: maroto.New(cfg)}
}

// layout lays the full document onto the page area. The view carries every
// formatted value and visibility decision; layout only places them.
func (s *scratch) layout(v *render.View) {
	s.m.AddRows(headerRow(v))
	s.m.AddRows(line.NewRow(2, props.Line{Color: colorInk, Thickness: 0.5}))
	s.m.AddRows(partiesRow(v))
	s.m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))

	s.m.AddRows(itemHeaderRow())
	for _, it := range v.Items {
		s.m.AddRows(itemRow(it))
	}

	s.m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	s.m.AddRows(totalsRows(v)...)
	s.m.AddRows(footerRows(v)...)
}

func headerRow(v *render.View) core.Row {
	left := col.New(7).Add(
		text.New(v.TypeLabel, props.Text{Style: fontstyle.Bold, Size: 16, Color: colorInk, Top: 1}),
	)
	if v.ProjectTitle != "" {
		left.Add(text.New("Έργο: "+v.ProjectTitle, props.Text{Size: 9, Top: 9, Color: colorGray}))
	}

	right := col.New(5).Add(
		text.New("Αριθμός: "+v.Number, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1}),
		text.New("Ημερομηνία: "+v.Date, props.Text{Size: 9, Align: align.Right, Top: 7}),
	)
	if v.DueDate != "" {
		right.Add(text.New("Ημ. Λήξης: "+v.DueDate, props.Text{Size: 9, Align: align.Right, Top: 12}))
	}
	if v.ValidUntil != "" {
		right.Add(text.New("Ισχύει έως: "+v.ValidUntil, props.Text{Size: 9, Align: align.Right, Top: 12}))
	}

	return row.New(18).Add(left, right)
}

func partyCol(p render.PartyView) core.Col {
	c := col.New(6).Add(
		text.New(p.Title, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1}),
	)
	top := 6.0
	add := func(s string) {
		if s == "" {
			return
		}
		c.Add(text.New(s, props.Text{Size: 9, Top: top}))
		top += 4.5
	}
	add(p.Name)
	add(p.Address)
	if p.Phone != "" {
		add("Τηλ: " + p.Phone)
	}
	add(p.Email)
	if p.TaxID != "" {
		add("ΑΦΜ: " + p.TaxID)
	}
	return c
}

func partiesRow(v *render.View) core.Row {
	return row.New(32).Add(partyCol(v.Company), partyCol(v.Client))
}

func itemHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Περιγραφή", 5, align.Left),
		h("Ποσότητα", 2, align.Right),
		h("Τιμή Μον.", 2, align.Right),
		h("Σύνολο", 2, align.Right),
	)
}

func itemRow(it render.ItemView) core.Row {
	qty := it.Quantity
	if it.Unit != "" {
		qty += " " + it.Unit
	}
	return row.New(7).Add(
		col.New(1).Add(text.New(strconv.Itoa(it.Index), props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(5).Add(text.New(it.Description, props.Text{Size: 8, Top: 1})),
		col.New(2).Add(text.New(qty, props.Text{Size: 8, Align: align.Right, Top: 1})),
		col.New(2).Add(text.New(it.UnitPrice, props.Text{Size: 8, Align: align.Right, Top: 1})),
		col.New(2).Add(text.New(it.Total, props.Text{Size: 8, Align: align.Right, Top: 1})),
	)
}

func totalsRows(v *render.View) []core.Row {
	pair := func(label, value string, bold bool) core.Row {
		style := fontstyle.Normal
		size := 9.0
		if bold {
			style = fontstyle.Bold
			size = 11
		}
		return row.New(6).Add(
			col.New(7),
			col.New(3).Add(text.New(label, props.Text{Style: style, Size: size, Align: align.Right})),
			col.New(2).Add(text.New(value, props.Text{Style: style, Size: size, Align: align.Right})),
		)
	}

	rows := []core.Row{pair("Υποσύνολο", v.Subtotal, false)}
	if v.TransportCost != "" {
		label := "Μεταφορικά"
		if v.TransportMethod != "" {
			label += " (" + v.TransportMethod + ")"
		}
		rows = append(rows, pair(label, v.TransportCost, false))
	}
	if v.TaxAmount != "" {
		rows = append(rows, pair(v.TaxLabel, v.TaxAmount, false))
	}
	rows = append(rows, pair(v.TotalLabel, v.Total, true))
	return rows
}

func footerRows(v *render.View) []core.Row {
	var rows []core.Row

	note := func(s string) {
		rows = append(rows, row.New(8).Add(
			col.New(12).Add(text.New(s, props.Text{Size: 8, Color: colorGray, Top: 2})),
		))
	}

	if v.Notes != "" {
		note("Σημειώσεις: " + v.Notes)
	}
	if v.Terms != "" {
		note(v.Terms)
	}
	if v.TaxSubmissionID != "" {
		note("Αρ. Υποβολής myDATA: " + v.TaxSubmissionID)
	}
	if v.ShowQuoteDisclaimer {
		note("Η παρούσα προσφορά δεν αποτελεί φορολογικό παραστατικό.")
	}
	if v.ShowSignature {
		rows = append(rows,
			row.New(16),
			row.New(8).Add(
				col.New(8),
				col.New(4).Add(text.New(v.Signature, props.Text{Size: 9, Align: align.Center, Top: 2})),
			),
		)
	}
	return rows
}
