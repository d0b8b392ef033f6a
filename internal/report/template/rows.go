package template

import (
	"html"
	"strconv"
	"strings"
)

const (
	cellStyle      = "border:1px solid #ddd; padding:8px;"
	amountStyle    = "border:1px solid #ddd; padding:8px; text-align:right;"
	positiveColour = "#dc3545"
	settledColour  = "#198754"
	missingCell    = "-"
)

func placeholderRow(columns int, text string) string {
	return "<tr><td colspan='" + strconv.Itoa(columns) + "'>" + text + "</td></tr>"
}

func cell(style, value string) string {
	return `<td style="` + style + `">` + value + "</td>"
}

func textCell(value string) string {
	if strings.TrimSpace(value) == "" {
		return cell(cellStyle, missingCell)
	}
	return cell(cellStyle, html.EscapeString(value))
}

func generalRows(rows []GeneralRow) string {
	if len(rows) == 0 {
		return placeholderRow(4, "Sin datos")
	}
	var b strings.Builder
	for _, r := range rows {
		colour := settledColour
		if r.Balance.IsPositive() {
			colour = positiveColour
		}
		b.WriteString("<tr>")
		b.WriteString(textCell(r.ClientName))
		b.WriteString(cell(amountStyle, "$ "+FormatAmount(r.Debt)))
		b.WriteString(cell(amountStyle, "$ "+FormatAmount(r.Paid)))
		b.WriteString(cell(amountStyle+" color:"+colour+";", "$ "+FormatAmount(r.Balance)))
		b.WriteString("</tr>")
	}
	return b.String()
}

func debtRows(rows []DebtRow) string {
	if len(rows) == 0 {
		return placeholderRow(3, "Sin deudas")
	}
	var b strings.Builder
	for _, r := range rows {
		b.WriteString("<tr>")
		b.WriteString(textCell(r.Title))
		b.WriteString(cell(amountStyle, "$ "+FormatAmount(r.Amount)))
		b.WriteString(textCell(formatDate(r.CreatedAt, rowDateLayout)))
		b.WriteString("</tr>")
	}
	return b.String()
}

func paymentRows(rows []PaymentRow) string {
	if len(rows) == 0 {
		return placeholderRow(3, "Sin pagos")
	}
	var b strings.Builder
	for _, r := range rows {
		b.WriteString("<tr>")
		b.WriteString(textCell(r.Description))
		b.WriteString(cell(amountStyle, "$ "+FormatAmount(r.Amount)))
		b.WriteString(textCell(formatDate(r.CreatedAt, rowDateLayout)))
		b.WriteString("</tr>")
	}
	return b.String()
}
