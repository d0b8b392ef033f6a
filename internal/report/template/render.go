// Package template renders user-editable HTML report templates.
//
// A template is plain HTML containing {{TOKEN}} placeholders and conditional
// blocks delimited by {{#IF_GENERAL}}...{{/IF_GENERAL}} and
// {{#IF_CLIENT}}...{{/IF_CLIENT}}. Rendering is a pure function of its inputs.
package template

import (
	"html"
	"regexp"
	"strconv"
	"strings"
)

var (
	blockOpenRe = regexp.MustCompile(`\{\{#IF_([A-Za-z0-9_]+)\}\}`)
	tokenRe     = regexp.MustCompile(`\{\{([A-Za-z0-9_]+)\}\}`)
	variableRe  = regexp.MustCompile(`\{\{([^}]+)\}\}`)
)

// Render expands content for mode using data.
//
// Blocks of other modes are removed together with their contents, the
// delimiters of the active block are dropped, and every remaining token is
// replaced by its value. Tokens without a value in this mode render as "".
// An opening delimiter without a matching close is left untouched.
func Render(content string, mode Mode, data Data) string {
	out := resolveBlocks(content, mode.blockTag())
	values := tokenValues(mode, data)
	return tokenRe.ReplaceAllStringFunc(out, func(tok string) string {
		return values[tok[2:len(tok)-2]]
	})
}

// resolveBlocks keeps the body of blocks tagged active and drops every other block.
// The closing delimiter is matched non-greedily, so the first {{/IF_X}} ends the block.
func resolveBlocks(s, active string) string {
	var b strings.Builder
	for {
		loc := blockOpenRe.FindStringSubmatchIndex(s)
		if loc == nil {
			b.WriteString(s)
			return b.String()
		}

		tag := s[loc[2]:loc[3]]
		closing := "{{/IF_" + tag + "}}"
		end := strings.Index(s[loc[1]:], closing)
		if end < 0 {
			b.WriteString(s[:loc[1]])
			s = s[loc[1]:]
			continue
		}

		b.WriteString(s[:loc[0]])
		body := s[loc[1] : loc[1]+end]
		rest := s[loc[1]+end+len(closing):]
		if tag == active {
			// nested blocks inside the body still need resolving
			s = body + rest
		} else {
			s = rest
		}
	}
}

func tokenValues(mode Mode, data Data) map[string]string {
	values := map[string]string{
		"COMPANY_NAME":    html.EscapeString(data.CompanyName),
		"REPORT_DATE":     formatDate(data.ReportDate, reportDateLayout),
		"USER_NAME":       html.EscapeString(data.UserName),
		"GENERATION_DATE": formatDate(data.GeneratedAt, generationDateLayout),
	}

	switch mode {
	case ModeGeneral:
		g := data.General
		values["TOTAL_CLIENTS"] = strconv.Itoa(g.TotalClients)
		values["TOTAL_DEBT"] = FormatAmount(g.TotalDebt)
		values["TOTAL_PAID"] = FormatAmount(g.TotalPaid)
		values["CLIENT_ROWS"] = generalRows(g.Rows)
	case ModeClient:
		c := data.Client
		values["CLIENT_NAME"] = html.EscapeString(c.Name)
		values["CLIENT_DEBT_TOTAL"] = FormatAmount(c.DebtTotal)
		values["CLIENT_PAID_TOTAL"] = FormatAmount(c.PaidTotal)
		values["CLIENT_BALANCE"] = FormatAmount(c.Balance)
		values["CLIENT_DEBTS_ROWS"] = debtRows(c.Debts)
		values["CLIENT_PAYMENTS_ROWS"] = paymentRows(c.Payments)
	}
	return values
}

// ExtractVariables lists the distinct {{...}} tokens of content in order of first appearance,
// including block delimiters such as "#IF_CLIENT".
func ExtractVariables(content string) []string {
	matches := variableRe.FindAllStringSubmatch(content, -1)
	seen := make(map[string]bool, len(matches))
	vars := make([]string, 0, len(matches))
	for _, m := range matches {
		name := strings.Trim(m[1], "{}")
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		vars = append(vars, name)
	}
	return vars
}
