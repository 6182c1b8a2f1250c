// Package messaging builds the share payloads handed off to external
// messaging channels. Only text is produced here; opening the channel
// is the caller's job.
package messaging

import (
	"fmt"
	"net/url"
	"strings"

	"os_pro/internal/domain/entities"
)

// BuildShareText renders the WhatsApp message for an order, using the
// channel's asterisk-bold and underscore-italic markup.
func BuildShareText(order entities.ServiceOrder, company entities.CompanyProfile) string {
	companyName := company.Name
	if companyName == "" {
		companyName = entities.DefaultCompanyName
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*ORDEM DE SERVIÇO #%d*\n\n", order.OrderNumber)
	fmt.Fprintf(&b, "*Empresa:* %s\n", companyName)
	fmt.Fprintf(&b, "*Cliente:* %s\n", order.CustomerName)
	fmt.Fprintf(&b, "*Status:* %s\n", order.Status)
	b.WriteString("*Serviços/Peças:*\n")
	for _, li := range order.Items {
		fmt.Fprintf(&b, "- %s (x%d): R$ %s\n", li.Name, li.Quantity, li.Total.String())
	}
	fmt.Fprintf(&b, "\n*TOTAL:* R$ %s\n\n", order.TotalAmount.FormatBRL())
	fmt.Fprintf(&b, "_Enviado via %s_", companyName)
	return b.String()
}

// ShareURL wraps the share text in a wa.me link.
func ShareURL(text string) string {
	return "https://wa.me/?text=" + url.QueryEscape(text)
}
