package document

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"log"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"os_pro/internal/domain/entities"
	"os_pro/internal/usecase/interfaces"
)

// PDFGenerator renders the printable OS document: company header with
// optional logo, order number and date, customer box, item table and
// grand total, plus technician/customer signature lines.
type PDFGenerator struct{}

var _ interfaces.IDocumentGenerator = (*PDFGenerator)(nil)

func NewPDFGenerator() *PDFGenerator {
	return &PDFGenerator{}
}

func (PDFGenerator) GenerateOrderPDF(order entities.ServiceOrder, company entities.CompanyProfile) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pageWidth, _ := pdf.GetPageSize()

	startX := 14.0
	if company.Logo != "" {
		if registerLogo(pdf, company.Logo) {
			pdf.ImageOptions("company-logo", 14, 10, 30, 30, false, gofpdf.ImageOptions{}, 0, "")
			startX = 50
		}
	}

	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetTextColor(37, 99, 235)
	pdf.Text(startX, 22, tr(strings.ToUpper(companyName(company))))

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 100, 100)
	subtitle := company.Address
	if subtitle == "" {
		subtitle = "Sistema de Gestão Profissional"
	}
	pdf.Text(startX, 28, tr(subtitle))
	if company.Phone != "" {
		pdf.Text(startX, 33, tr("Tel: "+company.Phone))
	}

	pdf.SetFont("Helvetica", "", 14)
	pdf.SetTextColor(0, 0, 0)
	title := fmt.Sprintf("ORDEM DE SERVIÇO #%d", order.OrderNumber)
	pdf.Text(pageWidth-14-pdf.GetStringWidth(tr(title)), 22, tr(title))

	pdf.SetFont("Helvetica", "", 10)
	date := fmt.Sprintf("Data: %s", order.CreatedAt.Format("02/01/2006"))
	pdf.Text(pageWidth-14-pdf.GetStringWidth(date), 28, date)

	// Customer box.
	pdf.SetDrawColor(230, 230, 230)
	pdf.SetFillColor(249, 250, 251)
	pdf.RoundedRect(14, 45, pageWidth-28, 35, 3, "1234", "FD")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Text(20, 53, "DADOS DO CLIENTE")

	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(20, 60, tr("Nome: "+order.CustomerName))
	pdf.Text(20, 66, tr("Status Atual: "+string(order.Status)))
	pdf.Text(20, 72, tr("Descrição do Problema:"))
	pdf.SetXY(20, 73)
	pdf.MultiCell(pageWidth-45, 4.5, tr(order.Description), "", "L", false)

	// Item table.
	y := 85.0
	colWidths := []float64{pageWidth - 28 - 80, 20, 30, 30}
	headers := []string{"Item/Serviço", "Qtd", "Unitário", "Total"}
	aligns := []string{"L", "C", "R", "R"}

	pdf.SetXY(14, y)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(37, 99, 235)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], 8, tr(h), "", 0, aligns[i], true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for row, li := range order.Items {
		fill := row%2 == 1
		pdf.SetFillColor(249, 250, 251)
		pdf.SetX(14)
		cells := []string{
			li.Name,
			fmt.Sprintf("%d", li.Quantity),
			"R$ " + li.UnitPrice.String(),
			"R$ " + li.Total.String(),
		}
		for i, cell := range cells {
			pdf.CellFormat(colWidths[i], 7, tr(cell), "", 0, aligns[i], fill, 0, "")
		}
		pdf.Ln(-1)
	}

	finalY := pdf.GetY()
	pdf.SetFont("Helvetica", "B", 12)
	total := fmt.Sprintf("TOTAL GERAL: R$ %s", order.TotalAmount.FormatBRL())
	pdf.Text(pageWidth-14-pdf.GetStringWidth(tr(total)), finalY+15, tr(total))

	// Signature lines.
	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(14, 260, 90, 260)
	pdf.Line(pageWidth-90, 260, pageWidth-14, 260)

	pdf.SetFont("Helvetica", "", 8)
	techLabel := tr("Assinatura do Técnico")
	pdf.Text(52-pdf.GetStringWidth(techLabel)/2, 265, techLabel)
	custLabel := "Assinatura do Cliente"
	pdf.Text(pageWidth-52-pdf.GetStringWidth(custLabel)/2, 265, custLabel)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DocumentFileName is the suggested download name for an OS document.
func DocumentFileName(order entities.ServiceOrder) string {
	name := strings.Join(strings.Fields(order.CustomerName), "_")
	return fmt.Sprintf("OS_%d_%s.pdf", order.OrderNumber, name)
}

func companyName(company entities.CompanyProfile) string {
	if company.Name == "" {
		return entities.DefaultCompanyName
	}
	return company.Name
}

// registerLogo decodes a base64 data-URL logo. A broken logo is logged
// and skipped so it never blocks document generation.
func registerLogo(pdf *gofpdf.Fpdf, logo string) bool {
	payload := logo
	imageType := "PNG"
	if i := strings.Index(logo, ";base64,"); i >= 0 {
		header := logo[:i]
		payload = logo[i+len(";base64,"):]
		if strings.Contains(header, "jpeg") || strings.Contains(header, "jpg") {
			imageType = "JPG"
		}
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		log.Printf("[document][pdf] logo decode failed err=%v", err)
		return false
	}

	pdf.RegisterImageOptionsReader("company-logo", gofpdf.ImageOptions{ImageType: imageType}, bytes.NewReader(raw))
	if pdf.Err() {
		log.Printf("[document][pdf] logo register failed err=%v", pdf.Error())
		pdf.ClearError()
		return false
	}
	return true
}
