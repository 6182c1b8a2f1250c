package document

import (
	"bytes"
	"testing"
	"time"

	"os_pro/internal/domain/entities"
)

func docOrder() entities.ServiceOrder {
	return entities.ServiceOrder{
		ID:           "os-1",
		OrderNumber:  1001,
		CustomerName: "Ana Maria Souza",
		Status:       entities.OrderStatusInProgress,
		Description:  "Barulho no motor ao ligar",
		Items: []entities.OrderLineItem{
			{ItemID: "1", Name: "Mão de Obra Básica", Quantity: 2, UnitPrice: entities.Cents(15000), Total: entities.Cents(30000)},
			{ItemID: "2", Name: "Limpeza de Sistema", Quantity: 1, UnitPrice: entities.Cents(8000), Total: entities.Cents(8000)},
		},
		TotalAmount: entities.Cents(38000),
		CreatedAt:   time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestGenerateOrderPDF(t *testing.T) {
	gen := NewPDFGenerator()

	t.Run("renders a pdf", func(t *testing.T) {
		payload, err := gen.GenerateOrderPDF(docOrder(), entities.CompanyProfile{Name: "Oficina X", Phone: "1133334444"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.HasPrefix(payload, []byte("%PDF")) {
			t.Fatalf("expected PDF magic bytes, got %q", payload[:8])
		}
	})

	t.Run("empty company uses defaults", func(t *testing.T) {
		payload, err := gen.GenerateOrderPDF(docOrder(), entities.CompanyProfile{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(payload) == 0 {
			t.Fatalf("expected document output")
		}
	})

	t.Run("broken logo is skipped", func(t *testing.T) {
		profile := entities.CompanyProfile{Name: "Oficina X", Logo: "data:image/png;base64,???not-base64???"}
		payload, err := gen.GenerateOrderPDF(docOrder(), profile)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(payload) == 0 {
			t.Fatalf("expected document output despite bad logo")
		}
	})
}

func TestDocumentFileName(t *testing.T) {
	name := DocumentFileName(docOrder())
	if name != "OS_1001_Ana_Maria_Souza.pdf" {
		t.Fatalf("unexpected file name: %q", name)
	}
}
