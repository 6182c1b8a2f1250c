package interfaces

import "os_pro/internal/domain/entities"

// IDocumentGenerator renders the printable OS document handed to the
// customer. The core consumes only the raw bytes.
type IDocumentGenerator interface {
	GenerateOrderPDF(os entities.ServiceOrder, company entities.CompanyProfile) ([]byte, error)
}
