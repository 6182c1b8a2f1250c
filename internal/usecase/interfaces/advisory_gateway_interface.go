package interfaces

import (
	"context"

	"os_pro/internal/domain/entities"
)

// IAdvisoryGateway abstracts the generative-text provider (Gemini).
//
// Both operations may fail; callers degrade to fixed fallback messages
// and never let a gateway failure block the order workflow.
type IAdvisoryGateway interface {
	SummarizeOrder(ctx context.Context, os entities.ServiceOrder) (string, error)
	SuggestFix(ctx context.Context, problem string) (string, error)
}
