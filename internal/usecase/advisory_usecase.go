package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"os_pro/internal/usecase/interfaces"
)

var ErrEmptyProblem = errors.New("problem description is required")

// Fixed fallbacks shown when the generative-text provider fails. A
// gateway failure never blocks the order workflow.
const (
	FallbackSummary    = "Não foi possível gerar o resumo automático no momento."
	FallbackSuggestion = "Sugestão técnica indisponível."
)

type IAdvisoryUseCase interface {
	SummarizeOrder(ctx context.Context, orderID string) (string, error)
	SuggestFix(ctx context.Context, problem string) (string, error)
}

type AdvisoryUseCase struct {
	orders  IOrderUseCase
	gateway interfaces.IAdvisoryGateway
}

var _ IAdvisoryUseCase = (*AdvisoryUseCase)(nil)

func NewAdvisoryUseCase(orders IOrderUseCase, gateway interfaces.IAdvisoryGateway) *AdvisoryUseCase {
	return &AdvisoryUseCase{orders: orders, gateway: gateway}
}

// SummarizeOrder produces the customer-facing summary for a saved
// order. Gateway failures degrade to the fixed fallback text; an
// unknown order id is still an error.
func (u *AdvisoryUseCase) SummarizeOrder(ctx context.Context, orderID string) (string, error) {
	os, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return "", err
	}

	if u.gateway == nil {
		return FallbackSummary, nil
	}
	summary, err := u.gateway.SummarizeOrder(ctx, os)
	if err != nil || strings.TrimSpace(summary) == "" {
		log.Printf("[advisory][usecase] summary degraded to fallback os=%s err=%v", os.ID, err)
		return FallbackSummary, nil
	}
	return summary, nil
}

func (u *AdvisoryUseCase) SuggestFix(ctx context.Context, problem string) (string, error) {
	problem = strings.TrimSpace(problem)
	if problem == "" {
		return "", ErrEmptyProblem
	}

	if u.gateway == nil {
		return FallbackSuggestion, nil
	}
	suggestion, err := u.gateway.SuggestFix(ctx, problem)
	if err != nil || strings.TrimSpace(suggestion) == "" {
		log.Printf("[advisory][usecase] suggestion degraded to fallback err=%v", err)
		return FallbackSuggestion, nil
	}
	return suggestion, nil
}
