package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"os_pro/internal/domain/entities"
	"os_pro/internal/usecase/interfaces"
)

var ErrMissingGeminiAPIKey = errors.New("missing GEMINI_API_KEY")
var ErrAdvisoryGatewayNotConfigured = errors.New("advisory gateway not configured")

// Gemini exposes an OpenAI-compatible endpoint, so the plain chat
// completion client works against it.
const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai"
const defaultGeminiModel = "gemini-2.0-flash"

const summarySystemPrompt = "Você é um assistente técnico especializado em atendimento ao cliente. " +
	"Responda de forma clara, educada e profissional em português brasileiro."

const suggestSystemPrompt = "Você é um consultor técnico experiente. Dê passos objetivos e úteis."

// GeminiAdvisor produces customer-facing summaries and technical
// suggestions for service orders.
type GeminiAdvisor struct {
	client   *openai.Client
	model    string
	mockMode bool
}

var _ interfaces.IAdvisoryGateway = (*GeminiAdvisor)(nil)

func NewGeminiAdvisor(apiKey string) (*GeminiAdvisor, error) {
	if isAdvisoryGatewayMockEnabled() {
		log.Printf("[advisory][gateway] mock mode enabled")
		return &GeminiAdvisor{mockMode: true}, nil
	}

	if apiKey == "" {
		log.Printf("[advisory][gateway] missing GEMINI_API_KEY")
		return nil, ErrMissingGeminiAPIKey
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = getenvDefault("GEMINI_BASE_URL", defaultGeminiBaseURL)

	model := getenvDefault("GEMINI_MODEL", defaultGeminiModel)
	log.Printf("[advisory][gateway] Gemini client initialized model=%s", model)

	return &GeminiAdvisor{client: openai.NewClientWithConfig(cfg), model: model}, nil
}

func (g *GeminiAdvisor) SummarizeOrder(ctx context.Context, order entities.ServiceOrder) (string, error) {
	itemLines := make([]string, 0, len(order.Items))
	for _, li := range order.Items {
		itemLines = append(itemLines, fmt.Sprintf("%s (Qtd: %d)", li.Name, li.Quantity))
	}

	prompt := fmt.Sprintf(
		"Analise esta Ordem de Serviço e forneça um resumo profissional para o cliente:\n"+
			"Cliente: %s\n"+
			"Descrição: %s\n"+
			"Itens: %s\n"+
			"Total: R$ %s\n"+
			"Status: %s",
		order.CustomerName, order.Description, strings.Join(itemLines, ", "),
		order.TotalAmount.FormatBRL(), order.Status,
	)

	if g.mockMode {
		log.Printf("[advisory][gateway] mock summary os=%s", order.ID)
		return fmt.Sprintf("Resumo da OS #%d para %s: serviço registrado com %d item(ns), total de R$ %s. Status atual: %s.",
			order.OrderNumber, order.CustomerName, len(order.Items), order.TotalAmount.FormatBRL(), order.Status), nil
	}

	return g.complete(ctx, summarySystemPrompt, prompt)
}

func (g *GeminiAdvisor) SuggestFix(ctx context.Context, problem string) (string, error) {
	prompt := fmt.Sprintf(
		"Baseado no problema técnico descrito: %q, sugira 3 passos possíveis para o diagnóstico ou solução técnica.",
		problem,
	)

	if g.mockMode {
		log.Printf("[advisory][gateway] mock suggestion problem_len=%d", len(problem))
		return "1. Inspecione o equipamento. 2. Isole a causa provável. 3. Execute o reparo e valide com o cliente.", nil
	}

	return g.complete(ctx, suggestSystemPrompt, prompt)
}

func (g *GeminiAdvisor) complete(ctx context.Context, system, prompt string) (string, error) {
	if g == nil || g.client == nil {
		return "", ErrAdvisoryGatewayNotConfigured
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		log.Printf("[advisory][gateway] completion failed err=%v", err)
		return "", err
	}
	if len(resp.Choices) == 0 {
		log.Printf("[advisory][gateway] completion returned no choices")
		return "", errors.New("advisory gateway returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func isAdvisoryGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("AI_GATEWAY_MOCK")))
	return v == "1" || v == "true" || v == "yes"
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
