// File: services/intelligence/geminiClient.go
package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"vetchat/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const systemPrompt = `You are a friendly, professional veterinary assistant chatbot for a veterinary clinic. Your role is to:

1. Answer ONLY veterinary-related questions about:
   - Pet health, symptoms, and diseases
   - Pet nutrition and diet
   - Vaccinations and preventive care
   - Pet behavior and training
   - Emergency signs that require immediate vet attention
   - General pet care advice (dogs, cats, birds, rabbits, fish, reptiles, etc.)
   - Appointment booking for veterinary services

2. For NON-veterinary questions, politely respond: "I'm specialized in veterinary topics only. I can help you with pet health questions, care advice, or booking an appointment. Is there something pet-related I can assist you with?"

3. Always be warm, empathetic, and reassuring — pet owners are often worried about their animals.

4. If a pet seems to have a medical emergency (difficulty breathing, seizures, heavy bleeding, collapse), always advise seeking immediate emergency vet care.

5. Keep responses concise but thorough. Use simple language, avoid excessive medical jargon.`

// GeminiGateway implements CompletionGateway on Google's Gemini API.
type GeminiGateway struct {
	model   *genai.GenerativeModel
	timeout time.Duration
}

func NewGeminiGateway(apiKey, modelName string, timeout time.Duration) *GeminiGateway {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		panic(fmt.Sprintf("failed to create Gemini client: %v", err))
	}

	model := client.GenerativeModel(modelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}
	return &GeminiGateway{model: model, timeout: timeout}
}

// Complete sends the new message with prior history as chat context. Known
// identity fields are folded into a single-line prefix so the model can
// personalize without the orchestrator inspecting the output.
func (g *GeminiGateway) Complete(ctx context.Context, history []models.Message, message string, sessionCtx models.SessionContext) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	chat := g.model.StartChat()
	for _, msg := range history {
		role := "model"
		if msg.Role == models.RoleUser {
			role = "user"
		}
		chat.History = append(chat.History, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}

	resp, err := chat.SendMessage(ctx, genai.Text(contextPrefix(sessionCtx)+message))
	if err != nil {
		return "", &ServiceUnavailableError{Err: fmt.Errorf("gemini send error: %w", err)}
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", &ServiceUnavailableError{Err: fmt.Errorf("gemini returned no candidates")}
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}

func contextPrefix(sessionCtx models.SessionContext) string {
	var prefix string
	if sessionCtx.UserName != "" {
		prefix += fmt.Sprintf("[User: %s] ", sessionCtx.UserName)
	}
	if sessionCtx.PetName != "" {
		prefix += fmt.Sprintf("[Pet: %s] ", sessionCtx.PetName)
	}
	return prefix
}
