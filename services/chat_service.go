package services

import (
	"CityGuide/models"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const (
	ChatTemperature = 0.7
	ChatMaxTokens   = 500

	// FallbackEmptyReply is returned when the provider answers with no text.
	FallbackEmptyReply = "Mi dispiace, non ho potuto elaborare la tua richiesta. Prova a riformulare la domanda."
	// FallbackErrorReply is returned when the provider call fails.
	FallbackErrorReply = "Mi dispiace, si è verificato un errore nel sistema. Riprova più tardi o contatta direttamente il luogo per informazioni."

	openingHoursUnknown = "Non specificati"
)

// ChatService answers questions about a single place. It keeps no state:
// the caller sends the whole conversation every turn.
type ChatService struct {
	Completer ChatCompleter
	Model     string
	Timeout   time.Duration
	Logger    *zap.Logger
}

func NewChatService(completer ChatCompleter, model string, timeout time.Duration, log *zap.Logger) *ChatService {
	if model == "" {
		model = openai.GPT4o
	}
	return &ChatService{
		Completer: completer,
		Model:     model,
		Timeout:   timeout,
		Logger:    log,
	}
}

// Converse sends the place context, the history and the new message to the
// provider. Provider failures never reach the caller; a fallback reply is
// returned instead.
func (s *ChatService) Converse(ctx context.Context, message string, place models.Place, cityName string, history []models.ChatMessage) string {
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	resp, err := s.Completer.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.Model,
		Messages:    BuildChatMessages(message, place, cityName, history),
		Temperature: ChatTemperature,
		MaxTokens:   ChatMaxTokens,
	})
	if err != nil {
		s.Logger.Error("openai chat completion failed",
			zap.Int("place_id", place.ID),
			zap.Error(err))
		return FallbackErrorReply
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return FallbackEmptyReply
	}
	return resp.Choices[0].Message.Content
}

// BuildChatMessages assembles system prompt, history in order, then the user turn.
func BuildChatMessages(message string, place models.Place, cityName string, history []models.ChatMessage) []openai.ChatCompletionMessage {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt(place, cityName),
	})
	for _, turn := range history {
		role := openai.ChatMessageRoleUser
		if turn.Role == models.RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: turn.Content})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})
	return messages
}

func systemPrompt(place models.Place, cityName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Sei un assistente virtuale specializzato in informazioni turistiche per %s a %s.\n", place.Name, cityName)
	b.WriteString("Fornisci informazioni accurate e utili basate sui seguenti dettagli sul luogo.\n")
	b.WriteString("Rispondi in italiano in modo amichevole e professionale.\n")
	b.WriteString("Se non conosci la risposta, suggerisci di contattare direttamente il luogo.\n\n")
	b.WriteString("INFORMAZIONI SUL LUOGO:\n")
	b.WriteString(PlaceContext(place, cityName))
	return b.String()
}

// PlaceContext renders the facts the assistant may rely on.
func PlaceContext(place models.Place, cityName string) string {
	hours := openingHoursUnknown
	if place.OpeningHours != nil && *place.OpeningHours != "" {
		hours = *place.OpeningHours
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Nome: %s\n", place.Name)
	fmt.Fprintf(&b, "Categoria: %s\n", place.Category)
	fmt.Fprintf(&b, "Indirizzo: %s\n", place.Address)
	fmt.Fprintf(&b, "Città: %s\n", cityName)
	fmt.Fprintf(&b, "Descrizione: %s\n", place.Description)
	fmt.Fprintf(&b, "Orari: %s\n", hours)
	fmt.Fprintf(&b, "Contatti: %s %s\n", deref(place.ContactPhone), deref(place.ContactEmail))
	fmt.Fprintf(&b, "Prezzo: %s\n", place.PriceLevel)
	fmt.Fprintf(&b, "Valutazione: %s/5.0 (%d recensioni)\n", place.DisplayRating(), place.ReviewCount)
	fmt.Fprintf(&b, "Tag: %s\n", strings.Join(place.Tags, ", "))
	return b.String()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
