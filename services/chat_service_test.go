package services

import (
	"CityGuide/models"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCompleter struct {
	reply    string
	noChoice bool
	err      error
	got      openai.ChatCompletionRequest
	deadline bool
}

func (f *fakeCompleter) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.got = req
	_, f.deadline = ctx.Deadline()
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	if f.noChoice {
		return openai.ChatCompletionResponse{}, nil
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{
			Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: f.reply},
		}},
	}, nil
}

func strp(s string) *string { return &s }

func pergola() models.Place {
	return models.Place{
		ID:           1,
		Name:         "Ristorante La Pergola",
		Description:  "Ristorante stellato",
		Address:      "Via Alberto Cadlolo, 101",
		Category:     "Ristoranti",
		Rating:       48,
		ReviewCount:  458,
		PriceLevel:   "$$$",
		ContactPhone: strp("+39 06 3509 2152"),
		ContactEmail: strp("info@ristorantelapergola.it"),
		OpeningHours: strp("Mar-Sab: 19:30-23:00"),
		Tags:         []string{"Fine Dining", "Vista Panoramica"},
	}
}

func TestChatService_ConverseReturnsReply(t *testing.T) {
	fake := &fakeCompleter{reply: "Apriamo alle 19:30."}
	svc := NewChatService(fake, "", 30*time.Second, zap.NewNop())

	history := []models.ChatMessage{
		{Role: models.RoleUser, Content: "Ciao"},
		{Role: models.RoleAssistant, Content: "Ciao! Come posso aiutarti?"},
	}
	got := svc.Converse(context.Background(), "A che ora aprite?", pergola(), "Roma", history)

	assert.Equal(t, "Apriamo alle 19:30.", got)
	assert.Equal(t, openai.GPT4o, fake.got.Model)
	assert.InDelta(t, 0.7, fake.got.Temperature, 1e-6)
	assert.Equal(t, 500, fake.got.MaxTokens)
	assert.True(t, fake.deadline, "provider call must be bounded")

	msgs := fake.got.Messages
	require.Len(t, msgs, 4)
	assert.Equal(t, openai.ChatMessageRoleSystem, msgs[0].Role)
	assert.Equal(t, openai.ChatMessageRoleUser, msgs[1].Role)
	assert.Equal(t, "Ciao", msgs[1].Content)
	assert.Equal(t, openai.ChatMessageRoleAssistant, msgs[2].Role)
	assert.Equal(t, openai.ChatMessageRoleUser, msgs[3].Role)
	assert.Equal(t, "A che ora aprite?", msgs[3].Content)
}

func TestChatService_ConverseFallsBackOnProviderError(t *testing.T) {
	fake := &fakeCompleter{err: errors.New("connection reset")}
	svc := NewChatService(fake, "gpt-4o", time.Second, zap.NewNop())

	got := svc.Converse(context.Background(), "Ciao", pergola(), "Roma", nil)
	assert.Equal(t, FallbackErrorReply, got)
}

func TestChatService_ConverseFallsBackOnEmptyReply(t *testing.T) {
	svc := NewChatService(&fakeCompleter{reply: ""}, "gpt-4o", time.Second, zap.NewNop())
	assert.Equal(t, FallbackEmptyReply, svc.Converse(context.Background(), "Ciao", pergola(), "Roma", nil))

	svc = NewChatService(&fakeCompleter{noChoice: true}, "gpt-4o", time.Second, zap.NewNop())
	assert.Equal(t, FallbackEmptyReply, svc.Converse(context.Background(), "Ciao", pergola(), "Roma", nil))
}

func TestPlaceContext(t *testing.T) {
	ctx := PlaceContext(pergola(), "Roma")

	assert.Contains(t, ctx, "Nome: Ristorante La Pergola")
	assert.Contains(t, ctx, "Città: Roma")
	assert.Contains(t, ctx, "Orari: Mar-Sab: 19:30-23:00")
	assert.Contains(t, ctx, "Contatti: +39 06 3509 2152 info@ristorantelapergola.it")
	assert.Contains(t, ctx, "Valutazione: 4.8/5.0 (458 recensioni)")
	assert.Contains(t, ctx, "Tag: Fine Dining, Vista Panoramica")
}

func TestPlaceContext_MissingOptionalFields(t *testing.T) {
	place := models.Place{Name: "Bar Sport", Rating: 30, PriceLevel: "$"}
	ctx := PlaceContext(place, "")

	assert.Contains(t, ctx, "Orari: Non specificati")
	assert.Contains(t, ctx, "Contatti:  \n")
	assert.Contains(t, ctx, "Valutazione: 3.0/5.0 (0 recensioni)")
	assert.True(t, strings.HasSuffix(ctx, "Tag: \n"))
}

func TestBuildChatMessages_SystemPromptMentionsPlace(t *testing.T) {
	msgs := BuildChatMessages("Ciao", pergola(), "Roma", nil)
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[0].Content, "Ristorante La Pergola a Roma")
	assert.Contains(t, msgs[0].Content, "INFORMAZIONI SUL LUOGO:")
}
