package application

import (
	"context"
	"testing"

	"github.com/Viamapa-Trip-Planner/service-routes/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAsk_BuildsRouteContext(t *testing.T) {
	history := newHistoryService(nil)
	saved, err := history.SaveRoute(context.Background(), testSaveRequest())
	require.NoError(t, err)

	assistant := &fakeAssistant{answer: "About 4 minutes by car."}
	svc := NewChatService(history, assistant, zap.NewNop())

	answer, err := svc.Ask(context.Background(), saved.Route.ID, ChatRequest{
		Question: "How long does the route take?",
		History: []ChatMessage{
			{Role: "user", Content: "Hi"},
			{Role: "assistant", Content: "Hello! Ask me about your route."},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "About 4 minutes by car.", answer)

	// The system context carries the route facts.
	assert.Contains(t, assistant.gotSystem, "Warsaw")
	assert.Contains(t, assistant.gotSystem, "car")
	assert.Contains(t, assistant.gotSystem, "Cafe")
	assert.Contains(t, assistant.gotSystem, "Head north")

	// Prior turns are forwarded, with the question appended last.
	require.Len(t, assistant.gotMessages, 3)
	assert.Equal(t, "How long does the route take?", assistant.gotMessages[2].Content)
	assert.Equal(t, "user", assistant.gotMessages[2].Role)
}

func TestAsk_EmptyQuestion(t *testing.T) {
	svc := NewChatService(newHistoryService(nil), &fakeAssistant{}, zap.NewNop())

	_, err := svc.Ask(context.Background(), uuid.New(), ChatRequest{Question: "  "})
	assert.Equal(t, domain.KindInvalidInput, domain.KindOf(err))
}

func TestAsk_UnknownRoute(t *testing.T) {
	svc := NewChatService(newHistoryService(nil), &fakeAssistant{}, zap.NewNop())

	_, err := svc.Ask(context.Background(), uuid.New(), ChatRequest{Question: "Where do I start?"})
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}
