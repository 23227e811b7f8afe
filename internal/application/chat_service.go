package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/Viamapa-Trip-Planner/service-routes/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChatRequest is one question about a saved route, with the prior turns of
// the conversation. The server holds no chat state.
type ChatRequest struct {
	Question string        `json:"question" binding:"required"`
	History  []ChatMessage `json:"history"`
}

// ChatService answers free-text questions about a previously saved route.
type ChatService struct {
	history   *HistoryService
	assistant Assistant
	logger    *zap.Logger
}

// NewChatService creates a new ChatService.
func NewChatService(history *HistoryService, assistant Assistant, logger *zap.Logger) *ChatService {
	return &ChatService{
		history:   history,
		assistant: assistant,
		logger:    logger,
	}
}

// Ask loads the route, builds the system context, and forwards the
// conversation to the assistant.
func (s *ChatService) Ask(ctx context.Context, routeID uuid.UUID, req ChatRequest) (string, error) {
	if strings.TrimSpace(req.Question) == "" {
		return "", domain.NewValidationError("question must not be empty")
	}

	saved, err := s.history.GetRoute(ctx, routeID)
	if err != nil {
		return "", err
	}

	messages := make([]ChatMessage, 0, len(req.History)+1)
	messages = append(messages, req.History...)
	messages = append(messages, ChatMessage{Role: "user", Content: req.Question})

	answer, err := s.assistant.Answer(ctx, buildRouteContext(saved), messages)
	if err != nil {
		return "", fmt.Errorf("assistant request failed: %w", err)
	}
	return answer, nil
}

// buildRouteContext renders the saved route as the assistant's system
// context: terminals, places, instructions, ordered coordinates, totals.
func buildRouteContext(saved *SavedRouteDTO) string {
	var b strings.Builder
	b.WriteString("You are an expert route assistant. Here is the selected route:\n")
	fmt.Fprintf(&b, "- Start: %s\n", saved.Origin)
	fmt.Fprintf(&b, "- End: %s\n", saved.Destination)
	fmt.Fprintf(&b, "- Transport mode: %s\n", saved.ProfileLabel)

	b.WriteString("- Places to visit (start and end not included):\n")
	for _, p := range saved.Places {
		fmt.Fprintf(&b, "  - %s (%s), %s\n", p.Name, p.Category, p.Address)
	}

	b.WriteString("- Instructions:\n")
	for _, ins := range saved.Instructions {
		fmt.Fprintf(&b, "  %d. %s (%d m)\n", ins.Position, ins.Text, ins.DistanceMeters)
	}

	b.WriteString("- Ordered coordinates (including start and end):")
	for _, c := range saved.Coords {
		fmt.Fprintf(&b, " [%f, %f]", c.Lng, c.Lat)
	}
	b.WriteByte('\n')

	fmt.Fprintf(&b, "- Total distance: %.2f km\n", saved.DistanceKm)
	fmt.Fprintf(&b, "- Estimated time: %.2f min\n", saved.DurationMin)
	return b.String()
}
