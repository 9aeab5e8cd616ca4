// Package usecases contains application business rules.
// Clean Architecture: Usecases orchestrate entities and depend on port interfaces.
// They contain NO framework code, NO external dependencies - just pure business logic.
package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/svpcet/campus-compass/internal/domain/entities"
	"github.com/svpcet/campus-compass/internal/domain/ports"
)

// NavigateUseCase orchestrates one navigation turn end-to-end and maintains
// conversation continuity through the session store.
type NavigateUseCase struct {
	locations ports.LocationStore
	model     ports.ChatModel
	sessions  ports.SessionStore
}

// NewNavigateUseCase creates a NavigateUseCase with injected dependencies.
func NewNavigateUseCase(
	locations ports.LocationStore,
	model ports.ChatModel,
	sessions ports.SessionStore,
) *NavigateUseCase {
	return &NavigateUseCase{
		locations: locations,
		model:     model,
		sessions:  sessions,
	}
}

// HandleTurn runs one turn: resolve or create the session, forward the user
// message, and decode the model's reply.
//
// A reply that is present but not valid JSON is not an error: the raw text is
// returned with a parse-error marker so the caller can still display it.
func (uc *NavigateUseCase) HandleTurn(ctx context.Context, req *entities.NavigationRequest) (*entities.TurnResult, error) {
	if strings.TrimSpace(req.UserMessage) == "" {
		return nil, ports.ErrEmptyMessage
	}

	// Fetched on every turn, continuation turns included. The redundant
	// fetch on continuations is accepted; the list is tiny.
	locations, err := uc.locations.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing locations: %w", err)
	}

	var (
		session ports.ChatSession
		chatID  = req.ChatID
		created bool
	)
	if chatID == "" {
		instruction, err := NavigatorPrompt(req.UserCoordinate, req.UserMessage, locations)
		if err != nil {
			return nil, fmt.Errorf("building grounding instruction: %w", err)
		}
		session, err = uc.model.StartChat(ctx, instruction)
		if err != nil {
			return nil, fmt.Errorf("starting chat: %w", err)
		}
		chatID = uc.sessions.Create(session)
		created = true
	} else {
		var ok bool
		session, ok = uc.sessions.Get(chatID)
		if !ok {
			return nil, ports.ErrSessionNotFound
		}
	}

	// The typed store makes a bad entry unreachable in practice; the guard
	// keeps the invalid-session failure class explicit.
	if session == nil {
		return nil, ports.ErrInvalidSession
	}

	text, err := session.Send(ctx, req.UserMessage)
	if err != nil {
		return nil, err
	}

	result := &entities.TurnResult{ChatID: chatID, Created: created}

	var parsed entities.NavigationResult
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		result.Raw = text
		result.ParseError = "Could not parse response as JSON"
		return result, nil
	}
	result.Parsed = &parsed
	return result, nil
}
