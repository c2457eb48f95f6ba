// Package orchestrator routes classified messages to the scheduling backend
// or the conversational fallback. The classifier and extractor are pure;
// every side effect lives behind the collaborator interfaces here.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"schedbot/internal/domain"
	"schedbot/internal/identity"
	"schedbot/internal/intent"
	"schedbot/internal/llm"
	"schedbot/internal/timeparse"
)

type UserResolver interface {
	Resolve(ctx context.Context, platformUserID string) (string, error)
}

type ScheduleClient interface {
	ListAvailability(ctx context.Context, userID string) ([]domain.TimeSlot, error)
	AddSlots(ctx context.Context, userID string, slots []domain.TimeSlot) error
	DeleteSlots(ctx context.Context, userID string, crit domain.DeletionCriteria) error
	ClearAvailability(ctx context.Context, userID string) error
	CancelSession(ctx context.Context, userID string, crit domain.DeletionCriteria) error
}

type Config struct {
	LLMModel       string
	FallbackPrompt string
}

type Service struct {
	cfg      Config
	resolver UserResolver
	sched    ScheduleClient
	fallback llm.Provider
	logger   *slog.Logger
}

func New(cfg Config, resolver UserResolver, sched ScheduleClient, fallback llm.Provider, logger *slog.Logger) *Service {
	if cfg.FallbackPrompt == "" {
		cfg.FallbackPrompt = defaultFallbackPrompt
	}
	return &Service{
		cfg:      cfg,
		resolver: resolver,
		sched:    sched,
		fallback: fallback,
		logger:   logger,
	}
}

const defaultFallbackPrompt = "You are a friendly scheduling assistant. " +
	"You can chat casually, but you must never claim to have changed anyone's schedule: " +
	"schedule changes happen only through explicit availability requests."

// HandleMessage makes the routing decision for one inbound message and
// returns the reply text. Backend failures surface as errors; ambiguous
// requests produce clarification replies, never writes.
func (s *Service) HandleMessage(ctx context.Context, msg domain.Message) (domain.Reply, error) {
	reply := domain.Reply{
		MessageID:      msg.MessageID,
		PlatformUserID: msg.PlatformUserID,
	}

	userID, err := s.resolver.Resolve(ctx, msg.PlatformUserID)
	if errors.Is(err, identity.ErrUnknownUser) {
		reply.Intent = domain.IntentGeneralChat
		reply.Text = "I don't recognize this account yet. Ask an admin to link it before managing availability."
		return reply, nil
	}
	if err != nil {
		return reply, fmt.Errorf("resolve user: %w", err)
	}

	// Snapshot first: it is the context that disambiguates "clear this"
	// from chat. A failed fetch degrades to an empty snapshot, which only
	// makes the classifier more conservative.
	snapshot, snapErr := s.sched.ListAvailability(ctx, userID)
	if snapErr != nil {
		s.logger.Warn("availability snapshot failed", "user_id", userID, "error", snapErr)
		snapshot = nil
	}

	result := intent.Classify(msg.Text, snapshot)
	s.logger.Info("routing decision",
		"message_id", msg.MessageID,
		"user_id", userID,
		"intent", result.Label,
		"confidence", result.Confidence,
		"evidence", result.Evidence,
		"fallback", result.Fallback(),
	)
	reply.Intent = result.Label

	switch result.Label {
	case domain.IntentAvailabilityQuery:
		if snapErr != nil {
			return reply, fmt.Errorf("list availability: %w", snapErr)
		}
		reply.Text = formatAvailability(snapshot)
		return reply, nil

	case domain.IntentAvailabilityUpdate:
		slots := timeparse.ExtractSlots(msg.Text)
		if len(slots) == 0 {
			reply.Text = "I couldn't find a day and time range in that. Try something like \"Monday 9-11am\"."
			return reply, nil
		}
		if err := s.sched.AddSlots(ctx, userID, slots); err != nil {
			return reply, fmt.Errorf("add slots: %w", err)
		}
		reply.Text = "Added: " + formatSlots(slots) + "."
		return reply, nil

	case domain.IntentAvailabilityDeletion:
		return s.handleDeletion(ctx, userID, msg, reply, snapshot)

	case domain.IntentSessionCancellation:
		crit, _ := timeparse.ExtractDeletionCriteria(msg.Text)
		if err := s.sched.CancelSession(ctx, userID, crit); err != nil {
			return reply, fmt.Errorf("cancel session: %w", err)
		}
		reply.Text = "Your session has been cancelled."
		return reply, nil

	default:
		return s.handleFallback(ctx, msg, reply)
	}
}

func (s *Service) handleDeletion(ctx context.Context, userID string, msg domain.Message, reply domain.Reply, snapshot []domain.TimeSlot) (domain.Reply, error) {
	if intent.RequestsFullClear(msg.Text) {
		if len(snapshot) == 0 {
			reply.Text = "You have no availability saved, so there's nothing to clear."
			return reply, nil
		}
		if err := s.sched.ClearAvailability(ctx, userID); err != nil {
			return reply, fmt.Errorf("clear availability: %w", err)
		}
		reply.Text = "All your availability has been cleared."
		return reply, nil
	}

	crit, ok := timeparse.ExtractDeletionCriteria(msg.Text)
	if !ok {
		// No day, no time, no explicit "everything": refuse the
		// destructive reading and ask instead.
		reply.Text = "Which slot should I remove? Give me a day, a time range, or say \"remove everything\"."
		return reply, nil
	}
	if err := s.sched.DeleteSlots(ctx, userID, crit); err != nil {
		return reply, fmt.Errorf("delete slots: %w", err)
	}
	reply.Text = "Removed availability matching " + formatCriteria(crit) + "."
	return reply, nil
}

func (s *Service) handleFallback(ctx context.Context, msg domain.Message, reply domain.Reply) (domain.Reply, error) {
	if s.fallback == nil {
		reply.Text = "I can help with your availability. Try \"what's my availability\" or \"I'm free Monday 9-11am\"."
		return reply, nil
	}
	resp, err := s.fallback.Complete(ctx, llm.Request{
		Model:    s.cfg.LLMModel,
		System:   s.cfg.FallbackPrompt,
		Messages: []llm.Message{{Role: "user", Content: msg.Text}},
	})
	if err != nil {
		return reply, fmt.Errorf("fallback chat: %w", err)
	}
	reply.Text = strings.TrimSpace(resp.Content)
	if reply.Text == "" {
		reply.Text = "Sorry, I didn't catch that."
	}
	return reply, nil
}

func formatAvailability(slots []domain.TimeSlot) string {
	if len(slots) == 0 {
		return "You have no availability saved yet."
	}
	return "Your availability: " + formatSlots(slots) + "."
}

func formatSlots(slots []domain.TimeSlot) string {
	parts := make([]string, 0, len(slots))
	for _, sl := range slots {
		parts = append(parts, fmt.Sprintf("%s %02d:00-%02d:00", sl.Day, sl.StartHour, sl.EndHour))
	}
	return strings.Join(parts, ", ")
}

func formatCriteria(crit domain.DeletionCriteria) string {
	var parts []string
	if crit.HasDay() {
		parts = append(parts, crit.Day)
	}
	if crit.HasRange {
		parts = append(parts, fmt.Sprintf("%02d:00-%02d:00", crit.StartHour, crit.EndHour))
	}
	return strings.Join(parts, " ")
}
