// Package coach orchestrates coaching turns and the scenario lifecycle.
// It is the only writer of simulation state: handlers call into the
// service, the service validates before mutating, and the store
// serializes log mutations per event type.
package coach

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kairos-coach/kairos/core/faults"
	"github.com/kairos-coach/kairos/core/gateway"
	"github.com/kairos-coach/kairos/core/prompt"
	"github.com/kairos-coach/kairos/core/scenario"
	"github.com/kairos-coach/kairos/core/scrum"
	"github.com/kairos-coach/kairos/core/store"
)

// Service wires the store, catalog, knowledge base, and completion
// gateway into the operations exposed over HTTP.
type Service struct {
	store    *store.Store
	catalog  *scenario.Catalog
	kb       *scrum.KnowledgeBase
	registry *gateway.Registry
	timeout  time.Duration
	logger   *zap.Logger
}

// NewService creates a coach service. A nil logger defaults to a no-op
// logger; timeout bounds each completion call.
func NewService(st *store.Store, catalog *scenario.Catalog, kb *scrum.KnowledgeBase, registry *gateway.Registry, timeout time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Service{
		store:    st,
		catalog:  catalog,
		kb:       kb,
		registry: registry,
		timeout:  timeout,
		logger:   logger,
	}
}

// Store exposes read access to conversation state for handlers.
func (s *Service) Store() *store.Store {
	return s.store
}

// Catalog exposes the predefined challenge catalog for handlers.
func (s *Service) Catalog() *scenario.Catalog {
	return s.catalog
}

// Offline reports whether no completion provider is configured, in
// which case every generation answers from static fallbacks without
// network I/O.
func (s *Service) Offline() bool {
	return s.registry.Empty()
}

// SendMessage records a user turn, generates the coach reply, records
// it, and returns the created AI message.
func (s *Service) SendMessage(ctx context.Context, et scrum.EventType, content string) (store.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return store.Message{}, faults.Validationf("message content must not be empty")
	}

	if _, err := s.store.Append(et, scrum.MessageUser, content); err != nil {
		return store.Message{}, err
	}

	reply, err := s.generateReply(ctx, et)
	if err != nil {
		return store.Message{}, err
	}

	msg, err := s.store.Append(et, scrum.MessageAI, reply)
	if err != nil {
		return store.Message{}, err
	}

	s.logger.Info("coaching turn completed",
		zap.String("event_type", string(et)),
		zap.Int64("message_id", msg.ID),
		zap.Bool("offline", s.Offline()),
	)
	return msg, nil
}

func (s *Service) generateReply(ctx context.Context, et scrum.EventType) (string, error) {
	if s.Offline() {
		return FallbackCoaching(et), nil
	}

	info, err := s.store.SimulationInfo(et)
	if err != nil {
		return "", err
	}
	history, err := s.store.Messages(et)
	if err != nil {
		return "", err
	}

	system, messages := prompt.Coaching(et, info, history, s.kb)

	resp, err := s.complete(ctx, &gateway.Request{
		SystemPrompt: system,
		Messages:     messages,
	})
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}

func (s *Service) complete(ctx context.Context, req *gateway.Request) (*gateway.Response, error) {
	provider, err := s.registry.Default()
	if err != nil {
		return nil, faults.Gateway("no completion provider available", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := provider.Complete(ctx, req)
	if err != nil {
		s.logger.Error("completion call failed",
			zap.String("provider", provider.Name()),
			zap.Error(err),
		)
		return nil, faults.Gateway("failed to generate response", err)
	}
	if resp.Content == "" {
		return nil, faults.Gateway("provider returned an empty response", nil)
	}
	return resp, nil
}
