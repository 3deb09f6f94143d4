package server

import (
	"net/http"

	"github.com/kairos-coach/kairos/core/faults"
	"github.com/kairos-coach/kairos/core/scrum"
)

// eventTypeParam parses the required eventType query parameter.
func eventTypeParam(r *http.Request) (scrum.EventType, error) {
	raw := r.URL.Query().Get("eventType")
	if raw == "" {
		return "", faults.Validationf("eventType query parameter is required")
	}
	et, ok := scrum.ParseEventType(raw)
	if !ok {
		return "", faults.Validationf("invalid event type %q", raw)
	}
	return et, nil
}

type icebreakerRequest struct {
	Vibe string `json:"vibe"`
}

func (s *Server) handleIcebreaker(w http.ResponseWriter, r *http.Request) {
	var req icebreakerRequest
	if err := s.decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	vibe, ok := scrum.ParseVibe(req.Vibe)
	if !ok {
		s.writeError(w, r, faults.Validationf("invalid vibe %q", req.Vibe))
		return
	}

	question, err := s.svc.GenerateIcebreaker(r.Context(), vibe)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"question": question})
}

func (s *Server) handleIcebreakerActivity(w http.ResponseWriter, r *http.Request) {
	var req icebreakerRequest
	if err := s.decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	vibe, ok := scrum.ParseVibe(req.Vibe)
	if !ok {
		s.writeError(w, r, faults.Validationf("invalid vibe %q", req.Vibe))
		return
	}

	activity, err := s.svc.GenerateActivity(r.Context(), vibe)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, activity)
}

func (s *Server) handleSimulationInfo(w http.ResponseWriter, r *http.Request) {
	et, err := eventTypeParam(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	info, err := s.svc.Store().SimulationInfo(et)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, info)
}

func (s *Server) handleGetMessages(w http.ResponseWriter, r *http.Request) {
	et, err := eventTypeParam(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	messages, err := s.svc.Store().Messages(et)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, messages)
}

type sendMessageRequest struct {
	EventType string `json:"eventType"`
	Content   string `json:"content"`
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if err := s.decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	et, ok := scrum.ParseEventType(req.EventType)
	if !ok {
		s.writeError(w, r, faults.Validationf("invalid event type %q", req.EventType))
		return
	}

	msg, err := s.svc.SendMessage(r.Context(), et, req.Content)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": msg,
	})
}

func (s *Server) handleResetMessages(w http.ResponseWriter, r *http.Request) {
	et, err := eventTypeParam(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if _, err := s.svc.ResetConversation(et); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Messages reset successfully",
	})
}

func (s *Server) handleScenarioChallenges(w http.ResponseWriter, r *http.Request) {
	et, err := eventTypeParam(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, s.svc.Catalog().ListByEvent(et))
}

type startScenarioRequest struct {
	EventType      string `json:"eventType"`
	ScenarioType   string `json:"scenarioType"`
	ScenarioID     string `json:"scenarioId"`
	CustomScenario string `json:"customScenario"`
}

func (s *Server) handleStartScenario(w http.ResponseWriter, r *http.Request) {
	var req startScenarioRequest
	if err := s.decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	et, ok := scrum.ParseEventType(req.EventType)
	if !ok {
		s.writeError(w, r, faults.Validationf("invalid event type %q", req.EventType))
		return
	}

	switch scrum.ScenarioType(req.ScenarioType) {
	case scrum.ScenarioPredefined:
		info, err := s.svc.StartPredefined(et, req.ScenarioID)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		s.writeJSON(w, http.StatusOK, info)
	case scrum.ScenarioCustom:
		info, err := s.svc.StartCustom(et, req.CustomScenario)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		s.writeJSON(w, http.StatusOK, info)
	default:
		s.writeError(w, r, faults.Validationf("invalid scenario type %q", req.ScenarioType))
	}
}
