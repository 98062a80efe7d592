package services

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"archtrip/internal/models/response_models"
	"archtrip/pkg/utils"
)

// SessionObserver receives state-change events. The presentation layer
// reacts to these (scrolling, marker highlighting) instead of being driven
// procedurally from here.
type SessionObserver func(response_models.SessionEvent)

// SessionServiceInterface is the single source of truth for which activity
// is highlighted, shared between the itinerary list and the map.
type SessionServiceInterface interface {
	CreateSession(trip *response_models.Trip) response_models.SessionState
	Get(sessionID string) (response_models.SessionState, error)
	Select(sessionID, activityID string) (response_models.SessionState, error)
	ClearSelection(sessionID string) (response_models.SessionState, error)
	ToggleDay(sessionID string, dayNumber int) (response_models.SessionState, error)
	Subscribe(sessionID string, observer SessionObserver) error
	ShareText(sessionID string) (string, error)
}

type tripSession struct {
	trip             *response_models.Trip
	activeActivityID *string
	expandedDays     map[int]bool
	viewport         response_models.ViewportCommand
	observers        []SessionObserver
}

type SessionService struct {
	mu       sync.Mutex
	sessions map[string]*tripSession
}

func NewSessionService() SessionServiceInterface {
	return &SessionService{sessions: make(map[string]*tripSession)}
}

// CreateSession registers a trip for viewing. The full-bounds viewport fit
// is computed here, exactly once per trip load; later transitions only move
// the viewport to single points.
func (s *SessionService) CreateSession(trip *response_models.Trip) response_models.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &tripSession{
		trip:         trip,
		expandedDays: make(map[int]bool),
		viewport:     utils.FitBoundsCommand(trip.AllActivities()),
	}
	// Day sections start open, matching the results view.
	for _, day := range trip.Schedule {
		sess.expandedDays[day.DayNumber] = true
	}

	id := uuid.New().String()
	s.sessions[id] = sess
	return s.stateLocked(id, sess)
}

func (s *SessionService) Get(sessionID string) (response_models.SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return response_models.SessionState{}, utils.ErrSessionNotFound
	}
	return s.stateLocked(sessionID, sess), nil
}

// Select highlights an activity. An id not present in the trip is a caller
// contract violation and leaves the state unchanged rather than failing.
func (s *SessionService) Select(sessionID, activityID string) (response_models.SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return response_models.SessionState{}, utils.ErrSessionNotFound
	}

	activity, dayNumber := sess.trip.FindActivity(activityID)
	if activity == nil {
		return s.stateLocked(sessionID, sess), nil
	}

	sess.activeActivityID = &activityID
	// A day section auto-opens whenever it holds the active activity.
	sess.expandedDays[dayNumber] = true
	sess.viewport = utils.FlyToCommand(activity.Coordinates)

	state := s.stateLocked(sessionID, sess)
	s.notifyLocked(sessionID, sess)
	return state, nil
}

// ClearSelection drops the highlight. The viewport keeps its last command;
// the initial bounds fit is never repeated within a session.
func (s *SessionService) ClearSelection(sessionID string) (response_models.SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return response_models.SessionState{}, utils.ErrSessionNotFound
	}

	sess.activeActivityID = nil

	state := s.stateLocked(sessionID, sess)
	s.notifyLocked(sessionID, sess)
	return state, nil
}

func (s *SessionService) ToggleDay(sessionID string, dayNumber int) (response_models.SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return response_models.SessionState{}, utils.ErrSessionNotFound
	}

	if _, exists := sess.expandedDays[dayNumber]; exists {
		sess.expandedDays[dayNumber] = !sess.expandedDays[dayNumber]
	}

	state := s.stateLocked(sessionID, sess)
	s.notifyLocked(sessionID, sess)
	return state, nil
}

func (s *SessionService) Subscribe(sessionID string, observer SessionObserver) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return utils.ErrSessionNotFound
	}
	sess.observers = append(sess.observers, observer)
	return nil
}

func (s *SessionService) ShareText(sessionID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return "", utils.ErrSessionNotFound
	}
	return utils.FormatTripSummary(sess.trip), nil
}

func (s *SessionService) stateLocked(sessionID string, sess *tripSession) response_models.SessionState {
	return response_models.SessionState{
		SessionID:        sessionID,
		Trip:             sess.trip,
		ActiveActivityID: sess.activeActivityID,
		ExpandedDays:     expandedDayList(sess.expandedDays),
		Viewport:         sess.viewport,
	}
}

// notifyLocked runs observers synchronously; transitions are reactions to
// single user inputs and need no fan-out machinery.
func (s *SessionService) notifyLocked(sessionID string, sess *tripSession) {
	if len(sess.observers) == 0 {
		return
	}
	event := response_models.SessionEvent{
		SessionID:        sessionID,
		ActiveActivityID: sess.activeActivityID,
		ExpandedDays:     expandedDayList(sess.expandedDays),
		Viewport:         sess.viewport,
	}
	for _, observer := range sess.observers {
		observer(event)
	}
}

func expandedDayList(days map[int]bool) []int {
	var out []int
	for day, open := range days {
		if open {
			out = append(out, day)
		}
	}
	sort.Ints(out)
	return out
}
