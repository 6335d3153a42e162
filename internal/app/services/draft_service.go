package services

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kdanquah/regportal/internal/app/models/dto"
	"github.com/kdanquah/regportal/internal/pkg/logger"
)

// sweepInterval is how often expired drafts are purged in the background.
const sweepInterval = time.Minute

type studentDraft struct {
	req       dto.StudentDraftRequest
	expiresAt time.Time
}

type registrationDraft struct {
	req       dto.RegistrationDraftRequest
	expiresAt time.Time
}

// DraftService holds submissions through the review step of the two-phase
// intake flow. A propose call parks the payload under a fresh draft ID; a
// confirm call within the TTL consumes it for persistence. Unconfirmed
// drafts evaporate, leaving no database row.
type DraftService struct {
	mu            sync.Mutex
	ttl           time.Duration
	students      map[string]studentDraft
	registrations map[string]registrationDraft
	stop          chan struct{}
	stopOnce      sync.Once
}

// NewDraftService creates a draft store with the given time-to-live and
// starts its expiry sweeper.
func NewDraftService(ttl time.Duration) *DraftService {
	s := &DraftService{
		ttl:           ttl,
		students:      make(map[string]studentDraft),
		registrations: make(map[string]registrationDraft),
		stop:          make(chan struct{}),
	}
	go s.sweepLoop()
	return s
}

// Stop terminates the expiry sweeper.
func (s *DraftService) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *DraftService) sweepLoop() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.sweep(time.Now())
		}
	}
}

func (s *DraftService) sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var purged int
	for id, d := range s.students {
		if now.After(d.expiresAt) {
			delete(s.students, id)
			purged++
		}
	}
	for id, d := range s.registrations {
		if now.After(d.expiresAt) {
			delete(s.registrations, id)
			purged++
		}
	}
	if purged > 0 {
		logger.Debug().Int("count", purged).Msg("Expired drafts purged")
	}
}

// ProposeStudent parks a student submission for confirmation.
func (s *DraftService) ProposeStudent(req dto.StudentDraftRequest) *dto.DraftResponse {
	id := uuid.New().String()
	expiresAt := time.Now().Add(s.ttl)

	s.mu.Lock()
	s.students[id] = studentDraft{req: req, expiresAt: expiresAt}
	s.mu.Unlock()

	summary := fmt.Sprintf("%s: %s", req.StudentID,
		strings.TrimSpace(req.Surname+" "+req.OtherNames))
	return &dto.DraftResponse{DraftID: id, ExpiresAt: expiresAt, Summary: summary}
}

// TakeStudent consumes a parked student submission. It returns false when
// the draft is unknown or has expired.
func (s *DraftService) TakeStudent(draftID string) (dto.StudentDraftRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.students[draftID]
	if !ok || time.Now().After(d.expiresAt) {
		delete(s.students, draftID)
		return dto.StudentDraftRequest{}, false
	}
	delete(s.students, draftID)
	return d.req, true
}

// DiscardStudent drops a parked student submission without persisting it.
// Unknown ids are ignored; the draft may simply have expired already.
func (s *DraftService) DiscardStudent(draftID string) {
	s.mu.Lock()
	delete(s.students, draftID)
	s.mu.Unlock()
}

// ProposeRegistration parks a course-registration submission.
func (s *DraftService) ProposeRegistration(req dto.RegistrationDraftRequest) *dto.DraftResponse {
	id := uuid.New().String()
	expiresAt := time.Now().Add(s.ttl)

	s.mu.Lock()
	s.registrations[id] = registrationDraft{req: req, expiresAt: expiresAt}
	s.mu.Unlock()

	summary := fmt.Sprintf("%s: %s %s, %d course(s)",
		req.StudentID, req.Programme, req.Level, len(req.CourseCodes))
	return &dto.DraftResponse{DraftID: id, ExpiresAt: expiresAt, Summary: summary}
}

// TakeRegistration consumes a parked registration submission.
func (s *DraftService) TakeRegistration(draftID string) (dto.RegistrationDraftRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.registrations[draftID]
	if !ok || time.Now().After(d.expiresAt) {
		delete(s.registrations, draftID)
		return dto.RegistrationDraftRequest{}, false
	}
	delete(s.registrations, draftID)
	return d.req, true
}

// DiscardRegistration drops a parked registration submission.
func (s *DraftService) DiscardRegistration(draftID string) {
	s.mu.Lock()
	delete(s.registrations, draftID)
	s.mu.Unlock()
}
