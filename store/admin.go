package store

import (
	"strconv"

	"github.com/amancoderhub/EMS-Event-management-System/models"
	"go.uber.org/zap"
)

// AddMembership stores m under a fresh id and membership number "MEM-<id>".
func (s *Store) AddMembership(m models.Membership) models.Membership {
	s.mu.Lock()
	defer s.mu.Unlock()

	m.ID = s.nextIDLocked()
	m.No = "MEM-" + strconv.FormatInt(m.ID, 10)
	s.state.Memberships = append(s.state.Memberships, m)
	s.logger.Info("Membership added", zap.String("no", m.No), zap.Int64("vendor_id", m.VendorID))
	return m
}

// UpdateMembershipPlan changes the plan of the membership numbered no.
func (s *Store) UpdateMembershipPlan(no, plan string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Memberships {
		if s.state.Memberships[i].No == no {
			s.state.Memberships[i].Plan = plan
			return true
		}
	}
	return false
}

// Membership looks up a membership by its number.
func (s *Store) Membership(no string) (models.Membership, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.state.Memberships {
		if m.No == no {
			return m, true
		}
	}
	return models.Membership{}, false
}

// Memberships returns every membership.
func (s *Store) Memberships() []models.Membership {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Membership{}, s.state.Memberships...)
}

// AddRequest stores req under a fresh id, dating it now when no date is set.
func (s *Store) AddRequest(req models.ItemRequest) models.ItemRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	req.ID = s.nextIDLocked()
	if req.Date.IsZero() {
		req.Date = s.now()
	}
	s.state.Requests = append(s.state.Requests, req)
	return req
}

// RequestsForUser returns the requests raised by userID.
func (s *Store) RequestsForUser(userID int64) []models.ItemRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.ItemRequest{}
	for _, r := range s.state.Requests {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out
}

// AddGuest appends to the guest list. Name and email are required; RSVP
// defaults to Pending.
func (s *Store) AddGuest(g models.Guest) (models.Guest, bool) {
	if g.Name == "" || g.Email == "" {
		return models.Guest{}, false
	}
	if g.RSVP == "" {
		g.RSVP = models.RSVPPending
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	g.ID = s.nextIDLocked()
	s.state.Guests = append(s.state.Guests, g)
	return g, true
}

// Guests returns the guest list.
func (s *Store) Guests() []models.Guest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Guest{}, s.state.Guests...)
}
