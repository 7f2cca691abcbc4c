package store

import (
	"fmt"

	"github.com/amancoderhub/EMS-Event-management-System/models"
	"go.uber.org/zap"
)

// DefaultUserPassword is assigned when an admin creates a user without one.
const DefaultUserPassword = "pass123"

// Login looks up email in the collection for role and, when the password
// matches, replaces the session. The admin session is always named "Admin".
// Hashes are compared outside the lock.
func (s *Store) Login(role models.Role, email, password string) bool {
	cand, ok := s.loginCandidate(role, email)
	if !ok || !checkPassword(cand.hash, password) {
		s.logger.Info("Login rejected", zap.String("role", string(role)), zap.String("email", email))
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// The account may have been deleted while the hash was being checked.
	if again, ok := s.loginCandidateLocked(role, email); !ok || again.sess.ID != cand.sess.ID {
		s.logger.Info("Login rejected", zap.String("role", string(role)), zap.String("email", email))
		return false
	}
	s.state.Session = &cand.sess
	s.logger.Info("Login succeeded", zap.String("role", string(role)), zap.Int64("id", cand.sess.ID))
	return true
}

type loginCandidate struct {
	hash string
	sess models.Session
}

func (s *Store) loginCandidate(role models.Role, email string) (loginCandidate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loginCandidateLocked(role, email)
}

// loginCandidateLocked finds the first account in role's collection with
// email. Callers hold s.mu.
func (s *Store) loginCandidateLocked(role models.Role, email string) (loginCandidate, bool) {
	switch role {
	case models.RoleAdmin:
		for _, a := range s.state.Admins {
			if a.Email == email {
				return loginCandidate{a.Password, models.Session{Role: models.RoleAdmin, ID: a.ID, Name: "Admin"}}, true
			}
		}
	case models.RoleVendor:
		for _, v := range s.state.Vendors {
			if v.Email == email {
				return loginCandidate{v.Password, models.Session{Role: models.RoleVendor, ID: v.ID, Name: v.Name}}, true
			}
		}
	case models.RoleUser:
		for _, u := range s.state.Users {
			if u.Email == email {
				return loginCandidate{u.Password, models.Session{Role: models.RoleUser, ID: u.ID, Name: u.Name}}, true
			}
		}
	}
	return loginCandidate{}, false
}

// Logout clears the session and empties the cart.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Session = nil
	s.state.Cart = []models.CartLine{}
}

// Session returns a copy of the active session, or nil.
func (s *Store) Session() *models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSession(s.state.Session)
}

// SignupUser registers a user and logs them in. It returns false without
// touching anything when the email is taken.
func (s *Store) SignupUser(name, email, password string) bool {
	_, ok := s.insertUser(name, email, password, true)
	return ok
}

// CreateUser registers a user on behalf of an admin; the session is left
// alone. An empty password falls back to DefaultUserPassword.
func (s *Store) CreateUser(name, email, password string) (models.User, bool) {
	if password == "" {
		password = DefaultUserPassword
	}
	return s.insertUser(name, email, password, false)
}

// insertUser hashes outside the lock, then checks and appends under one
// write lock so two signups with the same email cannot both succeed.
func (s *Store) insertUser(name, email, password string, login bool) (models.User, bool) {
	hash, err := s.hashPassword(password)
	if err != nil {
		s.logger.Warn("Password hashing failed", zap.String("email", email), zap.Error(err))
		return models.User{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.state.Users {
		if u.Email == email {
			return models.User{}, false
		}
	}
	u := models.User{ID: s.nextIDLocked(), Name: name, Email: email, Password: hash, Role: models.RoleUser}
	s.state.Users = append(s.state.Users, u)
	if login {
		s.state.Session = &models.Session{Role: models.RoleUser, ID: u.ID, Name: u.Name}
	}
	s.logger.Info("User created", zap.Int64("id", u.ID), zap.String("email", email))
	return u, true
}

// SignupVendor registers a vendor with an empty catalogue and logs them in.
// It returns false without touching anything when the email is taken.
func (s *Store) SignupVendor(name, email, password, category string) bool {
	hash, err := s.hashPassword(password)
	if err != nil {
		s.logger.Warn("Password hashing failed", zap.String("email", email), zap.Error(err))
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range s.state.Vendors {
		if v.Email == email {
			return false
		}
	}
	v := models.Vendor{
		ID:       s.nextIDLocked(),
		Name:     name,
		Email:    email,
		Password: hash,
		Category: category,
		Contact:  "",
		Desc:     fmt.Sprintf("%s services", category),
		Products: []models.Product{},
	}
	s.state.Vendors = append(s.state.Vendors, v)
	s.state.Session = &models.Session{Role: models.RoleVendor, ID: v.ID, Name: v.Name}
	s.logger.Info("Vendor created", zap.Int64("id", v.ID), zap.String("category", category))
	return true
}

// Users returns a copy of the user collection.
func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.User{}, s.state.Users...)
}

// DeleteUser removes the user. Orders, requests and memberships that point at
// it are left as they are.
func (s *Store) DeleteUser(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, u := range s.state.Users {
		if u.ID == id {
			s.state.Users = append(s.state.Users[:i:i], s.state.Users[i+1:]...)
			return true
		}
	}
	return false
}
