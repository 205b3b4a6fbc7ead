// Package store provides the in-memory user store.
//
// State lives for the process lifetime only. Handlers run concurrently, so
// every operation takes the store lock; the expected entry count is small
// enough that coarse locking is fine.
package store

import (
	"sort"
	"strings"
	"sync"

	"github.com/deppfellow/user-management-api/internal/model"
)

// UserStore is a mutex-guarded mapping from user id to record.
type UserStore struct {
	mu     sync.RWMutex
	users  map[int]model.User
	nextID int
}

// NewUserStore creates a store seeded with the demo users.
func NewUserStore() *UserStore {
	return &UserStore{
		users: map[int]model.User{
			1: {ID: 1, FirstName: "John", LastName: "Doe", Email: "john@example.com", Department: "IT", Username: "john.doe", Password: "password123", Role: "Employee", Active: true},
			2: {ID: 2, FirstName: "Jane", LastName: "Smith", Email: "jane@example.com", Department: "HR", Username: "jane.smith", Password: "password123", Role: "Manager", Active: true},
			3: {ID: 3, FirstName: "Admin", LastName: "User", Email: "admin@example.com", Department: "IT", Username: "admin", Password: "admin123", Role: "Administrator", Active: true},
			4: {ID: 4, FirstName: "Bob", LastName: "Developer", Email: "bob@example.com", Department: "Engineering", Username: "developer", Password: "dev123", Role: "Employee", Active: true},
		},
		nextID: 5,
	}
}

// GetAll returns every user ordered by id.
func (s *UserStore) GetAll() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users
}

// GetByID returns the user with the given id, if present.
func (s *UserStore) GetByID(id int) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	return u, ok
}

// GetByUsername returns the user with the given username, if present.
func (s *UserStore) GetByUsername(username string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return u, true
		}
	}
	return model.User{}, false
}

// Add assigns the next id to u, stores it, and returns the stored record.
func (s *UserStore) Add(u model.User) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u.ID = s.nextID
	s.nextID++
	s.users[u.ID] = u
	return u
}

// Update replaces the mutable profile fields (name, email, department) of an
// existing user. Credentials, role, and active flag are not touched. Returns
// false if the id is unknown.
func (s *UserStore) Update(id int, u model.User) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.users[id]
	if !ok {
		return false
	}
	existing.FirstName = u.FirstName
	existing.LastName = u.LastName
	existing.Email = u.Email
	existing.Department = u.Department
	s.users[id] = existing
	return true
}

// Delete removes the user with the given id, reporting whether it existed.
func (s *UserStore) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.users[id]
	delete(s.users, id)
	return ok
}

// EmailTaken reports whether any user other than excludeID already uses the
// email (case-insensitive). Pass excludeID 0 when creating.
func (s *UserStore) EmailTaken(email string, excludeID int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID != excludeID && strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}
