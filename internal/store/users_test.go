package store

import (
	"testing"

	"github.com/deppfellow/user-management-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededUsers(t *testing.T) {
	s := NewUserStore()

	users := s.GetAll()
	require.Len(t, users, 4)
	assert.Equal(t, 1, users[0].ID)
	assert.Equal(t, 4, users[3].ID)

	admin, ok := s.GetByUsername("admin")
	require.True(t, ok)
	assert.Equal(t, "Administrator", admin.Role)
	assert.True(t, admin.Active)
}

func TestAddAssignsSequentialIDs(t *testing.T) {
	s := NewUserStore()

	first := s.Add(model.User{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"})
	second := s.Add(model.User{FirstName: "Alan", LastName: "Turing", Email: "alan@example.com"})

	assert.Equal(t, 5, first.ID)
	assert.Equal(t, 6, second.ID)

	got, ok := s.GetByID(5)
	require.True(t, ok)
	assert.Equal(t, "Ada", got.FirstName)
}

func TestUpdateOnlyTouchesProfileFields(t *testing.T) {
	s := NewUserStore()

	ok := s.Update(1, model.User{
		FirstName:  "Johnny",
		LastName:   "Doe",
		Email:      "johnny@example.com",
		Department: "Platform",
		Password:   "should-not-apply",
		Role:       "should-not-apply",
	})
	require.True(t, ok)

	got, _ := s.GetByID(1)
	assert.Equal(t, "Johnny", got.FirstName)
	assert.Equal(t, "johnny@example.com", got.Email)
	assert.Equal(t, "Platform", got.Department)
	assert.Equal(t, "password123", got.Password)
	assert.Equal(t, "Employee", got.Role)
}

func TestUpdateUnknownID(t *testing.T) {
	s := NewUserStore()
	assert.False(t, s.Update(999, model.User{FirstName: "Ghost"}))
}

func TestDelete(t *testing.T) {
	s := NewUserStore()

	assert.True(t, s.Delete(2))
	_, ok := s.GetByID(2)
	assert.False(t, ok)

	assert.False(t, s.Delete(2))
	assert.False(t, s.Delete(999))
}

func TestEmailTaken(t *testing.T) {
	s := NewUserStore()

	assert.True(t, s.EmailTaken("john@example.com", 0))
	assert.True(t, s.EmailTaken("JOHN@EXAMPLE.COM", 0))

	// A user's own email does not conflict with itself on update.
	assert.False(t, s.EmailTaken("john@example.com", 1))
	assert.False(t, s.EmailTaken("new@example.com", 0))
}
