package entity

import (
	"strings"
	"time"
)

// User is the aggregate root for the user domain.
// Fields are only reachable through accessors; mutation goes through Update.
type User struct {
	id        string
	name      string
	email     Email
	createdAt time.Time
	updatedAt time.Time
}

// UserProps carries the inputs for NewUser. ID and timestamps are optional.
type UserProps struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserUpdate lists the fields to change; nil fields are left untouched.
type UserUpdate struct {
	Name  *string
	Email *string
}

// UserRecord is the flat persisted representation of a User.
type UserRecord struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser builds a user, generating an id and timestamps when absent.
// The email is validated; the name is stored as given.
func NewUser(p UserProps) (*User, error) {
	email, err := NewEmail(p.Email)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	u := &User{
		id:        p.ID,
		name:      p.Name,
		email:     email,
		createdAt: p.CreatedAt,
		updatedAt: p.UpdatedAt,
	}
	if u.id == "" {
		u.id = NewID()
	}
	if u.createdAt.IsZero() {
		u.createdAt = now
	}
	if u.updatedAt.IsZero() {
		u.updatedAt = now
	}
	return u, nil
}

// UserFromPersistence rebuilds a user from stored data. Stored values are
// trusted but the email is still checked so a bad row cannot produce a user.
func UserFromPersistence(r UserRecord) (*User, error) {
	return NewUser(UserProps(r))
}

func (u *User) ID() string           { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() Email         { return u.email }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// DisplayName renders "name (email)".
func (u *User) DisplayName() string {
	return u.name + " (" + u.email.Value() + ")"
}

// Update applies the provided fields. Nothing is changed when validation fails.
func (u *User) Update(p UserUpdate) error {
	name := u.name
	if p.Name != nil {
		name = strings.TrimSpace(*p.Name)
		if name == "" {
			return ErrEmptyName
		}
	}
	email := u.email
	if p.Email != nil {
		e, err := NewEmail(*p.Email)
		if err != nil {
			return err
		}
		email = e
	}
	u.name = name
	u.email = email
	u.updatedAt = time.Now().UTC()
	return nil
}

// Equals compares users by identity only.
func (u *User) Equals(other *User) bool {
	if u == nil || other == nil {
		return false
	}
	return u.id == other.id
}

func (u *User) ToPersistence() UserRecord {
	return UserRecord{
		ID:        u.id,
		Name:      u.name,
		Email:     u.email.Value(),
		CreatedAt: u.createdAt,
		UpdatedAt: u.updatedAt,
	}
}
