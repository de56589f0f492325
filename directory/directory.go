package directory

import (
	"errors"
	"time"
)

var (
	// ErrUserNotFound is returned when no user with the given username is registered.
	ErrUserNotFound = errors.New("no user with this username is registered")

	// ErrDuplicateUsername is returned when adding a user under a username that is already taken.
	ErrDuplicateUsername = errors.New("this username is already taken")
)

// Directory owns the set of User records, keyed by username. Listing follows
// insertion order so repeated displays are stable.
type Directory struct {
	users map[string]User
	order []string
}

// NewDirectory creates an empty Directory.
func NewDirectory() *Directory {
	return &Directory{
		users: make(map[string]User),
	}
}

// Add registers a new user under their username.
func (d *Directory) Add(user User) error {
	if _, exists := d.users[user.Username]; exists {
		return ErrDuplicateUsername
	}

	d.users[user.Username] = user
	d.order = append(d.order, user.Username)

	return nil
}

// Find returns the user registered under the given username.
func (d *Directory) Find(username string) (User, error) {
	user, exists := d.users[username]
	if !exists {
		return User{}, ErrUserNotFound
	}

	return user, nil
}

// Remove deletes the user registered under the given username.
// Callers are expected to check for active loans first (see loan.Ledger).
func (d *Directory) Remove(username string) error {
	if _, exists := d.users[username]; !exists {
		return ErrUserNotFound
	}

	delete(d.users, username)

	for i, name := range d.order {
		if name == username {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}

	return nil
}

// FindByFirstname returns all users with the given firstname, in registration
// order. Used by the remove-user flow to disambiguate shared firstnames.
func (d *Directory) FindByFirstname(firstname string) []User {
	var matches []User
	for _, username := range d.order {
		if user := d.users[username]; user.Firstname == firstname {
			matches = append(matches, user)
		}
	}

	return matches
}

// SetFirstname updates the firstname of the given user.
func (d *Directory) SetFirstname(username string, firstname string) error {
	return d.update(username, func(user *User) { user.Firstname = firstname })
}

// SetSurname updates the surname of the given user.
func (d *Directory) SetSurname(username string, surname string) error {
	return d.update(username, func(user *User) { user.Surname = surname })
}

// SetEmail updates the email address of the given user.
func (d *Directory) SetEmail(username string, email string) error {
	return d.update(username, func(user *User) { user.Email = email })
}

// SetDateOfBirth updates the date of birth of the given user.
func (d *Directory) SetDateOfBirth(username string, dateOfBirth time.Time) error {
	return d.update(username, func(user *User) { user.DateOfBirth = dateOfBirth })
}

// Len returns the number of registered users.
func (d *Directory) Len() int {
	return len(d.users)
}

// All returns the users in registration order.
func (d *Directory) All() []User {
	users := make([]User, 0, len(d.order))
	for _, username := range d.order {
		users = append(users, d.users[username])
	}

	return users
}

func (d *Directory) update(username string, apply func(user *User)) error {
	user, exists := d.users[username]
	if !exists {
		return ErrUserNotFound
	}

	apply(&user)
	d.users[username] = user

	return nil
}
