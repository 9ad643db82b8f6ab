package user

import (
	"fmt"
	"unicode/utf8"
)

// User represents a stored user record.
//
// User is a comparable value: two users are equal when all of their fields
// are equal, so it can be used directly as a map or set key.
type User struct {
	ID        int64  // ID is assigned by the store on insert
	FirstName string // FirstName is the given name
	LastName  string // LastName is the family name
	Email     string // Email is unique across the store
	Age       int    // Age is always positive
}

// String renders the user the way every container listing shows it.
func (u User) String() string {
	return fmt.Sprintf("%s %s (%s), %d years old", u.FirstName, u.LastName, u.Email, u.Age)
}

// Initials returns "F.L" built from the first rune of each name.
func (u User) Initials() string {
	return initial(u.FirstName) + "." + initial(u.LastName)
}

func initial(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return "?"
	}
	return string(r)
}
