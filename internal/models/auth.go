package models

// User represents a registered account in the catalogue.
//
// The password is stored and compared as plain text. The catalogue is a
// local demo artifact with no network exposure; anything beyond that must
// switch to a salted one-way hash before reuse.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
