package validators

import "net/mail"

// IsEmailValid checks address syntax only; no network lookups,
// this runs on every booking request.
func IsEmailValid(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
