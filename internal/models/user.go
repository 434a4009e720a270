package models

// User is a credential record in basic_login_user.
//
// ID is assigned by the store on insert. PasswordHash holds the encoded
// Argon2id digest; the plaintext password never reaches this type.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
}
