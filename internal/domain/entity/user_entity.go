package entity

// User is the aggregate root for the user domain. ID is the user-chosen
// handle used to log in; Password holds the uppercase hex credential
// fingerprint, never the plaintext.
type User struct {
	ID            string
	Name          string
	Email         string
	Age           int
	Password      string
	EmailVerified bool
}
