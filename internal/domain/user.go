package domain

type UserId = int64

// User is an administrator credential record.
// There is no plaintext password field: plaintext only ever exists as an
// argument to service.SetPassword / service.Login.
type User struct {
	Id       UserId
	Name     string
	Email    string
	PassHash string
	Admin    bool
}

// Credentials is transient login input, never persisted.
type Credentials struct {
	Email    string
	Password string
}
