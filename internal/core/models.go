package core

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Operator holds the credentials allowed to write records.
type Operator struct {
	Username     string
	PasswordHash string
}
