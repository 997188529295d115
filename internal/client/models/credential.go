package models

// Credential is the durable login/password pair enabling silent
// re-authentication across client restarts. Its presence implies a previous
// successful login that was not followed by an explicit logout.
type Credential struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}
