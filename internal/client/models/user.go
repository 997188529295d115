// Package models defines the wire records exchanged with the SkyWhySales
// backend and the closed role set used for authorization checks.
package models

import "encoding/json"

// Role is the closed set of account roles. The backend transmits roles as
// localized strings; only the manager value carries privilege.
type Role string

const (
	RoleManager  Role = "Менеджер"
	RoleCustomer Role = "Клиент"
)

// ParseRole maps a wire value onto the closed role set. Any value other
// than the manager literal is unprivileged.
func ParseRole(s string) Role {
	if Role(s) == RoleManager {
		return RoleManager
	}
	return RoleCustomer
}

// Privileged reports whether the role grants administrative access.
func (r Role) Privileged() bool {
	return r == RoleManager
}

// UnmarshalJSON normalizes unknown wire values to the unprivileged role so
// that authorization never depends on a raw string comparison elsewhere.
func (r *Role) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*r = ParseRole(s)
	return nil
}

// User is an account record. The backend echoes the password back on
// authentication; it is kept here because the persisted credential is built
// from it.
type User struct {
	// Key is the storage key the record was listed under, set when a keyed
	// list response is decoded. Empty for records fetched individually.
	Key string `json:"-"`

	ID             int    `json:"uId"`
	Surname        string `json:"uSurname"`
	Name           string `json:"uName"`
	Patronymic     string `json:"uPatronymic"`
	Email          string `json:"uEmail"`
	Password       string `json:"uPassword"`
	Role           Role   `json:"uRole"`
	Phone          string `json:"uPhone"`
	Birthdate      string `json:"uBirthdate"`
	PassportSerial string `json:"uPassportSerial"`
	PassportNumber string `json:"uPassportNumber"`
}

// FullName returns "Surname Name Patronymic" the way tickets reference
// their holder.
func (u User) FullName() string {
	return u.Surname + " " + u.Name + " " + u.Patronymic
}
