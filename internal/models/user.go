package models

import "strings"

// User wraps a reddit username. Upstream requests and shared links always
// carry the bare name, so the common "u/" and "/u/" prefixes are stripped
// on construction. No further validation is done.
type User struct {
	Name string
}

func NewUser(name string) User {
	name = strings.TrimSpace(name)
	name = strings.TrimPrefix(name, "/")
	name = strings.TrimPrefix(name, "u/")
	return User{Name: name}
}
