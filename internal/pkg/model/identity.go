package model

import "strings"

// Identity is the descriptor the auth provider hands us for the signed-in user.
type Identity struct {
	Uid         string
	Email       string
	DisplayName string
	PhotoURL    string
}

// FallbackUsername picks a username for a freshly synthesized profile:
// display name, then the local part of the email, then "User".
func (i Identity) FallbackUsername() string {
	if i.DisplayName != "" {
		return i.DisplayName
	}
	if local, _, found := strings.Cut(i.Email, "@"); found && local != "" {
		return local
	}
	return "User"
}
