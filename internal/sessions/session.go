package sessions

import "time"

// Session is the server-side record for a logged-in user, stored in Redis
// with a TTL. Metadata mirrors the profile fields the identity provider
// attaches to the account (location, phone, linkedin, github).
type Session struct {
	Token       string            `json:"token"`
	UserID      string            `json:"userId"`
	Email       string            `json:"email"`
	DisplayName string            `json:"displayName"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	ExpiresAt   time.Time         `json:"expiresAt"`
	CreatedAt   time.Time         `json:"createdAt"`
}
