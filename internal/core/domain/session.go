package domain

// Session is the authentication status plus the cached user identity.
// IsAuthenticated is true iff User is non-nil.
type Session struct {
	IsAuthenticated bool  `json:"isAuthenticated"`
	User            *User `json:"user"`
}
