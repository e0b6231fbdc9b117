package types

// TokenClaims holds the validated claims of an access token. The app is
// single-user, so Subject is a fixed identity rather than a user ID.
type TokenClaims struct {
	Subject string
}
