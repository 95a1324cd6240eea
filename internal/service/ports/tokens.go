package ports

// TokenIssuer mints access tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID int64) (string, error)
}
