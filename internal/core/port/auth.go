package port

type TokenPayload struct {
	Subject string
}

// TokenService verifies admin tokens minted by the storefront's auth service.
//
//go:generate mockgen -source=auth.go -destination=mock/auth.go -package=mock
type TokenService interface {
	VerifyToken(token string) (*TokenPayload, error)
}
