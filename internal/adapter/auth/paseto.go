package auth

import (
	"time"

	"aidanwoods.dev/go-paseto"
	"github.com/rgladkov/shoporder/internal/adapter/config"
	"github.com/rgladkov/shoporder/internal/core/domain"
	"github.com/rgladkov/shoporder/internal/core/port"
)

// PasetoToken verifies admin tokens with the symmetric key shared with the
// storefront's auth service. Token issuance lives there, not here.
type PasetoToken struct {
	parser *paseto.Parser
	key    *paseto.V4SymmetricKey
}

func New(conf *config.Auth) (*PasetoToken, error) {
	parser := paseto.NewParser()

	key, err := paseto.V4SymmetricKeyFromHex(config.Sanitize(conf.TokenKey))
	if err != nil {
		return nil, err
	}

	s := PasetoToken{
		parser: &parser,
		key:    &key,
	}

	return &s, nil
}

func (p *PasetoToken) VerifyToken(token string) (*port.TokenPayload, error) {
	parsed, err := p.parser.ParseV4Local(*p.key, token, nil)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	var payload port.TokenPayload
	if err := parsed.Get("payload", &payload); err != nil {
		return nil, domain.ErrInvalidToken
	}

	return &payload, nil
}

// MintToken issues a token with the shared key. Used by tests and ops
// tooling; production tokens come from the auth service.
func (p *PasetoToken) MintToken(subject string, ttl time.Duration) (string, error) {
	token := paseto.NewToken()
	token.SetExpiration(time.Now().Add(ttl))

	if err := token.Set("payload", port.TokenPayload{Subject: subject}); err != nil {
		return "", err
	}

	return token.V4Encrypt(*p.key, nil), nil
}
