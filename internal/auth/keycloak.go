package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/MicahParks/jwkset"
	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
)

const (
	jwksFetchTimeout = 5 * time.Second
	tokenLeeway      = 5 * time.Second
)

type keycloakAuthenticator struct {
	issuer   string
	audience string
	jwks     keyfunc.Keyfunc
}

// NewKeycloakAuthenticator returns nil when auth is disabled. The JWKS
// endpoint is fetched once up front so a bad issuer fails startup instead of
// every request.
func NewKeycloakAuthenticator(ctx context.Context, cfg Config) (Authenticator, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	if cfg.Issuer == "" {
		return nil, fmt.Errorf("auth enabled but issuer is empty")
	}

	jwksURL := cfg.JWKSURL
	if jwksURL == "" {
		jwksURL = cfg.Issuer + "/protocol/openid-connect/certs"
	}

	if err := checkJWKS(ctx, jwksURL); err != nil {
		return nil, fmt.Errorf("fetch jwks from %s: %w", jwksURL, err)
	}

	kf, err := keyfunc.NewDefaultCtx(ctx, []string{jwksURL})
	if err != nil {
		return nil, fmt.Errorf("fetch jwks from %s: %w", jwksURL, err)
	}

	return &keycloakAuthenticator{
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		jwks:     kf,
	}, nil
}

func checkJWKS(ctx context.Context, jwksURL string) error {
	ctx, cancel := context.WithTimeout(ctx, jwksFetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, jwksURL, nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("jwks endpoint returned %d", resp.StatusCode)
	}

	var set jwkset.JWKSMarshal
	if err := json.NewDecoder(resp.Body).Decode(&set); err != nil {
		return fmt.Errorf("decode jwks: %w", err)
	}
	if len(set.Keys) == 0 {
		return fmt.Errorf("jwks has no keys")
	}
	return nil
}

// parserOptions pins the issuer and, when configured, the audience. Keycloak
// puts the client id in aud only when an audience mapper is set up.
func (a *keycloakAuthenticator) parserOptions() []jwt.ParserOption {
	opts := []jwt.ParserOption{
		jwt.WithLeeway(tokenLeeway),
		jwt.WithExpirationRequired(),
	}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}
	if a.audience != "" {
		opts = append(opts, jwt.WithAudience(a.audience))
	}
	return opts
}

func (a *keycloakAuthenticator) Authenticate(ctx context.Context, bearerToken string) (Principal, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(bearerToken, claims, a.jwks.KeyfuncCtx(ctx), a.parserOptions()...)
	if err != nil || !token.Valid {
		return Principal{}, ErrInvalidToken
	}

	issuer, _ := claims.GetIssuer()
	subject, _ := claims.GetSubject()
	return Principal{
		Issuer:   issuer,
		Subject:  subject,
		Audience: claims["aud"],
		Claims:   claims,
	}, nil
}
