package scope

import (
	"context"
	"encoding/base64"
	"encoding/json"

	"insight-srv/internal/model"
)

// Payload is the verified token payload a Manager produces.
type Payload struct {
	UserID   string
	Username string
	Role     string

	Subject   string
	Issuer    string
	Id        string
	IssuedAt  int64
	ExpiresAt int64
}

// Manager verifies a token string into a Payload.
type Manager interface {
	Verify(token string) (Payload, error)
}

type payloadKey struct{}
type scopeKey struct{}

// NewScope creates a request scope from a verified payload.
func NewScope(payload Payload) model.Scope {
	userID := payload.UserID
	if userID == "" {
		userID = payload.Subject
	}

	return model.Scope{
		UserID:   userID,
		Username: payload.Username,
		Role:     payload.Role,
	}
}

// SetPayloadToContext stores the payload in the context.
func SetPayloadToContext(ctx context.Context, payload Payload) context.Context {
	return context.WithValue(ctx, payloadKey{}, payload)
}

// GetPayloadFromContext returns the payload from the context.
func GetPayloadFromContext(ctx context.Context) (Payload, bool) {
	payload, ok := ctx.Value(payloadKey{}).(Payload)
	return payload, ok
}

// SetScopeToContext stores the scope in the context.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, sc)
}

// GetScopeFromContext returns the scope from the context, or the zero scope.
func GetScopeFromContext(ctx context.Context) model.Scope {
	sc, ok := ctx.Value(scopeKey{}).(model.Scope)
	if !ok {
		return model.Scope{}
	}
	return sc
}

// CreateScopeHeader encodes a scope for service-to-service propagation.
func CreateScopeHeader(sc model.Scope) (string, error) {
	jsonData, err := json.Marshal(sc)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(jsonData), nil
}

// ParseScopeHeader decodes a scope header created by CreateScopeHeader.
func ParseScopeHeader(scopeHeader string) (model.Scope, error) {
	jsonData, err := base64.StdEncoding.DecodeString(scopeHeader)
	if err != nil {
		return model.Scope{}, err
	}

	var sc model.Scope
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return model.Scope{}, err
	}
	return sc, nil
}
