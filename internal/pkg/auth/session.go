package auth

import "context"

type sessionKeyType struct{}

var sessionKey sessionKeyType

// WithAdminSession marks ctx as carrying an authenticated admin
// session. Set by the auth middleware after token validation.
func WithAdminSession(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, sessionKey, email)
}

// SessionEmail returns the admin email on ctx, if any.
func SessionEmail(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(sessionKey).(string)
	return email, ok
}

// Checker reports whether a request context carries an authenticated
// admin session. Services consult it before every write.
type Checker interface {
	IsAuthenticated(ctx context.Context) bool
}

// ContextChecker reads the session flag placed on the context by the
// auth middleware.
type ContextChecker struct{}

func (ContextChecker) IsAuthenticated(ctx context.Context) bool {
	_, ok := SessionEmail(ctx)
	return ok
}
