package httpx

import "context"

type ctxKey string

const (
	CtxKeyAccountID ctxKey = "account_id"
	CtxKeyEmail     ctxKey = "email"
	CtxKeyScopes    ctxKey = "scopes"
	CtxKeyRawToken  ctxKey = "raw_token"
)

// AccountID returns the authenticated account id, or "" if the request was
// not authenticated.
func AccountID(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyAccountID).(string); ok {
		return v
	}
	return ""
}

// Email returns the authenticated email, or "".
func Email(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyEmail).(string); ok {
		return v
	}
	return ""
}

// RawToken returns the verified bearer token exactly as presented, so a
// proxying backend can forward the caller's identity instead of its own.
func RawToken(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyRawToken).(string); ok {
		return v
	}
	return ""
}

func scopesFromCtx(ctx context.Context) []string {
	if v, ok := ctx.Value(CtxKeyScopes).([]string); ok {
		return v
	}
	return nil
}
