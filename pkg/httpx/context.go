package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID ctxKey = "user_id"
	CtxKeyOrgID  ctxKey = "org_id"
	CtxKeyRole   ctxKey = "role"
	CtxKeyEmail  ctxKey = "email"
)

// UserIDFromCtx returns the authenticated user id, or "" when unauthenticated.
func UserIDFromCtx(ctx context.Context) string {
	return stringFromCtx(ctx, CtxKeyUserID)
}

// OrgIDFromCtx returns the authenticated user's organization id.
func OrgIDFromCtx(ctx context.Context) string {
	return stringFromCtx(ctx, CtxKeyOrgID)
}

// RoleFromCtx returns the authenticated user's role string.
func RoleFromCtx(ctx context.Context) string {
	return stringFromCtx(ctx, CtxKeyRole)
}

// EmailFromCtx returns the authenticated user's email.
func EmailFromCtx(ctx context.Context) string {
	return stringFromCtx(ctx, CtxKeyEmail)
}

func stringFromCtx(ctx context.Context, key ctxKey) string {
	if v, ok := ctx.Value(key).(string); ok {
		return v
	}
	return ""
}
