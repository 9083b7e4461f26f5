package middleware

import (
	"context"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/google/uuid"
)

// UserIDHeader carries the caller-supplied identity.
const UserIDHeader = "X-User-ID"

// Identity resolves the caller identity for the credit ledger. The identity
// is the X-User-ID header when present; otherwise a fresh anonymous id is
// minted per request. Anonymous callers therefore always see the starting
// credit grant and never touch another caller's balance.
func Identity() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		userID := strings.TrimSpace(string(c.Request.Header.Peek(UserIDHeader)))
		if userID == "" {
			userID = "anon-" + uuid.New().String()
		}
		c.Set("user_id", userID)
		c.Next(ctx)
	}
}
