package security

import (
	"net/http"

	"booking-client/domain"

	"github.com/gin-gonic/gin"
)

type AccessLevel string

const (
	Public        AccessLevel = "public"
	Authenticated AccessLevel = "authenticated"
	AdminOnly     AccessLevel = "admin"
)

const LoginPath = "/login"

// SessionCookieName carries the opaque session ID between requests.
const SessionCookieName = "access_token"

type Decision struct {
	Allow      bool
	RedirectTo string
}

// Decide is the single authorization policy: a total function of the route
// requirement and the current session. Absence of a session is a normal
// input, never an error.
func Decide(level AccessLevel, session *domain.Session) Decision {
	switch level {
	case Public:
		return Decision{Allow: true}
	case Authenticated:
		if session != nil {
			return Decision{Allow: true}
		}
		return Decision{RedirectTo: LoginPath}
	case AdminOnly:
		if session != nil && session.Role == domain.RoleAdmin {
			return Decision{Allow: true}
		}
		return Decision{RedirectTo: LoginPath}
	default:
		// unknown requirement fails closed
		return Decision{RedirectTo: LoginPath}
	}
}

// SessionID extracts the session ID from the cookie or the Authorization
// header, cookie first.
func SessionID(ctx *gin.Context) string {
	if cookie, err := ctx.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}
	return ctx.GetHeader("X-Session-Id")
}

// Guard evaluates the policy before the protected handler runs. On redirect
// the chain is aborted, so none of the protected view's side effects happen.
// The store is consulted on every navigation attempt; a logout is observed
// on the very next decision.
func Guard(store *CredentialStore, level AccessLevel) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		session := store.Session(SessionID(ctx), ctx.Request.Context())
		decision := Decide(level, session)
		if !decision.Allow {
			ctx.Redirect(http.StatusFound, decision.RedirectTo)
			ctx.Abort()
			return
		}
		if session != nil {
			ctx.Set("currentSession", session)
		}
		ctx.Next()
	}
}

// CurrentSession returns the session the guard attached, if any.
func CurrentSession(ctx *gin.Context) *domain.Session {
	value, exists := ctx.Get("currentSession")
	if !exists {
		return nil
	}
	session, ok := value.(*domain.Session)
	if !ok {
		return nil
	}
	return session
}
