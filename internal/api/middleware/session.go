package middleware

import (
	"context"
	"fmt"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/blog-system/internal/core/domain"
)

// IdentityKey is the echo context key holding the request's domain.Identity.
const IdentityKey = "identity"

// Session value keys.
const (
	keyUserID   = "userId"
	keyUsername = "username"
	keyRole     = "userRole"
)

// LoadIdentity reads the identity snapshot from the named session and stores
// it under IdentityKey. It must run after session.Middleware. A session that
// cannot be loaded is treated as anonymous.
func LoadIdentity(name string, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var id domain.Identity
			sess, err := session.Get(name, c)
			if err != nil {
				log.Warn().Err(err).Str("path", c.Path()).Msg("session unavailable, continuing anonymous")
			}
			if sess != nil {
				id.UserID, _ = sess.Values[keyUserID].(string)
				id.Username, _ = sess.Values[keyUsername].(string)
				id.Role, _ = sess.Values[keyRole].(string)
			}
			c.Set(IdentityKey, id)
			return next(c)
		}
	}
}

// CurrentIdentity returns the identity loaded for this request, or the zero
// (anonymous) identity.
func CurrentIdentity(c echo.Context) domain.Identity {
	id, _ := c.Get(IdentityKey).(domain.Identity)
	return id
}

// sessionDestroyer is implemented by stores that can drop a record by id
// without writing a cookie.
type sessionDestroyer interface {
	Destroy(ctx context.Context, id string) error
}

// SaveIdentity starts a fresh session holding id and writes its cookie. The
// record behind any previous session is destroyed first, so an old cookie
// cannot be replayed after a second login.
func SaveIdentity(c echo.Context, name string, id domain.Identity) error {
	sess, err := session.Get(name, c)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if err := dropRecord(c, sess); err != nil {
		return fmt.Errorf("rotate session: %w", err)
	}
	sess.ID = ""
	for k := range sess.Values {
		delete(sess.Values, k)
	}
	sess.Values[keyUserID] = id.UserID
	sess.Values[keyUsername] = id.Username
	sess.Values[keyRole] = id.Role
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	c.Set(IdentityKey, id)
	return nil
}

// ClearIdentity destroys the named session and expires its cookie.
func ClearIdentity(c echo.Context, name string) error {
	sess, err := session.Get(name, c)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	sess.Options.MaxAge = -1
	for k := range sess.Values {
		delete(sess.Values, k)
	}
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	c.Set(IdentityKey, domain.Identity{})
	return nil
}

// dropRecord removes the server-side record of sess, if it has one. Stores
// without a Destroy method are asked to expire it through Save.
func dropRecord(c echo.Context, sess *sessions.Session) error {
	if sess.ID == "" {
		return nil
	}
	if d, ok := sess.Store().(sessionDestroyer); ok {
		return d.Destroy(c.Request().Context(), sess.ID)
	}
	opts := *sess.Options
	sess.Options.MaxAge = -1
	err := sess.Save(c.Request(), c.Response())
	sess.Options = &opts
	return err
}
