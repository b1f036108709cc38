package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/99minutos/blog-system/internal/core/domain"
)

const testSession = "blog_session"

// newSessionEcho wires the session middleware chain in front of three test
// routes: /login saves an identity, /logout clears it, /whoami echoes it.
func newSessionEcho(store sessions.Store) *echo.Echo {
	e := echo.New()
	e.Use(session.Middleware(store))
	e.Use(LoadIdentity(testSession, zerolog.Nop()))

	e.GET("/login", func(c echo.Context) error {
		id := domain.Identity{UserID: "u1", Username: "alice", Role: domain.RoleAdmin}
		if err := SaveIdentity(c, testSession, id); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	})
	e.GET("/logout", func(c echo.Context) error {
		if err := ClearIdentity(c, testSession); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	})
	e.GET("/whoami", func(c echo.Context) error {
		return c.JSON(http.StatusOK, CurrentIdentity(c))
	})
	return e
}

func do(e *echo.Echo, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSession_IdentityRoundTrip(t *testing.T) {
	store := sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef"))
	e := newSessionEcho(store)

	anon := do(e, "/whoami")
	require.Equal(t, http.StatusOK, anon.Code)
	assert.JSONEq(t, `{"user_id":"","username":"","role":""}`, anon.Body.String())

	login := do(e, "/login")
	require.Equal(t, http.StatusNoContent, login.Code)
	cookies := login.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, testSession, cookies[0].Name)

	me := do(e, "/whoami", cookies[0])
	assert.JSONEq(t, `{"user_id":"u1","username":"alice","role":"admin"}`, me.Body.String())

	logout := do(e, "/logout", cookies[0])
	require.Equal(t, http.StatusNoContent, logout.Code)
	expired := logout.Result().Cookies()
	require.Len(t, expired, 1)
	assert.Less(t, expired[0].MaxAge, 0)
}

func TestSession_SecondLoginDropsPreviousRecord(t *testing.T) {
	dir := t.TempDir()
	store := sessions.NewFilesystemStore(dir, []byte("0123456789abcdef0123456789abcdef"))
	e := newSessionEcho(store)

	first := do(e, "/login")
	require.Equal(t, http.StatusNoContent, first.Code)
	oldCookie := lastCookie(t, first)
	files, err := filepath.Glob(filepath.Join(dir, "session_*"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	second := do(e, "/login", oldCookie)
	require.Equal(t, http.StatusNoContent, second.Code)
	newCookie := lastCookie(t, second)
	assert.NotEqual(t, oldCookie.Value, newCookie.Value)

	_, err = os.Stat(files[0])
	assert.True(t, os.IsNotExist(err), "previous session file must be removed")

	replay := do(e, "/whoami", oldCookie)
	assert.JSONEq(t, `{"user_id":"","username":"","role":""}`, replay.Body.String())
	me := do(e, "/whoami", newCookie)
	assert.JSONEq(t, `{"user_id":"u1","username":"alice","role":"admin"}`, me.Body.String())
}

// lastCookie returns the final Set-Cookie for the session, which is the one a
// browser keeps.
func lastCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	var out *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == testSession {
			out = c
		}
	}
	require.NotNil(t, out)
	return out
}

func TestSession_UndecodableCookieIsAnonymous(t *testing.T) {
	store := sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef"))
	e := newSessionEcho(store)

	rec := do(e, "/whoami", &http.Cookie{Name: testSession, Value: "garbage"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user_id":"","username":"","role":""}`, rec.Body.String())
}

func TestCurrentIdentity_DefaultsToAnonymous(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.False(t, CurrentIdentity(c).Authenticated())
}
