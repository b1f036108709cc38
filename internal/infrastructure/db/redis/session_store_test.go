package redis

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gorilla/sessions"
	"github.com/redis/go-redis/v9"
)

const testCookie = "blog_session"

func newTestStore(t *testing.T, secret string) (*SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewSessionStore(client, SessionOptions{Secret: secret, MaxAge: time.Hour}), mr
}

// saveValues stores values in a fresh session and returns the issued cookie.
func saveValues(t *testing.T, store *SessionStore, values map[string]string) (*http.Cookie, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	sess, err := store.New(req, testCookie)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	for k, v := range values {
		sess.Values[k] = v
	}
	if err := store.Save(req, rec, sess); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	return cookies[0], sess.ID
}

func loadWith(t *testing.T, store *SessionStore, c *http.Cookie) *sessions.Session {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(c)
	sess, err := store.New(req, testCookie)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return sess
}

func TestSessionStore_RoundTrip(t *testing.T) {
	store, mr := newTestStore(t, "secret")

	cookie, id := saveValues(t, store, map[string]string{"userId": "42", "userRole": "admin"})
	if !cookie.HttpOnly || cookie.MaxAge != 3600 {
		t.Fatalf("unexpected cookie attributes: %+v", cookie)
	}
	if cookie.Value == id {
		t.Fatalf("cookie must not carry the raw session id")
	}

	if got := mr.HGet(sessionKey(id), "userId"); got != "42" {
		t.Fatalf("expected userId stored in redis, got %q", got)
	}
	if ttl := mr.TTL(sessionKey(id)); ttl != time.Hour {
		t.Fatalf("expected 1h ttl, got %v", ttl)
	}

	sess := loadWith(t, store, cookie)
	if sess.IsNew {
		t.Fatalf("expected existing session")
	}
	if sess.ID != id || sess.Values["userId"] != "42" || sess.Values["userRole"] != "admin" {
		t.Fatalf("unexpected session: id=%s values=%v", sess.ID, sess.Values)
	}
}

func TestSessionStore_RejectsForgedTokens(t *testing.T) {
	store, _ := newTestStore(t, "secret")
	cookie, _ := saveValues(t, store, map[string]string{"userId": "42"})

	tampered := *cookie
	tampered.Value = cookie.Value + "x"
	if sess := loadWith(t, store, &tampered); !sess.IsNew || len(sess.Values) != 0 {
		t.Fatalf("tampered token must yield an empty session, got %v", sess.Values)
	}

	// Same redis, different signing secret.
	other := NewSessionStore(store.client, SessionOptions{Secret: "other"})
	if sess := loadWith(t, other, cookie); !sess.IsNew {
		t.Fatalf("token signed with another secret must be rejected")
	}

	raw := &http.Cookie{Name: testCookie, Value: "plain-session-id"}
	if sess := loadWith(t, store, raw); !sess.IsNew {
		t.Fatalf("unsigned id must be rejected")
	}
}

func TestSessionStore_ExpiredRecord(t *testing.T) {
	store, mr := newTestStore(t, "secret")
	cookie, _ := saveValues(t, store, map[string]string{"userId": "42"})

	mr.FastForward(2 * time.Hour)

	if sess := loadWith(t, store, cookie); !sess.IsNew || len(sess.Values) != 0 {
		t.Fatalf("expired record must yield an empty session, got %v", sess.Values)
	}
}

func TestSessionStore_Destroy(t *testing.T) {
	store, mr := newTestStore(t, "secret")
	cookie, id := saveValues(t, store, map[string]string{"userId": "42"})

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()

	sess, err := store.New(req, testCookie)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	sess.Options.MaxAge = -1
	if err := store.Save(req, rec, sess); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	if mr.Exists(sessionKey(id)) {
		t.Fatalf("session record should be deleted")
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge >= 0 {
		t.Fatalf("expected expiring cookie, got %+v", cookies)
	}
	if sess := loadWith(t, store, cookie); !sess.IsNew {
		t.Fatalf("old cookie must not resolve after logout")
	}
}

func TestSessionStore_DestroyByID(t *testing.T) {
	store, mr := newTestStore(t, "secret")
	cookie, id := saveValues(t, store, map[string]string{"userId": "42"})

	if err := store.Destroy(context.Background(), ""); err != nil {
		t.Fatalf("Destroy with empty id returned error: %v", err)
	}
	if !mr.Exists(sessionKey(id)) {
		t.Fatalf("empty id must not touch existing records")
	}

	if err := store.Destroy(context.Background(), id); err != nil {
		t.Fatalf("Destroy returned error: %v", err)
	}
	if mr.Exists(sessionKey(id)) {
		t.Fatalf("session record should be deleted")
	}
	if sess := loadWith(t, store, cookie); !sess.IsNew {
		t.Fatalf("destroyed session must not resolve")
	}
}

func TestSessionStore_RejectsNonStringValues(t *testing.T) {
	store, _ := newTestStore(t, "secret")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	sess, _ := store.New(req, testCookie)
	sess.Values["count"] = 3
	if err := store.Save(req, rec, sess); err == nil {
		t.Fatalf("expected error for non-string value")
	}
}

func TestSessionStore_UnreachableRedis(t *testing.T) {
	store, mr := newTestStore(t, "secret")
	cookie, _ := saveValues(t, store, map[string]string{"userId": "42"})
	mr.Close()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	sess, err := store.New(req, testCookie)
	if err == nil {
		t.Fatalf("expected load error when redis is down")
	}
	if sess == nil || !sess.IsNew {
		t.Fatalf("expected an empty session alongside the error")
	}
}
