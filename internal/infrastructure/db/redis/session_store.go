package redis

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix  = "session:"
	defaultSessionTTL = 24 * time.Hour
)

var errInvalidToken = errors.New("invalid session token")

// SessionOptions configures a SessionStore.
type SessionOptions struct {
	// Secret signs the cookie token. Required.
	Secret string
	// MaxAge bounds both the cookie and the Redis record. Defaults to 24h.
	MaxAge time.Duration
	// Secure marks the cookie HTTPS-only.
	Secure bool
}

// SessionStore is a gorilla/sessions Store that keeps session values in a
// Redis hash under session:<id>. The cookie carries only an HS256 token whose
// jti claim is the session id, so values never leave the server.
//
// Only string keys and values are supported.
type SessionStore struct {
	client  redis.Cmdable
	secret  []byte
	options *sessions.Options
}

// NewSessionStore wraps client. Any redis.Cmdable works, including a cluster client.
func NewSessionStore(client redis.Cmdable, opts SessionOptions) *SessionStore {
	maxAge := opts.MaxAge
	if maxAge <= 0 {
		maxAge = defaultSessionTTL
	}
	return &SessionStore{
		client: client,
		secret: []byte(opts.Secret),
		options: &sessions.Options{
			Path:     "/",
			MaxAge:   int(maxAge / time.Second),
			Secure:   opts.Secure,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		},
	}
}

// Get returns the session cached in the request registry, loading it on the
// first call.
func (s *SessionStore) Get(r *http.Request, name string) (*sessions.Session, error) {
	return sessions.GetRegistry(r).Get(s, name)
}

// New loads the session referenced by the request cookie. A missing, forged
// or expired reference yields a fresh empty session without error.
func (s *SessionStore) New(r *http.Request, name string) (*sessions.Session, error) {
	sess := sessions.NewSession(s, name)
	opts := *s.options
	sess.Options = &opts
	sess.IsNew = true

	c, err := r.Cookie(name)
	if err != nil {
		return sess, nil
	}
	id, err := s.parseToken(c.Value)
	if err != nil {
		return sess, nil
	}

	values, err := s.client.HGetAll(r.Context(), sessionKey(id)).Result()
	if err != nil {
		return sess, fmt.Errorf("load session: %w", err)
	}
	if len(values) == 0 {
		return sess, nil
	}

	for k, v := range values {
		sess.Values[k] = v
	}
	sess.ID = id
	sess.IsNew = false
	return sess, nil
}

// Save writes the session to Redis and refreshes the cookie. A negative
// MaxAge deletes the record and expires the cookie.
func (s *SessionStore) Save(r *http.Request, w http.ResponseWriter, sess *sessions.Session) error {
	ctx := r.Context()

	if sess.Options.MaxAge < 0 {
		if err := s.Destroy(ctx, sess.ID); err != nil {
			return err
		}
		http.SetCookie(w, sessions.NewCookie(sess.Name(), "", sess.Options))
		return nil
	}

	fields := make(map[string]any, len(sess.Values))
	for k, v := range sess.Values {
		ks, kok := k.(string)
		vs, vok := v.(string)
		if !kok || !vok {
			return fmt.Errorf("session %q: value %v is not a string pair", sess.Name(), k)
		}
		fields[ks] = vs
	}

	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}
	ttl := time.Duration(sess.Options.MaxAge) * time.Second
	if ttl == 0 {
		ttl = defaultSessionTTL
	}

	if err := s.write(ctx, sessionKey(sess.ID), fields, ttl); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	token, err := s.signToken(sess.ID, ttl)
	if err != nil {
		return fmt.Errorf("sign session: %w", err)
	}
	http.SetCookie(w, sessions.NewCookie(sess.Name(), token, sess.Options))
	return nil
}

// Destroy removes the record for id. An empty id is a no-op.
func (s *SessionStore) Destroy(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if err := s.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// write replaces the hash atomically so removed values do not linger.
func (s *SessionStore) write(ctx context.Context, key string, fields map[string]any, ttl time.Duration) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		if len(fields) > 0 {
			pipe.HSet(ctx, key, fields)
			pipe.Expire(ctx, key, ttl)
		}
		return nil
	})
	return err
}

func (s *SessionStore) signToken(id string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        id,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *SessionStore) parseToken(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid || claims.ID == "" {
		return "", errInvalidToken
	}
	return claims.ID, nil
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}
