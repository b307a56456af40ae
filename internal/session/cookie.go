package session

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/agrocraft-dev/agrocraft-go/internal/logger"
)

// Attributes are the cookie attributes applied on every write. A clear must
// use the same attributes as the original write or it targets a different
// cookie and the stored value stays readable.
type Attributes struct {
	Path     string        `json:"path"`
	SameSite http.SameSite `json:"sameSite"`
	Secure   bool          `json:"secure"`
}

// DefaultAttributes mirror what the web front-end writes.
var DefaultAttributes = Attributes{Path: "/", SameSite: http.SameSiteLaxMode}

// CookieStore keeps session values as cookies in a local jar, optionally
// persisted to a JSON file so a session survives process restarts. Values
// are URL-encoded on write and decoded on read.
type CookieStore struct {
	mu      sync.Mutex
	cookies map[string]*http.Cookie
	attrs   Attributes
	// secureOrigin reports whether the jar belongs to an HTTPS origin.
	// Cookies with the Secure attribute are rejected on plain HTTP, the
	// same way browsers reject them.
	secureOrigin bool
	file         string
	now          func() time.Time
	log          *zap.Logger
}

// CookieOption configures a CookieStore.
type CookieOption func(*CookieStore)

// WithAttributes overrides the write attributes.
func WithAttributes(attrs Attributes) CookieOption {
	return func(s *CookieStore) {
		s.attrs = attrs
	}
}

// WithSecureOrigin marks the jar as belonging to an HTTPS origin.
func WithSecureOrigin(secure bool) CookieOption {
	return func(s *CookieStore) {
		s.secureOrigin = secure
	}
}

// WithFile persists the jar to path after every mutation and loads it on
// creation.
func WithFile(path string) CookieOption {
	return func(s *CookieStore) {
		s.file = path
	}
}

// NewCookieStore creates a cookie-backed session store.
func NewCookieStore(opts ...CookieOption) *CookieStore {
	s := &CookieStore{
		cookies: make(map[string]*http.Cookie),
		attrs:   DefaultAttributes,
		now:     time.Now,
		log:     logger.Get(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.file != "" {
		if err := s.load(); err != nil {
			s.log.Warn("could not load session file", zap.String("file", s.file), zap.Error(err))
		}
	}
	return s
}

// SetClock replaces the store's notion of now.
func (s *CookieStore) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Get returns the currently valid, URL-decoded value for key. Lookup is by
// exact cookie name, so keys that are prefixes of one another never collide.
func (s *CookieStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cookie, ok := s.cookies[key]
	if !ok {
		return "", false
	}
	if !s.now().Before(cookie.Expires) {
		delete(s.cookies, key)
		s.persist()
		return "", false
	}
	value, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return "", false
	}
	return value, true
}

// Set persists value under key with the store's write attributes. An empty
// value is a logged no-op.
func (s *CookieStore) Set(key, value string, ttl time.Duration) error {
	if value == "" {
		s.log.Warn("refusing to store empty session value", zap.String("key", key))
		return nil
	}
	if s.attrs.Secure && !s.secureOrigin {
		return fmt.Errorf("cannot write Secure cookie %q on a non-HTTPS origin", key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cookies[key] = &http.Cookie{
		Name:     key,
		Value:    url.QueryEscape(value),
		Expires:  s.now().Add(ttl),
		Path:     s.attrs.Path,
		SameSite: s.attrs.SameSite,
		Secure:   s.attrs.Secure,
	}
	s.persist()
	return nil
}

// Clear expires the entry immediately. It always uses the store's own write
// attributes, so attribute parity with Set holds by construction.
func (s *CookieStore) Clear(key string) {
	if err := s.ClearWith(key, s.attrs); err != nil {
		s.log.Error("clear failed", zap.String("key", key), zap.Error(err))
	}
}

// ClearWith expires the entry using explicit attributes. If they do not
// match the original write, the original cookie is left untouched and the
// mismatch is reported instead of silently no-opping. A Secure clear on a
// plain-HTTP origin is rejected outright, matching browser behavior.
func (s *CookieStore) ClearWith(key string, attrs Attributes) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cookie, ok := s.cookies[key]
	if !ok {
		return nil
	}
	if attrs.Secure && !s.secureOrigin {
		return fmt.Errorf("clearing %q: %w: Secure cookie rejected on non-HTTPS origin", key, ErrAttributeMismatch)
	}
	if attrs.Path != cookie.Path || attrs.SameSite != cookie.SameSite || attrs.Secure != cookie.Secure {
		return fmt.Errorf("clearing %q: %w", key, ErrAttributeMismatch)
	}
	delete(s.cookies, key)
	s.persist()
	return nil
}

// persist is called with the lock held.
func (s *CookieStore) persist() {
	if s.file == "" {
		return
	}
	if err := s.save(); err != nil {
		s.log.Warn("could not save session file", zap.String("file", s.file), zap.Error(err))
	}
}

type persistedCookie struct {
	Name    string     `json:"name"`
	Value   string     `json:"value"`
	Expires time.Time  `json:"expires"`
	Attrs   Attributes `json:"attrs"`
}

func (s *CookieStore) save() error {
	var out []persistedCookie
	for _, c := range s.cookies {
		out = append(out, persistedCookie{
			Name:    c.Name,
			Value:   c.Value,
			Expires: c.Expires,
			Attrs:   Attributes{Path: c.Path, SameSite: c.SameSite, Secure: c.Secure},
		})
	}
	data, err := json.Marshal(out)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.file), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.file, data, 0o600)
}

func (s *CookieStore) load() error {
	data, err := os.ReadFile(s.file)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	var in []persistedCookie
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	for _, c := range in {
		s.cookies[c.Name] = &http.Cookie{
			Name:     c.Name,
			Value:    c.Value,
			Expires:  c.Expires,
			Path:     c.Attrs.Path,
			SameSite: c.Attrs.SameSite,
			Secure:   c.Attrs.Secure,
		}
	}
	return nil
}
