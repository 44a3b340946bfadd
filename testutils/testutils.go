package testutils

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"tostreak/repository"

	"github.com/gin-gonic/gin"
)

// MockableTime is an interface for mocking time.Now() in tests
type MockableTime interface {
	Now() time.Time
}

// RealTime implements MockableTime using time.Now()
type RealTime struct{}

func (RealTime) Now() time.Time {
	return time.Now()
}

// FixedTime implements MockableTime using a fixed time
type FixedTime struct {
	Fixed time.Time
}

func (ft FixedTime) Now() time.Time {
	return ft.Fixed
}

// ManualClock is a MockableTime that tests can move forward.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *ManualClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// AdvanceDays moves the clock by n calendar days.
func (c *ManualClock) AdvanceDays(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.AddDate(0, 0, n)
}

// Date returns midnight UTC of the given day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

var ErrStoreUnavailable = errors.New("store unavailable")

// FailingStore wraps a MemoryStore and fails writes while FailWrites is set,
// or only writes to FailKey when that is non-empty.
type FailingStore struct {
	*repository.MemoryStore

	mu         sync.Mutex
	failWrites bool
	failKey    string
}

func NewFailingStore() *FailingStore {
	return &FailingStore{MemoryStore: repository.NewMemoryStore()}
}

func (s *FailingStore) FailWrites(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWrites = fail
	s.failKey = ""
}

func (s *FailingStore) FailKey(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWrites = false
	s.failKey = key
}

func (s *FailingStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	fail := s.failWrites || (s.failKey != "" && s.failKey == key)
	s.mu.Unlock()

	if fail {
		return ErrStoreUnavailable
	}
	return s.MemoryStore.Set(ctx, key, value)
}

// PerformRequest runs one request through the router. body is JSON-encoded
// unless it is nil or already a string.
func PerformRequest(router http.Handler, method, path string, body interface{}, headers ...[2]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		req.Header.Set(h[0], h[1])
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// DecodeData unmarshals the "data" field of a response envelope into out.
func DecodeData(w *httptest.ResponseRecorder, out interface{}) error {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		return err
	}
	return json.Unmarshal(envelope.Data, out)
}

// NewTestRouter returns a gin engine in test mode with no middleware.
func NewTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}
