package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/vinculatec/backend/internal/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Configure(logger.Config{Level: "error", Output: io.Discard})
	os.Exit(m.Run())
}

// testClock is a movable clock injected into services under test
type testClock struct {
	mu sync.Mutex
	t  time.Time
}

func newTestClock(t time.Time) *testClock {
	return &testClock{t: t}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// stubMedia records upload and delete calls
type stubMedia struct {
	mu      sync.Mutex
	uploads int
	deletes []string
}

func (m *stubMedia) Upload(ctx context.Context, dataURI string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.uploads++
	return fmt.Sprintf("https://media.test/assets/img-%d.png", m.uploads), nil
}

func (m *stubMedia) Delete(ctx context.Context, assetID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletes = append(m.deletes, assetID)
	return nil
}

func (m *stubMedia) deleted() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.deletes...)
}

// stubEmail records welcome emails instead of sending them
type stubEmail struct {
	mu   sync.Mutex
	sent []string
}

func (e *stubEmail) SendWelcomeEmail(toEmail, toName, profileURL, role string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sent = append(e.sent, toEmail)
	return nil
}
