package factory

import (
	"time"

	"github.com/ugordi/gladialore-admin/internal/dependencies/mocks"
	"github.com/ugordi/gladialore-admin/internal/glapi"
	"github.com/ugordi/gladialore-admin/internal/session"
	"github.com/ugordi/gladialore-admin/internal/storage/memory"
	"github.com/ugordi/gladialore-admin/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// MockClock controls time in tests
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing: in-memory sessions, a
// mocked clock, and the API client pointed at the given fake backend URL
func NewTestApp(backendURL string) *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	apiCfg := glapi.Config{
		BaseURL: backendURL,
		Logger:  testutil.NopLogger(),
	}

	app := newWithDependencies(store, mockClock, session.DefaultConfig(), apiCfg)

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}
