package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/mock/gomock"

	"flip/internal/app/errors"
	"flip/internal/config"
	"flip/internal/config/logger"
)

type reloadResult struct {
	cfg *config.Config
	err error
}

func newTestLogger(ctrl *gomock.Controller) *logger.MockLogger {
	mockLog := logger.NewMockLogger(ctrl)
	noopEvent := logger.NoopEvent()
	mockLog.EXPECT().Debug().Return(noopEvent).AnyTimes()
	mockLog.EXPECT().Info().Return(noopEvent).AnyTimes()
	mockLog.EXPECT().Warn().Return(noopEvent).AnyTimes()
	mockLog.EXPECT().Error().Return(noopEvent).AnyTimes()
	mockLog.EXPECT().WithComponent(gomock.Any()).Return(mockLog).AnyTimes()

	return mockLog
}

func startWatcher(t *testing.T, content string) (string, <-chan reloadResult) {
	t.Helper()

	ctrl := gomock.NewController(t)

	path := filepath.Join(t.TempDir(), "flip.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	cfg.Watch.Debounce = 20 * time.Millisecond

	w, err := NewWatcher(cfg, newTestLogger(ctrl))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(func() {
		cancel()
		w.Close()
	})

	results := make(chan reloadResult, 4)
	require.NoError(t, w.Start(ctx, func(cfg *config.Config, err error) {
		results <- reloadResult{cfg: cfg, err: err}
	}))

	return path, results
}

func waitReload(t *testing.T, results <-chan reloadResult) reloadResult {
	t.Helper()

	select {
	case r := <-results:
		return r
	case <-time.After(2 * time.Second):
		t.Fatal("no reload within 2s")
		return reloadResult{}
	}
}

func Test_Watcher_ReloadsOnWrite(t *testing.T) {
	path, results := startWatcher(t, "switch:\n  left: A\n")

	require.NoError(t, os.WriteFile(path, []byte("switch:\n  left: B\n  right_selected: true\n"), 0o600))

	r := waitReload(t, results)
	assert.NoError(t, r.err)
	assert.Equal(t, "B", r.cfg.Switch.Left)
	assert.True(t, r.cfg.Switch.RightSelected)
	assert.Equal(t, 20*time.Millisecond, r.cfg.Watch.Debounce, "watch settings are not reloaded")
}

func Test_Watcher_ReportsInvalidConfig(t *testing.T) {
	path, results := startWatcher(t, "switch:\n  left: A\n")

	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: loud\n"), 0o600))

	r := waitReload(t, results)
	assert.Nil(t, r.cfg)
	assert.ErrorIs(t, r.err, errors.ErrInvalidLogLevel)
}

func Test_Watcher_IgnoresOtherFiles(t *testing.T) {
	path, results := startWatcher(t, "switch:\n  left: A\n")

	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(path), "other.yaml"), []byte("x: 1\n"), 0o600))

	select {
	case r := <-results:
		t.Fatalf("unexpected reload: %+v", r)
	case <-time.After(150 * time.Millisecond):
	}
}

func Test_Watcher_StartAfterClose(t *testing.T) {
	ctrl := gomock.NewController(t)

	w, err := NewWatcher(config.DefaultConfig(), newTestLogger(ctrl))
	require.NoError(t, err)

	w.Close()

	assert.ErrorIs(t, w.Start(context.Background(), func(*config.Config, error) {}), errors.ErrFailedToWatchConfig)
}

// hookLifecycle captures hooks appended by Register
type hookLifecycle struct {
	hooks []fx.Hook
}

func (l *hookLifecycle) Append(hook fx.Hook) {
	l.hooks = append(l.hooks, hook)
}

func Test_Register_ClosesOnStop(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockWatcher := NewMockWatcher(ctrl)
	mockWatcher.EXPECT().Close()

	lc := &hookLifecycle{}
	Register(lc, mockWatcher)

	assert.Len(t, lc.hooks, 1)
	assert.NoError(t, lc.hooks[0].OnStop(context.Background()))
}
