package hook_test

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stale/internal/adapters/fs"
	"go.trai.ch/stale/internal/adapters/modules"
	"go.trai.ch/stale/internal/core/domain"
	"go.trai.ch/stale/internal/core/ports/mocks"
	"go.trai.ch/stale/internal/engine/hook"
	"go.trai.ch/stale/internal/engine/scanner"
	"go.trai.ch/stale/internal/engine/tracker"
	"go.uber.org/mock/gomock"
)

// newTracker builds a tracker over real temp files: total files tracked, the
// first changed of them touched afterwards so Modified reports them. Paths
// sort by index.
func newTracker(t *testing.T, total, changed int) (*tracker.Tracker, []string) {
	t.Helper()
	dir := t.TempDir()
	stater := fs.NewStater()
	sc := scanner.NewScanner(stater)
	tr := tracker.New(scanner.NewApp(sc, modules.NewStaticRegistry()), sc, stater)

	var paths []string
	for i := range total {
		path := filepath.Join(dir, fmt.Sprintf("file-%d.ini", i))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
		paths = append(paths, path)
	}
	tr.Track(paths...)

	future := time.Now().Add(time.Hour)
	for i := range changed {
		require.NoError(t, os.Chtimes(paths[i], future, future))
	}
	return tr, paths[:changed]
}

// installed wires a hook with the mocked dispatcher, expecting the default
// trigger resolution, and returns the captured handler.
func installDefaults(t *testing.T, h *hook.Hook, dispatcher *mocks.MockSignalDispatcher, opts ...hook.Option) func() {
	t.Helper()
	var handler func()
	dispatcher.EXPECT().Subscribe(syscall.SIGHUP, gomock.Any()).Do(func(_ os.Signal, fn func()) {
		handler = fn
	})
	require.NoError(t, h.Install(opts...))
	require.NotNil(t, handler)
	return func() { handler() }
}

func expectDefaultResolution(dispatcher *mocks.MockSignalDispatcher) {
	dispatcher.EXPECT().Resolve("SIGHUP").Return(syscall.SIGHUP, nil)
	dispatcher.EXPECT().Resolve("SIGTERM").Return(syscall.SIGTERM, nil)
	dispatcher.EXPECT().SignalName(syscall.SIGTERM).Return("SIGTERM")
}

func TestHook_Install_RaisesReactionOnChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	dispatcher := mocks.NewMockSignalDispatcher(ctrl)
	log := mocks.NewMockLogger(ctrl)
	tr, _ := newTracker(t, 1, 1)

	expectDefaultResolution(dispatcher)
	dispatcher.EXPECT().Raise(syscall.SIGTERM).Return(nil)

	deliver := installDefaults(t, hook.New(tr, dispatcher, log), dispatcher)
	deliver()
}

func TestHook_NoChanges_NoReactionNoMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	dispatcher := mocks.NewMockSignalDispatcher(ctrl)
	log := mocks.NewMockLogger(ctrl)
	tr, _ := newTracker(t, 2, 0)

	expectDefaultResolution(dispatcher)
	// No Raise, no Info: the controller fails the test on any of them.

	deliver := installDefaults(t, hook.New(tr, dispatcher, log), dispatcher, hook.WithVerbose())
	deliver()
}

func TestHook_CallbackReaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	dispatcher := mocks.NewMockSignalDispatcher(ctrl)
	log := mocks.NewMockLogger(ctrl)
	tr, changed := newTracker(t, 3, 2)

	dispatcher.EXPECT().Resolve("SIGHUP").Return(syscall.SIGHUP, nil)

	var got domain.ChangeSet
	deliver := installDefaults(t, hook.New(tr, dispatcher, log), dispatcher,
		hook.WithReactionFunc("restart", func(cs domain.ChangeSet) { got = cs }))
	deliver()

	assert.Equal(t, domain.ChangeSet(changed), got)
}

func TestHook_Install_InvalidTrigger(t *testing.T) {
	ctrl := gomock.NewController(t)
	dispatcher := mocks.NewMockSignalDispatcher(ctrl)
	log := mocks.NewMockLogger(ctrl)
	tr, _ := newTracker(t, 0, 0)

	dispatcher.EXPECT().Resolve("BADNAME").Return(nil, domain.ErrInvalidSignalName)
	// No Subscribe expectation: nothing may be registered.

	err := hook.New(tr, dispatcher, log).Install(hook.WithTrigger("BADNAME"))
	assert.ErrorIs(t, err, domain.ErrInvalidSignalName)
}

func TestHook_Install_InvalidReaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	dispatcher := mocks.NewMockSignalDispatcher(ctrl)
	log := mocks.NewMockLogger(ctrl)
	tr, _ := newTracker(t, 0, 0)

	dispatcher.EXPECT().Resolve("SIGHUP").Return(syscall.SIGHUP, nil)
	dispatcher.EXPECT().Resolve("BADNAME").Return(nil, domain.ErrInvalidSignalName)

	err := hook.New(tr, dispatcher, log).Install(hook.WithReaction("BADNAME"))
	assert.ErrorIs(t, err, domain.ErrInvalidSignalName)
}

func TestHook_VerboseMessageFormatting(t *testing.T) {
	tests := []struct {
		name    string
		changed int
		suffix  string
	}{
		{name: "single file", changed: 1, suffix: " changed."},
		{name: "two files", changed: 2, suffix: " and 1 other file changed."},
		{name: "four files", changed: 4, suffix: " and 3 other files changed."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			dispatcher := mocks.NewMockSignalDispatcher(ctrl)
			log := mocks.NewMockLogger(ctrl)
			tr, changed := newTracker(t, 5, tt.changed)

			expectDefaultResolution(dispatcher)
			dispatcher.EXPECT().Raise(syscall.SIGTERM).Return(nil)

			var message string
			deliver := installDefaults(t, hook.New(tr, dispatcher, log), dispatcher,
				hook.WithVerboseFunc(func(msg string) { message = msg }))
			deliver()

			assert.Equal(t, "Sending SIGTERM because "+changed[0]+tt.suffix, message)
		})
	}
}

func TestHook_VerboseCallbackMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	dispatcher := mocks.NewMockSignalDispatcher(ctrl)
	log := mocks.NewMockLogger(ctrl)
	tr, changed := newTracker(t, 1, 1)

	dispatcher.EXPECT().Resolve("SIGHUP").Return(syscall.SIGHUP, nil)

	var message string
	deliver := installDefaults(t, hook.New(tr, dispatcher, log), dispatcher,
		hook.WithReactionFunc("restart", func(domain.ChangeSet) {}),
		hook.WithVerboseFunc(func(msg string) { message = msg }))
	deliver()

	assert.Equal(t, "Calling restart because "+changed[0]+" changed.", message)
}

func TestHook_VerbosePrintGoesToLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	dispatcher := mocks.NewMockSignalDispatcher(ctrl)
	log := mocks.NewMockLogger(ctrl)
	tr, changed := newTracker(t, 1, 1)

	expectDefaultResolution(dispatcher)
	dispatcher.EXPECT().Raise(syscall.SIGTERM).Return(nil)
	log.EXPECT().Info("Sending SIGTERM because " + changed[0] + " changed.")

	deliver := installDefaults(t, hook.New(tr, dispatcher, log), dispatcher, hook.WithVerbose())
	deliver()
}

func TestHook_RaiseFailureIsLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	dispatcher := mocks.NewMockSignalDispatcher(ctrl)
	log := mocks.NewMockLogger(ctrl)
	tr, _ := newTracker(t, 1, 1)

	expectDefaultResolution(dispatcher)
	dispatcher.EXPECT().Raise(syscall.SIGTERM).Return(domain.ErrSignalDeliveryFailed)
	log.EXPECT().Error(domain.ErrSignalDeliveryFailed)

	deliver := installDefaults(t, hook.New(tr, dispatcher, log), dispatcher)
	deliver()
}
