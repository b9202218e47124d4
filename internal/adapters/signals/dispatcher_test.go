package signals_test

import (
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stale/internal/adapters/signals"
	"go.trai.ch/stale/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestDispatcher_Resolve(t *testing.T) {
	d := signals.NewDispatcher()

	tests := []struct {
		name    string
		spec    string
		want    syscall.Signal
		wantErr bool
	}{
		{name: "bare name", spec: "INT", want: syscall.SIGINT},
		{name: "prefixed name", spec: "SIGINT", want: syscall.SIGINT},
		{name: "lowercase", spec: "term", want: syscall.SIGTERM},
		{name: "numeric", spec: "15", want: syscall.SIGTERM},
		{name: "unknown name", spec: "BADNAME", wantErr: true},
		{name: "negative number", spec: "-1", wantErr: true},
		{name: "empty", spec: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.Resolve(tt.spec)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidSignalName)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Attaching metadata must not break sentinel matching: the sentinel stays in
// the chain and the offending specifier rides along as metadata.
func TestDispatcher_Resolve_ErrorKeepsSentinelAndSpec(t *testing.T) {
	d := signals.NewDispatcher()

	_, err := d.Resolve("BADNAME")
	require.ErrorIs(t, err, domain.ErrInvalidSignalName)

	var zr *zerr.Error
	require.ErrorAs(t, err, &zr)
	assert.Equal(t, "BADNAME", zr.Metadata()["signal"])
}

func TestDispatcher_SignalName(t *testing.T) {
	d := signals.NewDispatcher()

	assert.Equal(t, "SIGTERM", d.SignalName(syscall.SIGTERM))
	assert.Equal(t, "SIGHUP", d.SignalName(syscall.SIGHUP))
}
