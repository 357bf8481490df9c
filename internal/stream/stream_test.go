package stream

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-runtime/opset/internal/errs"
)

type fakeStream struct {
	provider string
	flushed  int
}

func (s *fakeStream) Handle() any      { return s }
func (s *fakeStream) Provider() string { return s.provider }
func (s *fakeStream) CreateNotification() (Notification, error) {
	return &fakeNotification{stream: s}, nil
}
func (s *fakeStream) Flush() error { s.flushed++; return nil }
func (s *fakeStream) Release()     {}

type fakeNotification struct {
	stream    *fakeStream
	activated bool
}

func (n *fakeNotification) Activate() error { n.activated = true; return nil }
func (n *fakeNotification) WaitOnDevice(Stream) error {
	if !n.activated {
		return errors.New("wait before activate")
	}
	return nil
}
func (n *fakeNotification) WaitOnHost() error { return n.WaitOnDevice(nil) }
func (n *fakeNotification) Release()          {}

func TestHandleRegistryWaitFnLookup(t *testing.T) {
	r := NewHandleRegistry()

	var called bool
	r.RegisterWaitFn("gpu", "cpu", func(s Stream, n Notification) error {
		called = true
		return n.WaitOnHost()
	})

	_, ok := r.WaitFn("gpu", "gpu")
	assert.False(t, ok, "unregistered provider pair must not resolve")

	fn, ok := r.WaitFn("gpu", "cpu")
	require.True(t, ok)

	n := &fakeNotification{}
	require.NoError(t, n.Activate())
	require.NoError(t, fn(nil, n))
	assert.True(t, called)
}

func TestHandleRegistryCreateStream(t *testing.T) {
	r := NewHandleRegistry()
	r.RegisterCreateStreamFn("gpu", func() (Stream, error) {
		return &fakeStream{provider: "gpu"}, nil
	})

	s, err := r.CreateStream("gpu")
	require.NoError(t, err)
	assert.Equal(t, "gpu", s.Provider())

	_, err = r.CreateStream("tpu")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))
}

func TestNotificationOrdering(t *testing.T) {
	s := &fakeStream{provider: "gpu"}
	n, err := s.CreateNotification()
	require.NoError(t, err)

	require.Error(t, n.WaitOnHost(), "waiting before activation must fail in the fake")
	require.NoError(t, n.Activate())
	require.NoError(t, n.WaitOnHost())
}
