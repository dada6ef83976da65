package gateway

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"radiolite/internal/station"
	"radiolite/internal/tray"
)

type fakeIcon struct {
	mu       sync.Mutex
	title    string
	tooltip  string
	titleErr error
	tipErr   error
}

func (f *fakeIcon) SetTitle(s string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.titleErr != nil {
		return f.titleErr
	}
	f.title = s
	return nil
}

func (f *fakeIcon) SetTooltip(s string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.tipErr != nil {
		return f.tipErr
	}
	f.tooltip = s
	return nil
}

func setup(icon tray.Icon) (*Gateway, *station.Store) {
	reg := tray.NewRegistry()
	if icon != nil {
		reg.Register(tray.MainID, icon)
	}
	store := station.NewStore(station.DefaultLabel)
	return New(store, tray.NewController(reg), nil), store
}

func TestUpdateTrayTitle_JazzFM(t *testing.T) {
	icon := &fakeIcon{}
	gw, store := setup(icon)
	require.Equal(t, "Radiolite", store.Get())

	require.NoError(t, gw.UpdateTrayTitle("Jazz FM"))

	assert.Equal(t, "Jazz FM", store.Get())
	assert.Equal(t, "Jazz FM", icon.title)
	assert.Equal(t, "Jazz FM", icon.tooltip)
	assert.Equal(t, "Jazz FM", gw.CurrentTitle())
}

func TestUpdateTrayTitle_NoTrayStillWritesStore(t *testing.T) {
	gw, store := setup(nil)

	var failed error
	gw.OnFailed = func(_ string, err error) { failed = err }

	err := gw.UpdateTrayTitle("Classic FM")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Tray icon not found")
	assert.ErrorIs(t, err, tray.ErrTrayNotFound)
	assert.Equal(t, "Classic FM", store.Get())
	assert.ErrorIs(t, failed, tray.ErrTrayNotFound)
}

func TestUpdateTrayTitle_SetFailurePropagates(t *testing.T) {
	icon := &fakeIcon{tipErr: errors.New("dbus gone")}
	gw, store := setup(icon)

	err := gw.UpdateTrayTitle("Radio X")

	require.Error(t, err)
	assert.Equal(t, "Failed to set tooltip: dbus gone", err.Error())
	assert.Equal(t, "Radio X", store.Get())
}

func TestUpdateTrayTitle_OrderedUpdatesKeepLast(t *testing.T) {
	icon := &fakeIcon{}
	gw, store := setup(icon)

	var updated []string
	gw.OnUpdated = func(title string) { updated = append(updated, title) }

	require.NoError(t, gw.UpdateTrayTitle("a"))
	require.NoError(t, gw.UpdateTrayTitle("b"))

	assert.Equal(t, "b", store.Get())
	assert.Equal(t, "b", icon.title)
	assert.Equal(t, []string{"a", "b"}, updated)
}

func TestUpdateTrayTitle_Concurrent(t *testing.T) {
	icon := &fakeIcon{}
	gw, store := setup(icon)

	var wg sync.WaitGroup
	for _, v := range []string{"Jazz FM", "Radio 2"} {
		wg.Add(1)
		go func(v string) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				_ = gw.UpdateTrayTitle(v)
			}
		}(v)
	}
	wg.Wait()

	assert.Contains(t, []string{"Jazz FM", "Radio 2"}, store.Get())
}
