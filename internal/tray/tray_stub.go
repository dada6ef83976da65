//go:build stub

package tray

import "context"

// stubIcon 无界面环境下的图标
type stubIcon struct{}

func (stubIcon) SetTitle(string) error   { return nil }
func (stubIcon) SetTooltip(string) error { return nil }

type noopHandle struct {
	opts Options
}

func (h noopHandle) Stop() {
	if h.opts.Registry != nil {
		h.opts.Registry.Unregister(h.opts.ID)
	}
}

func start(_ context.Context, opts Options) (Handle, error) {
	if opts.Registry != nil {
		opts.Registry.Register(opts.ID, stubIcon{})
	}
	if opts.OnReady != nil {
		opts.OnReady()
	}
	return noopHandle{opts: opts}, nil
}
