package window

import "errors"

var errFake = errors.New("fake failure")

type fakeWindow struct {
	visible bool

	width, height int
	x, y          int

	sizeErr    error
	visibleErr error
	focusErr   error
	moveErr    error

	calls []string
}

func (f *fakeWindow) Size() (int, int, error) {
	if f.sizeErr != nil {
		return 0, 0, f.sizeErr
	}
	return f.width, f.height, nil
}

func (f *fakeWindow) SetPosition(x, y int) error {
	f.calls = append(f.calls, "move")
	if f.moveErr != nil {
		return f.moveErr
	}
	f.x, f.y = x, y
	return nil
}

func (f *fakeWindow) IsVisible() (bool, error) {
	if f.visibleErr != nil {
		return false, f.visibleErr
	}
	return f.visible, nil
}

func (f *fakeWindow) Show() error {
	f.calls = append(f.calls, "show")
	f.visible = true
	return nil
}

func (f *fakeWindow) Hide() error {
	f.calls = append(f.calls, "hide")
	f.visible = false
	return nil
}

func (f *fakeWindow) Focus() error {
	f.calls = append(f.calls, "focus")
	return f.focusErr
}
