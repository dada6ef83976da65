package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModel_SingleQuitItem(t *testing.T) {
	c := NewController(nil, nil)

	items := c.Model()
	require.Len(t, items, 1)
	assert.Equal(t, Item{ID: "quit", Label: "Quit Radiolite", Tooltip: "退出应用", Enabled: true}, items[0])

	// 返回的是副本
	items[0].Label = "changed"
	assert.Equal(t, "Quit Radiolite", c.Model()[0].Label)
}

func TestDispatch_QuitExitsWithZero(t *testing.T) {
	var codes []int
	c := NewController(func(code int) { codes = append(codes, code) }, nil)

	c.Dispatch(IDQuit)

	assert.Equal(t, []int{0}, codes)
}

func TestDispatch_UnknownIDKeepsRunning(t *testing.T) {
	called := false
	c := NewController(func(int) { called = true }, nil)

	c.Dispatch("settings")
	c.Dispatch("")

	assert.False(t, called)
}
