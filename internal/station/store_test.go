package station

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStore_DefaultLabel(t *testing.T) {
	assert.Equal(t, "Radiolite", NewStore("").Get())
	assert.Equal(t, "Jazz FM", NewStore("Jazz FM").Get())
}

func TestStore_SetThenGet(t *testing.T) {
	s := NewStore("")
	for _, v := range []string{"Jazz FM", "", "电台 · 中文", "BBC Radio 1"} {
		s.Set(v)
		assert.Equal(t, v, s.Get())
	}
}

func TestStore_OrderedWritesKeepLast(t *testing.T) {
	s := NewStore("")
	a := strings.Repeat("a", 4096)
	b := strings.Repeat("b", 4096)

	s.Set(a)
	s.Set(b)

	assert.Equal(t, b, s.Get())
}

func TestStore_ConcurrentReadersSeeWholeValues(t *testing.T) {
	s := NewStore("")
	a := strings.Repeat("a", 1024)
	b := strings.Repeat("b", 1024)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				s.Set(a)
				s.Set(b)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				v := s.Get()
				if v != a && v != b && v != DefaultLabel {
					t.Errorf("读取到不完整的标签: %.16q", v)
					return
				}
			}
		}()
	}
	wg.Wait()

	s.Set(b)
	assert.Equal(t, b, s.Get())
}
