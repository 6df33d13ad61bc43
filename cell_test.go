package nearcell

import (
	"testing"
	"testing/quick"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name   string
	Mod    int8
	Count  int16
	Float3 float32
	Float6 float64
}

func TestUnwrapRoundTrip(t *testing.T) {
	condition := func(z payload) bool {
		c := New(z)
		return assert.ObjectsAreEqual(z, c.Unwrap())
	}
	err := quick.Check(condition, &quick.Config{})
	if err != nil {
		t.Errorf("Error: %v", err)
	}
}

func FuzzUnwrapRoundTrip(f *testing.F) {
	f.Add("azerty", int8(17), int16(12), float32(12.3), float64(1236.2))
	f.Fuzz(func(t *testing.T, name string, mod int8, count int16, f3 float32, f6 float64) {
		z := payload{Name: name, Mod: mod, Count: count, Float3: f3, Float6: f6}
		require.Equal(t, z, New(z).Unwrap())
	})
}

func TestNewDefault(t *testing.T) {
	c := NewDefault[payload]()
	require.Equal(t, payload{}, *c.Get())

	n := NewDefault[int]()
	require.Zero(t, n.Unwrap())
}

func TestPointerIdentity(t *testing.T) {
	c := New(42)
	require.Equal(t, unsafe.Pointer(c.Get()), c.Ptr())
	require.Equal(t, unsafe.Pointer(c.UnsafeMut()), c.Ptr())
	c.View(func(p *int) {
		require.Equal(t, unsafe.Pointer(p), c.Ptr())
	})
	c.Update(func(p *int) {
		require.Equal(t, unsafe.Pointer(p), c.Ptr())
	})
}

func TestUpdateThenView(t *testing.T) {
	c := New(payload{Name: "before"})
	c.Update(func(p *payload) {
		p.Name = "after"
		p.Count = 7
	})
	c.View(func(p *payload) {
		assert.Equal(t, "after", p.Name)
		assert.Equal(t, int16(7), p.Count)
	})
	require.Equal(t, payload{Name: "after", Count: 7}, c.Unwrap())
}

func TestUnsafeMutMatchesUpdate(t *testing.T) {
	a := New(10)
	b := New(10)
	a.Update(func(p *int) { *p += 5 })
	*b.UnsafeMut() += 5
	require.Equal(t, a.Unwrap(), b.Unwrap())
}

func TestEqualCompare(t *testing.T) {
	assert.True(t, Equal(New("go"), New("go")))
	assert.False(t, Equal(New(1), New(2)))
	assert.Equal(t, 0, Compare(New(3.5), New(3.5)))
	assert.Equal(t, -1, Compare(New(1), New(2)))
	assert.Equal(t, 1, Compare(New("b"), New("a")))
}

type sharedCounts map[string]int

func (sharedCounts) Sharable() {}

func TestNewShared(t *testing.T) {
	c := NewShared(sharedCounts{"a": 1})
	c.View(func(m *sharedCounts) {
		require.Equal(t, 1, (*m)["a"])
	})
}

func TestZeroCellUsable(t *testing.T) {
	var c Cell[[]byte]
	c.Update(func(p *[]byte) { *p = append(*p, 'x') })
	require.Equal(t, []byte("x"), *c.Get())
}
