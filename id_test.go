package chord

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestBetween(t *testing.T) {
	// Two-byte ids on a 16-bit ring, so byte-slice comparison has to get
	// multi-byte magnitude right, not just single-byte ordering.
	lo := ID{0x10, 0x00}
	hi := ID{0xf0, 0x00}

	cases := []struct {
		name    string
		x, a, b ID
		want    bool
	}{
		{"inside ordered arc", ID{0x80, 0x01}, lo, hi, true},
		{"below ordered arc", ID{0x0f, 0xff}, lo, hi, false},
		{"left endpoint excluded", lo, lo, hi, false},
		{"right endpoint excluded", hi, lo, hi, false},
		{"inside wrapped arc, high side", ID{0xff, 0xfe}, hi, lo, true},
		{"inside wrapped arc, low side", ID{0x00, 0x01}, hi, lo, true},
		{"outside wrapped arc", ID{0x80, 0x00}, hi, lo, false},
		{"wrapped left endpoint excluded", hi, hi, lo, false},
		{"wrapped right endpoint excluded", lo, hi, lo, false},
		{"degenerate arc is the full ring", ID{0x42, 0x42}, lo, lo, true},
		{"degenerate arc excludes its point", lo, lo, lo, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Between(c.x, c.a, c.b), c.name)
	}
}

func TestBetweenRightIncl(t *testing.T) {
	lo := ID{0x10, 0x00}
	hi := ID{0xf0, 0x00}

	// Same arcs as TestBetween; only the right endpoint flips.
	assert.True(t, BetweenRightIncl(hi, lo, hi), "right endpoint included")
	assert.False(t, BetweenRightIncl(lo, lo, hi), "left endpoint still excluded")
	assert.True(t, BetweenRightIncl(lo, hi, lo), "wrapped right endpoint included")
	assert.False(t, BetweenRightIncl(hi, hi, lo), "wrapped left endpoint still excluded")
	assert.True(t, BetweenRightIncl(lo, lo, lo), "degenerate arc includes its point")
	assert.True(t, BetweenRightIncl(ID{0x42, 0x42}, lo, lo), "degenerate arc is the full ring")
}

func TestBetweenAtTheSeam(t *testing.T) {
	// Ownership at the ring seam under a configurable M: with m = 16 the
	// arc from just below the wrap point to just above it crosses zero.
	m := 16
	top := AddPow2(ID{0x00, 0x00}, m-1, m) // 0x8000
	overTop := AddPow2(top, m-1, m)        // wraps to 0x0000

	assert.Equal(t, ID{0x00, 0x00}, overTop)
	assert.True(t, Between(ID{0xff, 0xff}, top, ID{0x00, 0x01}))
	assert.True(t, BetweenRightIncl(ID{0x00, 0x00}, ID{0xff, 0xff}, ID{0x00, 0x00}),
		"an id equal to the arc's right bound is owned across the seam")
	assert.False(t, Between(ID{0x7f, 0xff}, top, ID{0x00, 0x01}))
}

func TestHashIDWidth(t *testing.T) {
	id := HashID([]byte("127.0.0.1:5000"), 160)
	assert.Len(t, id, 20, "a 160-bit id should be 20 bytes wide")

	id = HashID([]byte("127.0.0.1:5000"), 64)
	assert.Len(t, id, 8, "a 64-bit id should be 8 bytes wide")
}

func TestHashIDDeterministic(t *testing.T) {
	a := HashID([]byte("node-a"), 160)
	b := HashID([]byte("node-a"), 160)
	assert.Equal(t, a, b)

	c := HashID([]byte("node-b"), 160)
	assert.NotEqual(t, a, c)
}

func TestAddPow2WrapsModulo(t *testing.T) {
	m := 8
	start := ID{0}
	ans := []ID{{1}, {2}, {4}, {8}, {16}, {32}, {64}, {128}}

	for i := 0; i < m; i++ {
		got := AddPow2(start, i, m)
		assert.Equal(t, ans[i], got, "add_pow2 incorrect for index %d", i)
	}

	// 2^m mod 2^m == 0, exercising the wrap at the seam.
	wrapped := AddPow2(ID{0}, m, m)
	assert.Equal(t, ID{0}, wrapped)
}

func TestCmpPadsUnequalWidths(t *testing.T) {
	assert.True(t, cmp(ID{1}, ID{0, 1}) == 0)
	assert.True(t, cmp(ID{0, 2}, ID{1}) > 0)
}
