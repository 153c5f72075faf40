package chord

import (
	"crypto/sha1"
	"math/big"
)

// ID is a big-endian, fixed-width identifier on the M-bit ring. All IDs
// produced by HashID and AddPow2 for a given M are zero-padded to the same
// byte width so that bytes.Compare reflects numeric order.
type ID []byte

// idWidth returns the byte width of an M-bit identifier, rounding up.
func idWidth(m int) int {
	return (m + 7) / 8
}

// HashID hashes b with SHA-1 and truncates the digest to m bits. Any
// cryptographic-quality hash works for ring placement; SHA-1 keeps ids
// compatible with the usual 160-bit Chord ring.
func HashID(b []byte, m int) ID {
	sum := sha1.Sum(b)
	full := new(big.Int).SetBytes(sum[:])

	mod := new(big.Int).Lsh(big.NewInt(1), uint(m))
	full.Mod(full, mod)

	return padID(full.Bytes(), m)
}

// AddPow2 computes (id + 2^i) mod 2^m, used by the finger table to derive
// the target identifier for finger i.
func AddPow2(id ID, i int, m int) ID {
	n := new(big.Int).SetBytes(id)
	pow := new(big.Int).Lsh(big.NewInt(1), uint(i))
	mod := new(big.Int).Lsh(big.NewInt(1), uint(m))

	n.Add(n, pow)
	n.Mod(n, mod)

	return padID(n.Bytes(), m)
}

func padID(b []byte, m int) ID {
	width := idWidth(m)
	if len(b) >= width {
		return ID(b[len(b)-width:])
	}
	padded := make([]byte, width)
	copy(padded[width-len(b):], b)
	return ID(padded)
}

// cmp compares two IDs as unsigned big-endian integers.
func cmp(a, b ID) int {
	la, lb := len(a), len(b)
	if la != lb {
		// Defensive: pad the shorter one so comparison reflects magnitude,
		// not byte-slice length. IDs produced by HashID/AddPow2 for the same
		// M are always equal width, so this path is only hit when comparing
		// across differently configured rings, which is a caller error.
		width := la
		if lb > width {
			width = lb
		}
		a = padID(a, width*8)
		b = padID(b, width*8)
	}
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Between reports whether x lies strictly clockwise in the open arc (a, b).
// The wrap-around (a > b) and degenerate (a == b) cases are handled
// explicitly; a == b is true for every x != a (the ring minus the single
// point a).
func Between(x, a, b ID) bool {
	switch ab := cmp(a, b); {
	case ab == 0:
		return cmp(x, a) != 0
	case ab < 0:
		return cmp(x, a) > 0 && cmp(x, b) < 0
	default: // a > b, wraps the seam
		return cmp(x, a) > 0 || cmp(x, b) < 0
	}
}

// BetweenRightIncl reports whether x lies clockwise in the right-closed arc
// (a, b].
func BetweenRightIncl(x, a, b ID) bool {
	if cmp(x, b) == 0 {
		return true
	}
	return Between(x, a, b)
}
