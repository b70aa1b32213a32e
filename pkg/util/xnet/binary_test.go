package xnet

import (
	"bytes"
	"net/netip"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserAddr_Binary(t *testing.T) {
	tests := []struct {
		input string
		want  []byte
	}{
		{"127.0.0.1", []byte{127, 0, 0, 1}},
		{"10.2.3.1/24", []byte{10, 2, 3, 1, 24}},
		{"::1", []byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}},
		{"fe80::/10", []byte{0xfe, 0x80, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			u, err := ParseUserAddr(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, u.Binary())

			back, err := UserAddrFromBinary(tt.want)
			require.NoError(t, err)
			assert.Equal(t, u, back)
		})
	}
	assert.Nil(t, UserAddr{}.Binary())
}

func TestUserAddrFromBinary_Errors(t *testing.T) {
	for _, n := range []int{0, 1, 3, 6, 15, 18, 32} {
		_, err := UserAddrFromBinary(make([]byte, n))
		assert.ErrorIs(t, err, ErrInvalidBinaryLength, "len=%d", n)
	}

	_, err := UserAddrFromBinary([]byte{10, 0, 0, 0, 33})
	assert.ErrorIs(t, err, ErrInvalidPrefixLen)

	v6 := make([]byte, 17)
	v6[16] = 129
	_, err = UserAddrFromBinary(v6)
	assert.ErrorIs(t, err, ErrInvalidPrefixLen)
}

func TestNormalizeBinary(t *testing.T) {
	p, err := NormalizeBinary([]byte{10, 2, 3, 1}, MaskText("255.255.255.0"))
	require.NoError(t, err)
	assert.Equal(t, netip.MustParsePrefix("10.2.3.1/24"), p)

	p, err = NormalizeBinary([]byte{10, 2, 3, 1, 16}, Mask{})
	require.NoError(t, err)
	assert.Equal(t, "10.2.3.1/16", p.String())

	_, err = NormalizeBinary([]byte{10, 2, 3, 1, 16}, MaskBits(24))
	assert.ErrorIs(t, err, ErrAmbiguousMask)

	_, err = NormalizeBinary([]byte{10, 2, 3, 1}, Mask{})
	assert.ErrorIs(t, err, ErrMissingMask)

	_, err = NormalizeBinary([]byte{10, 2, 3}, MaskBits(8))
	assert.ErrorIs(t, err, ErrInvalidBinaryLength)
}

func TestUserAddr_BinaryMarshaler(t *testing.T) {
	u, err := ParseUserAddr("2001:db8::1/64")
	require.NoError(t, err)
	b, err := u.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, b, 17)

	var back UserAddr
	require.NoError(t, back.UnmarshalBinary(b))
	assert.Equal(t, u, back)
	assert.Error(t, back.UnmarshalBinary([]byte{1, 2}))
}

func TestBinary_Sortable(t *testing.T) {
	a, err := ParseUserAddr("10.0.0.2")
	require.NoError(t, err)
	b, err := ParseUserAddr("10.0.0.10")
	require.NoError(t, err)
	// 二进制形式按数值排序，文本形式不是
	assert.Equal(t, -1, bytes.Compare(a.Binary(), b.Binary()))
	assert.Positive(t, strings.Compare(a.String(), b.String()))
}
