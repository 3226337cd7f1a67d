package guid

import (
	"testing"

	"github.com/exertive/identity/byteorder"
	"github.com/stretchr/testify/assert"
)

var sequential = [Size]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}

func TestSplit(t *testing.T) {
	l := Split(sequential)

	assert.Equal(t, [4]byte{0, 1, 2, 3}, l.TimeLow)
	assert.Equal(t, [2]byte{4, 5}, l.TimeMid)
	assert.Equal(t, [2]byte{6, 7}, l.TimeHiAndVersion)
	assert.Equal(t, byte(8), l.ClockSeqHiAndReserved)
	assert.Equal(t, byte(9), l.ClockSeqLow)
	assert.Equal(t, [6]byte{10, 11, 12, 13, 14, 15}, l.Node)

	assert.Equal(t, sequential, l.Bytes())
}

func TestLayoutLocal(t *testing.T) {
	tests := []struct {
		name  string
		order byteorder.Order
		want  [Size]byte
	}{
		{
			name:  "little-endian reverses only time fields",
			order: byteorder.LittleEndian,
			want:  [Size]byte{3, 2, 1, 0, 5, 4, 7, 6, 8, 9, 10, 11, 12, 13, 14, 15},
		},
		{
			name:  "big-endian is identity",
			order: byteorder.BigEndian,
			want:  sequential,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Split(sequential)
			local := l.Local(tt.order)

			assert.Equal(t, tt.want, local.Bytes())
			assert.Equal(t, sequential, local.Canonical(tt.order).Bytes())
			assert.Equal(t, sequential, l.Bytes(), "receiver must not change")
		})
	}
}

func TestLayoutStamp(t *testing.T) {
	var raw [Size]byte
	for i := range raw {
		raw[i] = 0xff
	}

	stamped := Split(raw).stamp(V5)
	assert.Equal(t, byte(0x5f), stamped.TimeHiAndVersion[0])
	assert.Equal(t, byte(0xbf), stamped.ClockSeqHiAndReserved)

	stamped = Split([Size]byte{}).stamp(V3)
	assert.Equal(t, byte(0x30), stamped.TimeHiAndVersion[0])
	assert.Equal(t, byte(0x80), stamped.ClockSeqHiAndReserved)
	assert.Equal(t, V3, stamped.Version())
	assert.Equal(t, byte(0b10), stamped.Variant())
}
