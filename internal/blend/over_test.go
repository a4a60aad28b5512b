package blend

import "testing"

func TestPackUnpack(t *testing.T) {
	c := Pack(10, 20, 30, 40)
	if c != 0x280a141e {
		t.Fatalf("Pack = %#08x, want 0x280a141e", c)
	}
	r, g, b, a := Unpack(c)
	if r != 10 || g != 20 || b != 30 || a != 40 {
		t.Errorf("Unpack = (%d, %d, %d, %d), want (10, 20, 30, 40)", r, g, b, a)
	}
}

func TestOver(t *testing.T) {
	tests := []struct {
		name     string
		src, dst uint32
		want     uint32
	}{
		{"transparent source keeps destination", Pack(255, 0, 0, 0), Pack(1, 2, 3, 4), Pack(1, 2, 3, 4)},
		{"opaque source overwrites", Pack(9, 8, 7, 255), Pack(1, 2, 3, 4), Pack(9, 8, 7, 255)},
		{"half over opaque", Pack(200, 0, 0, 128), Pack(100, 0, 255, 255), Pack(150, 0, 127, 255)},
		{"half over transparent", Pack(200, 100, 50, 128), 0, Pack(100, 50, 25, 128)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Over(tt.src, tt.dst); got != tt.want {
				t.Errorf("Over(%#08x, %#08x) = %#08x, want %#08x", tt.src, tt.dst, got, tt.want)
			}
		})
	}
}

func TestOverSpan(t *testing.T) {
	dst := []uint32{Pack(1, 1, 1, 255), Pack(2, 2, 2, 255), Pack(3, 3, 3, 255)}
	src := []uint32{0, Pack(50, 60, 70, 255), Pack(255, 255, 255, 0)}

	OverSpan(dst, src)

	want := []uint32{Pack(1, 1, 1, 255), Pack(50, 60, 70, 255), Pack(3, 3, 3, 255)}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %#08x, want %#08x", i, dst[i], want[i])
		}
	}
}

func TestOverSpan_ShortDestination(t *testing.T) {
	dst := []uint32{0}
	OverSpan(dst, []uint32{Pack(1, 2, 3, 255), Pack(4, 5, 6, 255)})
	if dst[0] != Pack(1, 2, 3, 255) {
		t.Errorf("dst[0] = %#08x, want %#08x", dst[0], Pack(1, 2, 3, 255))
	}
}
