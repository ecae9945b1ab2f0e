package chroma_test

import (
	"testing"

	"github.com/prismhw/prismsim/chroma"
)

func Test_builtin_tables(t *testing.T) {
	if e := chroma.GPIO24[0]; e.Select != 0x03c0 || e.Data != 0x08000000 {
		t.Fatalf("gpio24 entry 0 = (%#x, %#x)", e.Select, e.Data)
	}
	if e := chroma.GPIO24[7]; e.Select != 0x0288 || e.Data != 0x00012010 {
		t.Fatalf("gpio24 entry 7 = (%#x, %#x)", e.Select, e.Data)
	}
	if e := chroma.SPISlave[7]; e.Select != 0x0041 || e.Data != 0x08012000 {
		t.Fatalf("spislave entry 7 = (%#x, %#x)", e.Select, e.Data)
	}
	if chroma.SPISlaveControl != 0x00002912 {
		t.Fatalf("spislave control = %#08x", chroma.SPISlaveControl)
	}
}
