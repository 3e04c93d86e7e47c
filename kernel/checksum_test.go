package kernel

import "testing"

func TestFoldChecksumXORsWindow(t *testing.T) {
	var mem Memory
	mem.SetByte(100, 0x0F)
	mem.SetByte(101, 0xF0)
	mem.SetByte(102, 0x01)

	got := foldChecksum(&mem, 100, 102)
	want := byte(0x0F ^ 0xF0 ^ 0x01)
	if got != want {
		t.Fatalf("foldChecksum = %#x, want %#x", got, want)
	}
}

func TestFoldChecksumIgnoresBytesOutsideWindow(t *testing.T) {
	var mem Memory
	mem.SetByte(99, 0xFF)  // below sp: must not count
	mem.SetByte(100, 0x01)
	mem.SetByte(101, 0x02)
	mem.SetByte(103, 0xFF) // above bottom: must not count

	got := foldChecksum(&mem, 100, 101)
	want := byte(0x01 ^ 0x02)
	if got != want {
		t.Fatalf("foldChecksum = %#x, want %#x", got, want)
	}
}

func TestFoldChecksumDetectsSingleBitFlip(t *testing.T) {
	var mem Memory
	for addr := 200; addr <= 210; addr++ {
		mem.SetByte(addr, byte(addr))
	}
	before := foldChecksum(&mem, 200, 210)

	mem.SetByte(205, mem.Byte(205)^0x08)
	after := foldChecksum(&mem, 200, 210)

	if before == after {
		t.Fatal("single-bit flip inside the window was not detected")
	}
}

func TestFoldChecksumMissesCompensatingTwoByteFlip(t *testing.T) {
	// Known limitation of XOR folding: flipping the same bit position in
	// two different bytes cancels out.
	var mem Memory
	for addr := 300; addr <= 305; addr++ {
		mem.SetByte(addr, byte(addr))
	}
	before := foldChecksum(&mem, 300, 305)

	mem.SetByte(301, mem.Byte(301)^0x10)
	mem.SetByte(304, mem.Byte(304)^0x10)
	after := foldChecksum(&mem, 300, 305)

	if before != after {
		t.Fatal("expected compensating two-byte flip to cancel in the fold")
	}
}

func TestFoldChecksumIgnoresFlipOutsideWindow(t *testing.T) {
	var mem Memory
	for addr := 400; addr <= 404; addr++ {
		mem.SetByte(addr, byte(addr))
	}
	before := foldChecksum(&mem, 400, 404)

	mem.SetByte(405, mem.Byte(405)^0x01)
	after := foldChecksum(&mem, 400, 404)

	if before != after {
		t.Fatal("flip outside the window must not affect the checksum")
	}
}
