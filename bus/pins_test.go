package bus

import "testing"

func TestAddrRoundTrip(t *testing.T) {
	var p Pins
	p = p.WithAddr(0xBEEF)
	if got := p.Addr(); got != 0xBEEF {
		t.Errorf("Addr() = %#04x, want %#04x", got, 0xBEEF)
	}
}

func TestDataRoundTrip(t *testing.T) {
	var p Pins
	p = p.WithData(0xAA)
	if got := p.Data(); got != 0xAA {
		t.Errorf("Data() = %#02x, want %#02x", got, 0xAA)
	}
	// data bits must not disturb the address bits already set.
	p = p.WithAddr(0x1234)
	if got := p.Data(); got != 0xAA {
		t.Errorf("Data() after WithAddr = %#02x, want %#02x", got, 0xAA)
	}
}

func TestRWDefaultsAndToggle(t *testing.T) {
	var p Pins
	if p.RW() {
		t.Error("RW() = true on zero-value Pins")
	}
	p = p.WithRW(true)
	if !p.RW() {
		t.Error("RW() = false after WithRW(true)")
	}
	p = p.WithRW(false)
	if p.RW() {
		t.Error("RW() = true after WithRW(false)")
	}
}

func TestSyncSetClear(t *testing.T) {
	var p Pins
	p = p.WithSync()
	if !p.Sync() {
		t.Error("Sync() = false after WithSync()")
	}
	p = p.ClearSync()
	if p.Sync() {
		t.Error("Sync() = true after ClearSync()")
	}
}

func TestControlLinesIndependent(t *testing.T) {
	var p Pins
	p = p.WithIRQ(true).WithNMI(true).WithRDY(false).WithRES(true)
	if !p.IRQ() || !p.NMI() || p.RDY() || !p.RES() {
		t.Fatalf("control lines not set as expected: %+v", p)
	}
	p = p.WithIRQ(false)
	if p.IRQ() {
		t.Error("IRQ() = true after WithIRQ(false)")
	}
	if !p.NMI() || p.RDY() || !p.RES() {
		t.Error("clearing IRQ disturbed another control line")
	}
}

func TestAddrMaskedFromLargerFields(t *testing.T) {
	p := Pins(0).WithAddr(0xFFFF).WithData(0xFF).WithRW(true).WithSync().
		WithIRQ(true).WithNMI(true).WithRDY(true).WithRES(true)
	if got := p.Addr(); got != 0xFFFF {
		t.Errorf("Addr() = %#04x, want 0xffff", got)
	}
	if got := p.Data(); got != 0xFF {
		t.Errorf("Data() = %#02x, want 0xff", got)
	}
}
