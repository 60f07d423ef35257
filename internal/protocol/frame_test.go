package protocol

import (
	"bytes"
	"errors"
	"testing"
)

func TestEveryFrameIsWellFormed(t *testing.T) {
	frames := map[string]Frame{
		"power on":  Power(true),
		"power off": Power(false),
		"effect":    Effect(0x87),
		"color":     Color(255, 128, 0),
		"generic":   Generic(0x42, 0x01, 0x02, 0x03, 0x04),
	}

	if f, err := Brightness(50); err == nil {
		frames["brightness"] = f
	} else {
		t.Errorf("Brightness(50) failed: %v", err)
	}
	if f, err := EffectSpeed(50); err == nil {
		frames["effect speed"] = f
	} else {
		t.Errorf("EffectSpeed(50) failed: %v", err)
	}
	if f, err := CustomTime(12, 30, 45, 3); err == nil {
		frames["custom time"] = f
	} else {
		t.Errorf("CustomTime failed: %v", err)
	}
	if f, err := ScheduleOn(0x15, 7, 30, true); err == nil {
		frames["schedule on"] = f
	} else {
		t.Errorf("ScheduleOn failed: %v", err)
	}
	if f, err := ScheduleOff(0x15, 23, 0, false); err == nil {
		frames["schedule off"] = f
	} else {
		t.Errorf("ScheduleOff failed: %v", err)
	}

	for name, f := range frames {
		if len(f.Bytes()) != FrameLen {
			t.Errorf("%s: frame length %d, want %d", name, len(f.Bytes()), FrameLen)
		}
		if !f.WellFormed() {
			t.Errorf("%s: frame % X missing start/end markers", name, f.Bytes())
		}
	}
}

func TestPowerFrames(t *testing.T) {
	on := Power(true)
	want := []byte{0x7E, 0x00, 0x04, 0xF0, 0x00, 0x01, 0xFF, 0x00, 0xEF}
	if !bytes.Equal(on.Bytes(), want) {
		t.Errorf("Power(true) = % X, want % X", on.Bytes(), want)
	}

	off := Power(false)
	want = []byte{0x7E, 0x00, 0x04, 0x00, 0x00, 0x00, 0xFF, 0x00, 0xEF}
	if !bytes.Equal(off.Bytes(), want) {
		t.Errorf("Power(false) = % X, want % X", off.Bytes(), want)
	}
}

func TestBrightnessBounds(t *testing.T) {
	tests := []struct {
		level   uint8
		wantErr bool
	}{
		{0, false},
		{100, false},
		{101, true},
		{255, true},
	}

	for _, tt := range tests {
		f, err := Brightness(tt.level)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Brightness(%d): expected error", tt.level)
			} else if !errors.Is(err, ErrOutOfRange) {
				t.Errorf("Brightness(%d): error %v is not ErrOutOfRange", tt.level, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Brightness(%d): unexpected error %v", tt.level, err)
			continue
		}
		if f[2] != OpBrightness || f[3] != tt.level {
			t.Errorf("Brightness(%d) = % X", tt.level, f.Bytes())
		}
	}
}

func TestEffectSpeedBounds(t *testing.T) {
	for _, speed := range []uint8{0, 100} {
		if _, err := EffectSpeed(speed); err != nil {
			t.Errorf("EffectSpeed(%d): unexpected error %v", speed, err)
		}
	}
	for _, speed := range []uint8{101, 255} {
		if _, err := EffectSpeed(speed); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("EffectSpeed(%d): want ErrOutOfRange, got %v", speed, err)
		}
	}
}

func TestEffectFrame(t *testing.T) {
	f := Effect(0x87)
	want := []byte{0x7E, 0x00, 0x03, 0x87, 0x03, 0x00, 0x00, 0x00, 0xEF}
	if !bytes.Equal(f.Bytes(), want) {
		t.Errorf("Effect(0x87) = % X, want % X", f.Bytes(), want)
	}
}

func TestColorAcceptsFullByteRange(t *testing.T) {
	f := Color(255, 0, 0)
	want := []byte{0x7E, 0x00, 0x05, 0x03, 0xFF, 0x00, 0x00, 0x00, 0xEF}
	if !bytes.Equal(f.Bytes(), want) {
		t.Errorf("Color(255,0,0) = % X, want % X", f.Bytes(), want)
	}

	// No validation failures anywhere in the byte range.
	for _, v := range []uint8{0, 1, 127, 254, 255} {
		f := Color(v, v, v)
		if !f.WellFormed() {
			t.Errorf("Color(%d,%d,%d) produced malformed frame", v, v, v)
		}
	}
}

func TestCustomTimeBounds(t *testing.T) {
	tests := []struct {
		name                          string
		hour, minute, second, weekday uint8
		wantErr                       bool
	}{
		{"max valid", 23, 59, 59, 7, false},
		{"min valid", 0, 0, 0, 1, false},
		{"hour 24", 24, 0, 0, 1, true},
		{"minute 60", 0, 60, 0, 1, true},
		{"second 60", 0, 0, 60, 1, true},
		{"weekday 0", 0, 0, 0, 0, true},
		{"weekday 8", 0, 0, 0, 8, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := CustomTime(tt.hour, tt.minute, tt.second, tt.weekday)
			if tt.wantErr {
				if !errors.Is(err, ErrOutOfRange) {
					t.Errorf("want ErrOutOfRange, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			want := Frame{0x7E, 0x00, 0x83, tt.hour, tt.minute, tt.second, tt.weekday, 0x00, 0xEF}
			if f != want {
				t.Errorf("frame = % X, want % X", f.Bytes(), want.Bytes())
			}
		})
	}
}

func TestScheduleEnableBit(t *testing.T) {
	on, err := ScheduleOn(0x01, 7, 0, true)
	if err != nil {
		t.Fatalf("ScheduleOn: %v", err)
	}
	if on[7] != 0x81 {
		t.Errorf("enabled schedule days byte = %#02x, want 0x81", on[7])
	}
	if on[6] != SubScheduleOn {
		t.Errorf("schedule-on sub-flag = %#02x, want %#02x", on[6], SubScheduleOn)
	}

	off, err := ScheduleOff(0x01, 7, 0, false)
	if err != nil {
		t.Fatalf("ScheduleOff: %v", err)
	}
	if off[7] != 0x01 {
		t.Errorf("disabled schedule days byte = %#02x, want 0x01", off[7])
	}
	if off[6] != SubScheduleOff {
		t.Errorf("schedule-off sub-flag = %#02x, want %#02x", off[6], SubScheduleOff)
	}
}

func TestScheduleBounds(t *testing.T) {
	if _, err := ScheduleOn(0x7F, 23, 59, true); err != nil {
		t.Errorf("days=0x7F should be valid, got %v", err)
	}
	if _, err := ScheduleOn(0x80, 0, 0, false); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("days=0x80: want ErrOutOfRange, got %v", err)
	}
	if _, err := ScheduleOn(0x01, 24, 0, false); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("hour=24: want ErrOutOfRange, got %v", err)
	}
	if _, err := ScheduleOff(0x01, 0, 60, false); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("minute=60: want ErrOutOfRange, got %v", err)
	}
}

func TestGenericFrame(t *testing.T) {
	f := Generic(0x04, 0xF0, 0x00, 0x01, 0xFF)
	want := []byte{0x7E, 0x00, 0x04, 0xF0, 0x00, 0x01, 0xFF, 0x00, 0xEF}
	if !bytes.Equal(f.Bytes(), want) {
		t.Errorf("Generic = % X, want % X", f.Bytes(), want)
	}
}

func TestEncodingIsDeterministic(t *testing.T) {
	a, err := ScheduleOn(0x15, 6, 45, true)
	if err != nil {
		t.Fatalf("ScheduleOn: %v", err)
	}
	b, err := ScheduleOn(0x15, 6, 45, true)
	if err != nil {
		t.Fatalf("ScheduleOn: %v", err)
	}
	if a != b {
		t.Errorf("identical calls produced different frames: % X vs % X", a.Bytes(), b.Bytes())
	}

	if Color(10, 20, 30) != Color(10, 20, 30) {
		t.Error("Color encoding is not deterministic")
	}
}
