package bledom

import (
	"errors"
	"testing"
)

func TestDayComposites(t *testing.T) {
	if DaysAll != 0x7F {
		t.Errorf("DaysAll = %#02x, want 0x7F", byte(DaysAll))
	}
	if Weekdays != 0x1F {
		t.Errorf("Weekdays = %#02x, want 0x1F", byte(Weekdays))
	}
	if Weekend != 0x60 {
		t.Errorf("Weekend = %#02x, want 0x60", byte(Weekend))
	}
	if DaysNone != 0 {
		t.Errorf("DaysNone = %#02x, want 0x00", byte(DaysNone))
	}
	if Weekdays|Weekend != DaysAll {
		t.Error("Weekdays|Weekend should equal DaysAll")
	}
}

func TestParseDays(t *testing.T) {
	tests := []struct {
		in      string
		want    Day
		wantErr bool
	}{
		{"mon", Monday, false},
		{"mon,wed,fri", Monday | Wednesday | Friday, false},
		{"Sat, Sun", Weekend, false},
		{"weekdays", Weekdays, false},
		{"weekend", Weekend, false},
		{"all", DaysAll, false},
		{"none", DaysNone, false},
		{"mon,weekend", Monday | Weekend, false},
		{"funday", 0, true},
		{"", DaysNone, false},
	}

	for _, tt := range tests {
		got, err := ParseDays(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("ParseDays(%q): want ErrInvalidParameter, got %v", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDays(%q): unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDays(%q) = %#02x, want %#02x", tt.in, byte(got), byte(tt.want))
		}
	}
}

func TestDayString(t *testing.T) {
	tests := []struct {
		day  Day
		want string
	}{
		{Monday, "mon"},
		{Monday | Friday, "mon,fri"},
		{DaysAll, "all"},
		{DaysNone, "none"},
	}
	for _, tt := range tests {
		if got := tt.day.String(); got != tt.want {
			t.Errorf("Day(%#02x).String() = %q, want %q", byte(tt.day), got, tt.want)
		}
	}
}

func TestEffectNamesRoundTrip(t *testing.T) {
	effects := AllEffects()
	if len(effects) != 22 {
		t.Fatalf("AllEffects returned %d effects, want 22", len(effects))
	}

	for _, e := range effects {
		name := e.String()
		back, ok := EffectByName(name)
		if !ok {
			t.Errorf("EffectByName(%q) not found", name)
			continue
		}
		if back != e {
			t.Errorf("EffectByName(%q) = %#02x, want %#02x", name, byte(back), byte(e))
		}
	}

	if Effect(0x00).String() != "effect-0x00" {
		t.Errorf("unknown effect name = %q", Effect(0x00).String())
	}
	if _, ok := EffectByName("does-not-exist"); ok {
		t.Error("EffectByName accepted an unknown name")
	}
}
