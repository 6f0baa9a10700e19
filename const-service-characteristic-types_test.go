package hkaccessory

import "testing"

func TestToShort(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0000003E-0000-1000-8000-0026BB765291", "3E"},
		{"00000025-0000-1000-8000-0026BB765291", "25"},
		{"3E", "3E"},
		{"0043", "43"},
		{"118", "118"},
		// all-zero segments pass through unchanged
		{"0000", "0000"},
		{"0000-0000-1000", "0000-0000-1000"},
	}
	for _, tc := range cases {
		if got := HapServiceType(tc.in).ToShort(); string(got) != tc.want {
			t.Errorf("ToShort(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTypeNames(t *testing.T) {
	if got := SType_LightBulb.String(); got != "LightBulb" {
		t.Errorf("service name = %q", got)
	}
	if got := CType_On.String(); got != "On" {
		t.Errorf("characteristic name = %q", got)
	}
	if got := HapCharacteristicType("00000025-0000-1000-8000-0026BB765291").String(); got != "On" {
		t.Errorf("full uuid name = %q", got)
	}
	// unknown types fall back to the raw value
	if got := HapCharacteristicType("FFFF").String(); got != "FFFF" {
		t.Errorf("unknown name = %q", got)
	}
}
