package domain

import "testing"

func TestRRTypeString(t *testing.T) {
	tests := []struct {
		rrtype RRType
		want   string
	}{
		{RRTypeA, "A"},
		{RRTypeAAAA, "AAAA"},
		{RRTypeMX, "MX"},
		{RRTypeCAA, "CAA"},
		{RRTypeANAME, "ANAME"},
		{RRTypeTSIG, "TSIG"},
		{RRType(1234), "TYPE(1234)"},
	}

	for _, tt := range tests {
		if got := tt.rrtype.String(); got != tt.want {
			t.Errorf("RRType(%d).String() = %q, want %q", tt.rrtype, got, tt.want)
		}
	}
}

func TestRRTypeFromString(t *testing.T) {
	tests := []struct {
		input string
		want  RRType
		ok    bool
	}{
		{"A", RRTypeA, true},
		{"a", RRTypeA, true},
		{"aaaa", RRTypeAAAA, true},
		{"Mx", RRTypeMX, true},
		{"NSEC3PARAM", RRTypeNSEC3PARAM, true},
		{"BADTYPE", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := RRTypeFromString(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("RRTypeFromString(%q) = %v, %v; want %v, %v", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRRTypeQueryOnly(t *testing.T) {
	for _, qo := range []RRType{RRTypeANY, RRTypeAXFR, RRTypeIXFR} {
		if !qo.IsQueryOnly() {
			t.Errorf("%v should be query-only", qo)
		}
	}
	for _, rt := range []RRType{RRTypeA, RRTypeOPT, RRTypeCAA} {
		if rt.IsQueryOnly() {
			t.Errorf("%v should not be query-only", rt)
		}
	}
}

func TestAllTypesIsRegistry(t *testing.T) {
	infos := AllTypes()
	if len(infos) == 0 {
		t.Fatal("AllTypes() returned no entries")
	}
	for _, info := range infos {
		if !info.Type.IsRegistered() {
			t.Errorf("%s is in AllTypes but not registered", info.Name)
		}
		got, ok := RRTypeFromString(info.Name)
		if !ok || got != info.Type {
			t.Errorf("registry round trip failed for %s", info.Name)
		}
	}
}

func TestRRClassString(t *testing.T) {
	tests := []struct {
		class RRClass
		want  string
	}{
		{RRClassIN, "IN"},
		{RRClassCH, "CH"},
		{RRClassHS, "HS"},
		{RRClass(99), "CLASS(99)"},
	}

	for _, tt := range tests {
		if got := tt.class.String(); got != tt.want {
			t.Errorf("RRClass(%d).String() = %q, want %q", tt.class, got, tt.want)
		}
	}
}

func TestRRClassFromString(t *testing.T) {
	if c, ok := RRClassFromString("ch"); !ok || c != RRClassCH {
		t.Errorf("RRClassFromString(\"ch\") = %v, %v", c, ok)
	}
	if _, ok := RRClassFromString("XX"); ok {
		t.Error("RRClassFromString(\"XX\") should not match")
	}
}

func TestRCodeString(t *testing.T) {
	if got := RCodeNXDomain.String(); got != "NXDOMAIN" {
		t.Errorf("NXDOMAIN String() = %q", got)
	}
	if got := RCode(4095).String(); got != "RCODE(4095)" {
		t.Errorf("unknown RCode String() = %q", got)
	}
}

func TestRCodeWithExtension(t *testing.T) {
	if got := RCodeNoError.WithExtension(1); got != RCodeBadVers {
		t.Errorf("WithExtension(1) = %v, want BADVERS", got)
	}
	if got := RCodeNXDomain.WithExtension(0); got != RCodeNXDomain {
		t.Errorf("WithExtension(0) changed the rcode: %v", got)
	}
}
