package mathplex

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in     string
		re, im float64
	}{
		{"2.5+60i", 2.5, 60},
		{"-2+7i", -2, 7},
		{"3-4i", 3, -4},
		{"+3+4i", 3, 4},
		{"i", 0, 1},
		{"+i", 0, 1},
		{"-i", 0, -1},
		{"2-i", 2, -1},
		{"4i", 0, 4},
		{"-4.5i", 0, -4.5},
		{"7", 7, 0},
		{"-7", -7, 0},
		{"0", 0, 0},
		{".5", 0.5, 0},
		{"3+4", 3, 4},
		{" ( 2.5 + 60 i ) ", 2.5, 60},
		{"3+4I", 3, 4},
		{"1e-3+2e2i", 0.001, 200},
		{"-1.5e+2-2.5E-1i", -150, -0.25},
		{"26-10i", 26, -10},
		{"3+i", 3, 1},
		{"3-i", 3, -1},
		{"(1, -2i)", 1, -2},
		{"1_000+2i", 1000, 2},
		{"\t4\n", 4, 0},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", tt.in, err)
			continue
		}
		if got.Real() != tt.re || got.Imag() != tt.im {
			t.Errorf("Parse(%q) = (%v, %v), want (%v, %v)", tt.in, got.Real(), got.Imag(), tt.re, tt.im)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"   ",
		"abc",
		"+",
		"-",
		"e",
		"1+2+3i",
		"3i+4",
		"ii",
		"+-2i",
		"1..2",
		"1e999",
		"x+yi",
		"pi",
		"Inf",
		"NaN",
		"sin",
		"abc-1",
		"2.5+60j",
		"3+",
		"3-",
		"1e+",
		"0x1p3",
	} {
		if c, err := Parse(in); !errors.Is(err, ErrParse) {
			t.Errorf("Parse(%q) = %s, %v; want ErrParse", in, c, err)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("MustParse did not panic")
		}
	}()
	MustParse("not a number")
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, c := range []Complex{New(-11, 4), New(26, -10), New(2.5, 60), New(0, -1), New(-0.25, 0), Zero} {
		back, err := Parse(c.String())
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", c.String(), err)
		}
		if !back.Equal(c) {
			t.Fatalf("round trip %q -> %s", c.String(), back)
		}
	}
	for _, s := range []string{"3.1415926535+2.718281828i", "-0.000123-45.5i", "1e10+1e-10i"} {
		c := tp(s)
		back, err := Parse(c.StringScientific(17))
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", c.StringScientific(17), err)
		}
		if !back.ApproxEqual(c, 1e-15*c.Magnitude()) {
			t.Fatalf("scientific round trip %s -> %s", c.StringScientific(17), back.StringScientific(17))
		}
	}
}
