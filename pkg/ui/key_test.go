package ui

import "testing"

var kTests = []struct {
	k1 Key
	k2 Key
}{
	{K('a'), Key{'a', 0}},
	{K('a', Alt), Key{'a', Alt}},
	{K('a', Alt, Ctrl), Key{'a', Alt | Ctrl}},
}

func TestK(t *testing.T) {
	for _, test := range kTests {
		if test.k1 != test.k2 {
			t.Errorf("%v != %v", test.k1, test.k2)
		}
	}
}

var keyStringTests = []struct {
	k    Key
	want string
}{
	{K('a'), "a"},
	{K('a', Ctrl), "Ctrl-a"},
	{K('x', Ctrl, Alt), "Ctrl-Alt-x"},
	{K(Tab), "Tab"},
	{K(Enter), "Enter"},
	{K(Backspace), "Backspace"},
	{K(Up), "Up"},
	{K(F1), "F1"},
	{K(Home, Shift), "Shift-Home"},
	{K(-100), "(bad function key -100)"},
}

func TestKeyString(t *testing.T) {
	for _, test := range keyStringTests {
		if got := test.k.String(); got != test.want {
			t.Errorf("%#v.String() = %q, want %q", test.k, got, test.want)
		}
	}
}
