package validators

import "testing"

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"(11) 99999-0000", "11999990000"},
		{"11999990000", "11999990000"},
		{"+55 11 99999-0000", "+5511999990000"},
		{"11 9 9999 0000", "11999990000"},
		{"abc", ""},
	}

	for _, tc := range cases {
		if got := NormalizePhone(tc.in); got != tc.want {
			t.Errorf("NormalizePhone(%q) = %q, quer %q", tc.in, got, tc.want)
		}
	}
}

func TestIsPhoneValid(t *testing.T) {
	valid := []string{"(11) 99999-0000", "+55 11 99999-0000", "12345678"}
	for _, p := range valid {
		if !IsPhoneValid(p) {
			t.Errorf("%q deveria ser válido", p)
		}
	}

	invalid := []string{"", "123", "1234567", "1234567890123456"}
	for _, p := range invalid {
		if IsPhoneValid(p) {
			t.Errorf("%q deveria ser inválido", p)
		}
	}
}
