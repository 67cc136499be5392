package classifier

import "testing"

func TestParseYearsRequired(t *testing.T) {
	tests := []struct {
		name string
		text string
		want YearsRange
		ok   bool
	}{
		{"no experience", "no experience required", YearsRange{0, 0}, true},
		{"entry level marker", "This is an entry-level position", YearsRange{0, 0}, true},
		{"plus", "5+ years of experience", YearsRange{5, 10}, true},
		{"plus capped", "22+ years of experience", YearsRange{22, 25}, true},
		{"range dash", "3-5 years experience in sales", YearsRange{3, 5}, true},
		{"range to", "3 to 5 years of experience", YearsRange{3, 5}, true},
		{"minimum", "minimum 7 years in the field", YearsRange{7, 10}, true},
		{"at least", "at least 10 years of exp", YearsRange{10, 13}, true},
		{"simple", "4 years of experience", YearsRange{4, 4}, true},
		{"absurd rejected", "50 years of experience", YearsRange{}, false},
		{"empty", "", YearsRange{}, false},
		{"no numbers", "we value curiosity", YearsRange{}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseYearsRequired(tc.text)
			if ok != tc.ok {
				t.Fatalf("ok: expected %v got %v", tc.ok, ok)
			}
			if got != tc.want {
				t.Fatalf("expected %+v got %+v", tc.want, got)
			}
		})
	}
}

func TestYearsToLevel(t *testing.T) {
	tests := []struct {
		name  string
		years YearsRange
		want  Level
	}{
		{"zero", YearsRange{0, 0}, LevelEntry},
		{"avg two", YearsRange{2, 2}, LevelEntry},
		{"avg two and a half", YearsRange{2, 3}, LevelMid},
		{"avg four", YearsRange{3, 5}, LevelMid},
		{"avg seven and a half", YearsRange{5, 10}, LevelSenior},
		{"avg above ten", YearsRange{10, 15}, LevelExecutive},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := YearsToLevel(tc.years); got != tc.want {
				t.Fatalf("expected %q got %q", tc.want, got)
			}
		})
	}
}
