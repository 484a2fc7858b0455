package conversation

import "testing"

func TestIsGoal(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"Я ХОЧУ выучить Rust", true},
		{"хочу выучить rust", true},
		{"Планирую пробежать марафон", true},
		{"моя ЦЕЛЬ — похудеть", true},
		{"завтра буду читать", true},
		{"Собираюсь в отпуск", true},
		{"выучить rust хочу", true},
		{"Как выучить Rust?", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsGoal(tc.text); got != tc.want {
			t.Errorf("IsGoal(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}
