package donation

import "testing"

func TestAmountToWords(t *testing.T) {
	cases := []struct {
		amount int
		want   string
	}{
		{0, "Zero"},
		{1, "One Rupees Only"},
		{19, "Nineteen Rupees Only"},
		{20, "Twenty Rupees Only"},
		{21, "Twenty One Rupees Only"},
		{99, "Ninety Nine Rupees Only"},
		{100, "One Hundred Rupees Only"},
		{101, "One Hundred and One Rupees Only"},
		{116, "One Hundred and Sixteen Rupees Only"},
		{516, "Five Hundred and Sixteen Rupees Only"},
		{999, "Nine Hundred and Ninety Nine Rupees Only"},
		{1000, "One Thousand Rupees Only"},
		{1500, "One Thousand Five Hundred Rupees Only"},
		{21501, "Twenty One Thousand Five Hundred and One Rupees Only"},
		{99999, "Ninety Nine Thousand Nine Hundred and Ninety Nine Rupees Only"},
		{100000, "One Lakh Rupees Only"},
		{250000, "Two Lakh Fifty Thousand Rupees Only"},
		{9999999, "Ninety Nine Lakh Ninety Nine Thousand Nine Hundred and Ninety Nine Rupees Only"},
		{10000000, "One Crore Rupees Only"},
		{12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred and Seventy Eight Rupees Only"},
	}

	for _, tc := range cases {
		if got := AmountToWords(tc.amount); got != tc.want {
			t.Errorf("AmountToWords(%d) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}
