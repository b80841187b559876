package donation

var (
	onesWords = []string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
		"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}
	tensWords = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}
)

// AmountToWords spells out a rupee amount using Indian numbering
// (thousand, lakh, crore) for printing on receipts.
func AmountToWords(n int) string {
	if n == 0 {
		return "Zero"
	}
	return convert(n) + " Rupees Only"
}

func convert(num int) string {
	switch {
	case num < 20:
		return onesWords[num]
	case num < 100:
		s := tensWords[num/10]
		if num%10 != 0 {
			s += " " + onesWords[num%10]
		}
		return s
	case num < 1000:
		s := onesWords[num/100] + " Hundred"
		if num%100 != 0 {
			s += " and " + convert(num%100)
		}
		return s
	case num < 100000:
		s := convert(num/1000) + " Thousand"
		if num%1000 != 0 {
			s += " " + convert(num%1000)
		}
		return s
	case num < 10000000:
		s := convert(num/100000) + " Lakh"
		if num%100000 != 0 {
			s += " " + convert(num%100000)
		}
		return s
	default:
		s := convert(num/10000000) + " Crore"
		if num%10000000 != 0 {
			s += " " + convert(num%10000000)
		}
		return s
	}
}
