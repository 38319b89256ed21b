package render

import "strings"

var (
	smallNumbers = []string{
		"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
		"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
		"seventeen", "eighteen", "nineteen",
	}
	tens = []string{
		"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
	}
	scales = []struct {
		value int
		name  string
	}{
		{1_000_000_000, "billion"},
		{1_000_000, "million"},
		{1_000, "thousand"},
		{100, "hundred"},
	}

	irregularOrdinals = map[string]string{
		"one":    "first",
		"two":    "second",
		"three":  "third",
		"five":   "fifth",
		"eight":  "eighth",
		"nine":   "ninth",
		"twelve": "twelfth",
	}
)

// cardinal spells out n in English words: 21 is "twenty-one", 105 is
// "one hundred five".
func cardinal(n int) string {
	if n < 0 {
		return "minus " + cardinal(-n)
	}
	if n < 20 {
		return smallNumbers[n]
	}
	if n < 100 {
		word := tens[n/10]
		if n%10 != 0 {
			word += "-" + smallNumbers[n%10]
		}
		return word
	}
	for _, s := range scales {
		if n < s.value {
			continue
		}
		word := cardinal(n/s.value) + " " + s.name
		if n%s.value != 0 {
			word += " " + cardinal(n%s.value)
		}
		return word
	}
	return ""
}

// ordinal spells out n as an English ordinal: "first", "twenty-second".
func ordinal(n int) string {
	words := cardinal(n)
	cut := strings.LastIndexAny(words, " -") + 1
	head, last := words[:cut], words[cut:]
	switch {
	case irregularOrdinals[last] != "":
		last = irregularOrdinals[last]
	case strings.HasSuffix(last, "y"):
		last = strings.TrimSuffix(last, "y") + "ieth"
	default:
		last += "th"
	}
	return head + last
}
