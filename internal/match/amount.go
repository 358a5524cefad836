package match

import "strconv"

// AmountValue extracts the numeric value of a currency string by keeping only
// its digits: "$5,000" -> 5000. Anything without digits is worth 0.
func AmountValue(amount string) int {
	var digits []byte
	for i := 0; i < len(amount); i++ {
		if amount[i] >= '0' && amount[i] <= '9' {
			digits = append(digits, amount[i])
		}
	}
	if len(digits) == 0 {
		return 0
	}
	v, err := strconv.Atoi(string(digits))
	if err != nil {
		return 0
	}
	return v
}

// parseBound parses a range bound, treating garbage as 0.
func parseBound(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}
