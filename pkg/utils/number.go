package utils

import (
	"fmt"
	"math"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatThousands formata um valor monetário sem centavos e com separador de
// milhar, ex: 1234567.89 -> "1,234,568"
func FormatThousands(f float64) string {
	rounded := int64(math.Round(f))

	sign := ""
	if rounded < 0 {
		sign = "-"
		rounded = -rounded
	}

	digits := fmt.Sprintf("%d", rounded)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	return sign + strings.Join(groups, ",")
}
