package format

import (
	"strings"

	"github.com/shopspring/decimal"
)

func FormatRupiah(amount decimal.Decimal) string {
	str := amount.StringFixed(0)

	n := len(str)
	if n <= 3 {
		return "Rp " + str
	}
	var b strings.Builder
	for i, char := range str {
		b.WriteRune(char)
		if (n-1-i)%3 == 0 && i != n-1 {
			b.WriteRune('.')
		}
	}
	return "Rp " + b.String()
}
