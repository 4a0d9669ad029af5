package util

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatUSD renders an amount as a dollar string with thousands separators,
// e.g. 1234.5 -> "$1,234.50", -42 -> "-$42.00".
func FormatUSD(amount float64) string {
	s := strconv.FormatFloat(math.Abs(amount), 'f', 2, 64)

	intPart, fracPart, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	sign := ""
	if amount < 0 {
		sign = "-"
	}
	return sign + "$" + b.String() + "." + fracPart
}

// FormatTons renders a kg total as the "X tons CO₂" dashboard string,
// converting to metric tons and keeping one decimal place.
func FormatTons(kg float64) string {
	tons := math.Round(kg/1000*10) / 10
	return fmt.Sprintf("%v tons CO₂", tons)
}

// FormatKg renders a per-transaction carbon estimate as "12.3 kg".
func FormatKg(kg float64) string {
	return fmt.Sprintf("%v kg", kg)
}

// FormatPercentChange renders the relative change from prior to current as a
// signed percentage with one decimal place, e.g. "+12.5%". A zero prior
// period yields "0%" since no meaningful comparison exists.
func FormatPercentChange(current, prior float64) string {
	if prior == 0 {
		return "0%"
	}
	change := math.Round((current-prior)/prior*1000) / 10
	if change == 0 {
		return "0%"
	}
	return fmt.Sprintf("%+.1f%%", change)
}
