package http

import (
	"fmt"
	"strconv"
	"strings"

	"siga/internal/core"
)

// formatUSD renders cents as an en-US dollar string ("$2,500.00"). The
// dashboard shows every aggregate this way regardless of source currency.
func formatUSD(cents int64) string {
	neg := cents < 0
	if neg {
		cents = -cents
	}
	major := groupDigits(strconv.FormatInt(cents/100, 10), ",")
	s := "$" + major + "." + fmt.Sprintf("%02d", cents%100)
	if neg {
		return "-" + s
	}
	return s
}

// formatCurrency renders cents in the record's own currency using es-VE
// conventions: symbol prefix, dot thousands, comma decimals ("US$2.500,00").
func formatCurrency(cents int64, currency core.Currency) string {
	symbol := "US$"
	switch currency {
	case core.EUR:
		symbol = "€"
	case core.VES:
		symbol = "Bs.S"
	}
	neg := cents < 0
	if neg {
		cents = -cents
	}
	major := groupDigits(strconv.FormatInt(cents/100, 10), ".")
	s := symbol + major + "," + fmt.Sprintf("%02d", cents%100)
	if neg {
		return "-" + s
	}
	return s
}

// groupDigits inserts sep every three digits from the right.
func groupDigits(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// sanitizeInput removes potentially dangerous characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	// Remove control characters except tab, newline, carriage return
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}
