package util

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// Currency formats an amount in Brazilian reais, e.g. "R$ 1.234,50".
func Currency(amount float64) string {
	if amount < 0 {
		return "-R$ " + ptBR.Sprintf("%.2f", math.Abs(amount))
	}
	return "R$ " + ptBR.Sprintf("%.2f", amount)
}

// Percent formats a percentage with one decimal, e.g. "8,5%".
func Percent(value float64) string {
	return ptBR.Sprintf("%.1f", value) + "%"
}
