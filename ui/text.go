package ui

import (
	"fmt"

	"github.com/logrusorgru/aurora"
)

func Color() aurora.Aurora {
	return aurora.NewAurora(SupportsANSICodes())
}

func Bold(text string) string {
	color := Color()
	return color.Sprintf(color.Bold(text))
}

func RedText(text string) string {
	color := Color()
	return color.Sprintf(color.Red(text))
}

func GreenText(text string) string {
	color := Color()
	return color.Sprintf(color.Green(text))
}

func YellowText(text string) string {
	color := Color()
	return color.Sprintf(color.Yellow(text))
}

func BlueText(text string) string {
	color := Color()
	return color.Sprintf(color.Blue(text))
}

func MagentaText(text string) string {
	color := Color()
	return color.Sprintf(color.Magenta(text))
}

// Truncate cuts text off after max runes, marking the cut with an
// ellipsis. Long plugin names otherwise wrap and break the index column.
func Truncate(text string, max int) string {
	runes := []rune(text)
	if max < 1 || len(runes) <= max {
		return text
	}
	return fmt.Sprintf("%s …", string(runes[:max]))
}
