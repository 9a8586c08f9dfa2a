package ui

import (
	"fmt"

	"github.com/manifoldco/promptui"
)

// PromptPageAction reads one line of pager input. Any input is accepted
// here; interpretation happens in ParseSelection so invalid entries can
// re-prompt instead of failing.
func PromptPageAction(hasMore bool) (string, error) {
	prompt := promptui.Prompt{
		Label: PagerInstructions(hasMore),
	}
	return prompt.Run()
}

func PromptLocales(locales []string) (string, error) {
	prompt := promptui.Select{
		Label: "Select Locale",
		Items: locales,
		Templates: &promptui.SelectTemplates{
			Active:   `{{ . | underline }}`,
			Inactive: `{{ . }}`,
			Selected: fmt.Sprintf("%s Locale: {{ . | blue | bold }} ", GreenText("✔")),
		},
	}
	i, _, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return locales[i], nil
}
