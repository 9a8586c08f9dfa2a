package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pixolin/wpplugin/entity"
)

type Action int

const (
	ActionSelect Action = iota
	ActionNext
	ActionQuit
	ActionInvalid
)

// maxNameWidth keeps long plugin names from wrapping under the index column
const maxNameWidth = 60

// ParseSelection interprets one line of pager input. The returned index
// is zero-based into the displayed page and only valid for ActionSelect.
// Empty input selects the first displayed plugin.
func ParseSelection(input string, shown int) (Action, int) {
	input = strings.TrimSpace(input)

	switch input {
	case "":
		if shown > 0 {
			return ActionSelect, 0
		}
		return ActionInvalid, 0
	case "n":
		return ActionNext, 0
	case "q":
		return ActionQuit, 0
	}

	number, err := strconv.Atoi(input)
	if err != nil || number < 1 || number > shown {
		return ActionInvalid, 0
	}
	return ActionSelect, number - 1
}

// RenderPage lists the page's plugins, each prefixed with its 1-based
// index on this page.
func RenderPage(page *entity.ResultPage) string {
	var b strings.Builder
	b.WriteString("\n")
	for i, plugin := range page.Plugins {
		fmt.Fprintf(&b, "%2d %s\n", i+1, Truncate(plugin.DisplayName(), maxNameWidth))
	}
	return b.String()
}

// PagerInstructions returns the prompt label, dropping the next-page
// hint once the directory has nothing further to offer.
func PagerInstructions(hasMore bool) string {
	if hasMore {
		return "Plugin number (enter for first match, [n] next page, [q] quit)"
	}
	return "Plugin number (enter for first match, [q] quit)"
}
