package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/pixolin/wpplugin/constants"
)

// OpenDocs opens the directory page behind the given shortcut, or
// lists the known shortcuts when none (or an unknown one) is given.
func (c *Controller) OpenDocs(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return nameList()
	}

	url, ok := constants.DocsURLMap[args[0]]
	if !ok {
		return nameList()
	}

	fmt.Printf("Opening %s...\n", url)
	return c.gtwy.OpenInBrowser(url)
}

// OpenPluginPage opens the selected plugin's page in the browser.
func (c *Controller) OpenPluginPage(ctx context.Context, link string) error {
	return c.gtwy.OpenInBrowser(link)
}

func nameList() error {
	names, longest := getNames()
	fmt.Printf("%s%s\n", padName("shortcut", longest), "    url")
	fmt.Printf("%s%s\n", padName("--------", longest), "    ---------")

	for _, name := range names {
		paddedName := padName(name, longest)
		fmt.Printf("%s => %s\n", paddedName, constants.DocsURLMap[name])
	}
	return nil
}

func padName(name string, length int) string {
	difference := length - len(name)

	var b strings.Builder

	fmt.Fprint(&b, name)

	for i := 0; i < difference; i++ {
		fmt.Fprint(&b, " ")
	}

	return b.String()
}

func getNames() ([]string, int) {
	longest := 0
	keys := make([]string, 0, len(constants.DocsURLMap))
	for k := range constants.DocsURLMap {
		if len(k) > longest {
			longest = len(k)
		}
		keys = append(keys, k)
	}
	return keys, longest
}
