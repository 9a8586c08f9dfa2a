package cmd

import (
	"context"
	"fmt"

	"github.com/pixolin/wpplugin/configs"
	"github.com/pixolin/wpplugin/ui"
)

func (h *Handler) Panic(ctx context.Context, msg string, stack string) error {
	fmt.Printf("🚨 %s\n%s\n", ui.RedText("Something went wrong."), msg)
	if configs.IsDevMode() {
		fmt.Println(stack)
	}
	fmt.Println("Any chance you can report this at https://github.com/pixolin/wpplugin/issues?")
	return nil
}
