package cmd

import (
	"context"
	"fmt"

	"github.com/pixolin/wpplugin/constants"
	"github.com/pixolin/wpplugin/entity"
	"github.com/pixolin/wpplugin/ui"
)

func (h *Handler) Locale(ctx context.Context, req *entity.CommandRequest) error {
	var locale string
	var err error

	if len(req.Args) > 0 {
		locale = req.Args[0]
	} else {
		current := h.ctrl.GetLocale(ctx)
		if current != "" {
			fmt.Printf("Current locale: %s\n", ui.BlueText(current))
		}
		locale, err = ui.PromptLocales(constants.Locales)
		if err != nil {
			return err
		}
	}

	return h.ctrl.SetLocale(ctx, locale)
}
