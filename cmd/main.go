package cmd

import (
	"github.com/pixolin/wpplugin/configs"
	"github.com/pixolin/wpplugin/controller"
	"github.com/pixolin/wpplugin/ui"
)

type Handler struct {
	ctrl *controller.Controller
	cfg  *configs.Configs

	// pager input source, swapped out in tests
	prompt func(hasMore bool) (string, error)
}

func New() *Handler {
	return &Handler{
		ctrl:   controller.New(),
		cfg:    configs.New(),
		prompt: ui.PromptPageAction,
	}
}
