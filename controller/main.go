package controller

import (
	"github.com/pixolin/wpplugin/configs"
	"github.com/pixolin/wpplugin/gateway"
)

type Controller struct {
	gtwy *gateway.Gateway
	cfg  *configs.Configs
}

func New() *Controller {
	return &Controller{
		gtwy: gateway.New(),
		cfg:  configs.New(),
	}
}
