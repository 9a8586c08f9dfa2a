package controller

import (
	"context"
	"fmt"

	"github.com/pixolin/wpplugin/constants"
	"github.com/pixolin/wpplugin/entity"
)

func (c *Controller) SearchPlugins(ctx context.Context, term string, page int) (*entity.ResultPage, error) {
	return c.gtwy.SearchPlugins(ctx, &entity.SearchRequest{
		Term: term,
		Page: page,
	})
}

// PluginBaseURL returns the plugin page prefix for the configured
// locale. "en" and an unset locale both mean the main directory.
func (c *Controller) PluginBaseURL() string {
	locale := c.cfg.GetLocale()
	if locale == "" || locale == "en" {
		return constants.PluginBaseURL
	}
	return fmt.Sprintf(constants.PluginBaseURLFormat, locale)
}
