package controller

import (
	"context"
	"fmt"

	"github.com/pixolin/wpplugin/errors"
	"github.com/pixolin/wpplugin/ui"
)

func (c *Controller) GetLocale(ctx context.Context) string {
	return c.cfg.GetLocale()
}

func (c *Controller) SetLocale(ctx context.Context, locale string) error {
	if !isLocaleCode(locale) {
		return errors.LocaleNotSupported
	}

	err := c.cfg.SetLocale(locale)
	if err != nil {
		return err
	}
	fmt.Printf("%s Locale: %s\n", ui.GreenText("✔"), ui.BlueText(locale))
	return nil
}

func isLocaleCode(locale string) bool {
	if len(locale) != 2 {
		return false
	}
	for _, r := range locale {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
