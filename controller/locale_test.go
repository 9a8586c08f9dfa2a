package controller_test

import (
	"context"
	"io/ioutil"
	"os"
	"testing"

	"github.com/pixolin/wpplugin/controller"
	"github.com/pixolin/wpplugin/errors"
	"github.com/stretchr/testify/require"
)

func withTempHome(t *testing.T) {
	t.Helper()
	dir, err := ioutil.TempDir("", "wpplugin")
	require.NoError(t, err)

	prevHome := os.Getenv("HOME")
	prevLocale, hadLocale := os.LookupEnv("WPPLUGIN_LOCALE")
	os.Setenv("HOME", dir)
	os.Unsetenv("WPPLUGIN_LOCALE")
	t.Cleanup(func() {
		os.Setenv("HOME", prevHome)
		if hadLocale {
			os.Setenv("WPPLUGIN_LOCALE", prevLocale)
		}
		os.RemoveAll(dir)
	})
}

func TestPluginBaseURLDefault(t *testing.T) {
	withTempHome(t)

	c := controller.New()
	require.Equal(t, "https://wordpress.org/plugins/", c.PluginBaseURL())
}

func TestPluginBaseURLFromEnv(t *testing.T) {
	withTempHome(t)
	os.Setenv("WPPLUGIN_LOCALE", "de")

	c := controller.New()
	require.Equal(t, "https://de.wordpress.org/plugins/", c.PluginBaseURL())
}

func TestSetLocaleRoundTrip(t *testing.T) {
	withTempHome(t)
	ctx := context.Background()

	c := controller.New()
	require.NoError(t, c.SetLocale(ctx, "fr"))

	// a fresh controller reads the persisted config
	c = controller.New()
	require.Equal(t, "fr", c.GetLocale(ctx))
	require.Equal(t, "https://fr.wordpress.org/plugins/", c.PluginBaseURL())
}

func TestSetLocaleRejectsBadCodes(t *testing.T) {
	withTempHome(t)
	ctx := context.Background()

	c := controller.New()
	require.Equal(t, errors.LocaleNotSupported, c.SetLocale(ctx, "deutsch"))
	require.Equal(t, errors.LocaleNotSupported, c.SetLocale(ctx, "DE"))
	require.Equal(t, errors.LocaleNotSupported, c.SetLocale(ctx, ""))
}
