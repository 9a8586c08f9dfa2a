package errors

import (
	"fmt"

	"github.com/pixolin/wpplugin/ui"
)

type WPPluginError error

var (
	SearchFailed           WPPluginError = fmt.Errorf("%s\nCheck your connection and try again.", ui.RedText("There was a problem reaching the plugin directory."))
	MalformedResponse      WPPluginError = fmt.Errorf("%s", ui.RedText("The plugin directory sent a response we could not read."))
	ClipboardNotAvailable  WPPluginError = fmt.Errorf("%s", ui.YellowText("No clipboard available on this system."))
	SearchTermNotSpecified WPPluginError = fmt.Errorf("%s\nRun %s", ui.RedText("Specify a plugin to search for."), ui.Bold("wpplugin <search term>"))
	RootConfigNotFound     WPPluginError = fmt.Errorf("%s", ui.RedText("No wpplugin config found."))
	LocaleNotSupported     WPPluginError = fmt.Errorf("%s", ui.RedText("Locale codes are two lowercase letters, e.g. de"))
)
