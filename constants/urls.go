package constants

const (
	// PluginInfoAPI is the plugin directory search endpoint
	PluginInfoAPI = "https://api.wordpress.org/plugins/info/1.2/"

	// PluginBaseURL is the canonical plugin page prefix. Localized
	// directories live on a locale subdomain, see PluginBaseURLFormat.
	PluginBaseURL = "https://wordpress.org/plugins/"

	PluginBaseURLFormat = "https://%s.wordpress.org/plugins/"
)

var DocsURLMap = map[string]string{
	"plugins":  "https://wordpress.org/plugins/",
	"support":  "https://wordpress.org/support/",
	"handbook": "https://developer.wordpress.org/plugins/",
	"browse":   "https://wordpress.org/plugins/browse/popular/",
	"submit":   "https://wordpress.org/plugins/developers/add/",
}

// Locales the `locale` command offers. Any other code can still be set
// via the WPPLUGIN_LOCALE environment variable.
var Locales = []string{"en", "de", "es", "fr", "it", "ja", "nl", "pt"}
