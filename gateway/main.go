package gateway

import (
	"net/http"
	"os"
	"time"

	"github.com/pixolin/wpplugin/configs"
	"github.com/pixolin/wpplugin/constants"
)

type Gateway struct {
	httpClient *http.Client
}

func GetHost() string {
	if baseURL, exists := os.LookupEnv("WPPLUGIN_API_URL"); exists {
		return baseURL
	}
	if configs.IsDevMode() {
		return "http://localhost:8082/plugins/info/1.2/"
	}
	return constants.PluginInfoAPI
}

func New() *Gateway {
	httpClient := &http.Client{
		Timeout: time.Second * 30,
	}
	return &Gateway{
		httpClient: httpClient,
	}
}
