package entity

type RootConfig struct {
	Locale string `json:"locale,omitempty"`
}
