package llm

import (
	"fmt"
	"strings"
)

const (
	ProviderOpenAI = "openai"
	ProviderYandex = "yandex"
)

// NewClient builds the configured completion client. A missing credential is
// a construction-time failure; the pipeline never sees a half-configured
// client.
func NewClient(provider, apiKey, baseURL, model, referrer, title, yandexOAuth, yandexFolder string) (Client, error) {
	switch strings.ToLower(provider) {
	case ProviderOpenAI:
		if apiKey == "" {
			return nil, fmt.Errorf("openai provider requires an api key")
		}
		return NewOpenAI(apiKey, baseURL, model, referrer, title), nil
	case ProviderYandex:
		if yandexOAuth == "" || yandexFolder == "" {
			return nil, fmt.Errorf("yandex provider requires oauth token and folder id")
		}
		return NewYandex(yandexOAuth, yandexFolder)
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", provider)
	}
}
