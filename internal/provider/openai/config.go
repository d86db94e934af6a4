package openai

// Config contains OpenAI image client configuration.
// The API key, model and endpoint come from site settings on every call;
// only transport behaviour is configured here:
//   - Timeout: Maps to option.WithRequestTimeout() (in seconds)
//   - MaxRetries: Maps to option.WithMaxRetries()
type Config struct {
	Timeout    int `env:"OPENAI_IMAGE_TIMEOUT"     envDefault:"120"`
	MaxRetries int `env:"OPENAI_IMAGE_MAX_RETRIES" envDefault:"0"`
}
