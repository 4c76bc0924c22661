package config

import (
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/meguinhazeromiseria/scraper-mega/internal/llm"
)

// LoadGroqConfig assembles the AI classifier configuration. Precedence:
//
//  1. Viper configuration (config file or MEGA_ env vars)
//  2. The plain GROQ_API_KEY environment variable
//
// Unset tuning knobs stay zero; the classifier applies its own defaults.
func LoadGroqConfig() llm.Config {
	cfg := llm.Config{
		APIKey:      viper.GetString("groq.api_key"),
		Model:       viper.GetString("groq.model"),
		BaseURL:     viper.GetString("groq.base_url"),
		Temperature: viper.GetFloat64("groq.temperature"),
		TopP:        viper.GetFloat64("groq.top_p"),
		MaxTokens:   viper.GetInt("groq.max_tokens"),
		RateLimit:   viper.GetInt("groq.rate_limit"),
		MaxRetries:  viper.GetInt("groq.max_retries"),
		Timeout:     viper.GetDuration("groq.timeout"),
		CacheTTL:    viper.GetDuration("groq.cache_ttl"),
	}

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GROQ_API_KEY")
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = time.Second
	}

	return cfg
}
