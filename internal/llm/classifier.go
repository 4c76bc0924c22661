package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/meguinhazeromiseria/scraper-mega/internal/common"
	"github.com/meguinhazeromiseria/scraper-mega/internal/model"
	"github.com/meguinhazeromiseria/scraper-mega/internal/service"
	"github.com/meguinhazeromiseria/scraper-mega/internal/taxonomy"
)

// Classifier implements the engine's AI stage using the Groq API.
type Classifier struct {
	client      Client
	reg         *taxonomy.Registry
	cache       *answerCache
	logger      *slog.Logger
	rateLimiter *rateLimiter
	retryOpts   service.RetryOptions
}

// Config holds configuration for the LLM classifier.
type Config struct {
	APIKey      string
	Model       string
	BaseURL     string
	MaxRetries  int
	RetryDelay  time.Duration
	CacheTTL    time.Duration
	RateLimit   int
	Temperature float64
	TopP        float64
	MaxTokens   int
	Timeout     time.Duration
}

// NewClassifier creates a new Groq-backed classifier. A missing credential is
// a fatal configuration error here, before any lot is processed.
func NewClassifier(cfg Config, reg *taxonomy.Registry, logger *slog.Logger) (*Classifier, error) {
	client, err := newGroqClient(cfg)
	if err != nil {
		return nil, err
	}

	return newClassifierWithClient(client, cfg, reg, logger), nil
}

// newClassifierWithClient wires a classifier around an existing client.
// Tests use it to substitute a mock for the network.
func newClassifierWithClient(client Client, cfg Config, reg *taxonomy.Registry, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}

	retryOpts := service.RetryOptions{
		MaxAttempts:  cfg.MaxRetries,
		InitialDelay: cfg.RetryDelay,
		MaxDelay:     10 * time.Second,
		Multiplier:   2.0,
	}

	// One extra attempt at most before deferring to the fallback stage.
	if retryOpts.MaxAttempts == 0 {
		retryOpts.MaxAttempts = 2
	}
	if retryOpts.InitialDelay == 0 {
		retryOpts.InitialDelay = time.Second
	}

	return &Classifier{
		client:      client,
		reg:         reg,
		cache:       newAnswerCache(cfg.CacheTTL),
		logger:      logger,
		retryOpts:   retryOpts,
		rateLimiter: newRateLimiter(cfg.RateLimit),
	}
}

// ClassifyLot asks the service for the lot's category and validates the
// answer against the taxonomy. It returns the canonical category id plus the
// verbatim raw answer for audit. Any failure here (transport, timeout,
// unrecognized answer) surfaces as an error the engine treats as a stage
// decline, never as a batch stopper.
func (c *Classifier) ClassifyLot(ctx context.Context, lot *model.Lot) (model.CategoryID, string, error) {
	cacheKey := lot.NormalizedTitle
	if cacheKey == "" {
		cacheKey = lot.Title
	}

	if category, rawAnswer, found := c.cache.get(cacheKey); found {
		c.logger.Debug("cache hit for lot",
			"lot_id", lot.ID,
			"category", category)
		return category, rawAnswer, nil
	}

	if err := c.rateLimiter.wait(ctx); err != nil {
		return "", "", fmt.Errorf("rate limit error: %w", err)
	}

	prompt := buildPrompt(c.reg, lot)

	var (
		category  model.CategoryID
		rawAnswer string
	)

	err := common.WithRetry(ctx, func() error {
		response, err := c.client.Classify(ctx, prompt)
		if err != nil {
			c.logger.Warn("classification attempt failed",
				"error", err,
				"lot_id", lot.ID)
			return &common.RetryableError{Err: err, Retryable: true}
		}

		rawAnswer = response.Answer

		normalized := normalizeAnswer(rawAnswer)
		id, ok := c.reg.Canonicalize(normalized)
		if !ok {
			// Not a taxonomy member and not an alias. Retrying an
			// invalid vocabulary answer rarely helps; decline instead.
			return &common.RetryableError{
				Err:       fmt.Errorf("%w: %q", common.ErrInvalidAnswer, normalized),
				Retryable: false,
			}
		}

		category = id
		return nil
	}, c.retryOpts)

	if err != nil {
		return "", rawAnswer, err
	}

	c.cache.set(cacheKey, category, rawAnswer)

	c.logger.Info("lot classified",
		"lot_id", lot.ID,
		"category", category,
		"raw_answer", rawAnswer)

	return category, rawAnswer, nil
}

// Close stops background goroutines and cleans up resources.
func (c *Classifier) Close() error {
	if c.cache != nil {
		c.cache.Close()
	}
	if c.rateLimiter != nil {
		c.rateLimiter.Close()
	}
	return nil
}
