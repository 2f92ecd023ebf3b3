package ai

import (
	"context"
	"fmt"

	appcfg "github.com/linkmoa/core/internal/config"
	"github.com/linkmoa/core/internal/models"
	"go.uber.org/zap"
)

// minAnalyzeLength is the shortest text worth sending to the model. Anything
// below this produces unreliable output and wastes a paid API call.
const minAnalyzeLength = 100

// FallbackSummary replaces the AI summary whenever analysis is skipped or
// fails.
const FallbackSummary = "본문 내용을 불러오지 못했습니다. (보안이 강한 사이트일 수 있음)"

// Service runs AI enrichment: item analysis and chat-over-document answers.
type Service struct {
	cfg    appcfg.AIConfig
	logger *zap.Logger
}

func NewService(cfg appcfg.AIConfig, logger *zap.Logger) *Service {
	return &Service{cfg: cfg, logger: logger}
}

// Enabled reports whether any AI provider is configured and enabled.
func (s *Service) Enabled() bool {
	return selectProvider(s.cfg, nil) != nil
}

// Fallback is the fixed degraded analysis result.
func Fallback() Analysis {
	return Analysis{
		Summary:  FallbackSummary,
		Category: models.CategoryOther,
		Tags:     []string{},
	}
}

// Analyze produces a summary/category/tags for the given text. It never
// fails: with no provider, empty or too-short text it skips the model call
// entirely, and any provider or parse error degrades to the same fixed
// fallback. Ingestion must always succeed even when enrichment does not.
func (s *Service) Analyze(ctx context.Context, text string) Analysis {
	provider := selectProvider(s.cfg, s.cfg.AnalyzeModel)
	if provider == nil || text == "" || len([]rune(text)) < minAnalyzeLength {
		return Fallback()
	}

	analysis, err := s.analyze(ctx, provider, text)
	if err != nil {
		s.logger.Warn("ai analysis failed, using fallback", zap.Error(err))
		return Fallback()
	}
	return analysis
}

func (s *Service) analyze(ctx context.Context, provider *appcfg.AIProvider, text string) (Analysis, error) {
	systemPrompt, prompt := buildAnalyzePrompt(text)
	raw, err := callProvider(ctx, provider, systemPrompt, prompt, true, 500)
	if err != nil {
		return Analysis{}, err
	}

	var parsed analyzeResponse
	if err := unmarshalAIJSON(raw, &parsed); err != nil {
		return Analysis{}, err
	}

	category := parsed.Category
	if !models.IsValidCategory(category) {
		category = models.CategoryOther
	}
	tags := []string(parsed.Tags)
	if tags == nil {
		tags = []string{}
	}

	return Analysis{
		Summary:  parsed.Summary,
		Category: category,
		Tags:     tags,
	}, nil
}

// Respond answers a question against the stored document text. Failures are
// surfaced as the content of the answer, not as an error: the conversation
// log shows the failure inline instead of breaking the turn.
func (s *Service) Respond(ctx context.Context, content, question string) string {
	provider := selectProvider(s.cfg, s.cfg.ChatModel)

	answer, err := callProvider(ctx, provider, "", buildChatPrompt(content, question), false, 1000)
	if err != nil {
		s.logger.Warn("ai chat failed", zap.Error(err))
		return fmt.Sprintf("오류 발생: %s", err.Error())
	}
	return answer
}
