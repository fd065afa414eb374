package filter

import (
	"context"
	"strings"
	"time"

	"github.com/artem13815/ragguard/pkg/hardfilter"
	"github.com/artem13815/ragguard/pkg/llm"
	"github.com/artem13815/ragguard/pkg/llmjson"
	"github.com/artem13815/ragguard/pkg/logger"
	"github.com/artem13815/ragguard/pkg/prompt"
)

const (
	temperature = 0.0
	topP        = 0.6
)

// UseCase gatekeeps a raw question before retrieval. Check never fails:
// whenever the model cannot give a trustworthy answer the question is let through.
type UseCase interface {
	Check(ctx context.Context, question string) Verdict
}

type service struct {
	hard      hardfilter.Classifier
	prompts   prompt.Resolver
	llm       llm.ChatModel
	modelName string
	timeout   time.Duration
	log       *logger.Logger
	hardLog   *logger.Logger
}

func NewService(hard hardfilter.Classifier, prompts prompt.Resolver, model llm.ChatModel, modelName string, timeout time.Duration, log *logger.Logger) UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &service{
		hard:      hard,
		prompts:   prompts,
		llm:       model,
		modelName: modelName,
		timeout:   timeout,
		log:       log.With("stage", "ai_filter"),
		hardLog:   log.With("stage", "hard_filter"),
	}
}

func (s *service) Check(ctx context.Context, question string) (v Verdict) {
	log := s.log.Ctx(ctx)
	defer func() {
		if r := recover(); r != nil {
			log.Error("ai filter panicked", "panic", r)
			v = permissive(question, ReasonFallbackError)
		}
	}()

	if s.hard != nil {
		if hard := s.hard.Evaluate(question); !hard.Valid {
			s.hardLog.Ctx(ctx).Info("hard filter rejected question", "reason", hard.Reason)
			return Verdict{Valid: false, Reason: hard.Reason, CleanQuestion: question}
		}
	}

	system := DefaultPrompt
	if s.prompts != nil {
		system = s.prompts.ResolveOr(ctx, prompt.KeyPreFilter, DefaultPrompt)
	}
	if s.llm == nil {
		log.Error("ai filter has no model configured")
		return permissive(question, ReasonFallbackError)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	raw, err := s.llm.Complete(ctx, llm.NewRequest(s.modelName, system, question, temperature, topP))
	if err != nil {
		log.Error("ai filter call failed", "error", err)
		return permissive(question, ReasonFallbackError)
	}

	obj, ok := llmjson.ExtractObject(strings.TrimSpace(raw))
	if !ok {
		log.Warn("ai filter reply has no structured output", "reply", raw)
		return permissive(question, ReasonNoStructuredOutput)
	}
	v = fromObject(obj, question)
	log.Info("ai filter verdict", "valid", v.Valid, "reason", v.Reason)
	return v
}

// fromObject maps the decoded reply onto a Verdict. A missing or unreadable
// "valid" field lets the question through.
func fromObject(obj map[string]any, question string) Verdict {
	valid, ok := llmjson.Bool(obj, "valid")
	if !ok {
		valid = true
	}
	clean := strings.TrimSpace(llmjson.String(obj, "clean_question"))
	if clean == "" {
		clean = question
	}
	return Verdict{
		Valid:         valid,
		Reason:        llmjson.String(obj, "reason"),
		CleanQuestion: clean,
	}
}
