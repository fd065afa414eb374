package relevance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/artem13815/ragguard/pkg/llm"
	"github.com/artem13815/ragguard/pkg/llmjson"
	"github.com/artem13815/ragguard/pkg/logger"
	"github.com/artem13815/ragguard/pkg/nlp"
	"github.com/artem13815/ragguard/pkg/prompt"
)

const (
	temperature = 0.1
	topP        = 0.5
)

// UseCase judges a retrieval result against the original question after
// retrieval. Like the pre-filter it never fails; doubt resolves to "relevant".
type UseCase interface {
	Check(ctx context.Context, userQuestion, ragAnswer string) Verdict
}

type service struct {
	prompts   prompt.Resolver
	llm       llm.ChatModel
	modelName string
	timeout   time.Duration
	log       *logger.Logger
}

func NewService(prompts prompt.Resolver, model llm.ChatModel, modelName string, timeout time.Duration, log *logger.Logger) UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &service{
		prompts:   prompts,
		llm:       model,
		modelName: modelName,
		timeout:   timeout,
		log:       log.With("stage", "ai_relevance"),
	}
}

// UserPrompt renders the labeled question/answer pair sent to the model.
func UserPrompt(userQuestion, ragAnswer string) string {
	return strings.TrimSpace(fmt.Sprintf("User: %s\nRAG Result: %s", userQuestion, ragAnswer))
}

func (s *service) Check(ctx context.Context, userQuestion, ragAnswer string) (v Verdict) {
	log := s.log.Ctx(ctx)
	defer func() {
		if r := recover(); r != nil {
			log.Error("ai relevance panicked", "panic", r)
			v = permissive(ReasonCheckFailed)
		}
	}()

	system := DefaultPrompt
	if s.prompts != nil {
		system = s.prompts.ResolveOr(ctx, prompt.KeyRelevance, DefaultPrompt)
	}
	if s.llm == nil {
		log.Error("ai relevance has no model configured")
		return permissive(ReasonCheckFailed)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	req := llm.NewRequest(s.modelName, system, UserPrompt(userQuestion, ragAnswer), temperature, topP)
	raw, err := s.llm.Complete(ctx, req)
	if err != nil {
		log.Error("ai relevance call failed", "error", err)
		return permissive(ReasonCheckFailed)
	}

	obj, ok := llmjson.ExtractObject(strings.TrimSpace(raw))
	if !ok {
		log.Warn("ai relevance reply has no structured output", "reply", raw)
		return permissive(ReasonNoStructuredOutput)
	}
	v = fromObject(obj)
	log.Info("ai relevance verdict", "relevant", v.Relevant, "reason", v.Reason,
		"reformulated_question", v.ReformulatedQuestion)
	return v
}

func fromObject(obj map[string]any) Verdict {
	relevant, ok := llmjson.Bool(obj, "relevant")
	if !ok {
		relevant = true
	}
	v := Verdict{
		Relevant: relevant,
		Reason:   llmjson.String(obj, "reason"),
	}
	if !relevant {
		v.ReformulatedQuestion = CapReformulation(llmjson.String(obj, "reformulated_question"))
	}
	return v
}

// CapReformulation enforces MaxReformulationWords regardless of what the model returned.
func CapReformulation(q string) string {
	out, _ := nlp.TruncateWords(q, MaxReformulationWords, EllipsisMarker)
	return out
}
