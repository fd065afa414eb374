package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/artem13815/ragguard/api/http/presenter"
	"github.com/artem13815/ragguard/pkg/prompt"
)

// PromptHandler lets operators inspect and edit the prompt overrides.
type PromptHandler struct {
	repo     prompt.Repository
	defaults map[string]string
}

// NewPromptHandler takes the built-in prompt per known key so GET can show the effective value.
func NewPromptHandler(repo prompt.Repository, defaults map[string]string) *PromptHandler {
	return &PromptHandler{repo: repo, defaults: defaults}
}

// PromptItem is the effective prompt for a key.
type PromptItem struct {
	Name     string `json:"name"`
	Value    string `json:"value"`
	Override bool   `json:"override"`
}

type putPromptRequest struct {
	Value string `json:"value"`
}

func (h *PromptHandler) name(c *fiber.Ctx) (string, bool) {
	// Params point into fasthttp's reused buffer; the name outlives the request as a store key.
	name := utils.CopyString(c.Params("name"))
	return name, prompt.Known(name)
}

// Get returns the override if present, else the built-in default.
// @Summary Get effective prompt
// @Tags    prompts
// @Produce json
// @Param   name path string true "prompt_pre_filter_rag | prompt_relevance_rag"
// @Security BearerAuth
// @Success 200 {object} PromptItem
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /prompts/{name} [get]
func (h *PromptHandler) Get(c *fiber.Ctx) error {
	name, ok := h.name(c)
	if !ok {
		return presenter.Error(c, http.StatusNotFound, "unknown prompt")
	}
	v, err := h.repo.Get(c.UserContext(), name)
	switch {
	case err == nil && strings.TrimSpace(v) != "":
		return presenter.JSON(c, http.StatusOK, PromptItem{Name: name, Value: v, Override: true})
	case err == nil, errors.Is(err, prompt.ErrNotFound):
		return presenter.JSON(c, http.StatusOK, PromptItem{Name: name, Value: strings.TrimSpace(h.defaults[name])})
	default:
		return presenter.Error(c, http.StatusInternalServerError, "failed to read prompt")
	}
}

// Put stores an override.
// @Summary Set prompt override
// @Tags    prompts
// @Accept  json
// @Produce json
// @Param   name path string true "prompt_pre_filter_rag | prompt_relevance_rag"
// @Param   input body putPromptRequest true "prompt text"
// @Security BearerAuth
// @Success 200 {object} PromptItem
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /prompts/{name} [put]
func (h *PromptHandler) Put(c *fiber.Ctx) error {
	name, ok := h.name(c)
	if !ok {
		return presenter.Error(c, http.StatusNotFound, "unknown prompt")
	}
	var req putPromptRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Value) == "" {
		return presenter.Error(c, http.StatusBadRequest, "value is required")
	}
	if err := h.repo.Set(c.UserContext(), name, req.Value); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to save prompt")
	}
	return presenter.JSON(c, http.StatusOK, PromptItem{Name: name, Value: req.Value, Override: true})
}

// Delete removes an override so the built-in default applies again.
// @Summary Delete prompt override
// @Tags    prompts
// @Param   name path string true "prompt_pre_filter_rag | prompt_relevance_rag"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /prompts/{name} [delete]
func (h *PromptHandler) Delete(c *fiber.Ctx) error {
	name, ok := h.name(c)
	if !ok {
		return presenter.Error(c, http.StatusNotFound, "unknown prompt")
	}
	if err := h.repo.Delete(c.UserContext(), name); err != nil {
		if errors.Is(err, prompt.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "no override set")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to delete prompt")
	}
	return c.SendStatus(http.StatusNoContent)
}
