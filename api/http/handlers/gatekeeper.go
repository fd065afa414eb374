package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/ragguard/api/http/presenter"
	"github.com/artem13815/ragguard/pkg/filter"
	"github.com/artem13815/ragguard/pkg/relevance"
)

// GatekeeperHandler exposes the pre-retrieval filter and the post-retrieval
// relevance check to the surrounding pipeline.
type GatekeeperHandler struct {
	filter    filter.UseCase
	relevance relevance.UseCase
}

func NewGatekeeperHandler(f filter.UseCase, r relevance.UseCase) *GatekeeperHandler {
	return &GatekeeperHandler{filter: f, relevance: r}
}

type filterRequest struct {
	Question string `json:"question"`
}

// Filter decides whether a question is in scope before retrieval.
// @Summary Pre-retrieval question filter
// @Tags    gatekeeper
// @Accept  json
// @Produce json
// @Param   input body filterRequest true "raw user question"
// @Success 200 {object} filter.Verdict
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /filter [post]
func (h *GatekeeperHandler) Filter(c *fiber.Ctx) error {
	var req filterRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	return presenter.JSON(c, http.StatusOK, h.filter.Check(c.UserContext(), req.Question))
}

type relevanceRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Relevance judges a retrieval result against the user's question.
// @Summary Post-retrieval relevance check
// @Tags    gatekeeper
// @Accept  json
// @Produce json
// @Param   input body relevanceRequest true "question and retrieved answer"
// @Success 200 {object} relevance.Verdict
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /relevance [post]
func (h *GatekeeperHandler) Relevance(c *fiber.Ctx) error {
	var req relevanceRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Question) == "" {
		return presenter.Error(c, http.StatusBadRequest, "question is required")
	}
	return presenter.JSON(c, http.StatusOK, h.relevance.Check(c.UserContext(), req.Question, req.Answer))
}
