package handlers

import (
	"errors"
	"net/http"

	request "coyne_ecology/internal/adapter/http/dto/request"
	response "coyne_ecology/internal/adapter/http/dto/response"
	"coyne_ecology/internal/usecase"
	"coyne_ecology/pkg"

	"github.com/gin-gonic/gin"
)

const invalidQuotePayloadMessage = "Invalid quote request payload."

// invalidPayloadResponse is the 400 body for rejected submissions. Issues
// carry one entry per failed field so the public form can highlight inputs.
type invalidPayloadResponse struct {
	Message string               `json:"message"`
	Issues  []request.FieldIssue `json:"issues"`
}

// QuoteHandler handles HTTP requests for the public quote request boundary
// and the internal draft lookup endpoints.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// SubmitQuoteRequest accepts a public quote enquiry, runs the drafting
// pipeline and reports only the coarse outcome back to the requester.
//
//	@Summary		Submit a quote request
//	@Description	Validates the enquiry, generates an internal quote draft and dispatches it for team review.
//	@Tags			quotes
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.QuoteSubmissionRequest	true	"Quote enquiry"
//	@Success		202		{object}	response.QuoteSubmissionResponse
//	@Failure		400		{object}	map[string]interface{}
//	@Failure		500		{object}	pkg.HTTPError
//	@Router			/quotes/request [post]
func (h *QuoteHandler) SubmitQuoteRequest(c *gin.Context) {
	// Responses describe a specific submission and must never be cached by
	// intermediaries.
	c.Header("Cache-Control", "no-store")

	var payload request.QuoteSubmissionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, invalidPayloadResponse{
			Message: invalidQuotePayloadMessage,
			Issues:  []request.FieldIssue{},
		})
		return
	}

	domainReq, issues := payload.Validate()
	if len(issues) > 0 {
		c.JSON(http.StatusBadRequest, invalidPayloadResponse{
			Message: invalidQuotePayloadMessage,
			Issues:  issues,
		})
		return
	}

	draft, result, err := h.usecase.SubmitQuoteRequest(c.Request.Context(), domainReq)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusAccepted, response.FromSubmission(draft, result))
}

// ListQuoteDrafts returns every stored draft, newest first.
//
//	@Summary		List quote drafts
//	@Description	Returns summaries of all quote drafts held in the store, newest first.
//	@Tags			quotes
//	@Produce		json
//	@Success		200	{array}	response.QuoteDraftSummaryResponse
//	@Router			/quotes/drafts [get]
func (h *QuoteHandler) ListQuoteDrafts(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	drafts, err := h.usecase.ListDrafts(c.Request.Context())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteDrafts(drafts))
}

// GetQuoteDraft returns one draft by its identifier.
//
//	@Summary		Get a quote draft
//	@Description	Returns the full quote draft, including pricing and the composed letter.
//	@Tags			quotes
//	@Produce		json
//	@Param			id	path		string	true	"Draft identifier"
//	@Success		200	{object}	response.QuoteDraftResponse
//	@Failure		404	{object}	pkg.HTTPError
//	@Router			/quotes/drafts/{id} [get]
func (h *QuoteHandler) GetQuoteDraft(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	draft, err := h.usecase.GetDraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteDraft(draft))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDraftID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteDraftNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_DRAFT_NOT_FOUND", "Quote draft not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
