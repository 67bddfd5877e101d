package routes

import (
	"coyne_ecology/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes       = "/quotes"
	PathQuoteRequest = "/quotes/request"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		// Public submission endpoint used by the website enquiry form.
		// Drafts live under their own segment so a GET against /request
		// falls through to the 405 handler rather than the :id lookup.
		quotes.POST("/request", quoteHandler.SubmitQuoteRequest)

		// Staff-facing draft lookups.
		quotes.GET("/drafts", quoteHandler.ListQuoteDrafts)
		quotes.GET("/drafts/:id", quoteHandler.GetQuoteDraft)
	}
}
