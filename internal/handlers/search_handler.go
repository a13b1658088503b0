package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/studiofade/barber-manager/internal/httperr"
	"github.com/studiofade/barber-manager/internal/refresh"
	"github.com/studiofade/barber-manager/internal/search"
)

type SearchHandler struct {
	refresher *refresh.Refresher
}

func NewSearchHandler(refresher *refresh.Refresher) *SearchHandler {
	return &SearchHandler{refresher: refresher}
}

// Search faz a busca global (?q=) sobre o snapshot em memória.
func (h *SearchHandler) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		httperr.BadRequest(c, "missing_query", "Informe o parâmetro q.")
		return
	}

	snap := h.refresher.Snapshot()
	results := search.Query(q, snap.Clients, snap.Appointments)

	if results == nil {
		results = []search.Result{}
	}

	c.JSON(http.StatusOK, gin.H{
		"query":   q,
		"results": results,
		"total":   len(results),
	})
}
