package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	model "auction-market/internal/models"
	"auction-market/internal/repository"
	"auction-market/services/market/helpers"
	"auction-market/utils"

	"github.com/gin-gonic/gin"
)

type EventSourceInterface interface {
	Events(ctx context.Context, filter repository.EventFilter) ([]model.Event, error)
}

type EventHandler struct {
	source EventSourceInterface
}

func NewEventHandler(source EventSourceInterface) *EventHandler {
	return &EventHandler{source: source}
}

// ListEventsHandler handles GET /events?contract=&name=&after=
func (h *EventHandler) ListEventsHandler(c *gin.Context) {
	var filter repository.EventFilter
	if raw := c.Query("contract"); raw != "" {
		addr, ok := helpers.ParseAddressField(c, "contract", raw)
		if !ok {
			return
		}
		filter.Contract = addr
	}
	filter.Name = c.Query("name")
	if raw := c.Query("after"); raw != "" {
		after, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || after < 0 {
			utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid after %q", raw), "invalid after")
			return
		}
		filter.After = after
	}

	events, err := h.source.Events(c.Request.Context(), filter)
	if err != nil {
		helpers.RespondError(c, "ListEventsHandler", err, map[string]any{"name": filter.Name})
		return
	}
	if events == nil {
		events = []model.Event{}
	}
	utils.JSONResponse(c, http.StatusOK, events, "events retrieved successfully")
}
