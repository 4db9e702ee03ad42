package handler

import (
	"net/http"

	"event-org-console/internal/cache"
	"event-org-console/internal/model"
	"event-org-console/internal/service"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	service service.EventService
}

func NewEventHandler(service service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) RegisterRoutes(r *gin.Engine, store cache.SessionStore) {
	router := r.Group("/api/v1/events/:eventId", RequireSession(store))
	{
		router.GET("", h.GetOverview)
		router.GET("ticket-types", h.GetTicketTypes)
		router.GET("schedule", h.GetSchedule)
		router.POST("schedule", h.CreateActivity)
		router.PUT("schedule/:activityId", h.UpdateActivity)
		router.DELETE("schedule/:activityId", h.DeleteActivity)
		router.GET("speakers", h.GetSpeakers)
		router.POST("speakers", h.CreateSpeaker)
		router.PUT("speakers/:speakerId", h.UpdateSpeaker)
		router.DELETE("speakers/:speakerId", h.DeleteSpeaker)
	}
}

// TicketTypeQuery onSale=true 只回傳仍在販售的票種
type TicketTypeQuery struct {
	OnSale bool `form:"onSale"`
}

func (h *EventHandler) GetOverview(c *gin.Context) {
	overview, err := h.service.GetOverview(c, tokenFrom(c), c.Param("eventId"))
	if err != nil {
		handleError(c, err, "GetOverview")
		return
	}
	handleSuccess(c, overview, http.StatusOK)
}

func (h *EventHandler) GetTicketTypes(c *gin.Context) {
	var query TicketTypeQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}
	tickets, err := h.service.GetTicketTypes(c, tokenFrom(c), c.Param("eventId"), query.OnSale)
	if err != nil {
		handleError(c, err, "GetTicketTypes")
		return
	}
	handleSuccess(c, tickets, http.StatusOK)
}

func (h *EventHandler) GetSchedule(c *gin.Context) {
	schedule, err := h.service.GetSchedule(c, tokenFrom(c), c.Param("eventId"))
	if err != nil {
		handleError(c, err, "GetSchedule")
		return
	}
	handleSuccess(c, schedule, http.StatusOK)
}

func (h *EventHandler) CreateActivity(c *gin.Context) {
	var req model.Activity
	if err := BindJson(c, &req); err != nil {
		return
	}
	if !req.EndTime.After(req.StartTime) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "endTime must be after startTime"})
		return
	}
	schedule, err := h.service.CreateActivity(c, tokenFrom(c), c.Param("eventId"), req)
	if err != nil {
		handleError(c, err, "CreateActivity")
		return
	}
	handleSuccess(c, schedule, http.StatusCreated)
}

func (h *EventHandler) UpdateActivity(c *gin.Context) {
	var req model.Activity
	if err := BindJson(c, &req); err != nil {
		return
	}
	if !req.EndTime.After(req.StartTime) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "endTime must be after startTime"})
		return
	}
	activityID := c.Param("activityId")
	req.ID = activityID
	schedule, err := h.service.UpdateActivity(c, tokenFrom(c), c.Param("eventId"), activityID, req)
	if err != nil {
		handleError(c, err, "UpdateActivity")
		return
	}
	handleSuccess(c, schedule, http.StatusOK)
}

func (h *EventHandler) DeleteActivity(c *gin.Context) {
	schedule, err := h.service.DeleteActivity(c, tokenFrom(c), c.Param("eventId"), c.Param("activityId"))
	if err != nil {
		handleError(c, err, "DeleteActivity")
		return
	}
	handleSuccess(c, schedule, http.StatusOK)
}

func (h *EventHandler) GetSpeakers(c *gin.Context) {
	speakers, err := h.service.GetSpeakers(c, tokenFrom(c), c.Param("eventId"))
	if err != nil {
		handleError(c, err, "GetSpeakers")
		return
	}
	handleSuccess(c, speakers, http.StatusOK)
}

func (h *EventHandler) CreateSpeaker(c *gin.Context) {
	var req model.Speaker
	if err := BindJson(c, &req); err != nil {
		return
	}
	speakers, err := h.service.CreateSpeaker(c, tokenFrom(c), c.Param("eventId"), req)
	if err != nil {
		handleError(c, err, "CreateSpeaker")
		return
	}
	handleSuccess(c, speakers, http.StatusCreated)
}

func (h *EventHandler) UpdateSpeaker(c *gin.Context) {
	var req model.Speaker
	if err := BindJson(c, &req); err != nil {
		return
	}
	speakerID := c.Param("speakerId")
	req.ID = speakerID
	speakers, err := h.service.UpdateSpeaker(c, tokenFrom(c), c.Param("eventId"), speakerID, req)
	if err != nil {
		handleError(c, err, "UpdateSpeaker")
		return
	}
	handleSuccess(c, speakers, http.StatusOK)
}

func (h *EventHandler) DeleteSpeaker(c *gin.Context) {
	speakers, err := h.service.DeleteSpeaker(c, tokenFrom(c), c.Param("eventId"), c.Param("speakerId"))
	if err != nil {
		handleError(c, err, "DeleteSpeaker")
		return
	}
	handleSuccess(c, speakers, http.StatusOK)
}
