package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"schedule-assistant/internal/schedule"
	"schedule-assistant/pkg/response"
)

// ListEvents godoc
// @Summary     List events of a day
// @Description Returns the events of one day ordered by start time.
// @Tags        Schedule
// @Produce     json
// @Param       day query string false "today, tomorrow, in 3 days, next friday or 2006-01-02 (default: today)"
// @Success     200 {object} listEventsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/events [GET]
func (h *handler) ListEvents(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDayReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListEvents(ctx, schedule.ListEventsInput{Day: req.Day})
	if err != nil {
		h.l.Errorf(ctx, "uc.ListEvents: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListEventsResp(output))
}

// AddEvent godoc
// @Summary     Add an event
// @Description Adds a fixed event to the schedule. Category defaults to work.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body addEventReq true "Event data"
// @Success     200 {object} eventDetailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/events [POST]
func (h *handler) AddEvent(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddEventReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.AddEvent(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AddEvent: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newEventDetailResp(output))
}

// UpdateEvent godoc
// @Summary     Update an event
// @Description Partially updates an event. Omitted fields keep their value.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       id   path string         true "Event ID"
// @Param       body body updateEventReq true "Fields to update"
// @Success     200 {object} eventDetailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/events/{id} [PATCH]
func (h *handler) UpdateEvent(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateEventReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateEvent(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateEvent: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newEventDetailResp(output))
}

// RemoveEvent godoc
// @Summary     Remove an event
// @Tags        Schedule
// @Produce     json
// @Param       id path string true "Event ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/events/{id} [DELETE]
func (h *handler) RemoveEvent(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errIDRequired)
		return
	}

	if err := h.uc.RemoveEvent(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.RemoveEvent: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// FindSlot godoc
// @Summary     Find a free slot
// @Description Proposes a free interval of the requested length without booking it.
// @Tags        Slots
// @Produce     json
// @Param       duration query int    true  "Duration in minutes"
// @Param       category query string false "Category hint (gym, work, meeting, workout, call, ...)"
// @Success     200 {object} slotResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "No availability"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/slots [GET]
func (h *handler) FindSlot(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFindSlotReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.FindSlot(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.FindSlot: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSlotResp(output))
}

// BookSlot godoc
// @Summary     Book a free slot
// @Description Finds a free slot and stores it as an event. Pushed to Google Calendar when configured.
// @Tags        Slots
// @Accept      json
// @Produce     json
// @Param       body body bookSlotReq true "Booking data"
// @Success     200 {object} bookSlotResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "No availability"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/slots/book [POST]
func (h *handler) BookSlot(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processBookSlotReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.BookSlot(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.BookSlot: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newBookSlotResp(output))
}

// SyncCalendar godoc
// @Summary     Sync Google Calendar
// @Description Replaces a day's Google Calendar events in the store with the calendar's current state.
// @Tags        Schedule
// @Produce     json
// @Param       day query string false "Day to sync (default: today)"
// @Success     200 {object} syncResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Google Calendar not configured"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/sync [POST]
func (h *handler) SyncCalendar(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDayReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SyncCalendar(ctx, schedule.SyncCalendarInput{Day: req.Day})
	if err != nil {
		h.l.Errorf(ctx, "uc.SyncCalendar: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSyncResp(output))
}

// ExportICS godoc
// @Summary     Export a day as iCalendar
// @Tags        Schedule
// @Produce     text/calendar
// @Param       day query string false "Day to export (default: today)"
// @Success     200 {file} file "text/calendar document"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/events.ics [GET]
func (h *handler) ExportICS(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDayReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ExportICS(ctx, schedule.ExportICSInput{Day: req.Day})
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportICS: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Filename))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", output.Content)
}
