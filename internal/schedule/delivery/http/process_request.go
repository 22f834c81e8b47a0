package http

import (
	"github.com/gin-gonic/gin"
)

// processDayReq binds the optional ?day= query parameter.
func (h *handler) processDayReq(c *gin.Context) (dayReq, error) {
	var req dayReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errMalformedBody
	}
	return req, nil
}

// processAddEventReq binds and validates the add event request body.
func (h *handler) processAddEventReq(c *gin.Context) (addEventReq, error) {
	var req addEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errMalformedBody
	}
	return req, req.validate()
}

// processUpdateEventReq binds and validates the update event request body + URI param.
func (h *handler) processUpdateEventReq(c *gin.Context) (updateEventReq, error) {
	var req updateEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errMalformedBody
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errIDRequired
	}
	return req, req.validate()
}

// processFindSlotReq binds the slot search query parameters.
func (h *handler) processFindSlotReq(c *gin.Context) (findSlotReq, error) {
	var req findSlotReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errMalformedBody
	}
	return req, nil
}

// processBookSlotReq binds the booking request body.
func (h *handler) processBookSlotReq(c *gin.Context) (bookSlotReq, error) {
	var req bookSlotReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errMalformedBody
	}
	return req, nil
}
