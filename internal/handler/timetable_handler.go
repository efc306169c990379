package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const timetableNotFound = "Timetable not found"

type TimetableHandler struct {
	svc TimetableService
}

func NewTimetableHandler(svc TimetableService) *TimetableHandler {
	return &TimetableHandler{svc: svc}
}

// Create godoc
// @Summary      Create a timetable
// @Description  Responds 201 Created with the stored record.
// @Tags         Timetables
// @Accept       json
// @Produce      json
// @Param        body  body      TimetableRequest  true  "Timetable"
// @Success      201   {object}  TimetableResponse
// @Failure      400   {object}  DetailResponse
// @Router       /timetable/create [post]
func (h *TimetableHandler) Create(c *gin.Context) {
	var req TimetableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	timetable, err := h.svc.Create(c.Request.Context(), *req.Name)
	if err != nil {
		respondError(c, err, timetableNotFound)
		return
	}
	c.JSON(http.StatusCreated, toTimetableResponse(timetable))
}

// List godoc
// @Summary      List timetables
// @Tags         Timetables
// @Produce      json
// @Success      200  {array}  TimetableResponse
// @Router       /timetable/view [get]
func (h *TimetableHandler) List(c *gin.Context) {
	timetables, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err, timetableNotFound)
		return
	}
	c.JSON(http.StatusOK, toTimetableResponses(timetables))
}

// GetByID godoc
// @Summary      Get a timetable
// @Tags         Timetables
// @Produce      json
// @Param        id   path      int  true  "Timetable ID"
// @Success      200  {object}  TimetableResponse
// @Failure      404  {object}  DetailResponse
// @Router       /timetable/{id} [get]
func (h *TimetableHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	timetable, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, timetableNotFound)
		return
	}
	c.JSON(http.StatusOK, toTimetableResponse(timetable))
}

// Update godoc
// @Summary      Rename a timetable
// @Tags         Timetables
// @Accept       json
// @Produce      json
// @Param        id    path      int               true  "Timetable ID"
// @Param        body  body      TimetableRequest  true  "Timetable"
// @Success      200   {object}  TimetableResponse
// @Failure      400   {object}  DetailResponse
// @Failure      404   {object}  DetailResponse
// @Router       /timetable/{id} [put]
func (h *TimetableHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req TimetableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	timetable, err := h.svc.Update(c.Request.Context(), id, *req.Name)
	if err != nil {
		respondError(c, err, timetableNotFound)
		return
	}
	c.JSON(http.StatusOK, toTimetableResponse(timetable))
}

// Delete godoc
// @Summary      Delete a timetable (its tasks are kept)
// @Tags         Timetables
// @Produce      json
// @Param        id   path      int  true  "Timetable ID"
// @Success      200  {object}  DetailResponse
// @Failure      404  {object}  DetailResponse
// @Router       /timetable/{id} [delete]
func (h *TimetableHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, timetableNotFound)
		return
	}
	c.JSON(http.StatusOK, DetailResponse{Detail: "Timetable deleted"})
}
