package controller

import (
	"college_portal_backend/internal/service"
	"college_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MarksController struct {
	MarksService *service.MarksService
}

func NewMarksController(marksService *service.MarksService) *MarksController {
	return &MarksController{MarksService: marksService}
}

// Grid godoc
// @Summary Marks entry grid
// @Description Roster-by-subjects matrix with stored raw values, blanks where nothing was entered
// @Tags marks
// @Produce json
// @Security ApiKeyAuth
// @Param code path string true "Branch code"
// @Param sem path int true "Semester (1-8)"
// @Success 200 {object} util.Response{data=service.MarksGrid}
// @Failure 400 {object} util.Response "Semester out of range"
// @Router /api/teacher/branches/{code}/semesters/{sem}/marks [get]
func (c *MarksController) Grid(ctx *gin.Context) {
	semester, ok := util.ParseSemester(ctx.Param("sem"))
	if !ok {
		util.BadRequest(ctx, util.ErrInvalidSemester.Error())
		return
	}

	grid, err := c.MarksService.Grid(ctx.Param("code"), semester)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, grid)
}

// swagger:model SaveMarksRequest
type SaveMarksRequest struct {
	Entries []service.StudentMarksEntry `json:"entries" binding:"required"`
}

// Save godoc
// @Summary Save marks for a semester
// @Description Replaces each listed student's marks record; rows for students outside the branch are skipped
// @Tags marks
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param code path string true "Branch code"
// @Param sem path int true "Semester (1-8)"
// @Param body body SaveMarksRequest true "Marks per student"
// @Success 200 {object} util.Response{data=service.SaveResult}
// @Failure 400 {object} util.Response "Semester out of range or bad body"
// @Router /api/teacher/branches/{code}/semesters/{sem}/marks [post]
func (c *MarksController) Save(ctx *gin.Context) {
	semester, ok := util.ParseSemester(ctx.Param("sem"))
	if !ok {
		util.BadRequest(ctx, util.ErrInvalidSemester.Error())
		return
	}

	var req SaveMarksRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.MarksService.SaveAll(ctx.Param("code"), semester, req.Entries)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// Reset godoc
// @Summary Reset one student's marks
// @Description Deletes the stored marks record for the USN in the given semester
// @Tags marks
// @Produce json
// @Security ApiKeyAuth
// @Param code path string true "Branch code"
// @Param sem path int true "Semester (1-8)"
// @Param usn path string true "Student USN"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "Semester out of range"
// @Router /api/teacher/branches/{code}/semesters/{sem}/marks/{usn} [delete]
func (c *MarksController) Reset(ctx *gin.Context) {
	semester, ok := util.ParseSemester(ctx.Param("sem"))
	if !ok {
		util.BadRequest(ctx, util.ErrInvalidSemester.Error())
		return
	}

	if err := c.MarksService.Reset(semester, ctx.Param("usn")); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"reset": ctx.Param("usn"), "semester": semester})
}
