package controller

import (
	"college_portal_backend/internal/service"
	"college_portal_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type RosterController struct {
	RosterService *service.RosterService
}

func NewRosterController(rosterService *service.RosterService) *RosterController {
	return &RosterController{RosterService: rosterService}
}

// ImportRoster godoc
// @Summary Import a roster file
// @Description Bulk-adds students from a CSV or XLSX file with name/usn/year/semester columns
// @Tags roster
// @Accept mpfd
// @Produce json
// @Security ApiKeyAuth
// @Param code path string true "Branch code"
// @Param file formData file true "Roster file (.csv or .xlsx)"
// @Success 200 {object} util.Response{data=service.ImportResult}
// @Failure 400 {object} util.Response "Unreadable or empty roster"
// @Failure 404 {object} util.Response "Unknown branch"
// @Router /api/teacher/branches/{code}/students/import [post]
func (c *RosterController) ImportRoster(ctx *gin.Context) {
	fh, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "roster file is required")
		return
	}

	file, err := fh.Open()
	if err != nil {
		util.BadRequest(ctx, "could not read uploaded file")
		return
	}
	defer file.Close()

	result, err := c.RosterService.ImportRoster(ctx.Param("code"), fh.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrBranchNotFound):
			util.NotFoundMessage(ctx, err.Error())
		case errors.Is(err, util.ErrUnsupportedFileType), errors.Is(err, util.ErrEmptyRoster):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}

// swagger:model AddStudentRequest
type AddStudentRequest struct {
	Name     string `json:"name"`
	USN      string `json:"usn" binding:"required"`
	Year     int    `json:"year"`
	Semester int    `json:"semester"`
}

// AddStudent godoc
// @Summary Add one student
// @Description Adds or updates a single roster entry; the USN must match the branch pattern
// @Tags roster
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param code path string true "Branch code"
// @Param body body AddStudentRequest true "Student details"
// @Success 201 {object} util.Response{data=model.Student}
// @Failure 400 {object} util.Response "USN does not match the branch pattern"
// @Failure 404 {object} util.Response "Unknown branch"
// @Router /api/teacher/branches/{code}/students [post]
func (c *RosterController) AddStudent(ctx *gin.Context) {
	var req AddStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	student, err := c.RosterService.AddStudent(ctx.Param("code"), req.Name, req.USN, req.Year, req.Semester)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrBranchNotFound):
			util.NotFoundMessage(ctx, err.Error())
		case errors.Is(err, util.ErrInvalidUSN):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, student)
}

// ListRoster godoc
// @Summary List the roster
// @Description Lists students of a branch in serial order, optionally for one semester
// @Tags roster
// @Produce json
// @Security ApiKeyAuth
// @Param code path string true "Branch code"
// @Param semester query int false "Semester filter (1-8)"
// @Success 200 {object} util.Response{data=[]model.Student}
// @Failure 404 {object} util.Response "Unknown branch"
// @Router /api/teacher/branches/{code}/students [get]
func (c *RosterController) ListRoster(ctx *gin.Context) {
	semester := 0
	if raw := ctx.Query("semester"); raw != "" {
		sem, ok := util.ParseSemester(raw)
		if !ok {
			util.BadRequest(ctx, util.ErrInvalidSemester.Error())
			return
		}
		semester = sem
	}

	students, err := c.RosterService.ListRoster(ctx.Param("code"), semester)
	if err != nil {
		if errors.Is(err, util.ErrBranchNotFound) {
			util.NotFoundMessage(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"students": students, "count": len(students)})
}

// DeleteStudent godoc
// @Summary Remove a student
// @Description Deletes the roster entry and every semester's marks for the USN
// @Tags roster
// @Produce json
// @Security ApiKeyAuth
// @Param code path string true "Branch code"
// @Param usn path string true "Student USN"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "Student not found in this branch"
// @Router /api/teacher/branches/{code}/students/{usn} [delete]
func (c *RosterController) DeleteStudent(ctx *gin.Context) {
	if err := c.RosterService.DeleteStudent(ctx.Param("code"), ctx.Param("usn")); err != nil {
		if errors.Is(err, util.ErrStudentNotFound) {
			util.NotFoundMessage(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": ctx.Param("usn")})
}
