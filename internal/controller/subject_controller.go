package controller

import (
	"college_portal_backend/internal/service"
	"college_portal_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type SubjectController struct {
	SubjectService *service.SubjectService
}

func NewSubjectController(subjectService *service.SubjectService) *SubjectController {
	return &SubjectController{SubjectService: subjectService}
}

// GetSubjects godoc
// @Summary Configured subjects
// @Description Subject list for a branch semester, falling back to defaults when none is saved
// @Tags subjects
// @Produce json
// @Security ApiKeyAuth
// @Param code path string true "Branch code"
// @Param sem path int true "Semester (1-8)"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response "Semester out of range"
// @Router /api/teacher/branches/{code}/semesters/{sem}/subjects [get]
func (c *SubjectController) GetSubjects(ctx *gin.Context) {
	semester, ok := util.ParseSemester(ctx.Param("sem"))
	if !ok {
		util.BadRequest(ctx, util.ErrInvalidSemester.Error())
		return
	}

	subjects, err := c.SubjectService.Subjects(ctx.Param("code"), semester)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"subjects": subjects})
}

// swagger:model UpdateSubjectsRequest
type UpdateSubjectsRequest struct {
	Subjects []string `json:"subjects" binding:"required"`
}

// UpdateSubjects godoc
// @Summary Replace the subject list
// @Description Saves the subject list for a branch semester; marks grids and note matrices follow it
// @Tags subjects
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param code path string true "Branch code"
// @Param sem path int true "Semester (1-8)"
// @Param body body UpdateSubjectsRequest true "Subject names in display order"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response "Empty subject list or semester out of range"
// @Router /api/teacher/branches/{code}/semesters/{sem}/subjects [put]
func (c *SubjectController) UpdateSubjects(ctx *gin.Context) {
	semester, ok := util.ParseSemester(ctx.Param("sem"))
	if !ok {
		util.BadRequest(ctx, util.ErrInvalidSemester.Error())
		return
	}

	var req UpdateSubjectsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	subjects, err := c.SubjectService.UpdateSubjects(ctx.Param("code"), semester, req.Subjects)
	if err != nil {
		if errors.Is(err, util.ErrNoSubjects) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"subjects": subjects})
}
