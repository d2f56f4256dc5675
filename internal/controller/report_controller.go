package controller

import (
	"college_portal_backend/internal/service"
	"college_portal_backend/internal/util"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	ReportService *service.ReportService
}

func NewReportController(reportService *service.ReportService) *ReportController {
	return &ReportController{ReportService: reportService}
}

// StudentMarks godoc
// @Summary Current semester marks
// @Description Normalized and aggregated marks table for the signed-in student
// @Tags reports
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.StudentMarksView}
// @Failure 404 {object} util.Response "No marks recorded for this semester"
// @Router /api/student/marks [get]
func (c *ReportController) StudentMarks(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	view, err := c.ReportService.MarksView(user.Username)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	util.Success(ctx, view)
}

// StudentMarksheet godoc
// @Summary Download the marksheet PDF
// @Description Renders the signed-in student's internal assessment marksheet as a PDF attachment
// @Tags reports
// @Produce application/pdf
// @Security ApiKeyAuth
// @Success 200 {file} binary "PDF document"
// @Failure 404 {object} util.Response "No marks recorded for this semester"
// @Failure 500 {object} util.Response "Rendering failed"
// @Router /api/student/marksheet [get]
func (c *ReportController) StudentMarksheet(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	sheet, err := c.ReportService.RenderMarksheet(user.Username)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", sheet.Filename))
	ctx.Data(http.StatusOK, util.MimePDF, sheet.Content)
}

func (c *ReportController) renderError(ctx *gin.Context, err error) {
	if errors.Is(err, util.ErrStudentNotFound) || errors.Is(err, util.ErrMarksNotFound) {
		util.NotFoundMessage(ctx, err.Error())
		return
	}
	util.LogInternalError(ctx, err)
}
