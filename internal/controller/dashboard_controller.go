package controller

import (
	"college_portal_backend/internal/service"
	"college_portal_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// TeacherBranches godoc
// @Summary Branch overview
// @Description Lists every branch with its roster size for the teacher landing page
// @Tags dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]service.BranchOverview}
// @Router /api/teacher/branches [get]
func (c *DashboardController) TeacherBranches(ctx *gin.Context) {
	overview, err := c.DashboardService.TeacherDashboard()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, overview)
}

// StudentDashboard godoc
// @Summary Student landing page
// @Description Profile, current GPA estimate and recent notes for the signed-in student
// @Tags dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.StudentDashboard}
// @Failure 404 {object} util.Response "Student record missing"
// @Router /api/student/dashboard [get]
func (c *DashboardController) StudentDashboard(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	dash, err := c.DashboardService.StudentDashboard(user.Username)
	if err != nil {
		if errors.Is(err, util.ErrStudentNotFound) {
			util.NotFoundMessage(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, dash)
}
