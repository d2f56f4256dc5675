package controller

import (
	"college_portal_backend/internal/model"
	"college_portal_backend/internal/service"
	"college_portal_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// swagger:model LoginRequest
type LoginRequest struct {
	Role     string `json:"role" binding:"required,oneof=student teacher"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Sign in
// @Description Authenticates a student or teacher and returns a JWT
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "Login credentials"
// @Success 200 {object} util.Response{data=object} "Token issued"
// @Failure 400 {object} util.Response "Invalid request body"
// @Failure 401 {object} util.Response "Invalid credentials"
// @Router /api/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, err := c.AuthService.Login(model.Role(req.Role), req.Username, req.Password)
	if err != nil {
		util.Unauthorized(ctx)
		return
	}

	util.Success(ctx, gin.H{"token": token, "role": req.Role})
}

// swagger:model UnlockBranchRequest
type UnlockBranchRequest struct {
	BranchPassword string `json:"branchPassword" binding:"required"`
}

// UnlockBranch godoc
// @Summary Unlock a branch
// @Description Verifies the branch password and returns a token scoped to that branch
// @Tags auth
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   code path string true "Branch code"
// @Param   body body UnlockBranchRequest true "Branch password"
// @Success 200 {object} util.Response{data=object} "Branch-scoped token issued"
// @Failure 401 {object} util.Response "Wrong branch password"
// @Failure 404 {object} util.Response "Unknown branch"
// @Router /api/teacher/branches/{code}/unlock [post]
func (c *AuthController) UnlockBranch(ctx *gin.Context) {
	var req UnlockBranchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	token, err := c.AuthService.UnlockBranch(user.Username, ctx.Param("code"), req.BranchPassword)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrBranchNotFound):
			util.NotFoundMessage(ctx, err.Error())
		case errors.Is(err, util.ErrInvalidCredentials):
			util.Unauthorized(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"token": token, "branch": ctx.Param("code")})
}
