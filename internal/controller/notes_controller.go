package controller

import (
	"college_portal_backend/internal/model"
	"college_portal_backend/internal/service"
	"college_portal_backend/internal/util"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type NotesController struct {
	NotesService *service.NotesService
}

func NewNotesController(notesService *service.NotesService) *NotesController {
	return &NotesController{NotesService: notesService}
}

// Upload godoc
// @Summary Upload a note
// @Description Stores a note file for a branch semester under subject and module
// @Tags notes
// @Accept mpfd
// @Produce json
// @Security ApiKeyAuth
// @Param code path string true "Branch code"
// @Param semester formData int true "Semester (1-8)"
// @Param subject formData string true "Subject name"
// @Param module formData string true "Module label (Module 1..Module 5)"
// @Param file formData file true "Note file (pdf/doc/docx/ppt/pptx/zip)"
// @Success 201 {object} util.Response{data=model.Note}
// @Failure 400 {object} util.Response "Bad fields, unsupported type or file too large"
// @Router /api/teacher/branches/{code}/notes [post]
func (c *NotesController) Upload(ctx *gin.Context) {
	semester, ok := util.ParseSemester(ctx.PostForm("semester"))
	if !ok {
		util.BadRequest(ctx, util.ErrInvalidSemester.Error())
		return
	}

	fh, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "note file is required")
		return
	}

	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	note, err := c.NotesService.Upload(
		ctx.Request.Context(),
		ctx.Param("code"),
		user.Username,
		semester,
		ctx.PostForm("subject"),
		ctx.PostForm("module"),
		fh,
	)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrInvalidNoteFields),
			errors.Is(err, util.ErrUnsupportedFileType),
			errors.Is(err, util.ErrFileTooLarge):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, note)
}

// List godoc
// @Summary List uploaded notes
// @Description Notes of a branch semester, newest first
// @Tags notes
// @Produce json
// @Security ApiKeyAuth
// @Param code path string true "Branch code"
// @Param semester query int true "Semester (1-8)"
// @Success 200 {object} util.Response{data=[]model.Note}
// @Failure 400 {object} util.Response "Semester out of range"
// @Router /api/teacher/branches/{code}/notes [get]
func (c *NotesController) List(ctx *gin.Context) {
	semester, ok := util.ParseSemester(ctx.Query("semester"))
	if !ok {
		util.BadRequest(ctx, util.ErrInvalidSemester.Error())
		return
	}

	notes, err := c.NotesService.ListBranchNotes(ctx.Param("code"), semester)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"notes": notes, "count": len(notes)})
}

// Delete godoc
// @Summary Delete a note
// @Description Removes the note record and its stored file
// @Tags notes
// @Produce json
// @Security ApiKeyAuth
// @Param code path string true "Branch code"
// @Param id path string true "Note ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "Note not found in this branch"
// @Router /api/teacher/branches/{code}/notes/{id} [delete]
func (c *NotesController) Delete(ctx *gin.Context) {
	err := c.NotesService.Delete(ctx.Request.Context(), ctx.Param("code"), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrNoteNotFound) {
			util.NotFoundMessage(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": ctx.Param("id")})
}

// StudentNotes godoc
// @Summary Notes availability matrix
// @Description Subject-by-module matrix of uploaded notes for the signed-in student's branch semester
// @Tags notes
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.StudentNotes}
// @Failure 404 {object} util.Response "Student record missing"
// @Router /api/student/notes [get]
func (c *NotesController) StudentNotes(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	matrix, err := c.NotesService.StudentNotesMatrix(user.Username)
	if err != nil {
		if errors.Is(err, util.ErrStudentNotFound) {
			util.NotFoundMessage(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, matrix)
}

// Download godoc
// @Summary Download a note
// @Description Streams the note file; students can only reach notes of their own branch
// @Tags notes
// @Produce application/octet-stream
// @Security ApiKeyAuth
// @Param id path string true "Note ID"
// @Success 200 {file} binary "Note file"
// @Failure 404 {object} util.Response "Note not found"
// @Router /api/student/notes/{id}/download [get]
func (c *NotesController) Download(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	// teachers may fetch any branch's file, students only their own
	branchScope := ""
	if user.Role == model.RoleStudent {
		branchScope = user.Branch
	}

	note, reader, err := c.NotesService.Download(ctx.Request.Context(), ctx.Param("id"), user.Username, branchScope)
	if err != nil {
		if errors.Is(err, util.ErrNoteNotFound) {
			util.NotFoundMessage(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	defer reader.Close()

	extraHeaders := map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", note.Filename),
	}
	ctx.DataFromReader(http.StatusOK, note.Size, note.ContentType, reader, extraHeaders)
}
