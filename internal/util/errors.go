package util

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrBranchNotFound      = errors.New("branch not found")
	ErrBranchLocked        = errors.New("branch not unlocked")
	ErrStudentNotFound     = errors.New("student record not found")
	ErrMarksNotFound       = errors.New("no marks found for this semester")
	ErrNoteNotFound        = errors.New("note not found")
	ErrInvalidSemester     = errors.New("semester must be between 1 and 8")
	ErrInvalidUSN          = errors.New("usn does not match the branch pattern")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds the upload size limit")
	ErrInvalidNoteFields   = errors.New("subject and a module between Module 1 and Module 5 are required")
	ErrEmptyRoster         = errors.New("roster file contains no valid rows")
	ErrNoSubjects          = errors.New("subject list cannot be empty")
	ErrRenderingFailure    = errors.New("marksheet rendering failed")
)
