package service

import (
	"college_portal_backend/internal/config"
	"college_portal_backend/internal/model"
	"college_portal_backend/internal/repository"
	"college_portal_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	TeacherRepo *repository.TeacherRepository
	StudentRepo *repository.StudentRepository
	BranchRepo  *repository.BranchRepository
	Cfg         *config.Config
}

func NewAuthService(teacherRepo *repository.TeacherRepository, studentRepo *repository.StudentRepository, branchRepo *repository.BranchRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		TeacherRepo: teacherRepo,
		StudentRepo: studentRepo,
		BranchRepo:  branchRepo,
		Cfg:         cfg,
	}
}

// Login authenticates either role. Lookup failures and password mismatches
// both come back as ErrInvalidCredentials so the response leaks nothing.
func (s *AuthService) Login(role model.Role, username, password string) (string, error) {
	switch role {
	case model.RoleTeacher:
		teacher, err := s.TeacherRepo.FindByUsername(username)
		if err != nil {
			return "", util.ErrInvalidCredentials
		}
		if bcrypt.CompareHashAndPassword([]byte(teacher.Password), []byte(password)) != nil {
			return "", util.ErrInvalidCredentials
		}
		return util.GenerateTeacherJWT(teacher, "", s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)

	case model.RoleStudent:
		student, err := s.StudentRepo.FindByUsername(username)
		if err != nil {
			return "", util.ErrInvalidCredentials
		}
		if bcrypt.CompareHashAndPassword([]byte(student.Password), []byte(password)) != nil {
			return "", util.ErrInvalidCredentials
		}
		return util.GenerateStudentJWT(student, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	}

	return "", util.ErrInvalidCredentials
}

// UnlockBranch verifies the branch password for an authenticated teacher and
// issues a fresh token scoped to that branch. This replaces the old portal's
// per-session branch gate with a stateless claim.
func (s *AuthService) UnlockBranch(teacherUsername, branchCode, branchPassword string) (string, error) {
	branch, err := s.BranchRepo.FindByCode(branchCode)
	if err != nil {
		return "", util.ErrBranchNotFound
	}

	if bcrypt.CompareHashAndPassword([]byte(branch.Password), []byte(branchPassword)) != nil {
		return "", util.ErrInvalidCredentials
	}

	teacher, err := s.TeacherRepo.FindByUsername(teacherUsername)
	if err != nil {
		return "", util.ErrInvalidCredentials
	}

	return util.GenerateTeacherJWT(teacher, branch.Code, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}
