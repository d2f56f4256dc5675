package service

import (
	"college_portal_backend/internal/model"
	"college_portal_backend/internal/repository"
	"college_portal_backend/internal/util"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// DefaultSubjects is the fallback when no subject configuration exists for a
// branch and semester.
var DefaultSubjects = []string{"Subject1", "Subject2", "Subject3"}

const subjectCacheTTL = 10 * time.Minute

type SubjectService struct {
	Repo  *repository.SubjectConfigRepository
	Redis *redis.Client
}

func NewSubjectService(repo *repository.SubjectConfigRepository, rdb *redis.Client) *SubjectService {
	return &SubjectService{Repo: repo, Redis: rdb}
}

func subjectCacheKey(branch string, semester int) string {
	return fmt.Sprintf("subject_config:%s:%d", branch, semester)
}

// Subjects returns the configured subject list for a branch and semester,
// consulting the Redis cache first. A missing row yields the default list.
func (s *SubjectService) Subjects(branch string, semester int) ([]string, error) {
	ctx := context.Background()
	key := subjectCacheKey(branch, semester)

	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, key).Result(); err == nil {
			var subjects []string
			if json.Unmarshal([]byte(cached), &subjects) == nil && len(subjects) > 0 {
				return subjects, nil
			}
		}
	}

	cfg, err := s.Repo.FindByBranchAndSemester(branch, semester)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return append([]string(nil), DefaultSubjects...), nil
		}
		return nil, err
	}

	var subjects []string
	if err := json.Unmarshal(cfg.Subjects, &subjects); err != nil || len(subjects) == 0 {
		return append([]string(nil), DefaultSubjects...), nil
	}

	if s.Redis != nil {
		if blob, err := json.Marshal(subjects); err == nil {
			s.Redis.Set(ctx, key, blob, subjectCacheTTL)
		}
	}

	return subjects, nil
}

// UpdateSubjects replaces the configured list. Names are trimmed and
// deduplicated preserving order; an effectively empty list is rejected. The
// cache entry is dropped so the next read sees the new list.
func (s *SubjectService) UpdateSubjects(branch string, semester int, subjects []string) ([]string, error) {
	cleaned := make([]string, 0, len(subjects))
	seen := make(map[string]bool, len(subjects))
	for _, sub := range subjects {
		sub = strings.TrimSpace(sub)
		if sub == "" || seen[sub] {
			continue
		}
		seen[sub] = true
		cleaned = append(cleaned, sub)
	}
	if len(cleaned) == 0 {
		return nil, util.ErrNoSubjects
	}

	blob, err := json.Marshal(cleaned)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.Upsert(&model.SubjectConfig{Branch: branch, Semester: semester, Subjects: blob}); err != nil {
		return nil, err
	}

	if s.Redis != nil {
		s.Redis.Del(context.Background(), subjectCacheKey(branch, semester))
	}

	return cleaned, nil
}
