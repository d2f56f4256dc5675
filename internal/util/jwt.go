package util

import (
	"college_portal_backend/internal/model"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Claims mirror the old portal session: every token carries role and
// username; students also get their usn/branch/semester snapshot, teachers
// their home branch. UnlockedBranch is set only on tokens issued by the
// branch-unlock endpoint and scopes roster/marks/notes access.
type Claims struct {
	UserID         uint       `json:"user_id"`
	Role           model.Role `json:"role"`
	Username       string     `json:"username"`
	USN            string     `json:"usn,omitempty"`
	Branch         string     `json:"branch,omitempty"`
	Semester       int        `json:"semester,omitempty"`
	UnlockedBranch string     `json:"unlocked_branch,omitempty"`
	jwt.RegisteredClaims
}

func GenerateTeacherJWT(teacher *model.Teacher, unlockedBranch, secret string, expiration time.Duration) (string, error) {
	claims := &Claims{
		UserID:         teacher.ID,
		Role:           model.RoleTeacher,
		Username:       teacher.Username,
		Branch:         teacher.Branch,
		UnlockedBranch: unlockedBranch,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func GenerateStudentJWT(student *model.Student, secret string, expiration time.Duration) (string, error) {
	claims := &Claims{
		UserID:   student.ID,
		Role:     model.RoleStudent,
		Username: student.Username,
		USN:      student.USN,
		Branch:   student.Branch,
		Semester: student.Semester,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseJWT(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, err
}

func GetUserFromContext(c *gin.Context) *Claims {
	user, exists := c.Get("user")
	if !exists {
		return nil
	}
	claims, ok := user.(*Claims)
	if !ok {
		return nil
	}
	return claims
}
