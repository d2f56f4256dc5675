package database

import (
	"college_portal_backend/internal/config"
	"college_portal_backend/internal/model"
	"encoding/json"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.Branch{},
		&model.Teacher{},
		&model.Student{},
		&model.TermMarks{},
		&model.Note{},
		&model.SubjectConfig{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	if err := seedBranches(db); err != nil {
		return nil, err
	}
	if err := seedDefaultTeacher(db); err != nil {
		return nil, err
	}
	if err := seedSubjectConfigs(db); err != nil {
		return nil, err
	}

	return db, nil
}

// seedBranches inserts the known branches with their unlock passwords and
// USN validation patterns. Runs only against an empty table.
func seedBranches(db *gorm.DB) error {
	var count int64
	db.Model(&model.Branch{}).Count(&count)
	if count > 0 {
		return nil
	}

	defaults := []struct {
		code     string
		name     string
		password string
		pattern  string
	}{
		{"CSE", "CSE", "csepass", `^(21|22|23)SECD\d{1,3}$`},
		{"AIDS", "CS-AIDS", "aids123", `^(21|22|23)SEAD\d{1,3}$`},
		{"AIML", "AIML", "aimlpass", `^(21|22|23)SEAI\d{1,3}$`},
		{"CIVIL", "CIVIL", "civil123", `^(21|22|23)SECV\d{1,3}$`},
	}

	for _, d := range defaults {
		hash, err := bcrypt.GenerateFromPassword([]byte(d.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		branch := &model.Branch{
			Code:       d.code,
			Name:       d.name,
			Password:   string(hash),
			USNPattern: d.pattern,
		}
		if err := db.Create(branch).Error; err != nil {
			return err
		}
	}

	log.Println("Seeded default branches")
	return nil
}

// seedDefaultTeacher creates the bootstrap teacher account when no teachers
// exist yet. The password must be rotated on first use.
func seedDefaultTeacher(db *gorm.DB) error {
	var count int64
	db.Model(&model.Teacher{}).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	teacher := &model.Teacher{
		Username: "teacher",
		Password: string(hash),
		Name:     "Default Teacher",
		Branch:   "CSE",
	}
	if err := db.Create(teacher).Error; err != nil {
		return err
	}

	log.Println("Seeded default teacher account")
	return nil
}

var defaultSemesterSubjects = map[int][]string{
	1: {"Physics", "Mathematics", "Civil", "Electronics"},
	2: {"Chemistry", "Programming", "Electricals", "Mechanical"},
	3: {"Data Structures", "Software Engineering", "Math III"},
	4: {"OS", "DBMS", "Microprocessors"},
	5: {"AI", "ML", "Web Tech"},
	6: {"Networks", "Cloud Computing"},
	7: {"Big Data", "Cyber Security"},
	8: {"Project", "Internship"},
}

// seedSubjectConfigs gives every branch a starter subject list per semester
// so the marks grid and notes matrix work out of the box. Teachers overwrite
// these through the subject-config endpoints.
func seedSubjectConfigs(db *gorm.DB) error {
	var count int64
	db.Model(&model.SubjectConfig{}).Count(&count)
	if count > 0 {
		return nil
	}

	var branches []model.Branch
	if err := db.Find(&branches).Error; err != nil {
		return err
	}

	for _, b := range branches {
		for sem := 1; sem <= 8; sem++ {
			blob, err := json.Marshal(defaultSemesterSubjects[sem])
			if err != nil {
				return err
			}
			cfg := &model.SubjectConfig{
				Branch:   b.Code,
				Semester: sem,
				Subjects: blob,
			}
			if err := db.Create(cfg).Error; err != nil {
				return err
			}
		}
	}

	log.Println("Seeded default subject configurations")
	return nil
}
