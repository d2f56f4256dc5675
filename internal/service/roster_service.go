package service

import (
	"college_portal_backend/internal/model"
	"college_portal_backend/internal/repository"
	"college_portal_backend/internal/util"
	"encoding/csv"
	"io"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/crypto/bcrypt"
)

// trailing run of digits in a USN, e.g. 21SECD045 -> 45
var serialPattern = regexp.MustCompile(`\d{1,3}$`)

type RosterService struct {
	StudentRepo *repository.StudentRepository
	BranchRepo  *repository.BranchRepository
	MarksRepo   *repository.MarksRepository
}

func NewRosterService(studentRepo *repository.StudentRepository, branchRepo *repository.BranchRepository, marksRepo *repository.MarksRepository) *RosterService {
	return &RosterService{
		StudentRepo: studentRepo,
		BranchRepo:  branchRepo,
		MarksRepo:   marksRepo,
	}
}

// ImportResult summarises one roster upload.
type ImportResult struct {
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
}

type rosterRow struct {
	name     string
	usn      string
	serial   int
	year     int
	semester int
}

// ImportRoster ingests a CSV or XLSX file with name/usn/year/semester
// columns. Rows are validated against the branch USN pattern, sorted by the
// USN's trailing serial number, and upserted. Invalid rows are counted, not
// fatal.
func (s *RosterService) ImportRoster(branchCode, filename string, file io.Reader) (*ImportResult, error) {
	branch, err := s.BranchRepo.FindByCode(branchCode)
	if err != nil {
		return nil, util.ErrBranchNotFound
	}

	pattern, err := regexp.Compile("(?i)" + branch.USNPattern)
	if err != nil {
		return nil, err
	}

	rows, err := parseRosterRows(filename, file)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, util.ErrEmptyRoster
	}

	col := map[string]int{}
	for i, h := range rows[0] {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}

	var valid []rosterRow
	skipped := 0
	for _, row := range rows[1:] {
		name := strings.TrimSpace(cell(row, col, "name"))
		usn := strings.ToUpper(strings.TrimSpace(cell(row, col, "usn")))

		if name == "" || usn == "" || !pattern.MatchString(usn) {
			skipped++
			continue
		}

		serialText := serialPattern.FindString(usn)
		serial, err := strconv.Atoi(serialText)
		if err != nil {
			skipped++
			continue
		}

		valid = append(valid, rosterRow{
			name:     name,
			usn:      usn,
			serial:   serial,
			year:     intOrDefault(cell(row, col, "year"), 1),
			semester: semesterOrDefault(cell(row, col, "semester")),
		})
	}

	sort.SliceStable(valid, func(i, j int) bool { return valid[i].serial < valid[j].serial })

	added := 0
	for _, r := range valid {
		student, err := buildStudent(branch.Code, r)
		if err != nil {
			return nil, err
		}
		if err := s.StudentRepo.Upsert(student); err != nil {
			return nil, err
		}
		added++
	}

	return &ImportResult{Added: added, Skipped: skipped}, nil
}

// AddStudent upserts a single roster entry. Unlike bulk import the name may
// be blank, in which case the USN doubles as the login username.
func (s *RosterService) AddStudent(branchCode, name, usn string, year, semester int) (*model.Student, error) {
	branch, err := s.BranchRepo.FindByCode(branchCode)
	if err != nil {
		return nil, util.ErrBranchNotFound
	}

	usn = strings.ToUpper(strings.TrimSpace(usn))
	pattern, err := regexp.Compile("(?i)" + branch.USNPattern)
	if err != nil {
		return nil, err
	}
	if !pattern.MatchString(usn) {
		return nil, util.ErrInvalidUSN
	}

	serial, err := strconv.Atoi(serialPattern.FindString(usn))
	if err != nil {
		return nil, util.ErrInvalidUSN
	}

	if year < 1 {
		year = 1
	}
	if semester < util.MinSemester || semester > util.MaxSemester {
		semester = 1
	}

	student, err := buildStudent(branch.Code, rosterRow{
		name:     strings.TrimSpace(name),
		usn:      usn,
		serial:   serial,
		year:     year,
		semester: semester,
	})
	if err != nil {
		return nil, err
	}

	if err := s.StudentRepo.Upsert(student); err != nil {
		return nil, err
	}
	return student, nil
}

// ListRoster returns the branch roster in serial order. semester 0 lists all.
func (s *RosterService) ListRoster(branchCode string, semester int) ([]model.Student, error) {
	if _, err := s.BranchRepo.FindByCode(branchCode); err != nil {
		return nil, util.ErrBranchNotFound
	}
	return s.StudentRepo.FindByBranch(branchCode, semester)
}

// DeleteStudent removes a roster entry and every semester's marks for it.
func (s *RosterService) DeleteStudent(branchCode, usn string) error {
	usn = strings.ToUpper(strings.TrimSpace(usn))

	student, err := s.StudentRepo.FindByUSN(usn)
	if err != nil || student.Branch != branchCode {
		return util.ErrStudentNotFound
	}

	if err := s.StudentRepo.DeleteByUSN(usn, branchCode); err != nil {
		return err
	}
	return s.MarksRepo.DeleteAllByUSN(usn)
}

// buildStudent derives the login identity the way the portal always has:
// username is the dotted lowercase name (or the USN when the name is blank)
// and the initial password is the USN itself.
func buildStudent(branchCode string, r rosterRow) (*model.Student, error) {
	username := strings.ToLower(strings.ReplaceAll(r.name, " ", "."))
	if username == "" {
		username = r.usn
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(r.usn), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &model.Student{
		USN:      r.usn,
		Username: username,
		Password: string(hash),
		Name:     r.name,
		Branch:   branchCode,
		Year:     r.year,
		Semester: r.semester,
		Serial:   r.serial,
	}, nil
}

func parseRosterRows(filename string, file io.Reader) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		reader := csv.NewReader(file)
		reader.FieldsPerRecord = -1
		reader.TrimLeadingSpace = true
		return reader.ReadAll()
	case ".xlsx":
		f, err := excelize.OpenReader(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, util.ErrEmptyRoster
		}
		return f.GetRows(sheets[0])
	default:
		return nil, util.ErrUnsupportedFileType
	}
}

func cell(row []string, col map[string]int, name string) string {
	i, ok := col[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func intOrDefault(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return def
	}
	return n
}

func semesterOrDefault(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < util.MinSemester || n > util.MaxSemester {
		return 1
	}
	return n
}
