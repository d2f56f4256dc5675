package util

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

const (
	MimePDF         = "application/pdf"
	MimeOctetStream = "application/octet-stream"
)

const (
	MinSemester = 1
	MaxSemester = 8

	// Modules a subject's notes are split into: "Module 1".."Module 5".
	ModulesPerSubject = 5
)
