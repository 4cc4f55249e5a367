package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Document errors
	XMLSyntaxError
	StructuralParseError
	NumberFormatError
	BooleanFormatError
	UnsupportedDirectionError

	// Version errors
	UnknownVersionError
	UndetectedVersionError
	MigrateBackwardError
	MigrateVariantError
	MigrateVersionError

	// Batch errors
	BatchError
)
