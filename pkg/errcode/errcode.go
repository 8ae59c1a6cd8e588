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

	// Logging errors
	CreateLogFileError

	// Database errors
	DBConnectionError
	DBUnknownDriverError
	DBTableCheckError
	DBNotConnectedError
	DBTableExistsCheckError
	DBQueryTablesError
	DBScanTableError
	DBDropTableError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaIndexError
	SchemaCollationError
	SchemaMissingError

	// Catalog errors
	CatalogValidationError
	CatalogConflictError
	CatalogNotFoundError
	CatalogQueryError
	CatalogTransactionError
	CatalogUseNameError

	// Image lookup errors
	ImagesRequestError
	ImagesResponseError
	ImagesBackfillError

	// Seed errors
	SeedReadError
	SeedParseError

	// Optimizer errors
	OptimizerReparseError
	OptimizerOrphanRemovalError
	OptimizerVacuumError

	// Metrics errors
	MetricsWriteError
)
