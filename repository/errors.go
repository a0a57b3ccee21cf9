package repository

import (
	"errors"
	"fmt"

	mysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/villaclara/hotel-booking/apperrors"
)

// MySQL server error numbers the repositories care about.
const (
	mysqlErrDupEntry        = 1062
	mysqlErrLockWaitTimeout = 1205
	mysqlErrDeadlock        = 1213
	mysqlErrNoReferencedRow = 1452
)

// translateStoreError maps driver-level failures onto the shared taxonomy so
// raw store errors never leak past the repository boundary. Unrecognized
// errors pass through unchanged.
func translateStoreError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %v", apperrors.ErrNotFound, err)
	}

	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		switch merr.Number {
		case mysqlErrDupEntry, mysqlErrNoReferencedRow:
			// A race that slipped past the locking strategy, or a missing
			// referenced row. Either way the write lost to concurrent state.
			return fmt.Errorf("%w: %v", apperrors.ErrConflict, err)
		case mysqlErrLockWaitTimeout, mysqlErrDeadlock:
			return fmt.Errorf("%w: %v", apperrors.ErrTransient, err)
		}
	}

	return err
}
