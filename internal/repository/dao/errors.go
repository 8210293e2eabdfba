package dao

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/AkifKA/stock-app-api/internal/domain"
)

var (
	ErrUserEmailExists = errors.New("user already exists")

	ErrUserNotFound      = fmt.Errorf("user %w", domain.ErrNotFound)
	ErrCategoryNotFound  = fmt.Errorf("category %w", domain.ErrNotFound)
	ErrBrandNotFound     = fmt.Errorf("brand %w", domain.ErrNotFound)
	ErrProductNotFound   = fmt.Errorf("product %w", domain.ErrNotFound)
	ErrFirmNotFound      = fmt.Errorf("firm %w", domain.ErrNotFound)
	ErrPurchaseNotFound  = fmt.Errorf("purchase %w", domain.ErrNotFound)
	ErrSaleNotFound      = fmt.Errorf("sale %w", domain.ErrNotFound)
	ErrReferenceNotFound = fmt.Errorf("referenced record %w", domain.ErrNotFound)

	ErrDuplicateName  = domain.ErrDuplicateName
	ErrStorageFailure = domain.ErrStorageFailure
)

// translateErr maps gorm and postgres errors onto the domain error kinds.
// Anything it does not recognise is a storage failure.
func translateErr(err error, notFound error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) && notFound != nil {
		return notFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgerrcode.UniqueViolation && strings.HasSuffix(pgErr.ConstraintName, "_name"):
			return ErrDuplicateName
		case pgErr.Code == pgerrcode.ForeignKeyViolation:
			return fmt.Errorf("%w (%s)", ErrReferenceNotFound, pgErr.ConstraintName)
		}
	}

	return fmt.Errorf("%w: %w", ErrStorageFailure, err)
}
