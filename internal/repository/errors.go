package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	pkgerrors "campus-admin/backend/pkg/errors"
)

// mapStorageError 将数据库错误归类为通用错误
// 非 PostgreSQL 错误、且未被 GORM 翻译的错误原样返回
func mapStorageError(err error) error {
	if err == nil {
		return nil
	}

	// 开启 TranslateError 的方言（如测试中的 SQLite）
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%w: %v", pkgerrors.ErrIntegrityViolation, err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.ForeignKeyViolation:
		return fmt.Errorf("%w: %s (%s)", pkgerrors.ErrIntegrityViolation, pgErr.ConstraintName, pgErr.Detail)
	case pgerrcode.InvalidTextRepresentation, pgerrcode.NumericValueOutOfRange:
		// 非法 UUID 文本、整数超出列类型范围等
		return fmt.Errorf("%w: %s", pkgerrors.ErrInvalidInput, pgErr.Message)
	case pgerrcode.QueryCanceled:
		return fmt.Errorf("query canceled: %w", err)
	default:
		return fmt.Errorf("postgres error [%s]: %s (detail: %s): %w",
			pgErr.Code, pgErr.Message, pgErr.Detail, err)
	}
}
