package commands

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"campus-admin/backend/pkg/database"
)

// MigrateCmd 数据库迁移子命令
type MigrateCmd struct {
	Up      MigrateUpCmd      `cmd:"" help:"应用全部未执行的迁移"`
	Down    MigrateDownCmd    `cmd:"" help:"回滚迁移"`
	Version MigrateVersionCmd `cmd:"" help:"打印当前迁移版本"`
}

type MigrateUpCmd struct{}

func (m *MigrateUpCmd) Run(ctx context.Context, globals *Globals) error {
	return withSQLDB(ctx, globals, func(db *sql.DB, logger *zap.Logger) error {
		return database.RunMigrations(db, logger)
	})
}

type MigrateDownCmd struct {
	Steps int `help:"回滚步数，0 表示全部回滚" default:"1"`
}

func (m *MigrateDownCmd) Run(ctx context.Context, globals *Globals) error {
	return withSQLDB(ctx, globals, func(db *sql.DB, logger *zap.Logger) error {
		return database.RollbackMigrations(db, m.Steps, logger)
	})
}

type MigrateVersionCmd struct{}

func (m *MigrateVersionCmd) Run(ctx context.Context, globals *Globals) error {
	return withSQLDB(ctx, globals, func(db *sql.DB, _ *zap.Logger) error {
		version, dirty, err := database.MigrationVersion(db)
		if err != nil {
			return err
		}
		fmt.Printf("version=%d dirty=%t\n", version, dirty)
		return nil
	})
}

func withSQLDB(ctx context.Context, globals *Globals, fn func(db *sql.DB, logger *zap.Logger) error) error {
	cfg, logger, err := globals.bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	db, err := database.NewDB(ctx, &cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("获取底层 sql.DB 失败: %w", err)
	}
	defer sqlDB.Close()

	return fn(sqlDB, logger)
}
