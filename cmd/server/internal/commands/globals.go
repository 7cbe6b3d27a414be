package commands

import (
	"fmt"

	"go.uber.org/zap"

	"campus-admin/backend/config"
	applogger "campus-admin/backend/pkg/logger"
)

// Globals 所有子命令共享的参数
type Globals struct {
	ConfigPath string
	Version    string
}

// bootstrap 加载配置并初始化日志
func (g *Globals) bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(g.ConfigPath)
	if err != nil {
		return nil, nil, fmt.Errorf("加载配置失败: %w", err)
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("初始化日志失败: %w", err)
	}

	return cfg, logger, nil
}
