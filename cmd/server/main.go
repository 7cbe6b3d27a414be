package main

import (
	"context"

	"github.com/alecthomas/kong"

	"campus-admin/backend/cmd/server/internal/commands"
)

var (
	version = "dev"
	cli     struct {
		Config  string           `help:"配置文件路径（默认查找 ./config/config.yaml）" type:"path"`
		Version kong.VersionFlag `help:"打印版本号"`

		Serve   commands.ServeCmd   `cmd:"" default:"1" help:"启动 HTTP 服务"`
		Migrate commands.MigrateCmd `cmd:"" help:"数据库迁移"`
	}
)

func main() {
	ctx := context.Background()
	cmd := kong.Parse(&cli,
		kong.Name("campus-admin"),
		kong.Description("校园管理后台 API"),
		kong.Vars{
			"version": version,
		},
		kong.BindTo(ctx, (*context.Context)(nil)))
	err := cmd.Run(&commands.Globals{ConfigPath: cli.Config, Version: version})
	cmd.FatalIfErrorf(err)
}
