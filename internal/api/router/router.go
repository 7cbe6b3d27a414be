package router

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"campus-admin/backend/config"
	"campus-admin/backend/internal/api/handler"
	"campus-admin/backend/internal/api/middleware"
	"campus-admin/backend/pkg/redis"
)

// Options 路由可选依赖
type Options struct {
	// Registry 为 nil 时新建，并注册 Go 运行时与进程指标
	Registry *prometheus.Registry
}

// Setup 初始化并返回 Gin 路由引擎
// rdb 为 nil 时限流降级放行，健康检查中 redis 记为 disabled
func Setup(cfg *config.Config, h *handler.Handler, db *gorm.DB, rdb *redis.Client, logger *zap.Logger, opts Options) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	// 请求体出现未声明字段时绑定失败
	binding.EnableDecoderDisallowUnknownFields = true

	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	metrics := middleware.NewMetrics(reg)

	r := gin.New()
	base := "/" + strings.Trim(cfg.Server.BasePath, "/")

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger, base))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimitBytes))
	r.Use(metrics.Middleware())

	// ── 运维 ──
	r.GET("/health", healthHandler(db, rdb))
	r.GET("/metrics", metrics.Handler())

	// ── API ──
	api := r.Group(base)
	if cfg.Server.RateLimit.Enabled {
		api.Use(middleware.RateLimit(rdb, cfg.Server.RateLimit.Requests, cfg.Server.RateLimit.Window, logger))
	}
	{
		// 入口同时响应 /api 与 /api/，不走尾斜杠重定向
		api.GET("", indexHandler)
		if base != "/" {
			api.GET("/", indexHandler)
		}

		// 学院 / 教研室 / 专业方向 / 报考者 / 楼栋 / 宿舍
		h.Register(api)
	}

	return r
}

func indexHandler(c *gin.Context) {
	c.String(http.StatusOK, "Hello world!")
}

// healthHandler 检查数据库与 Redis；任一依赖异常返回 503
func healthHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		checks := gin.H{"db": "ok", "redis": "disabled"}

		if err := pingDB(ctx, db); err != nil {
			status = http.StatusServiceUnavailable
			checks["db"] = err.Error()
		}
		if rdb != nil {
			if err := rdb.Ping(ctx); err != nil {
				status = http.StatusServiceUnavailable
				checks["redis"] = err.Error()
			} else {
				checks["redis"] = "ok"
			}
		}

		overall := "ok"
		if status != http.StatusOK {
			overall = "degraded"
		}
		c.JSON(status, gin.H{"status": overall, "checks": checks})
	}
}

func pingDB(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
