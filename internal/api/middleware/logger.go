package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Logger 访问日志中间件
// 以路由模板而非原始路径标识请求，resource 取 basePath 之后的第一段（如 buildings）
// 未匹配任何路由的请求 route 为空，resource 记为 "-"
func Logger(logger *zap.Logger, basePath string) gin.HandlerFunc {
	prefix := "/" + strings.Trim(basePath, "/")

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		route := c.FullPath()

		fields := []zap.Field{
			zap.String("request_id", GetRequestID(c)),
			zap.String("method", c.Request.Method),
			zap.String("route", route),
			zap.String("resource", resourceOf(route, prefix)),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Int("size", c.Writer.Size()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
		}
		if q := c.Request.URL.RawQuery; q != "" {
			fields = append(fields, zap.String("query", q))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.ByType(gin.ErrorTypePrivate).String()))
		}

		switch {
		case status >= 500:
			logger.Error("请求处理失败", fields...)
		case status >= 400:
			logger.Warn("客户端错误", fields...)
		default:
			logger.Info("请求完成", fields...)
		}
	}
}

// resourceOf 从路由模板提取资源段
func resourceOf(route, prefix string) string {
	if route == "" {
		return "-"
	}
	rest := route
	if prefix != "/" {
		if !strings.HasPrefix(route, prefix) {
			return strings.Trim(route, "/")
		}
		rest = strings.TrimPrefix(route, prefix)
	}
	rest = strings.Trim(rest, "/")
	if rest == "" {
		return "index"
	}
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		return rest[:i]
	}
	return rest
}
