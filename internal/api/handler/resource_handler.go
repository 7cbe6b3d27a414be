package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"

	"campus-admin/backend/internal/dto"
	"campus-admin/backend/internal/model"
	"campus-admin/backend/internal/service"
	pkgerrors "campus-admin/backend/pkg/errors"
	"campus-admin/backend/pkg/response"
)

// Descriptor 资源描述：路由段、中文名称与错误码基数
// 不存在为 CodeBase+1，外键冲突为 CodeBase+2
type Descriptor struct {
	Path     string
	Label    string
	CodeBase int
}

// ResourceHandler 通用资源 HTTP 处理器
// C 为创建/替换请求（全部字段必填），U 为部分更新请求（全部字段可选）
type ResourceHandler[T model.Entity, C dto.Attributes[T], U dto.Attributes[T]] struct {
	desc Descriptor
	svc  service.ResourceService[T]
}

// NewResourceHandler 创建 ResourceHandler
func NewResourceHandler[T model.Entity, C dto.Attributes[T], U dto.Attributes[T]](
	desc Descriptor,
	svc service.ResourceService[T],
) *ResourceHandler[T, C, U] {
	return &ResourceHandler[T, C, U]{desc: desc, svc: svc}
}

// Register 挂载六个标准路由
func (h *ResourceHandler[T, C, U]) Register(rg *gin.RouterGroup) {
	g := rg.Group("/" + h.desc.Path)
	{
		g.GET("", h.List)
		g.GET("/:id", h.Get)
		g.POST("", h.Create)
		g.PATCH("/:id", h.Modify)
		g.PUT("/:id", h.Replace)
		g.DELETE("/:id", h.Delete)
	}
}

// List 分页列表
// GET /api/{resource}?skip=&take=
func (h *ResourceHandler[T, C, U]) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, 10001, "分页参数必须为非负整数", err.Error())
		return
	}

	records, err := h.svc.List(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, records)
}

// Get 详情
// GET /api/{resource}/:id
func (h *ResourceHandler[T, C, U]) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	record, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, record)
}

// Create 创建
// POST /api/{resource}
func (h *ResourceHandler[T, C, U]) Create(c *gin.Context) {
	var req C
	if !h.bindBody(c, &req) {
		return
	}

	record, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, record)
}

// Modify 部分更新
// PATCH /api/{resource}/:id
func (h *ResourceHandler[T, C, U]) Modify(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req U
	if !h.bindBody(c, &req) {
		return
	}

	record, err := h.svc.Modify(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, record)
}

// Replace 整体更新，按创建请求校验
// PUT /api/{resource}/:id
func (h *ResourceHandler[T, C, U]) Replace(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req C
	if !h.bindBody(c, &req) {
		return
	}

	record, err := h.svc.Replace(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, record)
}

// Delete 删除
// DELETE /api/{resource}/:id
func (h *ResourceHandler[T, C, U]) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}

// ── 内部辅助方法 ──

// pathID 路径参数必须是 UUID；失败时已写入 400
func (h *ResourceHandler[T, C, U]) pathID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.BadRequest(c, 10001, h.desc.Label+"ID格式错误")
		return "", false
	}
	return id, true
}

// bindBody 读取请求体并绑定到 req
// 空请求体与显式 null 字段均按参数校验失败处理；null 不是任何已声明字段的合法类型
func (h *ResourceHandler[T, C, U]) bindBody(c *gin.Context, req any) bool {
	body, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(c, http.StatusRequestEntityTooLarge, 10005, "请求体过大")
			return false
		}
		response.ErrorWithDetails(c, http.StatusBadRequest, 10001, "读取请求体失败", err.Error())
		return false
	}

	if len(bytes.TrimSpace(body)) == 0 {
		response.BadRequest(c, 10001, "请求体不能为空")
		return false
	}

	if field, ok := firstNullField(body); ok {
		response.ErrorWithDetails(c, http.StatusBadRequest, 10001, "参数校验失败", "字段 "+field+" 不能为 null")
		return false
	}

	if err := binding.JSON.BindBody(body, req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, 10001, "参数校验失败", err.Error())
		return false
	}
	return true
}

// firstNullField 返回按字典序第一个值为 null 的顶层字段
// 非 JSON 对象时返回 false，交由后续绑定报错
func firstNullField(body []byte) (string, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return "", false
	}

	keys := make([]string, 0, len(fields))
	for k, v := range fields {
		if bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return "", false
	}
	sort.Strings(keys)
	return keys[0], true
}

// handleError 统一处理资源业务错误
func (h *ResourceHandler[T, C, U]) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pkgerrors.ErrNotFound):
		response.NotFound(c, h.desc.CodeBase+1, h.desc.Label+"不存在")
	case errors.Is(err, pkgerrors.ErrIntegrityViolation):
		response.Conflict(c, h.desc.CodeBase+2, "引用的记录不存在或"+h.desc.Label+"仍被引用")
	case errors.Is(err, pkgerrors.ErrInvalidInput):
		response.BadRequest(c, 10001, "参数校验失败")
	default:
		response.InternalError(c)
	}
}
