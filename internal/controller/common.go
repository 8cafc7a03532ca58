package controller

import (
	"context"
	"errors"
	"mdsml_gateway/internal/client"
	"mdsml_gateway/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

// respondBackendError 把上游后端的失败负载原样转给前端，
// 网络类错误折叠成 502，处理器不向外抛异常。
func respondBackendError(ctx *gin.Context, err error) {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		util.Error(ctx, apiErr.Status, apiErr.Detail)
		return
	}
	if errors.Is(err, context.Canceled) {
		// 客户端已断开，不用再写响应
		ctx.Abort()
		return
	}
	util.Error(ctx, http.StatusBadGateway, "upstream backend unavailable")
}

// respondDomainError 业务哨兵错误到 HTTP 状态码的映射
func respondDomainError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrCurriculumNotFound),
		errors.Is(err, util.ErrTierNotFound),
		errors.Is(err, util.ErrTopicNotFound),
		errors.Is(err, util.ErrPaperNotFound):
		util.Error(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, util.ErrTierLocked):
		util.Error(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, util.ErrPaperExists):
		util.Error(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, util.ErrInvalidScore),
		errors.Is(err, util.ErrInvalidTab),
		errors.Is(err, util.ErrNoGatekeeperExam),
		errors.Is(err, util.ErrEmptyContent):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
