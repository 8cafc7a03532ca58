package controller

import (
	"mdsml_gateway/internal/client"
	"mdsml_gateway/internal/middleware"
	"mdsml_gateway/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Backend *client.BackendClient
}

func NewUserController(backend *client.BackendClient) *UserController {
	return &UserController{Backend: backend}
}

// Me godoc
// @Summary 当前用户信息
// @Tags 用户
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=client.UserProfile}
// @Router /api/users/me [get]
func (c *UserController) Me(ctx *gin.Context) {
	profile, err := c.Backend.CurrentUser(ctx.Request.Context(), middleware.GetToken(ctx))
	if err != nil {
		respondBackendError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}

// Progress godoc
// @Summary 学习进度
// @Tags 用户
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/user/progress [get]
func (c *UserController) Progress(ctx *gin.Context) {
	progress, err := c.Backend.UserProgress(ctx.Request.Context(), middleware.GetToken(ctx))
	if err != nil {
		respondBackendError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}
