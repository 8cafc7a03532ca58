package controller

import (
	"mdsml_gateway/internal/client"
	"mdsml_gateway/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthController 注册/登录直接代理到上游后端，网关不保存口令
type AuthController struct {
	Backend *client.BackendClient
}

func NewAuthController(backend *client.BackendClient) *AuthController {
	return &AuthController{Backend: backend}
}

// swagger:model SignupRequest
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required"`
}

// Signup godoc
// @Summary 注册新用户
// @Description 转发注册请求到学习平台后端
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body SignupRequest true "注册信息"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/auth/signup [post]
func (c *AuthController) Signup(ctx *gin.Context) {
	var req SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	created, err := c.Backend.Signup(ctx.Request.Context(), client.SignupRequest{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		respondBackendError(ctx, err)
		return
	}

	util.Created(ctx, created)
}

// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary 用户登录
// @Description 换取后端颁发的访问令牌
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "登录信息"
// @Success 200 {object} util.Response
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, err := c.Backend.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondBackendError(ctx, err)
		return
	}

	util.Success(ctx, token)
}
