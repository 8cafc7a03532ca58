package controller

import (
	"mdsml_gateway/internal/client"
	"mdsml_gateway/internal/middleware"
	"mdsml_gateway/internal/util"

	"github.com/gin-gonic/gin"
)

type ProblemController struct {
	Backend *client.BackendClient
}

func NewProblemController(backend *client.BackendClient) *ProblemController {
	return &ProblemController{Backend: backend}
}

func (c *ProblemController) Get(ctx *gin.Context) {
	problem, err := c.Backend.GetProblem(ctx.Request.Context(), middleware.GetToken(ctx), ctx.Param("id"))
	if err != nil {
		respondBackendError(ctx, err)
		return
	}
	util.Success(ctx, problem)
}

// swagger:model SubmitProblemRequest
type SubmitProblemRequest struct {
	SubmittedCode   string `json:"submitted_code"`
	SubmittedAnswer string `json:"submitted_answer"`
}

// Submit godoc
// @Summary 提交题目答案
// @Description 转发到后端判题并返回 is_correct 与反馈
// @Tags 题目
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "题目ID"
// @Param   body body SubmitProblemRequest true "提交内容"
// @Success 200 {object} util.Response{data=client.SubmitResult}
// @Router /api/problems/{id}/submit [post]
func (c *ProblemController) Submit(ctx *gin.Context) {
	var req SubmitProblemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Backend.SubmitProblem(ctx.Request.Context(), middleware.GetToken(ctx), client.SubmitProblemRequest{
		ProblemID:       ctx.Param("id"),
		SubmittedCode:   req.SubmittedCode,
		SubmittedAnswer: req.SubmittedAnswer,
	})
	if err != nil {
		respondBackendError(ctx, err)
		return
	}

	util.Success(ctx, result)
}
