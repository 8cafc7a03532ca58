package controller

import (
	"strconv"

	"mdsml_gateway/internal/middleware"
	"mdsml_gateway/internal/service"
	"mdsml_gateway/internal/util"

	"github.com/gin-gonic/gin"
)

// CurriculumController 分层课程的解锁与守门考试
type CurriculumController struct {
	Curriculum *service.CurriculumService
}

func NewCurriculumController(curriculum *service.CurriculumService) *CurriculumController {
	return &CurriculumController{Curriculum: curriculum}
}

// ListSubjects godoc
// @Summary 学科目录
// @Tags 课程体系
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/curricula [get]
func (c *CurriculumController) ListSubjects(ctx *gin.Context) {
	util.Success(ctx, c.Curriculum.ListSubjects())
}

// Get godoc
// @Summary 学科课程视图
// @Description 返回当前用户视角下各阶段的锁定状态与考试入口
// @Tags 课程体系
// @Produce  json
// @Security BearerAuth
// @Param   subject path string true "学科标识"
// @Success 200 {object} util.Response{data=service.CurriculumView}
// @Failure 404 {object} util.Response "学科不存在"
// @Router /api/curricula/{subject} [get]
func (c *CurriculumController) Get(ctx *gin.Context) {
	view, err := c.Curriculum.GetCurriculum(middleware.GetSubject(ctx), ctx.Param("subject"))
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// UnlockNext godoc
// @Summary 解锁下一阶段
// @Description 以已完成阶段为准解锁其后继，重复调用是无操作
// @Tags 课程体系
// @Produce  json
// @Security BearerAuth
// @Param   subject path string true "学科标识"
// @Param   tierId path int true "已完成的阶段ID"
// @Success 200 {object} util.Response{data=service.CurriculumView}
// @Router /api/curricula/{subject}/tiers/{tierId}/unlock-next [post]
func (c *CurriculumController) UnlockNext(ctx *gin.Context) {
	tierID, err := strconv.Atoi(ctx.Param("tierId"))
	if err != nil {
		util.BadRequest(ctx, "invalid tier id")
		return
	}

	view, err := c.Curriculum.UnlockNextTier(middleware.GetSubject(ctx), ctx.Param("subject"), tierID)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// swagger:model GatekeeperSubmission
type GatekeeperSubmission struct {
	Score int `json:"score" binding:"min=0,max=100"`
}

type gatekeeperResponse struct {
	Result service.ExamResult      `json:"result"`
	View   *service.CurriculumView `json:"curriculum"`
}

// SubmitGatekeeper godoc
// @Summary 提交守门考试成绩
// @Description 达到阶段及格线才解锁下一阶段，不及格保持锁定可重考
// @Tags 课程体系
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   subject path string true "学科标识"
// @Param   tierId path int true "考试所属阶段ID"
// @Param   body body GatekeeperSubmission true "成绩"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response "阶段未解锁"
// @Router /api/curricula/{subject}/tiers/{tierId}/gatekeeper [post]
func (c *CurriculumController) SubmitGatekeeper(ctx *gin.Context) {
	tierID, err := strconv.Atoi(ctx.Param("tierId"))
	if err != nil {
		util.BadRequest(ctx, "invalid tier id")
		return
	}

	var req GatekeeperSubmission
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, view, err := c.Curriculum.SubmitGatekeeper(middleware.GetSubject(ctx), ctx.Param("subject"), tierID, req.Score)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	util.Success(ctx, gatekeeperResponse{Result: result, View: view})
}
