package controller

import (
	"mdsml_gateway/internal/middleware"
	"mdsml_gateway/internal/model"
	"mdsml_gateway/internal/service"
	"mdsml_gateway/internal/util"

	"github.com/gin-gonic/gin"
)

// TopicController 话题页内容与五个活动标签的完成追踪
type TopicController struct {
	Curriculum *service.CurriculumService
	Session    *service.SessionService
}

func NewTopicController(curriculum *service.CurriculumService, session *service.SessionService) *TopicController {
	return &TopicController{Curriculum: curriculum, Session: session}
}

// Content godoc
// @Summary 话题页内容
// @Description 概念讲解、视频与编程练习；未收录的话题返回兜底内容
// @Tags 话题
// @Produce  json
// @Security BearerAuth
// @Param   topicId path string true "话题ID"
// @Success 200 {object} util.Response{data=model.TopicContent}
// @Router /api/topics/{topicId}/content [get]
func (c *TopicController) Content(ctx *gin.Context) {
	util.Success(ctx, c.Curriculum.TopicContent(ctx.Param("topicId")))
}

type tabCompletionResponse struct {
	Progress       service.ActivityProgress `json:"progress"`
	TopicCompleted bool                     `json:"topicCompleted"`
}

// CompleteTab godoc
// @Summary 标记活动标签完成
// @Description 五个标签全部完成后话题状态变为 completed
// @Tags 话题
// @Produce  json
// @Security BearerAuth
// @Param   subject path string true "学科标识"
// @Param   topicId path string true "话题ID"
// @Param   tab path string true "标签" Enums(concept, video, exercise, coding, notes)
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "未知标签"
// @Router /api/curricula/{subject}/topics/{topicId}/tabs/{tab}/complete [post]
func (c *TopicController) CompleteTab(ctx *gin.Context) {
	userID := middleware.GetSubject(ctx)
	topicID := ctx.Param("topicId")

	progress, err := c.Session.CompleteTab(userID, topicID, model.ActivityTab(ctx.Param("tab")))
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	resp := tabCompletionResponse{Progress: progress}
	if progress.Completed == progress.Total {
		if _, err := c.Curriculum.CompleteTopic(userID, ctx.Param("subject"), topicID); err != nil {
			respondDomainError(ctx, err)
			return
		}
		resp.TopicCompleted = true
	}
	util.Success(ctx, resp)
}

// Progress 当前话题的活动完成进度
func (c *TopicController) Progress(ctx *gin.Context) {
	util.Success(ctx, c.Session.Progress(middleware.GetSubject(ctx), ctx.Param("topicId")))
}

// ResetSession godoc
// @Summary 丢弃话题会话态
// @Description 离开话题页时调用，活动进度不跨会话保留
// @Tags 话题
// @Produce  json
// @Security BearerAuth
// @Param   topicId path string true "话题ID"
// @Success 200 {object} util.Response
// @Router /api/topics/{topicId}/session [delete]
func (c *TopicController) ResetSession(ctx *gin.Context) {
	c.Session.Reset(middleware.GetSubject(ctx), ctx.Param("topicId"))
	util.Success(ctx, nil)
}
