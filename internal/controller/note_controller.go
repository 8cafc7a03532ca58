package controller

import (
	"mdsml_gateway/internal/middleware"
	"mdsml_gateway/internal/model"
	"mdsml_gateway/internal/service"
	"mdsml_gateway/internal/util"

	"github.com/gin-gonic/gin"
)

// NoteController 话题笔记与论文笔记共用一套处理器，
// 作用域由路由决定：话题笔记最新在前，论文笔记按插入顺序。
type NoteController struct {
	Notes *service.NoteService
}

func NewNoteController(notes *service.NoteService) *NoteController {
	return &NoteController{Notes: notes}
}

func topicScope(ctx *gin.Context) model.NoteScope {
	return model.NoteScope{
		Kind:  model.ScopeTopic,
		RefID: middleware.GetSubject(ctx) + "/" + ctx.Param("topicId"),
	}
}

func paperScope(ctx *gin.Context) model.NoteScope {
	return model.NoteScope{
		Kind:  model.ScopeResearch,
		RefID: middleware.GetSubject(ctx) + "/" + ctx.Param("id"),
	}
}

// swagger:model AddNoteRequest
type AddNoteRequest struct {
	Content string `json:"content" binding:"required"`
}

// AddTopicNote godoc
// @Summary 新增话题笔记
// @Description 含 YouTube 链接的内容自动识别为视频笔记
// @Tags 笔记
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   topicId path string true "话题ID"
// @Param   body body AddNoteRequest true "笔记内容"
// @Success 200 {object} util.Response{data=model.Note}
// @Failure 400 {object} util.Response "内容为空"
// @Router /api/topics/{topicId}/notes [post]
func (c *NoteController) AddTopicNote(ctx *gin.Context) {
	c.addNote(ctx, topicScope(ctx))
}

// ListTopicNotes 话题笔记，最新在前
func (c *NoteController) ListTopicNotes(ctx *gin.Context) {
	c.listNotes(ctx, topicScope(ctx))
}

// DeleteTopicNote 删除话题笔记，id 不存在时安全返回
func (c *NoteController) DeleteTopicNote(ctx *gin.Context) {
	c.deleteNote(ctx, topicScope(ctx))
}

// AddPaperNote godoc
// @Summary 新增论文笔记
// @Tags 笔记
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "论文ID"
// @Param   body body AddNoteRequest true "笔记内容"
// @Success 200 {object} util.Response{data=model.Note}
// @Router /api/papers/{id}/notes [post]
func (c *NoteController) AddPaperNote(ctx *gin.Context) {
	c.addNote(ctx, paperScope(ctx))
}

// ListPaperNotes 论文笔记，按插入顺序
func (c *NoteController) ListPaperNotes(ctx *gin.Context) {
	c.listNotes(ctx, paperScope(ctx))
}

func (c *NoteController) DeletePaperNote(ctx *gin.Context) {
	c.deleteNote(ctx, paperScope(ctx))
}

func (c *NoteController) addNote(ctx *gin.Context, scope model.NoteScope) {
	var req AddNoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	note, err := c.Notes.AddNote(scope, req.Content)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	util.Created(ctx, note)
}

func (c *NoteController) listNotes(ctx *gin.Context, scope model.NoteScope) {
	notes, err := c.Notes.ListNotes(scope)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, notes)
}

func (c *NoteController) deleteNote(ctx *gin.Context, scope model.NoteScope) {
	if err := c.Notes.DeleteNote(scope, ctx.Param("noteId")); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
