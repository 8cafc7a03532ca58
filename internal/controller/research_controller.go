package controller

import (
	"mdsml_gateway/internal/service"
	"mdsml_gateway/internal/util"

	"github.com/gin-gonic/gin"
)

// 论文 PDF 上传的大小上限
const maxPDFSize = 50 << 20

// ResearchController 研究文献库
type ResearchController struct {
	Research *service.ResearchService
}

func NewResearchController(research *service.ResearchService) *ResearchController {
	return &ResearchController{Research: research}
}

// List godoc
// @Summary 文献列表
// @Description q 同时匹配标题和标签，大小写不敏感
// @Tags 文献
// @Produce  json
// @Security BearerAuth
// @Param   q query string false "搜索关键词"
// @Success 200 {object} util.Response
// @Router /api/papers [get]
func (c *ResearchController) List(ctx *gin.Context) {
	papers, err := c.Research.ListPapers(ctx.Query("q"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, papers)
}

func (c *ResearchController) Get(ctx *gin.Context) {
	paper, err := c.Research.GetPaper(ctx.Param("id"))
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	util.Success(ctx, paper)
}

// Add godoc
// @Summary 新增个人论文
// @Description 条目 ID 由标题派生，重复标题返回 409
// @Tags 文献
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.AddPaperRequest true "论文信息"
// @Success 201 {object} util.Response{data=model.Paper}
// @Failure 409 {object} util.Response "论文已存在"
// @Router /api/papers [post]
func (c *ResearchController) Add(ctx *gin.Context) {
	var req service.AddPaperRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	paper, err := c.Research.AddPaper(req)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	util.Created(ctx, paper)
}

// UploadPDF godoc
// @Summary 上传论文 PDF
// @Description 表单字段名 file，写入对象存储并把访问地址回填到条目
// @Tags 文献
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "论文ID"
// @Param   file formData file true "PDF 文件"
// @Success 200 {object} util.Response{data=model.Paper}
// @Router /api/papers/{id}/pdf [post]
func (c *ResearchController) UploadPDF(ctx *gin.Context) {
	header, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "missing file field")
		return
	}
	if header.Size > maxPDFSize {
		util.BadRequest(ctx, "file too large")
		return
	}

	file, err := header.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	paper, err := c.Research.AttachPDF(ctx.Request.Context(), ctx.Param("id"), file, header.Size)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	util.Success(ctx, paper)
}
