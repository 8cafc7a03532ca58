package controller

import (
	"mdsml_gateway/internal/client"
	"mdsml_gateway/internal/middleware"
	"mdsml_gateway/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	Backend *client.BackendClient
}

func NewCourseController(backend *client.BackendClient) *CourseController {
	return &CourseController{Backend: backend}
}

// List godoc
// @Summary 课程列表
// @Tags 课程
// @Produce  json
// @Security BearerAuth
// @Param   category query string false "课程分类"
// @Success 200 {object} util.Response
// @Router /api/courses [get]
func (c *CourseController) List(ctx *gin.Context) {
	courses, err := c.Backend.ListCourses(ctx.Request.Context(), middleware.GetToken(ctx), ctx.Query("category"))
	if err != nil {
		respondBackendError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

func (c *CourseController) Get(ctx *gin.Context) {
	course, err := c.Backend.GetCourse(ctx.Request.Context(), middleware.GetToken(ctx), ctx.Param("id"))
	if err != nil {
		respondBackendError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// Enroll godoc
// @Summary 选课
// @Tags 课程
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "课程ID"
// @Success 200 {object} util.Response
// @Router /api/courses/{id}/enroll [post]
func (c *CourseController) Enroll(ctx *gin.Context) {
	result, err := c.Backend.EnrollCourse(ctx.Request.Context(), middleware.GetToken(ctx), ctx.Param("id"))
	if err != nil {
		respondBackendError(ctx, err)
		return
	}
	util.Success(ctx, result)
}
