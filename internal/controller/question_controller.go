package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/dtalero78/siigo-retiros/internal/survey"
	"github.com/dtalero78/siigo-retiros/internal/util"
)

type QuestionController struct {
	Resolver *survey.Resolver
	Renderer *survey.Renderer
}

func NewQuestionController(resolver *survey.Resolver, renderer *survey.Renderer) *QuestionController {
	return &QuestionController{Resolver: resolver, Renderer: renderer}
}

// @Summary Get the questionnaire for an area
// @Description Returns the ordered question list of the catalog serving the given area. Unknown or missing areas get the general catalog.
// @Tags questions
// @Produce json
// @Param area query string false "Organizational area"
// @Success 200 {object} util.Response
// @Router /api/questions [get]
func (c *QuestionController) GetQuestions(ctx *gin.Context) {
	cat := c.Resolver.Resolve(ctx.Query("area"))
	util.Success(ctx, gin.H{
		"catalog":   cat.Name,
		"questions": cat.Questions,
	})
}

// @Summary Get the rendered form for an area
// @Description Returns the catalog expanded into renderer widgets, one per question, with matrix questions expanded into rows.
// @Tags questions
// @Produce json
// @Param area query string false "Organizational area"
// @Success 200 {object} util.Response
// @Router /api/questions/form [get]
func (c *QuestionController) GetForm(ctx *gin.Context) {
	cat := c.Resolver.Resolve(ctx.Query("area"))
	util.Success(ctx, gin.H{
		"catalog": cat.Name,
		"fields":  c.Renderer.Fields(cat),
	})
}
