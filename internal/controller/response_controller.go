package controller

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dtalero78/siigo-retiros/internal/service"
	"github.com/dtalero78/siigo-retiros/internal/util"
)

type ResponseController struct {
	ResponseService *service.ResponseService
	ExportService   *service.ExportService
}

func NewResponseController(responseService *service.ResponseService, exportService *service.ExportService) *ResponseController {
	return &ResponseController{
		ResponseService: responseService,
		ExportService:   exportService,
	}
}

// @Summary Submit a survey response
// @Description Validates the submission against its catalog and stores it. The raw payload is kept verbatim alongside the extracted fields.
// @Tags responses
// @Accept json
// @Produce json
// @Param area query string false "Organizational area"
// @Param submission body object true "Question answers keyed by q<number>"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/responses [post]
func (c *ResponseController) Submit(ctx *gin.Context) {
	raw, err := io.ReadAll(ctx.Request.Body)
	if err != nil || len(raw) == 0 {
		util.BadRequest(ctx, "empty request body")
		return
	}

	rec, validationErrs, err := c.ResponseService.Submit(ctx.Request.Context(), raw, ctx.Query("area"))
	if err != nil {
		if errors.Is(err, util.ErrDuplicateSubmission) {
			util.Conflict(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	if len(validationErrs) > 0 {
		ctx.JSON(http.StatusBadRequest, util.Response{
			Code:    http.StatusBadRequest,
			Message: "validation failed",
			Data:    gin.H{"errors": validationErrs},
		})
		return
	}

	util.Created(ctx, rec)
}

// @Summary List survey responses
// @Description Returns a page of responses, newest first.
// @Tags responses
// @Produce json
// @Param area query string false "Filter by area"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} util.Response
// @Router /api/responses [get]
func (c *ResponseController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 20
	}

	responses, total, err := c.ResponseService.List(ctx.Query("area"), page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  responses,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// @Summary Get one survey response
// @Tags responses
// @Produce json
// @Param id path int true "Response ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/responses/{id} [get]
func (c *ResponseController) Get(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	rec, err := c.ResponseService.Get(id)
	if err != nil {
		if errors.Is(err, util.ErrResponseNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, rec)
}

// @Summary Delete a survey response
// @Tags responses
// @Produce json
// @Param id path int true "Response ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/responses/{id} [delete]
func (c *ResponseController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.ResponseService.Delete(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, util.ErrResponseNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": id})
}

// @Summary Generate the AI analysis for a response
// @Description Runs the configured language model over the stored answers and persists the executive summary.
// @Tags responses
// @Produce json
// @Param id path int true "Response ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /api/responses/{id}/analysis [post]
func (c *ResponseController) Analyze(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	analysis, err := c.ResponseService.Analyze(ctx.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrResponseNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrAnalysisUnavailable):
			util.Error(ctx, http.StatusServiceUnavailable, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"analysis": analysis})
}

// @Summary Aggregate statistics over responses
// @Description Totals, average experience, recommendation percentages and categorical breakdowns. Bucket order follows first appearance.
// @Tags responses
// @Produce json
// @Param area query string false "Narrow the aggregation to one area"
// @Success 200 {object} util.Response
// @Router /api/responses/stats [get]
func (c *ResponseController) Stats(ctx *gin.Context) {
	report, err := c.ResponseService.Stats(ctx.Request.Context(), ctx.Query("area"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, report)
}

// @Summary Export responses as CSV
// @Description Streams the full response table in the fixed column layout the HR spreadsheets expect.
// @Tags responses
// @Produce text/csv
// @Param area query string false "Filter by area"
// @Success 200 {string} string "CSV file"
// @Router /api/responses/export [get]
func (c *ResponseController) ExportCSV(ctx *gin.Context) {
	filename := fmt.Sprintf("retiros-%s.csv", time.Now().Format("20060102"))
	ctx.Header("Content-Type", "text/csv; charset=utf-8")
	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := c.ExportService.WriteCSV(ctx.Writer, ctx.Query("area")); err != nil {
		util.LogInternalError(ctx, err)
	}
}

// pathID parses the :id path parameter, writing the 400 itself.
func pathID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return 0, false
	}
	return uint(id), true
}

func intQuery(ctx *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(ctx.DefaultQuery(name, strconv.Itoa(fallback)))
	if err != nil {
		return fallback
	}
	return v
}
