package controller

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dtalero78/siigo-retiros/internal/model"
	"github.com/dtalero78/siigo-retiros/internal/service"
	"github.com/dtalero78/siigo-retiros/internal/util"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

type userRequest struct {
	FirstName      string `json:"firstName" binding:"required"`
	LastName       string `json:"lastName"`
	Identification string `json:"identification" binding:"required"`
	Phone          string `json:"phone"`
	ExitDate       string `json:"exitDate"`
	Area           string `json:"area"`
	Country        string `json:"country"`
	StartDate      string `json:"startDate"`
	Position       string `json:"position"`
	SubArea        string `json:"subArea"`
	Leader         string `json:"leader"`
	TrainingLeader string `json:"trainingLeader"`
	HiringCountry  string `json:"hiringCountry"`
}

func (r *userRequest) toModel() model.User {
	return model.User{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Identification: r.Identification,
		Phone:          r.Phone,
		ExitDate:       parseDateField(r.ExitDate),
		Area:           r.Area,
		Country:        r.Country,
		StartDate:      parseDateField(r.StartDate),
		Position:       r.Position,
		SubArea:        r.SubArea,
		Leader:         r.Leader,
		TrainingLeader: r.TrainingLeader,
		HiringCountry:  r.HiringCountry,
	}
}

func parseDateField(v string) *time.Time {
	if v == "" {
		return nil
	}
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return &t
	}
	return nil
}

// @Summary Register a departing employee
// @Tags users
// @Accept json
// @Produce json
// @Param user body userRequest true "Roster entry"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/users [post]
func (c *UserController) Create(ctx *gin.Context) {
	var req userRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := req.toModel()
	if err := c.UserService.Create(&user); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, user)
}

// @Summary Import a roster batch
// @Description Upserts entries by identification: existing entries are refreshed, new ones created.
// @Tags users
// @Accept json
// @Produce json
// @Param users body []userRequest true "Roster entries"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/users/import [post]
func (c *UserController) Import(ctx *gin.Context) {
	var reqs []userRequest
	if err := ctx.ShouldBindJSON(&reqs); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if len(reqs) == 0 {
		util.BadRequest(ctx, "empty roster batch")
		return
	}

	users := make([]model.User, 0, len(reqs))
	for i := range reqs {
		users = append(users, reqs[i].toModel())
	}

	created, updated, err := c.UserService.Import(users)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"created": created, "updated": updated})
}

// @Summary List roster entries
// @Tags users
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} util.Response
// @Router /api/users [get]
func (c *UserController) List(ctx *gin.Context) {
	page, limit := pagination(ctx)

	users, total, err := c.UserService.List(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: users, Total: total, Page: page, Limit: limit})
}

// @Summary Get one roster entry
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/users/{id} [get]
func (c *UserController) Get(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	user, err := c.UserService.Get(id)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// @Summary Update a roster entry
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body userRequest true "Roster entry"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/users/{id} [put]
func (c *UserController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	existing, err := c.UserService.Get(id)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	var req userRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	updated := req.toModel()
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	updated.WhatsAppSent = existing.WhatsAppSent
	updated.WhatsAppSentAt = existing.WhatsAppSentAt
	updated.WhatsAppMessageID = existing.WhatsAppMessageID
	updated.WhatsAppSendCount = existing.WhatsAppSendCount
	updated.ResponseSubmitted = existing.ResponseSubmitted
	updated.ResponseSubmittedAt = existing.ResponseSubmittedAt

	if err := c.UserService.Update(&updated); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, updated)
}

// @Summary Delete a roster entry
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/users/{id} [delete]
func (c *UserController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.UserService.Delete(id); err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": id})
}

// @Summary Roster entries still pending a survey
// @Tags users
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/users/pending [get]
func (c *UserController) Pending(ctx *gin.Context) {
	users, err := c.UserService.Pending()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, users)
}

// @Summary Roster outreach statistics
// @Description Totals of invitations sent and surveys submitted across the roster.
// @Tags users
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/users/stats [get]
func (c *UserController) Stats(ctx *gin.Context) {
	stats, err := c.UserService.Stats()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

func pagination(ctx *gin.Context) (page, limit int) {
	page = intQuery(ctx, "page", 1)
	limit = intQuery(ctx, "limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 20
	}
	return page, limit
}
