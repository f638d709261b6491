package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/dtalero78/siigo-retiros/internal/service"
	"github.com/dtalero78/siigo-retiros/internal/util"
)

type WhatsAppController struct {
	WhatsAppService *service.WhatsAppService
	UserService     *service.UserService
}

func NewWhatsAppController(whatsappService *service.WhatsAppService, userService *service.UserService) *WhatsAppController {
	return &WhatsAppController{
		WhatsAppService: whatsappService,
		UserService:     userService,
	}
}

// @Summary Send a survey invitation to one roster entry
// @Tags whatsapp
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /api/whatsapp/send/{id} [post]
func (c *WhatsAppController) Send(ctx *gin.Context) {
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

	sid, err := c.WhatsAppService.SendInvitation(ctx.Request.Context(), user)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrTwilioNotConfigured):
			util.Error(ctx, 503, err.Error())
		case errors.Is(err, util.ErrUserWithoutPhone):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"messageSid": sid})
}

type bulkSendRequest struct {
	UserIDs []uint `json:"userIds" binding:"required,min=1"`
}

// @Summary Send invitations to a list of roster entries
// @Description Sends are paced in batches to respect the messaging rate limits; the call returns when the whole run finishes.
// @Tags whatsapp
// @Accept json
// @Produce json
// @Param request body bulkSendRequest true "Roster entry IDs"
// @Success 200 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /api/whatsapp/send-bulk [post]
func (c *WhatsAppController) SendBulk(ctx *gin.Context) {
	var req bulkSendRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.WhatsAppService.SendBulk(ctx.Request.Context(), req.UserIDs)
	if err != nil {
		if errors.Is(err, util.ErrTwilioNotConfigured) {
			util.Error(ctx, 503, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// @Summary Send invitations to everyone still pending
// @Description Invites every roster entry without a submitted survey.
// @Tags whatsapp
// @Produce json
// @Success 200 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /api/whatsapp/send-pending [post]
func (c *WhatsAppController) SendPending(ctx *gin.Context) {
	result, err := c.WhatsAppService.SendPending(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, util.ErrTwilioNotConfigured) {
			util.Error(ctx, 503, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, result)
}
