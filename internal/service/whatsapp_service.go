package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"

	"github.com/dtalero78/siigo-retiros/internal/config"
	"github.com/dtalero78/siigo-retiros/internal/model"
	"github.com/dtalero78/siigo-retiros/internal/repository"
	"github.com/dtalero78/siigo-retiros/internal/util"
	"github.com/dtalero78/siigo-retiros/pkg/monitoring"
)

// WhatsAppService sends survey invitations over Twilio's WhatsApp
// content API. Bulk sends are paced in batches so the Twilio rate
// limits are never hit.
type WhatsAppService struct {
	cfg    config.TwilioConfig
	survey config.SurveyConfig
	users  *repository.UserRepository
	client *twilio.RestClient
	log    *zap.Logger
}

func NewWhatsAppService(cfg config.TwilioConfig, survey config.SurveyConfig, users *repository.UserRepository, log *zap.Logger) *WhatsAppService {
	s := &WhatsAppService{cfg: cfg, survey: survey, users: users, log: log}
	if cfg.AccountSID != "" && cfg.AuthToken != "" {
		s.client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.AccountSID,
			Password: cfg.AuthToken,
		})
	}
	return s
}

func (s *WhatsAppService) Enabled() bool {
	return s.client != nil
}

// FormatPhone normalizes a roster phone to E.164 for the whatsapp:
// address. Ten-digit numbers get the default country code (Colombian
// mobiles arrive without one).
func (s *WhatsAppService) FormatPhone(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	n := digits.String()
	if n == "" {
		return ""
	}
	cc := s.cfg.DefaultCountryCode
	if cc == "" {
		cc = "57"
	}
	if len(n) == 10 {
		return "+" + cc + n
	}
	return "+" + n
}

// FormURL builds the personalized survey link for a roster entry.
func (s *WhatsAppService) FormURL(user *model.User) string {
	return fmt.Sprintf("%s?userId=%d", s.survey.FormURL, user.ID)
}

// SendInvitation delivers one templated invitation and records the
// delivery on the roster entry.
func (s *WhatsAppService) SendInvitation(ctx context.Context, user *model.User) (string, error) {
	if !s.Enabled() {
		return "", util.ErrTwilioNotConfigured
	}
	phone := s.FormatPhone(user.Phone)
	if phone == "" {
		return "", util.ErrUserWithoutPhone
	}

	variables, err := json.Marshal(map[string]string{
		"1": user.FirstName,
		"2": s.FormURL(user),
	})
	if err != nil {
		return "", err
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo("whatsapp:" + phone)
	params.SetContentSid(s.cfg.TemplateSID)
	params.SetContentVariables(string(variables))
	if s.cfg.MessagingServiceSID != "" {
		params.SetMessagingServiceSid(s.cfg.MessagingServiceSID)
	} else {
		params.SetFrom("whatsapp:" + s.cfg.WhatsAppNumber)
	}

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		monitoring.WhatsAppCounter.WithLabelValues("error").Inc()
		return "", fmt.Errorf("twilio send to %s: %w", phone, err)
	}

	sid := ""
	if resp.Sid != nil {
		sid = *resp.Sid
	}
	if err := s.users.MarkWhatsAppSent(user.ID, sid); err != nil {
		s.log.Error("invitation sent but roster update failed",
			zap.Uint("user_id", user.ID), zap.Error(err))
	}
	monitoring.WhatsAppCounter.WithLabelValues("sent").Inc()
	s.log.Info("whatsapp invitation sent",
		zap.Uint("user_id", user.ID),
		zap.String("message_sid", sid))
	return sid, nil
}

// BulkResult summarizes one bulk send run.
type BulkResult struct {
	BatchID string            `json:"batchId"`
	Total   int               `json:"total"`
	Sent    int               `json:"sent"`
	Failed  int               `json:"failed"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// SendBulk invites every listed roster entry, pacing messages inside a
// batch and pausing between batches. A cancelled context stops the run
// and the partial result is still returned.
func (s *WhatsAppService) SendBulk(ctx context.Context, userIDs []uint) (*BulkResult, error) {
	if !s.Enabled() {
		return nil, util.ErrTwilioNotConfigured
	}

	result := &BulkResult{
		BatchID: uuid.New().String(),
		Total:   len(userIDs),
		Errors:  map[string]string{},
	}

	batchSize := s.survey.BatchSize
	if batchSize <= 0 {
		batchSize = 20
	}

	s.log.Info("bulk whatsapp send started",
		zap.String("batch_id", result.BatchID),
		zap.Int("total", result.Total),
		zap.Int("batch_size", batchSize))

	for i, id := range userIDs {
		if err := s.pace(ctx, i, batchSize); err != nil {
			return result, err
		}

		user, err := s.users.FindByID(id)
		if err != nil {
			result.Failed++
			result.Errors[fmt.Sprint(id)] = err.Error()
			continue
		}
		if _, err := s.SendInvitation(ctx, user); err != nil {
			result.Failed++
			result.Errors[fmt.Sprint(id)] = err.Error()
			s.log.Warn("bulk send failure",
				zap.String("batch_id", result.BatchID),
				zap.Uint("user_id", id),
				zap.Error(err))
			continue
		}
		result.Sent++
	}

	s.log.Info("bulk whatsapp send finished",
		zap.String("batch_id", result.BatchID),
		zap.Int("sent", result.Sent),
		zap.Int("failed", result.Failed))
	return result, nil
}

// SendPending invites every roster entry that has not submitted yet.
func (s *WhatsAppService) SendPending(ctx context.Context) (*BulkResult, error) {
	users, err := s.users.FindWithoutResponse()
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return s.SendBulk(ctx, ids)
}

// pace sleeps between messages and, on batch boundaries, between
// batches. Message index 0 sends immediately.
func (s *WhatsAppService) pace(ctx context.Context, index, batchSize int) error {
	if index == 0 {
		return nil
	}
	delay := s.survey.MessageDelay
	if index%batchSize == 0 {
		delay = s.survey.BatchDelay
		s.log.Debug("batch boundary, pausing", zap.Int("next_index", index))
	}
	if delay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}
