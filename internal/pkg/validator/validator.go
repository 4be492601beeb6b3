package validator

import (
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/jichangee/ai-chat/internal/api"
	"github.com/jichangee/ai-chat/internal/model"
)

const (
	minTemperature = 0
	maxTemperature = 2
)

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateSendMessage(req *api.SendMessageRequest) error {
	if strings.TrimSpace(req.Content) == "" {
		return invalid("content", "cannot be empty")
	}

	if req.QuotedMessageId != nil && *req.QuotedMessageId != "" {
		if _, err := uuid.Parse(*req.QuotedMessageId); err != nil {
			return invalid("quoted_message_id", "must be a uuid")
		}
	}

	return nil
}

func (v *Validator) ValidateCreateBot(req *api.CreateBotRequest) error {
	switch {
	case strings.TrimSpace(req.Name) == "":
		return invalid("name", "is required")
	case strings.TrimSpace(req.SystemPrompt) == "":
		return invalid("system_prompt", "is required")
	case strings.TrimSpace(req.ApiKey) == "":
		return invalid("api_key", "is required")
	}

	if err := checkTemperature(req.Temperature); err != nil {
		return err
	}
	if req.BaseUrl != nil && *req.BaseUrl != "" {
		return checkURL("base_url", *req.BaseUrl)
	}

	return nil
}

func (v *Validator) ValidateUpdateBot(req *api.UpdateBotRequest) error {
	if req.Name == nil && req.Avatar == nil && req.SystemPrompt == nil && req.TriggerKeywords == nil &&
		req.Model == nil && req.Temperature == nil && req.ApiKey == nil && req.BaseUrl == nil && req.IsActive == nil {
		return invalid("", "no fields to update")
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return invalid("name", "cannot be empty")
	}
	if err := checkTemperature(req.Temperature); err != nil {
		return err
	}
	if req.BaseUrl != nil && *req.BaseUrl != "" {
		return checkURL("base_url", *req.BaseUrl)
	}

	return nil
}

func (v *Validator) ValidateTestBot(req *api.TestBotRequest) error {
	if strings.TrimSpace(req.ApiKey) == "" {
		return invalid("api_key", "is required")
	}
	if strings.TrimSpace(req.BaseUrl) == "" {
		return invalid("base_url", "is required")
	}
	return checkURL("base_url", req.BaseUrl)
}

func (v *Validator) ValidateCreateFeed(req *api.CreateFeedRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return invalid("name", "is required")
	}
	if strings.TrimSpace(req.Url) == "" {
		return invalid("url", "is required")
	}
	return checkURL("url", req.Url)
}

func (v *Validator) ValidateUpdateFeed(req *api.UpdateFeedRequest) error {
	if req.Name == nil && req.Url == nil && req.IsActive == nil {
		return invalid("", "no fields to update")
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return invalid("name", "cannot be empty")
	}
	if req.Url != nil {
		return checkURL("url", *req.Url)
	}
	return nil
}

func (v *Validator) ValidateNotificationRule(req *api.UpdateNotificationRuleRequest) error {
	if req.BarkUrl != nil && strings.TrimSpace(*req.BarkUrl) != "" {
		return checkURL("bark_url", *req.BarkUrl)
	}
	return nil
}

func checkTemperature(t *float64) error {
	if t != nil && (*t < minTemperature || *t > maxTemperature) {
		return invalid("temperature", "must be between 0 and 2")
	}
	return nil
}

func checkURL(field, raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return invalid(field, "must be an http(s) url")
	}
	return nil
}

func invalid(field, reason string) error {
	return &model.ValidationError{Field: field, Reason: reason}
}
