package rest

import (
	"github.com/jichangee/ai-chat/internal/api"
	"github.com/jichangee/ai-chat/internal/model"
	"github.com/jichangee/ai-chat/internal/rss"
)

func toAPIMessage(m model.Message) api.Message {
	out := api.Message{
		Id:         m.ID.String(),
		Content:    m.Content,
		SenderType: api.MessageSenderType(m.SenderType),
		SenderName: m.SenderName,
		CreatedAt:  m.CreatedAt,
		Metadata:   map[string]interface{}(m.Metadata),
	}
	if out.Metadata == nil {
		out.Metadata = map[string]interface{}{}
	}
	if m.SenderID != nil {
		id := m.SenderID.String()
		out.SenderId = &id
	}
	if m.QuotedMessageID != nil {
		id := m.QuotedMessageID.String()
		out.QuotedMessageId = &id
	}
	return out
}

func toAPIMessages(list []model.Message) []api.Message {
	out := make([]api.Message, 0, len(list))
	for _, m := range list {
		out = append(out, toAPIMessage(m))
	}
	return out
}

func toAPIEvent(ev model.Event) api.FanoutEvent {
	out := api.FanoutEvent{Type: api.FanoutEventType(ev.Type)}
	if ev.BotID != nil {
		id := ev.BotID.String()
		out.BotId = &id
	}
	if ev.MessageID != nil {
		id := ev.MessageID.String()
		out.MessageId = &id
	}
	if ev.BotName != "" {
		out.BotName = &ev.BotName
	}
	if ev.Content != "" {
		out.Content = &ev.Content
	}
	if ev.Error != "" {
		out.Error = &ev.Error
	}
	if ev.Message != nil {
		msg := toAPIMessage(*ev.Message)
		out.Message = &msg
	}
	return out
}

func toAPIBot(b model.Bot) api.Bot {
	keywords := []string(b.TriggerKeywords)
	if keywords == nil {
		keywords = []string{}
	}
	return api.Bot{
		Id:              b.ID.String(),
		Name:            b.Name,
		Avatar:          b.Avatar,
		SystemPrompt:    b.SystemPrompt,
		TriggerKeywords: keywords,
		Model:           b.Model,
		Temperature:     b.Temperature,
		BaseUrl:         b.BaseURL,
		HasApiKey:       b.APIKey != "",
		IsActive:        b.IsActive,
		CreatedAt:       b.CreatedAt,
	}
}

func toAPIFeed(f model.Feed) api.Feed {
	return api.Feed{
		Id:            f.ID.String(),
		Name:          f.Name,
		Url:           f.URL,
		IsActive:      f.IsActive,
		LastFetchedAt: f.LastFetchedAt,
		LastItemDate:  f.LastItemDate,
		CreatedAt:     f.CreatedAt,
	}
}

func toAPIRule(r model.NotificationRule) api.NotificationRule {
	keywords := []string(r.Keywords)
	if keywords == nil {
		keywords = []string{}
	}
	return api.NotificationRule{
		Id:       r.ID.String(),
		Keywords: keywords,
		BarkUrl:  r.BarkURL,
		IsActive: r.IsActive,
	}
}

func toAPISummary(s *rss.Summary) api.FetchFeedsResponse {
	results := make([]api.FeedFetchResult, 0, len(s.Results))
	for _, r := range s.Results {
		res := api.FeedFetchResult{Feed: r.Feed, NewItems: r.NewItems}
		if r.TotalAvailable > 0 {
			total := r.TotalAvailable
			res.TotalAvailable = &total
		}
		if r.Error != "" {
			msg := r.Error
			res.Error = &msg
		}
		results = append(results, res)
	}
	return api.FetchFeedsResponse{
		NewItems: s.NewItems,
		Results:  results,
	}
}
