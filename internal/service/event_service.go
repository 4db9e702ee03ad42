package service

import (
	"context"
	"time"

	"event-org-console/internal/model"
	"event-org-console/internal/notify"
	"event-org-console/pkg/logger"

	"go.uber.org/zap"
)

// EventAPI 活動頁其餘分頁使用的遠端操作
type EventAPI interface {
	GuestAPI
	CreateActivity(ctx context.Context, eventID string, activity model.Activity) ([]model.Activity, error)
	UpdateActivity(ctx context.Context, eventID, activityID string, activity model.Activity) ([]model.Activity, error)
	DeleteActivity(ctx context.Context, eventID, activityID string) ([]model.Activity, error)
	CreateSpeaker(ctx context.Context, eventID string, speaker model.Speaker) ([]model.Speaker, error)
	UpdateSpeaker(ctx context.Context, eventID, speakerID string, speaker model.Speaker) ([]model.Speaker, error)
	DeleteSpeaker(ctx context.Context, eventID, speakerID string) ([]model.Speaker, error)
}

type EventAPIFactory func(token string) EventAPI

type EventService interface {
	GetOverview(ctx context.Context, token, eventID string) (*model.EventOverview, error)
	GetTicketTypes(ctx context.Context, token, eventID string, onSaleOnly bool) ([]model.TicketType, error)
	GetSchedule(ctx context.Context, token, eventID string) ([]model.Activity, error)
	CreateActivity(ctx context.Context, token, eventID string, activity model.Activity) ([]model.Activity, error)
	UpdateActivity(ctx context.Context, token, eventID, activityID string, activity model.Activity) ([]model.Activity, error)
	DeleteActivity(ctx context.Context, token, eventID, activityID string) ([]model.Activity, error)
	GetSpeakers(ctx context.Context, token, eventID string) ([]model.Speaker, error)
	CreateSpeaker(ctx context.Context, token, eventID string, speaker model.Speaker) ([]model.Speaker, error)
	UpdateSpeaker(ctx context.Context, token, eventID, speakerID string, speaker model.Speaker) ([]model.Speaker, error)
	DeleteSpeaker(ctx context.Context, token, eventID, speakerID string) ([]model.Speaker, error)
}

type EventServiceImpl struct {
	factory  EventAPIFactory
	notifier notify.Notifier
	now      func() time.Time
	log      *zap.Logger
}

func NewEventService(factory EventAPIFactory, notifier notify.Notifier) *EventServiceImpl {
	if notifier == nil {
		notifier = notify.Discard{}
	}
	return &EventServiceImpl{
		factory:  factory,
		notifier: notifier,
		now:      time.Now,
		log:      logger.WithComponent("event_service"),
	}
}

func (s *EventServiceImpl) GetOverview(ctx context.Context, token, eventID string) (*model.EventOverview, error) {
	event, err := s.factory(token).GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	overview := event.Overview()
	return &overview, nil
}

func (s *EventServiceImpl) GetTicketTypes(ctx context.Context, token, eventID string, onSaleOnly bool) ([]model.TicketType, error) {
	event, err := s.factory(token).GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !onSaleOnly {
		return event.TicketTypes, nil
	}
	now := s.now()
	onSale := make([]model.TicketType, 0, len(event.TicketTypes))
	for _, t := range event.TicketTypes {
		if t.IsOnSale(now) {
			onSale = append(onSale, t)
		}
	}
	return onSale, nil
}

func (s *EventServiceImpl) GetSchedule(ctx context.Context, token, eventID string) ([]model.Activity, error) {
	event, err := s.factory(token).GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return event.Schedule, nil
}

func (s *EventServiceImpl) CreateActivity(ctx context.Context, token, eventID string, activity model.Activity) ([]model.Activity, error) {
	schedule, err := s.factory(token).CreateActivity(ctx, eventID, activity)
	return schedule, s.report(ctx, eventID, "Activity added", "Failed to add activity", err)
}

func (s *EventServiceImpl) UpdateActivity(ctx context.Context, token, eventID, activityID string, activity model.Activity) ([]model.Activity, error) {
	schedule, err := s.factory(token).UpdateActivity(ctx, eventID, activityID, activity)
	return schedule, s.report(ctx, eventID, "Activity updated", "Failed to update activity", err)
}

func (s *EventServiceImpl) DeleteActivity(ctx context.Context, token, eventID, activityID string) ([]model.Activity, error) {
	schedule, err := s.factory(token).DeleteActivity(ctx, eventID, activityID)
	return schedule, s.report(ctx, eventID, "Activity removed", "Failed to remove activity", err)
}

func (s *EventServiceImpl) GetSpeakers(ctx context.Context, token, eventID string) ([]model.Speaker, error) {
	event, err := s.factory(token).GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return event.Speakers, nil
}

func (s *EventServiceImpl) CreateSpeaker(ctx context.Context, token, eventID string, speaker model.Speaker) ([]model.Speaker, error) {
	speakers, err := s.factory(token).CreateSpeaker(ctx, eventID, speaker)
	return speakers, s.report(ctx, eventID, "Speaker added", "Failed to add speaker", err)
}

func (s *EventServiceImpl) UpdateSpeaker(ctx context.Context, token, eventID, speakerID string, speaker model.Speaker) ([]model.Speaker, error) {
	speakers, err := s.factory(token).UpdateSpeaker(ctx, eventID, speakerID, speaker)
	return speakers, s.report(ctx, eventID, "Speaker updated", "Failed to update speaker", err)
}

func (s *EventServiceImpl) DeleteSpeaker(ctx context.Context, token, eventID, speakerID string) ([]model.Speaker, error) {
	speakers, err := s.factory(token).DeleteSpeaker(ctx, eventID, speakerID)
	return speakers, s.report(ctx, eventID, "Speaker removed", "Failed to remove speaker", err)
}

// report 寫入結果提示並原樣回傳 err
func (s *EventServiceImpl) report(ctx context.Context, eventID, success, failure string, err error) error {
	if err != nil {
		s.log.Error(failure, zap.String("event_id", eventID), zap.Error(err))
		s.notifier.Notify(ctx, eventID, model.NotificationError, failure)
		return err
	}
	s.notifier.Notify(ctx, eventID, model.NotificationSuccess, success)
	return nil
}
