package notification

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/cheruvugattu/temple-booking-backend/utils"
)

const listLimit = 50

type Service interface {
	GetMyNotifications(ctx context.Context, devoteeID string) ([]InAppNotification, error)
	MarkRead(ctx context.Context, id, devoteeID string) error
	UnreadCount(ctx context.Context, devoteeID string) (int64, error)

	// StartConsumer drains the temple event stream into notification
	// rows until ctx is cancelled. A nil reader disables the consumer.
	StartConsumer(ctx context.Context, reader *kafka.Reader)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetMyNotifications(ctx context.Context, devoteeID string) ([]InAppNotification, error) {
	return s.repo.ListByDevotee(ctx, devoteeID, listLimit)
}

func (s *service) MarkRead(ctx context.Context, id, devoteeID string) error {
	affected, err := s.repo.MarkRead(ctx, id, devoteeID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return utils.NotFoundf("notification not found")
	}
	return nil
}

func (s *service) UnreadCount(ctx context.Context, devoteeID string) (int64, error) {
	return s.repo.CountUnread(ctx, devoteeID)
}

func (s *service) StartConsumer(ctx context.Context, reader *kafka.Reader) {
	if reader == nil {
		log.Println("ℹ️ Notification consumer disabled (no Kafka reader)")
		return
	}

	go func() {
		defer reader.Close()
		log.Println("✅ Notification consumer started")
		for {
			msg, err := reader.ReadMessage(ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return
				}
				log.Printf("⚠️ Notification consumer read error: %v", err)
				continue
			}

			var evt utils.Event
			if err := json.Unmarshal(msg.Value, &evt); err != nil {
				log.Printf("⚠️ Skipping malformed event: %v", err)
				continue
			}
			if evt.DevoteeID == "" {
				continue
			}

			n := &InAppNotification{
				ID:        uuid.NewString(),
				DevoteeID: evt.DevoteeID,
				Title:     evt.Title,
				Body:      evt.Body,
				Category:  evt.Category,
			}
			if err := s.repo.Create(ctx, n); err != nil {
				log.Printf("⚠️ Failed to store notification for %s: %v", evt.DevoteeID, err)
			}
		}
	}()
}
