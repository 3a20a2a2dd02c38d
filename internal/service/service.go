// Package service implements the POS business operations on top of the
// repository layer. Every successful mutation broadcasts exactly one event,
// strictly after its unit of work has committed.
package service

import (
	"pos-backend/internal/common/logger"
	"pos-backend/internal/domain"
	"pos-backend/internal/pkg/cache"
	"pos-backend/internal/repository"
)

// Broadcaster pushes a committed event to all live observers. Delivery is
// fire-and-forget; implementations must never block the caller on a slow
// observer.
type Broadcaster interface {
	Broadcast(e domain.Event)
}

type Service struct {
	Menu          MenuServiceInterface
	Orders        OrderServiceInterface
	Settlement    SettlementServiceInterface
	Notifications NotificationServiceInterface
}

func New(repo *repository.Repository, b Broadcaster, c cache.Cache, lg *logger.Logger) *Service {
	codes := NewCodeSource()
	mc := &menuCache{c: c}
	return &Service{
		Menu:          NewMenuService(repo.Menu, b, mc, lg),
		Orders:        NewOrderService(repo.Orders, b, mc, codes, lg),
		Settlement:    NewSettlementService(repo.Orders, repo.Transactions, b, mc, codes, lg),
		Notifications: NewNotificationService(repo.Notifications, b, lg),
	}
}

// MultiBroadcaster fans a committed event out to several sinks, typically the
// WebSocket hub plus the optional AMQP relay.
type MultiBroadcaster []Broadcaster

func (m MultiBroadcaster) Broadcast(e domain.Event) {
	for _, b := range m {
		if b != nil {
			b.Broadcast(e)
		}
	}
}
