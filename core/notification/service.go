package notification

import "errors"

var (
	// errors
	ErrNotFound = errors.New("notification not found")
)

type (
	// Notification is a dashboard message with a human relative-time label.
	Notification struct {
		ID      int    `json:"id"`
		Message string `json:"message"`
		Time    string `json:"time"`
		Read    bool   `json:"read"`
	}

	Repository interface {
		// CreateNotification prepends so the feed stays most-recent-first.
		CreateNotification(n Notification) (Notification, error)
		AllNotifications() ([]Notification, error)
		MarkNotificationRead(id int) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Add(message string) (Notification, error) {
	return svc.repo.CreateNotification(Notification{
		Message: message,
		Time:    "Just now",
	})
}

func (svc *Service) All() ([]Notification, error) {
	return svc.repo.AllNotifications()
}

func (svc *Service) MarkRead(id int) error {
	return svc.repo.MarkNotificationRead(id)
}
