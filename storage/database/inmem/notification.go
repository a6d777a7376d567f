package inmemdb

import (
	"github.com/educonnect/educonnect/core/admin"
	"github.com/educonnect/educonnect/core/notification"
)

type notificationRepository struct {
	db *DB
}

func NewNotificationRepository(db *DB) notification.Repository {
	return &notificationRepository{db: db}
}

// CreateNotification prepends: the feed is most-recent-first.
func (repo *notificationRepository) CreateNotification(ntf notification.Notification) (notification.Notification, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	repo.db.notificationSeq++
	ntf.ID = repo.db.notificationSeq
	repo.db.notifications = append([]notification.Notification{ntf}, repo.db.notifications...)
	return ntf, nil
}

func (repo *notificationRepository) AllNotifications() ([]notification.Notification, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	notifications := make([]notification.Notification, len(repo.db.notifications))
	copy(notifications, repo.db.notifications)
	return notifications, nil
}

// MarkNotificationRead is a silent no-op when the id is absent.
func (repo *notificationRepository) MarkNotificationRead(id int) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	for i := range repo.db.notifications {
		if repo.db.notifications[i].ID == id {
			repo.db.notifications[i].Read = true
			break
		}
	}
	return nil
}

type adminRepository struct {
	db *DB
}

func NewAdminRepository(db *DB) admin.Repository {
	return &adminRepository{db: db}
}

func (repo *adminRepository) GetAdmin() (admin.Admin, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()
	return repo.db.admin, nil
}
