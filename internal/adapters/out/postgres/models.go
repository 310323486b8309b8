package postgres

import (
	"github.com/ArmandoCH85/sistemtransporte/internal/adapters/out/postgres/assignmentrepo"
	"github.com/ArmandoCH85/sistemtransporte/internal/adapters/out/postgres/historyrepo"
	"github.com/ArmandoCH85/sistemtransporte/internal/adapters/out/postgres/notificationrepo"
	"github.com/ArmandoCH85/sistemtransporte/internal/adapters/out/postgres/requestrepo"
	"github.com/ArmandoCH85/sistemtransporte/internal/adapters/out/postgres/worklogrepo"

	"gorm.io/gorm"
)

// Models lists every table of the service in creation order.
func Models() []any {
	return []any{
		&requestrepo.RequestDTO{},
		&requestrepo.ImageDTO{},
		&assignmentrepo.AssignmentDTO{},
		&historyrepo.StatusEntryDTO{},
		&notificationrepo.NotificationDTO{},
		&worklogrepo.WorkLogDTO{},
	}
}

// Migrate creates or alters the tables to match the models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
