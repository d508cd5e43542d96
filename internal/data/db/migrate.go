package db

import (
	"gorm.io/gorm"

	"github.com/yungbote/learnhub/internal/domain/catalog"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&catalog.SubjectRecord{},
		&catalog.CourseRecord{},
	)
}

func (s *Service) AutoMigrateAll() error {
	return AutoMigrateAll(s.db)
}
