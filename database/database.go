package database

import (
	"strings"

	"portfolio-admin/internal/domain/about"
	"portfolio-admin/internal/domain/competence"
	"portfolio-admin/internal/domain/contact"
	"portfolio-admin/internal/domain/home"
	"portfolio-admin/internal/domain/inbox"
	"portfolio-admin/internal/domain/media"
	"portfolio-admin/internal/domain/resume"
	"portfolio-admin/internal/domain/scripts"
	"portfolio-admin/internal/domain/skills"
	"portfolio-admin/internal/domain/users"
	"portfolio-admin/internal/domain/works"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init opens the database and migrates all domain models. A postgres URL is
// expected in production; anything else is treated as a sqlite DSN, which is
// what dev setups and the handler tests use.
func Init(dsn string) error {
	var dialector gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return err
	}

	DB = db

	return DB.AutoMigrate(
		&users.User{},

		// media
		&media.Image{},
		&media.Video{},

		// page content
		&about.About{},
		&home.BigText{},
		&home.LinkSet{},

		// works
		&works.WorkItem{},
		&scripts.Script{},
		&competence.Competence{},

		// profile lists
		&skills.Skill{},
		&skills.Strength{},
		&resume.Education{},
		&resume.Experience{},

		// contact
		&contact.Contact{},
		&contact.ContactDetails{},

		// inbound queries
		&inbox.Query{},
	)
}
