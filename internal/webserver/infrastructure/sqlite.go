package infrastructure

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/swiish/swiish/internal/webserver/model"
)

func Connect(path string) *gorm.DB {
	if _, err := os.Stat(path); os.IsNotExist(err) && !strings.Contains(path, ":memory:") {
		if _, err = os.Create(path); err != nil {
			log.Fatal(err)
		}
		log.Printf("Created database at %s\n", path)
	}

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("%s?_pragma=foreign_keys(1)", path)), &gorm.Config{
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		TranslateError: true,
	})
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&model.Organisation{},
		&model.User{},
		&model.OrganisationSetting{},
		&model.Card{},
		&model.Invitation{},
		&model.PasswordReset{},
		&model.EmailVerification{},
	); err != nil {
		log.Fatal(err)
	}
	return db
}
