package model_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/swiish/swiish/internal/webserver/model"
)

func TestCreateDuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	users := model.UserRepository{DB: db}

	require.NoError(t, users.Create(&model.User{Email: "jo@example.com", PasswordHash: "x"}))

	err := users.Create(&model.User{Email: "JO@example.com", PasswordHash: "x"})
	assert.ErrorIs(t, err, model.ErrDuplicateEmail)
}

func TestInsertConflictIsTranslated(t *testing.T) {
	db := openTestDB(t)
	users := model.UserRepository{DB: db}

	require.NoError(t, users.Create(&model.User{Email: "jo@example.com", PasswordHash: "x"}))

	// A concurrent insert slips past Create's pre-check and hits the unique
	// index instead. The driver must surface that as gorm's duplicated-key
	// sentinel for the repository to map it.
	dup := model.User{ID: uuid.NewString(), Email: "jo@example.com", PasswordHash: "x"}
	err := db.Create(&dup).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestChangeRoleConcurrentDemotions(t *testing.T) {
	for round := 0; round < 5; round++ {
		t.Run(fmt.Sprintf("round %d", round), func(t *testing.T) {
			db := openTestDB(t)
			users := model.UserRepository{DB: db}

			orgID := uuid.NewString()
			require.NoError(t, db.Create(&model.Organisation{ID: orgID, Name: "Acme", Slug: "acme"}).Error)

			a := &model.User{ID: uuid.NewString(), Email: "a@example.com", PasswordHash: "x", OrganisationID: &orgID, Role: model.RoleOwner}
			b := &model.User{ID: uuid.NewString(), Email: "b@example.com", PasswordHash: "x", OrganisationID: &orgID, Role: model.RoleOwner}
			require.NoError(t, db.Create(a).Error)
			require.NoError(t, db.Create(b).Error)

			asOwner := func(u *model.User) model.Principal {
				return model.Principal{UserID: u.ID, OrganisationID: orgID, Role: model.RoleOwner}
			}

			results := make(chan error, 2)
			var wg sync.WaitGroup
			wg.Add(2)
			demote := func(actor, target *model.User) {
				defer wg.Done()
				results <- users.ChangeRole(asOwner(actor), target.ID, model.RoleMember)
			}
			go demote(a, b)
			go demote(b, a)
			wg.Wait()
			close(results)

			var succeeded int64
			for err := range results {
				if err == nil {
					succeeded++
				}
			}

			owners, err := users.CountOwners(orgID)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, owners, int64(1), "an organisation never loses its last owner")
			assert.Equal(t, 2-succeeded, owners, "every successful demotion removed exactly one owner")
		})
	}
}
