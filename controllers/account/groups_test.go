package accountControllers

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/Kushalvgowda/Food-Chain-API/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := models.EnsureGroups(db); err != nil {
		t.Fatalf("seed groups: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := models.User{Username: username, Email: username + "@example.com", PasswordHash: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return &user
}

func TestAddToGroup(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "maria")

	user, err := AddToGroup(db, models.GroupManager, "maria")
	if err != nil {
		t.Fatalf("AddToGroup: %v", err)
	}

	var check models.User
	if err := db.Preload("Groups").First(&check, user.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !check.InGroup(models.GroupManager) {
		t.Error("maria should be a manager")
	}
	if check.IsCustomer() {
		t.Error("a manager is not a customer")
	}

	if _, err := AddToGroup(db, models.GroupManager, "ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("unknown user: got %v, want ErrUserNotFound", err)
	}
}

func TestRemoveFromGroup(t *testing.T) {
	db := newTestDB(t)
	member := seedUser(t, db, "crew")
	outsider := seedUser(t, db, "someone")

	if _, err := AddToGroup(db, models.GroupDeliveryCrew, "crew"); err != nil {
		t.Fatalf("AddToGroup: %v", err)
	}

	if _, err := RemoveFromGroup(db, models.GroupDeliveryCrew, outsider.ID); !errors.Is(err, ErrNotGroupMember) {
		t.Errorf("non-member removal: got %v, want ErrNotGroupMember", err)
	}
	if _, err := RemoveFromGroup(db, models.GroupDeliveryCrew, member.ID+99); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("unknown user: got %v, want ErrUserNotFound", err)
	}

	if _, err := RemoveFromGroup(db, models.GroupDeliveryCrew, member.ID); err != nil {
		t.Fatalf("RemoveFromGroup: %v", err)
	}
	var check models.User
	if err := db.Preload("Groups").First(&check, member.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if check.InGroup(models.GroupDeliveryCrew) {
		t.Error("crew should have been removed from the group")
	}
	if !check.IsCustomer() {
		t.Error("user with no groups is a customer again")
	}
}

func TestListGroupMembers(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "a")
	seedUser(t, db, "b")
	seedUser(t, db, "c")

	for _, name := range []string{"a", "b"} {
		if _, err := AddToGroup(db, models.GroupManager, name); err != nil {
			t.Fatalf("AddToGroup %s: %v", name, err)
		}
	}

	members, err := ListGroupMembers(db, models.GroupManager)
	if err != nil {
		t.Fatalf("ListGroupMembers: %v", err)
	}
	if len(members) != 2 {
		t.Errorf("got %d managers, want 2", len(members))
	}
}
