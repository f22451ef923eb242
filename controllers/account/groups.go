package accountControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Kushalvgowda/Food-Chain-API/models"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrNotGroupMember = errors.New("user is not in the group")
)

type GroupMemberInput struct {
	Username string `json:"username" binding:"required"`
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	return uint(id), err
}

// -------- Core Logic --------

// AddToGroup puts the named user into the role group. Groups are seeded at
// startup, so a missing group is a server error, not something to create here.
func AddToGroup(db *gorm.DB, groupName, username string) (*models.User, error) {
	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var group models.Group
	if err := db.Where("name = ?", groupName).First(&group).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&group).Association("Users").Append(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// RemoveFromGroup takes the user out of the role group.
func RemoveFromGroup(db *gorm.DB, groupName string, userID uint) (*models.User, error) {
	var group models.Group
	if err := db.Where("name = ?", groupName).First(&group).Error; err != nil {
		return nil, err
	}

	var user models.User
	if err := db.Preload("Groups").First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !user.InGroup(groupName) {
		return nil, ErrNotGroupMember
	}

	if err := db.Model(&group).Association("Users").Delete(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListGroupMembers returns all users in the role group.
func ListGroupMembers(db *gorm.DB, groupName string) ([]models.User, error) {
	var group models.Group
	if err := db.Preload("Users").Where("name = ?", groupName).First(&group).Error; err != nil {
		return nil, err
	}
	return group.Users, nil
}

// -------- Handlers --------

type memberSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// GET /groups/... for one role group
func ListGroupHandler(db *gorm.DB, groupName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := ListGroupMembers(db, groupName)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch group members"})
			return
		}

		members := make([]memberSummary, 0, len(users))
		for _, u := range users {
			members = append(members, memberSummary{ID: u.ID, Username: u.Username, Email: u.Email})
		}
		c.JSON(http.StatusOK, gin.H{"group": groupName, "users": members})
	}
}

// POST /groups/... for one role group
func AddToGroupHandler(db *gorm.DB, groupName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input GroupMemberInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username is required"})
			return
		}

		_, err := AddToGroup(db, groupName, input.Username)
		switch {
		case errors.Is(err, ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update group"})
		default:
			c.JSON(http.StatusCreated, gin.H{"message": input.Username + " added to " + groupName + " group"})
		}
	}
}

// DELETE /groups/.../:id for one role group
func RemoveFromGroupHandler(db *gorm.DB, groupName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := parseID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}

		user, err := RemoveFromGroup(db, groupName, userID)
		switch {
		case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrNotGroupMember):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found in " + groupName + " group"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update group"})
		default:
			c.JSON(http.StatusOK, gin.H{"message": user.Username + " has been removed from " + groupName + " group"})
		}
	}
}
