// handlers/admin/users.go
package admin

import (
	"net/http"
	"strconv"

	"github.com/kovalets-vlad/Gamified-habit-tracker/database"
	"github.com/kovalets-vlad/Gamified-habit-tracker/models"
	"github.com/kovalets-vlad/Gamified-habit-tracker/utils"
)

// GetUsers returns all users with pagination
func GetUsers(w http.ResponseWriter, r *http.Request) {
	db := database.GetDB()

	pageStr := utils.Query(r, "page", "1")
	limitStr := utils.Query(r, "limit", "20")
	search := utils.Query(r, "search", "")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = 20
	}

	offset := (page - 1) * limit

	var users []models.User
	var total int64

	query := db.Model(&models.User{})
	if search != "" {
		query = query.Where("username LIKE ? OR nickname LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	query.Count(&total)

	if err := query.Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "Failed to fetch users")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"users": users,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GetUser returns a single user by ID
func GetUser(w http.ResponseWriter, r *http.Request) {
	db := database.GetDB()
	id := utils.Param(r, "id")

	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		utils.JSONError(w, http.StatusNotFound, "User not found")
		return
	}

	utils.JSON(w, http.StatusOK, user)
}

// UpdateUser changes a user's nickname or role
func UpdateUser(w http.ResponseWriter, r *http.Request) {
	db := database.GetDB()
	id := utils.Param(r, "id")

	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		utils.JSONError(w, http.StatusNotFound, "User not found")
		return
	}

	var body struct {
		Nickname string `json:"nickname"`
		Role     string `json:"role"`
	}
	if err := utils.ParseJSON(r, &body); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updates := map[string]interface{}{}
	if body.Nickname != "" {
		updates["nickname"] = body.Nickname
	}
	if body.Role != "" {
		switch models.Role(body.Role) {
		case models.RoleAdmin, models.RoleUser, models.RoleManager, models.RoleModerator:
			updates["role"] = body.Role
		default:
			utils.JSONError(w, http.StatusBadRequest, "Unknown role")
			return
		}
	}

	if len(updates) > 0 {
		if err := db.Model(&user).Updates(updates).Error; err != nil {
			utils.JSONError(w, http.StatusInternalServerError, "Failed to update user")
			return
		}
	}

	db.First(&user, id)
	utils.JSON(w, http.StatusOK, user)
}

// DeleteUser removes a user account
func DeleteUser(w http.ResponseWriter, r *http.Request) {
	db := database.GetDB()
	id := utils.Param(r, "id")

	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		utils.JSONError(w, http.StatusNotFound, "User not found")
		return
	}

	if err := db.Delete(&user).Error; err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "Failed to delete user")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "User deleted successfully",
	})
}
