// handlers/admin/quests.go
package admin

import (
	"net/http"

	"github.com/kovalets-vlad/Gamified-habit-tracker/database"
	"github.com/kovalets-vlad/Gamified-habit-tracker/models"
	"github.com/kovalets-vlad/Gamified-habit-tracker/services"
	"github.com/kovalets-vlad/Gamified-habit-tracker/utils"
)

// GetQuests returns all quests, including inactive ones
func GetQuests(w http.ResponseWriter, r *http.Request) {
	db := database.GetDB()

	var quests []models.Quest
	if err := db.Find(&quests).Error; err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "Failed to fetch quests")
		return
	}

	utils.JSON(w, http.StatusOK, quests)
}

// CreateQuest creates a new quest
func CreateQuest(w http.ResponseWriter, r *http.Request) {
	db := database.GetDB()

	var quest models.Quest
	if err := utils.ParseJSON(r, &quest); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if quest.Title == "" || quest.Condition == "" {
		utils.JSONError(w, http.StatusBadRequest, "Title and condition required")
		return
	}
	if _, err := services.ParseCondition(quest.Condition); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Condition is not valid JSON")
		return
	}

	quest.IsActive = true
	if err := db.Create(&quest).Error; err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "Failed to create quest")
		return
	}

	utils.JSON(w, http.StatusCreated, quest)
}

// UpdateQuest updates an existing quest
func UpdateQuest(w http.ResponseWriter, r *http.Request) {
	db := database.GetDB()
	id := utils.Param(r, "id")

	var quest models.Quest
	if err := db.First(&quest, id).Error; err != nil {
		utils.JSONError(w, http.StatusNotFound, "Quest not found")
		return
	}

	if err := utils.ParseJSON(r, &quest); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if _, err := services.ParseCondition(quest.Condition); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Condition is not valid JSON")
		return
	}

	if err := db.Save(&quest).Error; err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "Failed to update quest")
		return
	}

	utils.JSON(w, http.StatusOK, quest)
}

// DeleteQuest deactivates a quest (soft delete)
func DeleteQuest(w http.ResponseWriter, r *http.Request) {
	db := database.GetDB()
	id := utils.Param(r, "id")

	var quest models.Quest
	if err := db.First(&quest, id).Error; err != nil {
		utils.JSONError(w, http.StatusNotFound, "Quest not found")
		return
	}

	if err := db.Model(&quest).Update("is_active", false).Error; err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "Failed to deactivate quest")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Quest deactivated",
	})
}
