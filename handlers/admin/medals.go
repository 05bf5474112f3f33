// handlers/admin/medals.go
package admin

import (
	"net/http"

	"github.com/kovalets-vlad/Gamified-habit-tracker/database"
	"github.com/kovalets-vlad/Gamified-habit-tracker/models"
	"github.com/kovalets-vlad/Gamified-habit-tracker/utils"
)

// GetMedals returns all medals
func GetMedals(w http.ResponseWriter, r *http.Request) {
	db := database.GetDB()

	var medals []models.Medal
	if err := db.Find(&medals).Error; err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "Failed to fetch medals")
		return
	}

	utils.JSON(w, http.StatusOK, medals)
}

// CreateMedal creates a new medal
func CreateMedal(w http.ResponseWriter, r *http.Request) {
	db := database.GetDB()

	var medal models.Medal
	if err := utils.ParseJSON(r, &medal); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if medal.Title == "" {
		utils.JSONError(w, http.StatusBadRequest, "Title required")
		return
	}

	if err := db.Create(&medal).Error; err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "Failed to create medal")
		return
	}

	utils.JSON(w, http.StatusCreated, medal)
}

// UpdateMedal updates an existing medal
func UpdateMedal(w http.ResponseWriter, r *http.Request) {
	db := database.GetDB()
	id := utils.Param(r, "id")

	var medal models.Medal
	if err := db.First(&medal, id).Error; err != nil {
		utils.JSONError(w, http.StatusNotFound, "Medal not found")
		return
	}

	if err := utils.ParseJSON(r, &medal); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := db.Save(&medal).Error; err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "Failed to update medal")
		return
	}

	utils.JSON(w, http.StatusOK, medal)
}

// DeleteMedal removes a medal and its achievement links
func DeleteMedal(w http.ResponseWriter, r *http.Request) {
	db := database.GetDB()
	id := utils.Param(r, "id")

	var medal models.Medal
	if err := db.First(&medal, id).Error; err != nil {
		utils.JSONError(w, http.StatusNotFound, "Medal not found")
		return
	}

	if err := db.Where("medal_id = ?", medal.ID).Delete(&models.MedalAchievementLink{}).Error; err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "Failed to delete medal links")
		return
	}
	if err := db.Delete(&medal).Error; err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "Failed to delete medal")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Medal deleted successfully",
	})
}

// LinkAchievement attaches an achievement to a medal
func LinkAchievement(w http.ResponseWriter, r *http.Request) {
	db := database.GetDB()
	medalID := utils.Param(r, "id")
	achievementID := utils.Param(r, "achievementId")

	var medal models.Medal
	if err := db.First(&medal, medalID).Error; err != nil {
		utils.JSONError(w, http.StatusNotFound, "Medal not found")
		return
	}
	var achievement models.Achievement
	if err := db.First(&achievement, achievementID).Error; err != nil {
		utils.JSONError(w, http.StatusNotFound, "Achievement not found")
		return
	}

	link := models.MedalAchievementLink{
		MedalID:       medal.ID,
		AchievementID: achievement.ID,
	}
	if err := db.Create(&link).Error; err != nil {
		utils.JSONError(w, http.StatusConflict, "Achievement already linked")
		return
	}

	utils.JSON(w, http.StatusCreated, link)
}

// UnlinkAchievement detaches an achievement from a medal
func UnlinkAchievement(w http.ResponseWriter, r *http.Request) {
	db := database.GetDB()
	medalID := utils.Param(r, "id")
	achievementID := utils.Param(r, "achievementId")

	var link models.MedalAchievementLink
	if err := db.Where("medal_id = ? AND achievement_id = ?", medalID, achievementID).
		First(&link).Error; err != nil {
		utils.JSONError(w, http.StatusNotFound, "Link not found")
		return
	}

	if err := db.Delete(&link).Error; err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "Failed to unlink achievement")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Achievement unlinked",
	})
}
