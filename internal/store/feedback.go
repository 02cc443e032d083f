package store

import (
	"github.com/feedback-dev/feedback/db"
	"github.com/feedback-dev/feedback/internal/models"
)

func CreateFeedback(feedback *models.Feedback) error {
	return db.DB.Create(feedback).Error
}

func GetFeedback(id uint) (*models.Feedback, error) {
	var feedback models.Feedback

	if err := db.DB.Where("id = ?", id).First(&feedback).Error; err != nil {
		return nil, err
	}

	return &feedback, nil
}

func ListFeedbackByUsername(username string) ([]models.Feedback, error) {
	var feedback []models.Feedback

	if err := db.DB.Where("username = ?", username).Order("id").Find(&feedback).Error; err != nil {
		return nil, err
	}

	return feedback, nil
}

// UpdateFeedback rewrites title and content only; ownership never changes.
func UpdateFeedback(id uint, title, content string) error {
	return db.DB.Model(&models.Feedback{}).Where("id = ?", id).Updates(map[string]interface{}{
		"title":   title,
		"content": content,
	}).Error
}

func DeleteFeedback(id uint) error {
	return db.DB.Where("id = ?", id).Delete(&models.Feedback{}).Error
}
