package migration

import (
	"github.com/IYair/disclosure-page-uac-sub000/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.CategoryModel{},
		&models.ExerciseModel{},
		&models.NoteModel{},
		&models.NewsModel{},
		&models.CommentModel{},
		&models.TicketModel{},
	}
}
