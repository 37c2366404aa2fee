package validators

import (
	"house-info-api/internal/models"
)

type UploadValidator interface {
	ValidateUpload(upload *models.Upload) error
}
