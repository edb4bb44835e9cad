package repositories

import (
	"github.com/formpilot/formpilot/src/db"
	"github.com/formpilot/formpilot/src/models"
	"gorm.io/gorm"
)

//go:generate mockgen -source=form_repository.go -destination=mock_repositories/mock_form_repository.go -package=mock_repositories

type FormRepo interface {
	Create(form *models.Form) error
	FindByID(id uint) (models.Form, error)
	FindByUserID(userID uint) ([]models.Form, error)
	Update(form *models.Form) error
	DeleteWithSubmissions(id uint) error
	SubmissionCounts(formIDs []uint) (map[uint]int64, error)
}

type DBFormRepo struct{}

func (r *DBFormRepo) Create(form *models.Form) error {
	return db.DB.Create(form).Error
}

func (r *DBFormRepo) FindByID(id uint) (models.Form, error) {
	var form models.Form
	err := db.DB.First(&form, id).Error
	return form, err
}

func (r *DBFormRepo) FindByUserID(userID uint) ([]models.Form, error) {
	var forms []models.Form
	err := db.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&forms).Error
	return forms, err
}

func (r *DBFormRepo) Update(form *models.Form) error {
	return db.DB.Save(form).Error
}

// DeleteWithSubmissions removes a form and its submissions in one
// transaction so a crash cannot leave orphaned submission rows.
func (r *DBFormRepo) DeleteWithSubmissions(id uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("form_id = ?", id).Delete(&models.Submission{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Form{}, id).Error
	})
}

func (r *DBFormRepo) SubmissionCounts(formIDs []uint) (map[uint]int64, error) {
	var rows []models.FormSubmissionCount
	if len(formIDs) == 0 {
		return map[uint]int64{}, nil
	}
	err := db.DB.Where("form_id IN ?", formIDs).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.FormID] = row.Count
	}
	return counts, nil
}
