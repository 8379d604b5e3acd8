package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/devtrackhq/jobgrid/internal/models"
)

// SyncService is the store side of bulk sync: the pushed collection
// supersedes whatever was stored before, wholesale. There is no incremental
// diffing and no partial success; the replacement happens in one
// transaction.
type SyncService struct {
	DB *gorm.DB
}

func NewSyncService(db *gorm.DB) *SyncService {
	return &SyncService{DB: db}
}

func (s *SyncService) ListJobs() ([]models.JobApplication, error) {
	var jobs []models.JobApplication
	if err := s.DB.Order("position").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (s *SyncService) ReplaceJobs(jobs []models.JobApplication) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.JobApplication{}).Error; err != nil {
			return err
		}
		for i := range jobs {
			if jobs[i].ID == "" {
				jobs[i].ID = models.NewID()
			}
			jobs[i].Position = i
		}
		if len(jobs) == 0 {
			return nil
		}
		return tx.Create(&jobs).Error
	})
}

func (s *SyncService) DeleteJob(id string) error {
	res := s.DB.Delete(&models.JobApplication{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("job %s not found", id)
	}
	return nil
}

func (s *SyncService) ListPortals() ([]models.JobPortal, error) {
	var portals []models.JobPortal
	if err := s.DB.Order("position").Find(&portals).Error; err != nil {
		return nil, err
	}
	return portals, nil
}

func (s *SyncService) ReplacePortals(portals []models.JobPortal) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.JobPortal{}).Error; err != nil {
			return err
		}
		for i := range portals {
			if portals[i].ID == "" {
				portals[i].ID = models.NewID()
			}
			portals[i].Position = i
		}
		if len(portals) == 0 {
			return nil
		}
		return tx.Create(&portals).Error
	})
}
