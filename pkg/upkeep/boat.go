package upkeep

import (
	"errors"

	"gorm.io/gorm"
	"tidewatch.xyz/boat-maintenance-service/pkg/common"
	"tidewatch.xyz/boat-maintenance-service/pkg/models"
)

// hasAccess reports whether userID is the boat's owner or a granted crew
// member. A missing boat is simply "no access"; the caller maps both to the
// same not-found response so existence is never leaked.
func (u *Upkeep) hasAccess(boatID string, userID string) (bool, error) {
	var boat models.Boat
	if err := u.Db.Conn.First(&boat, "id = ?", boatID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	if boat.OwnerID == userID {
		return true, nil
	}

	var count int64
	err := u.Db.Conn.Model(&models.CrewMember{}).
		Where("boat_id = ? AND user_id = ?", boatID, userID).
		Count(&count).Error
	return count > 0, err
}

func (u *Upkeep) getBoat(boatID string) (*models.Boat, error) {
	var boat models.Boat
	err := u.Db.Conn.First(&boat, "id = ?", boatID).Error
	return &boat, err
}

// boatsForUser returns owned boats plus boats shared through crew grants.
func (u *Upkeep) boatsForUser(userID string) ([]models.Boat, error) {
	var boats []models.Boat
	err := u.Db.Conn.
		Where("owner_id = ?", userID).
		Or("id IN (?)", u.Db.Conn.Model(&models.CrewMember{}).Select("boat_id").Where("user_id = ?", userID)).
		Find(&boats).Error
	return boats, err
}

func (u *Upkeep) ownedBoats(userID string) ([]models.Boat, error) {
	var boats []models.Boat
	err := u.Db.Conn.Where("owner_id = ?", userID).Find(&boats).Error
	return boats, err
}

// spendSummary aggregates maintenance-log costs per component for one boat.
func (u *Upkeep) spendSummary(boatID string) (*models.SpendSummary, error) {
	var components []models.Component
	if err := u.Db.Conn.Where("boat_id = ?", boatID).Find(&components).Error; err != nil {
		return nil, err
	}

	summary := models.SpendSummary{BoatID: boatID, Components: []models.ComponentSpend{}}

	for _, comp := range components {
		var logs []models.MaintenanceLog
		if err := u.Db.Conn.Where("component_id = ?", comp.ID).Find(&logs).Error; err != nil {
			return nil, err
		}

		spend := models.ComponentSpend{
			ComponentID:   comp.ID,
			ComponentName: comp.Name,
			LogCount:      len(logs),
			Total: common.Reducer(logs, func(acc float64, l models.MaintenanceLog) float64 {
				if l.Cost == nil {
					return acc
				}
				return acc + *l.Cost
			}, 0),
		}
		summary.Total += spend.Total
		summary.Components = append(summary.Components, spend)
	}

	return &summary, nil
}

type IBoatImpl struct {
	upkeep *Upkeep
}

func (ib *IBoatImpl) HasAccess(boatID string, userID string) (bool, error) {
	return ib.upkeep.hasAccess(boatID, userID)
}

func (ib *IBoatImpl) GetBoat(boatID string) (*models.Boat, error) {
	return ib.upkeep.getBoat(boatID)
}

func (ib *IBoatImpl) BoatsForUser(userID string) ([]models.Boat, error) {
	return ib.upkeep.boatsForUser(userID)
}

func (ib *IBoatImpl) OwnedBoats(userID string) ([]models.Boat, error) {
	return ib.upkeep.ownedBoats(userID)
}

func (ib *IBoatImpl) SpendSummary(boatID string) (*models.SpendSummary, error) {
	return ib.upkeep.spendSummary(boatID)
}

func (u *Upkeep) GetIBoat() IBoat {
	return &IBoatImpl{upkeep: u}
}
