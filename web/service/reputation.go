package service

import (
	"gorm.io/gorm"

	"github.com/starrep/starrep/database"
	"github.com/starrep/starrep/database/model"
)

// Action is a name from the closed reputation action catalog. Point values
// live server-side only so clients cannot forge scores.
type Action string

const (
	ActionDailyCheckIn Action = "daily-check-in"
	ActionCompleteTask Action = "complete-task"
)

var actionPoints = map[Action]int{
	ActionDailyCheckIn: 1,
	ActionCompleteTask: 5,
}

// Points returns the point value of the action, or false if the name is not
// in the catalog.
func (a Action) Points() (int, bool) {
	points, ok := actionPoints[a]
	return points, ok
}

// ReputationService accrues and reads per-user reputation scores.
type ReputationService struct {
	DB *gorm.DB
}

func NewReputationService() *ReputationService {
	return &ReputationService{DB: database.GetDB()}
}

// PerformAction applies a catalog action to the user's score and returns
// the points added and the new total. The increment is a single atomic
// UPDATE at the database; concurrent actions for the same user never lose
// updates.
func (s *ReputationService) PerformAction(userId int, action Action) (int, int, error) {
	points, ok := action.Points()
	if !ok {
		return 0, 0, ErrInvalidAction
	}

	result := s.DB.Model(model.User{}).
		Where("id = ?", userId).
		UpdateColumn("reputation_score", gorm.Expr("reputation_score + ?", points))
	if result.Error != nil {
		return 0, 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, 0, gorm.ErrRecordNotFound
	}

	total, err := s.GetScore(userId)
	if err != nil {
		return 0, 0, err
	}
	return points, total, nil
}

// GetScore returns the user's current score, defaulting to 0 when the
// record is missing.
func (s *ReputationService) GetScore(userId int) (int, error) {
	user := &model.User{}
	err := s.DB.Model(model.User{}).
		Select("reputation_score").
		Where("id = ?", userId).
		First(user).
		Error
	if database.IsNotFound(err) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return user.ReputationScore, nil
}
