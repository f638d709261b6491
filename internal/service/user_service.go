package service

import (
	"go.uber.org/zap"

	"github.com/dtalero78/siigo-retiros/internal/model"
	"github.com/dtalero78/siigo-retiros/internal/repository"
)

// UserService manages the departing-employee roster.
type UserService struct {
	users *repository.UserRepository
	log   *zap.Logger
}

func NewUserService(users *repository.UserRepository, log *zap.Logger) *UserService {
	return &UserService{users: users, log: log}
}

func (s *UserService) Create(user *model.User) error {
	return s.users.Create(user)
}

// Import upserts a roster batch by identification and reports how many
// entries were new versus refreshed.
func (s *UserService) Import(users []model.User) (created, updated int, err error) {
	created, updated, err = s.users.CreateBatch(users)
	if err == nil {
		s.log.Info("roster import finished",
			zap.Int("created", created),
			zap.Int("updated", updated))
	}
	return created, updated, err
}

func (s *UserService) Get(id uint) (*model.User, error) {
	return s.users.FindByID(id)
}

func (s *UserService) GetByIdentification(identification string) (*model.User, error) {
	return s.users.FindByIdentification(identification)
}

func (s *UserService) List(page, pageSize int) ([]model.User, int64, error) {
	return s.users.FindAll(page, pageSize)
}

func (s *UserService) Pending() ([]model.User, error) {
	return s.users.FindWithoutResponse()
}

func (s *UserService) Update(user *model.User) error {
	return s.users.Update(user)
}

func (s *UserService) Delete(id uint) error {
	return s.users.Delete(id)
}

func (s *UserService) Stats() (*repository.RosterStats, error) {
	return s.users.Stats()
}
