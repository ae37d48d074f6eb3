package directory

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	directoryRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/directory"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/directory/models"
	"github.com/m04kA/SMC-RoomBookingService/pkg/passwords"
)

// Service сервис справочника команд и пользователей
type Service struct {
	directoryRepo DirectoryRepository
	bookingRepo   BookingRepository
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewService создает новый экземпляр сервиса справочника
func NewService(
	directoryRepo DirectoryRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		directoryRepo: directoryRepo,
		bookingRepo:   bookingRepo,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// RegisterUser регистрирует пользователя
// Пароль хэшируется bcrypt; если команда с таким ID ещё не заведена,
// она создаётся в той же транзакции
func (s *Service) RegisterUser(ctx context.Context, req *models.RegisterUserRequest) (*models.UserResponse, error) {
	s.logger.Info("RegisterUser: username=%q, team=%d", req.Username, req.TeamID)

	if req.Username == "" || req.FullName == "" || req.Password == "" {
		s.logger.Warn("RegisterUser: missing required fields for username=%q", req.Username)
		return nil, fmt.Errorf("%w: username, fullName and password are required", ErrInvalidInput)
	}
	if req.TeamID <= 0 {
		s.logger.Warn("RegisterUser: invalid team id=%d", req.TeamID)
		return nil, fmt.Errorf("%w: teamId must be positive", ErrInvalidInput)
	}

	hash, err := passwords.Hash(req.Password)
	if err != nil {
		s.logger.Error("RegisterUser: failed to hash password for %q: %v", req.Username, err)
		return nil, fmt.Errorf("%w: RegisterUser - hash password: %v", ErrInternal, err)
	}

	var created *domain.User

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Заводим команду, если её ещё нет
		_, err := s.directoryRepo.GetTeamByID(txCtx, req.TeamID)
		if errors.Is(err, directoryRepo.ErrTeamNotFound) {
			if req.TeamName == "" {
				s.logger.Warn("RegisterUser: team id=%d does not exist and no team name given", req.TeamID)
				return fmt.Errorf("%w: teamName is required for a new team", ErrInvalidInput)
			}
			if _, err := s.directoryRepo.CreateTeam(txCtx, &domain.Team{ID: req.TeamID, Name: req.TeamName}); err != nil {
				if errors.Is(err, directoryRepo.ErrTeamNameTaken) {
					return ErrTeamNameTaken
				}
				s.logger.Error("RegisterUser: failed to create team id=%d: %v", req.TeamID, err)
				return fmt.Errorf("%w: RegisterUser - create team: %v", ErrInternal, err)
			}
			s.logger.Info("RegisterUser: team id=%d name=%q created", req.TeamID, req.TeamName)
		} else if err != nil {
			s.logger.Error("RegisterUser: failed to get team id=%d: %v", req.TeamID, err)
			return fmt.Errorf("%w: RegisterUser - get team: %v", ErrInternal, err)
		}

		created, err = s.directoryRepo.CreateUser(txCtx, &domain.User{
			Username:     req.Username,
			FullName:     req.FullName,
			Position:     req.Position,
			PasswordHash: hash,
			TeamID:       req.TeamID,
		})
		if err != nil {
			if errors.Is(err, directoryRepo.ErrUsernameTaken) {
				s.logger.Warn("RegisterUser: username %q already taken", req.Username)
				return ErrUsernameTaken
			}
			s.logger.Error("RegisterUser: failed to create user %q: %v", req.Username, err)
			return fmt.Errorf("%w: RegisterUser - create user: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("RegisterUser: user id=%d username=%q registered", created.ID, created.Username)
	return models.FromDomainUser(created), nil
}

// CreateTeam создает команду
func (s *Service) CreateTeam(ctx context.Context, req *models.CreateTeamRequest) (*models.TeamResponse, error) {
	s.logger.Info("CreateTeam: id=%d, name=%q", req.ID, req.Name)

	if req.ID <= 0 || req.Name == "" {
		s.logger.Warn("CreateTeam: invalid input id=%d name=%q", req.ID, req.Name)
		return nil, fmt.Errorf("%w: id and name are required", ErrInvalidInput)
	}

	team, err := s.directoryRepo.CreateTeam(ctx, &domain.Team{ID: req.ID, Name: req.Name})
	if err != nil {
		switch {
		case errors.Is(err, directoryRepo.ErrTeamNameTaken):
			s.logger.Warn("CreateTeam: team name %q already taken", req.Name)
			return nil, ErrTeamNameTaken
		case errors.Is(err, directoryRepo.ErrTeamIDTaken):
			s.logger.Warn("CreateTeam: team id=%d already taken", req.ID)
			return nil, ErrTeamIDTaken
		}
		s.logger.Error("CreateTeam: failed to create team id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: CreateTeam - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTeam(team), nil
}

// DeleteTeam удаляет команду вместе с её пользователями
// Команду с запланированными встречами удалить нельзя: история расходов
// при этом сохраняется, так как cost log хранит имя команды денормализованно
func (s *Service) DeleteTeam(ctx context.Context, id int64) error {
	s.logger.Info("DeleteTeam: id=%d", id)

	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	// Запланированной считается встреча строго позже сегодняшнего дня
	now := domain.TruncateToDay(s.timeProvider.Now())

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if _, err := s.directoryRepo.GetTeamByID(txCtx, id); err != nil {
			if errors.Is(err, directoryRepo.ErrTeamNotFound) {
				s.logger.Warn("DeleteTeam: team id=%d not found", id)
				return ErrTeamNotFound
			}
			s.logger.Error("DeleteTeam: failed to get team id=%d: %v", id, err)
			return fmt.Errorf("%w: DeleteTeam - get team: %v", ErrInternal, err)
		}

		hasFuture, err := s.bookingRepo.HasFutureByTeam(txCtx, id, now)
		if err != nil {
			s.logger.Error("DeleteTeam: failed to check future bookings for team id=%d: %v", id, err)
			return fmt.Errorf("%w: DeleteTeam - check future bookings: %v", ErrInternal, err)
		}
		if hasFuture {
			s.logger.Warn("DeleteTeam: team id=%d has future bookings", id)
			return ErrTeamHasFutureBookings
		}

		if err := s.directoryRepo.DeleteUsersByTeam(txCtx, id); err != nil {
			s.logger.Error("DeleteTeam: failed to delete users of team id=%d: %v", id, err)
			return fmt.Errorf("%w: DeleteTeam - delete users: %v", ErrInternal, err)
		}

		if err := s.directoryRepo.DeleteTeam(txCtx, id); err != nil {
			if errors.Is(err, directoryRepo.ErrTeamNotFound) {
				return ErrTeamNotFound
			}
			s.logger.Error("DeleteTeam: failed to delete team id=%d: %v", id, err)
			return fmt.Errorf("%w: DeleteTeam - delete team: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	s.logger.Info("DeleteTeam: team id=%d deleted", id)
	return nil
}

// DeleteUser удаляет пользователя
// Пользователя с запланированными встречами удалить нельзя
func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	s.logger.Info("DeleteUser: id=%d", id)

	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	// Запланированной считается встреча строго позже сегодняшнего дня
	now := domain.TruncateToDay(s.timeProvider.Now())

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if _, err := s.directoryRepo.GetUserByID(txCtx, id); err != nil {
			if errors.Is(err, directoryRepo.ErrUserNotFound) {
				s.logger.Warn("DeleteUser: user id=%d not found", id)
				return ErrUserNotFound
			}
			s.logger.Error("DeleteUser: failed to get user id=%d: %v", id, err)
			return fmt.Errorf("%w: DeleteUser - get user: %v", ErrInternal, err)
		}

		hasFuture, err := s.bookingRepo.HasFutureByUser(txCtx, id, now)
		if err != nil {
			s.logger.Error("DeleteUser: failed to check future bookings for user id=%d: %v", id, err)
			return fmt.Errorf("%w: DeleteUser - check future bookings: %v", ErrInternal, err)
		}
		if hasFuture {
			s.logger.Warn("DeleteUser: user id=%d has future bookings", id)
			return ErrUserHasFutureBookings
		}

		if err := s.directoryRepo.DeleteUser(txCtx, id); err != nil {
			if errors.Is(err, directoryRepo.ErrUserNotFound) {
				return ErrUserNotFound
			}
			s.logger.Error("DeleteUser: failed to delete user id=%d: %v", id, err)
			return fmt.Errorf("%w: DeleteUser - delete user: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	s.logger.Info("DeleteUser: user id=%d deleted", id)
	return nil
}
