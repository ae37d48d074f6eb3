package directory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	directoryRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/directory"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/directory/models"
)

// Фейки зависимостей сервиса

type fakeDirectoryRepo struct {
	teams         map[int64]*domain.Team
	users         map[int64]*domain.User
	createdUser   *domain.User
	createTeamErr error
	deletedTeams  []int64
	deletedUsers  []int64
	usersByTeam   []int64
}

func newFakeDirectoryRepo() *fakeDirectoryRepo {
	return &fakeDirectoryRepo{
		teams: map[int64]*domain.Team{},
		users: map[int64]*domain.User{},
	}
}

func (f *fakeDirectoryRepo) GetTeamByID(_ context.Context, id int64) (*domain.Team, error) {
	if team, ok := f.teams[id]; ok {
		return team, nil
	}
	return nil, directoryRepo.ErrTeamNotFound
}

func (f *fakeDirectoryRepo) CreateTeam(_ context.Context, team *domain.Team) (*domain.Team, error) {
	if f.createTeamErr != nil {
		return nil, f.createTeamErr
	}
	f.teams[team.ID] = team
	return team, nil
}

func (f *fakeDirectoryRepo) DeleteTeam(_ context.Context, id int64) error {
	f.deletedTeams = append(f.deletedTeams, id)
	delete(f.teams, id)
	return nil
}

func (f *fakeDirectoryRepo) GetUserByID(_ context.Context, id int64) (*domain.User, error) {
	if user, ok := f.users[id]; ok {
		return user, nil
	}
	return nil, directoryRepo.ErrUserNotFound
}

func (f *fakeDirectoryRepo) CreateUser(_ context.Context, user *domain.User) (*domain.User, error) {
	created := *user
	created.ID = 10
	f.createdUser = &created
	return &created, nil
}

func (f *fakeDirectoryRepo) DeleteUser(_ context.Context, id int64) error {
	f.deletedUsers = append(f.deletedUsers, id)
	delete(f.users, id)
	return nil
}

func (f *fakeDirectoryRepo) DeleteUsersByTeam(_ context.Context, teamID int64) error {
	f.usersByTeam = append(f.usersByTeam, teamID)
	return nil
}

type fakeBookingRepo struct {
	teamHasFuture bool
	userHasFuture bool
}

func (f *fakeBookingRepo) HasFutureByTeam(_ context.Context, _ int64, _ time.Time) (bool, error) {
	return f.teamHasFuture, nil
}

func (f *fakeBookingRepo) HasFutureByUser(_ context.Context, _ int64, _ time.Time) (bool, error) {
	return f.userHasFuture, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestRegisterUser_CreatesTeamImplicitly(t *testing.T) {
	repo := newFakeDirectoryRepo()
	svc := NewService(repo, &fakeBookingRepo{}, fakeTxManager{}, noopLogger{})

	user, err := svc.RegisterUser(context.Background(), &models.RegisterUserRequest{
		Username: "aosipova",
		FullName: "Анна Осипова",
		Position: "разработчик",
		Password: "secret",
		TeamID:   3,
		TeamName: "Backend",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(10), user.ID)
	assert.Equal(t, "aosipova", user.Username)

	// Команда заведена вместе с пользователем
	require.Contains(t, repo.teams, int64(3))
	assert.Equal(t, "Backend", repo.teams[3].Name)

	// Пароль хранится только в виде bcrypt-хэша
	require.NotNil(t, repo.createdUser)
	assert.NotEqual(t, "secret", repo.createdUser.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.createdUser.PasswordHash), []byte("secret")))
}

func TestRegisterUser_ExistingTeamIsReused(t *testing.T) {
	repo := newFakeDirectoryRepo()
	repo.teams[3] = &domain.Team{ID: 3, Name: "Backend"}
	svc := NewService(repo, &fakeBookingRepo{}, fakeTxManager{}, noopLogger{})

	user, err := svc.RegisterUser(context.Background(), &models.RegisterUserRequest{
		Username: "bkotov",
		FullName: "Борис Котов",
		Password: "secret",
		TeamID:   3,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), user.TeamID)
}

func TestRegisterUser_NewTeamRequiresName(t *testing.T) {
	repo := newFakeDirectoryRepo()
	svc := NewService(repo, &fakeBookingRepo{}, fakeTxManager{}, noopLogger{})

	_, err := svc.RegisterUser(context.Background(), &models.RegisterUserRequest{
		Username: "bkotov",
		FullName: "Борис Котов",
		Password: "secret",
		TeamID:   5,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateTeam_DuplicateIDAndNameAreDistinct(t *testing.T) {
	t.Run("duplicate id", func(t *testing.T) {
		repo := newFakeDirectoryRepo()
		repo.createTeamErr = directoryRepo.ErrTeamIDTaken
		svc := NewService(repo, &fakeBookingRepo{}, fakeTxManager{}, noopLogger{})

		_, err := svc.CreateTeam(context.Background(), &models.CreateTeamRequest{ID: 3, Name: "Backend"})
		assert.ErrorIs(t, err, ErrTeamIDTaken)
	})

	t.Run("duplicate name", func(t *testing.T) {
		repo := newFakeDirectoryRepo()
		repo.createTeamErr = directoryRepo.ErrTeamNameTaken
		svc := NewService(repo, &fakeBookingRepo{}, fakeTxManager{}, noopLogger{})

		_, err := svc.CreateTeam(context.Background(), &models.CreateTeamRequest{ID: 4, Name: "Backend"})
		assert.ErrorIs(t, err, ErrTeamNameTaken)
	})
}

func TestDeleteTeam_RemovesTeamAndMembers(t *testing.T) {
	repo := newFakeDirectoryRepo()
	repo.teams[3] = &domain.Team{ID: 3, Name: "Backend"}
	svc := NewService(repo, &fakeBookingRepo{}, fakeTxManager{}, noopLogger{})

	err := svc.DeleteTeam(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, []int64{3}, repo.usersByTeam)
	assert.Equal(t, []int64{3}, repo.deletedTeams)
}

func TestDeleteTeam_BlockedByFutureBookings(t *testing.T) {
	repo := newFakeDirectoryRepo()
	repo.teams[3] = &domain.Team{ID: 3, Name: "Backend"}
	svc := NewService(repo, &fakeBookingRepo{teamHasFuture: true}, fakeTxManager{}, noopLogger{})

	err := svc.DeleteTeam(context.Background(), 3)
	assert.ErrorIs(t, err, ErrTeamHasFutureBookings)
	assert.Empty(t, repo.deletedTeams)
}

func TestDeleteTeam_NotFound(t *testing.T) {
	svc := NewService(newFakeDirectoryRepo(), &fakeBookingRepo{}, fakeTxManager{}, noopLogger{})

	err := svc.DeleteTeam(context.Background(), 99)
	assert.ErrorIs(t, err, ErrTeamNotFound)
}

func TestDeleteUser_Success(t *testing.T) {
	repo := newFakeDirectoryRepo()
	repo.users[7] = &domain.User{ID: 7, Username: "aosipova", TeamID: 3}
	svc := NewService(repo, &fakeBookingRepo{}, fakeTxManager{}, noopLogger{})

	err := svc.DeleteUser(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, []int64{7}, repo.deletedUsers)
}

func TestDeleteUser_BlockedByFutureBookings(t *testing.T) {
	repo := newFakeDirectoryRepo()
	repo.users[7] = &domain.User{ID: 7, Username: "aosipova", TeamID: 3}
	svc := NewService(repo, &fakeBookingRepo{userHasFuture: true}, fakeTxManager{}, noopLogger{})

	err := svc.DeleteUser(context.Background(), 7)
	assert.ErrorIs(t, err, ErrUserHasFutureBookings)
	assert.Empty(t, repo.deletedUsers)
}
