package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/create_booking"
	createTeamHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/create_team"
	deleteTeamHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/delete_team"
	deleteUserHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/delete_user"
	getAvailableRoomsHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/get_available_rooms"
	getBookingHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/get_booking"
	getParticipantsHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/get_participants"
	getRoomOccupancyHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/get_room_occupancy"
	getTeamCostsHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/get_team_costs"
	listBookingsHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/list_bookings"
	registerUserHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/register_user"
	"github.com/m04kA/SMC-RoomBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-RoomBookingService/internal/config"
	bookingRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/booking"
	costlogRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/costlog"
	directoryRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/directory"
	participantRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/participant"
	roomRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/room"
	authServiceClient "github.com/m04kA/SMC-RoomBookingService/internal/integrations/authservice"
	bookingsService "github.com/m04kA/SMC-RoomBookingService/internal/service/bookings"
	directoryService "github.com/m04kA/SMC-RoomBookingService/internal/service/directory"
	cancelBookingUC "github.com/m04kA/SMC-RoomBookingService/internal/usecase/cancel_booking"
	createBookingUC "github.com/m04kA/SMC-RoomBookingService/internal/usecase/create_booking"
	getAvailableRoomsUC "github.com/m04kA/SMC-RoomBookingService/internal/usecase/get_available_rooms"
	getRoomOccupancyUC "github.com/m04kA/SMC-RoomBookingService/internal/usecase/get_room_occupancy"
	getTeamCostsUC "github.com/m04kA/SMC-RoomBookingService/internal/usecase/get_team_costs"
	"github.com/m04kA/SMC-RoomBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RoomBookingService/pkg/logger"
	"github.com/m04kA/SMC-RoomBookingService/pkg/metrics"
	"github.com/m04kA/SMC-RoomBookingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-RoomBookingService/pkg/txmanager"
)

func main() {
	// Загружаем .env (если есть) и конфигурацию
	_ = godotenv.Load()

	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-RoomBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиент AuthService
	authClient := authServiceClient.NewClient(
		cfg.AuthService.URL,
		time.Duration(cfg.AuthService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (AuthService=%s timeout=%ds)",
		cfg.AuthService.URL, cfg.AuthService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository     *bookingRepo.Repository
		costlogRepository     *costlogRepo.Repository
		participantRepository *participantRepo.Repository
		roomRepository        *roomRepo.Repository
		directoryRepository   *directoryRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		costlogRepository = costlogRepo.NewRepository(wrappedDB)
		participantRepository = participantRepo.NewRepository(wrappedDB)
		roomRepository = roomRepo.NewRepository(wrappedDB)
		directoryRepository = directoryRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		costlogRepository = costlogRepo.NewRepository(db)
		participantRepository = participantRepo.NewRepository(db)
		roomRepository = roomRepo.NewRepository(db)
		directoryRepository = directoryRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		participantRepository,
		log,
	)
	directorySvc := directoryService.NewService(
		directoryRepository,
		bookingRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		costlogRepository,
		participantRepository,
		roomRepository,
		directoryRepository,
		txMgr,
		log,
	)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		bookingRepository,
		costlogRepository,
		participantRepository,
		txMgr,
		log,
	)
	getAvailableRoomsUseCase := getAvailableRoomsUC.NewUseCase(bookingRepository, roomRepository, log)
	getRoomOccupancyUseCase := getRoomOccupancyUC.NewUseCase(bookingRepository, roomRepository, log)
	getTeamCostsUseCase := getTeamCostsUC.NewUseCase(costlogRepository, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getParticipants := getParticipantsHandler.NewHandler(bookingSvc, log)
	getAvailableRooms := getAvailableRoomsHandler.NewHandler(getAvailableRoomsUseCase, log)
	getRoomOccupancy := getRoomOccupancyHandler.NewHandler(getRoomOccupancyUseCase, log)
	getTeamCosts := getTeamCostsHandler.NewHandler(getTeamCostsUseCase, log)
	registerUser := registerUserHandler.NewHandler(directorySvc, log)
	createTeam := createTeamHandler.NewHandler(directorySvc, log)
	deleteTeam := deleteTeamHandler.NewHandler(directorySvc, log)
	deleteUser := deleteUserHandler.NewHandler(directorySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Подбор свободных комнат на дату и интервал
	api.HandleFunc("/rooms/available", getAvailableRooms.Handle).Methods(http.MethodGet)

	// Сетка занятости комнат на дату
	api.HandleFunc("/rooms/occupancy", getRoomOccupancy.Handle).Methods(http.MethodGet)

	// Отчёт по расходам команд за период
	api.HandleFunc("/reports/team-costs", getTeamCosts.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.NewAuth(authClient, log))

	// --- Бронирования ---
	// Фиксация бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Список встреч с фильтрацией
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)

	// Участники встречи
	protected.HandleFunc("/bookings/{bookingId}/participants", getParticipants.Handle).Methods(http.MethodGet)

	// --- Справочник (для администраторов) ---
	// Регистрация пользователя
	protected.HandleFunc("/users", registerUser.Handle).Methods(http.MethodPost)

	// Удаление пользователя
	protected.HandleFunc("/users/{userId}", deleteUser.Handle).Methods(http.MethodDelete)

	// Создание команды
	protected.HandleFunc("/teams", createTeam.Handle).Methods(http.MethodPost)

	// Удаление команды
	protected.HandleFunc("/teams/{teamId}", deleteTeam.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
