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
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bookCarWashHandler "github.com/bonaparks-dev/DR7-empire-sub000/internal/api/handlers/book_car_wash"
	cancelBookingHandler "github.com/bonaparks-dev/DR7-empire-sub000/internal/api/handlers/cancel_booking"
	cancelReservationHandler "github.com/bonaparks-dev/DR7-empire-sub000/internal/api/handlers/cancel_reservation"
	checkCarWashHandler "github.com/bonaparks-dev/DR7-empire-sub000/internal/api/handlers/check_carwash_availability"
	checkGroupHandler "github.com/bonaparks-dev/DR7-empire-sub000/internal/api/handlers/check_group_availability"
	checkPartialHandler "github.com/bonaparks-dev/DR7-empire-sub000/internal/api/handlers/check_partial_unavailability"
	checkVehicleHandler "github.com/bonaparks-dev/DR7-empire-sub000/internal/api/handlers/check_vehicle_availability"
	createBookingHandler "github.com/bonaparks-dev/DR7-empire-sub000/internal/api/handlers/create_booking"
	createReservationHandler "github.com/bonaparks-dev/DR7-empire-sub000/internal/api/handlers/create_reservation"
	deleteBookingHandler "github.com/bonaparks-dev/DR7-empire-sub000/internal/api/handlers/delete_booking"
	getBookingHandler "github.com/bonaparks-dev/DR7-empire-sub000/internal/api/handlers/get_booking"
	getUnavailableDatesHandler "github.com/bonaparks-dev/DR7-empire-sub000/internal/api/handlers/get_unavailable_dates"
	getUserBookingsHandler "github.com/bonaparks-dev/DR7-empire-sub000/internal/api/handlers/get_user_bookings"
	getUserTicketsHandler "github.com/bonaparks-dev/DR7-empire-sub000/internal/api/handlers/get_user_tickets"
	getWalletBalanceHandler "github.com/bonaparks-dev/DR7-empire-sub000/internal/api/handlers/get_wallet_balance"
	getWalletTransactionsHandler "github.com/bonaparks-dev/DR7-empire-sub000/internal/api/handlers/get_wallet_transactions"
	purchaseCreditsHandler "github.com/bonaparks-dev/DR7-empire-sub000/internal/api/handlers/purchase_credits"
	setPaymentStatusHandler "github.com/bonaparks-dev/DR7-empire-sub000/internal/api/handlers/set_payment_status"
	setVehicleBlackoutHandler "github.com/bonaparks-dev/DR7-empire-sub000/internal/api/handlers/set_vehicle_blackout"
	"github.com/bonaparks-dev/DR7-empire-sub000/internal/api/middleware"
	"github.com/bonaparks-dev/DR7-empire-sub000/internal/config"
	bookingRepo "github.com/bonaparks-dev/DR7-empire-sub000/internal/infra/storage/booking"
	reservationRepo "github.com/bonaparks-dev/DR7-empire-sub000/internal/infra/storage/reservation"
	ticketRepo "github.com/bonaparks-dev/DR7-empire-sub000/internal/infra/storage/ticket"
	vehicleRepo "github.com/bonaparks-dev/DR7-empire-sub000/internal/infra/storage/vehicle"
	walletRepo "github.com/bonaparks-dev/DR7-empire-sub000/internal/infra/storage/wallet"
	notifyServiceClient "github.com/bonaparks-dev/DR7-empire-sub000/internal/integrations/notifyservice"
	paymentServiceClient "github.com/bonaparks-dev/DR7-empire-sub000/internal/integrations/paymentservice"
	availabilityService "github.com/bonaparks-dev/DR7-empire-sub000/internal/service/availability"
	bookingsService "github.com/bonaparks-dev/DR7-empire-sub000/internal/service/bookings"
	reservationsService "github.com/bonaparks-dev/DR7-empire-sub000/internal/service/reservations"
	ticketsService "github.com/bonaparks-dev/DR7-empire-sub000/internal/service/tickets"
	walletService "github.com/bonaparks-dev/DR7-empire-sub000/internal/service/wallet"
	bookCarWashUC "github.com/bonaparks-dev/DR7-empire-sub000/internal/usecase/book_car_wash"
	createBookingUC "github.com/bonaparks-dev/DR7-empire-sub000/internal/usecase/create_booking"
	purchaseCreditsUC "github.com/bonaparks-dev/DR7-empire-sub000/internal/usecase/purchase_credits"
	"github.com/bonaparks-dev/DR7-empire-sub000/pkg/dbmetrics"
	"github.com/bonaparks-dev/DR7-empire-sub000/pkg/logger"
	"github.com/bonaparks-dev/DR7-empire-sub000/pkg/metrics"
	"github.com/bonaparks-dev/DR7-empire-sub000/pkg/simpletxmanager"
	"github.com/bonaparks-dev/DR7-empire-sub000/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
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

	log.Info("Starting DR7-empire booking service...")
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

	// Инициализируем интеграционных клиентов
	paymentClient := paymentServiceClient.NewClient(
		cfg.Payments.URL,
		time.Duration(cfg.Payments.Timeout)*time.Second,
		log,
	)
	notifyClient := notifyServiceClient.NewClient(
		cfg.Notification.URL,
		time.Duration(cfg.Notification.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (Payments=%s timeout=%ds, Notification=%s timeout=%ds)",
		cfg.Payments.URL, cfg.Payments.Timeout, cfg.Notification.URL, cfg.Notification.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookings     *bookingRepo.Repository
		reservations *reservationRepo.Repository
		vehicles     *vehicleRepo.Repository
		wallets      *walletRepo.Repository
		tickets      *ticketRepo.Repository
	)

	// Интерфейс для transaction manager (используется в сервисах и usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookings = bookingRepo.NewRepository(wrappedDB)
		reservations = reservationRepo.NewRepository(wrappedDB)
		vehicles = vehicleRepo.NewRepository(wrappedDB)
		wallets = walletRepo.NewRepository(wrappedDB)
		tickets = ticketRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookings = bookingRepo.NewRepository(db)
		reservations = reservationRepo.NewRepository(db)
		vehicles = vehicleRepo.NewRepository(db)
		wallets = walletRepo.NewRepository(db)
		tickets = ticketRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(vehicles, bookings, reservations, log)
	bookingsSvc := bookingsService.NewService(bookings, log)
	walletSvc := walletService.NewService(wallets, txMgr, log)
	ticketsSvc := ticketsService.NewService(
		tickets,
		cfg.Lottery.Enabled,
		cfg.Lottery.CentsPerTicket,
		cfg.Lottery.MinBookingCents,
		log,
	)
	reservationsSvc := reservationsService.NewService(reservations, vehicles, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		availabilitySvc,
		bookings,
		walletSvc,
		ticketsSvc,
		notifyClient,
		txMgr,
		log,
	)
	bookCarWashUseCase := bookCarWashUC.NewUseCase(
		availabilitySvc,
		bookings,
		walletSvc,
		ticketsSvc,
		notifyClient,
		txMgr,
		log,
	)
	purchaseCreditsUseCase := purchaseCreditsUC.NewUseCase(
		paymentClient,
		walletSvc,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	bookCarWash := bookCarWashHandler.NewHandler(bookCarWashUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingsSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingsSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingsSvc, log)
	checkVehicle := checkVehicleHandler.NewHandler(availabilitySvc, log)
	checkGroup := checkGroupHandler.NewHandler(availabilitySvc, log)
	getUnavailableDates := getUnavailableDatesHandler.NewHandler(availabilitySvc, log)
	checkPartial := checkPartialHandler.NewHandler(availabilitySvc, log)
	checkCarWash := checkCarWashHandler.NewHandler(availabilitySvc, log)
	getWalletBalance := getWalletBalanceHandler.NewHandler(walletSvc, log)
	getWalletTransactions := getWalletTransactionsHandler.NewHandler(walletSvc, log)
	purchaseCredits := purchaseCreditsHandler.NewHandler(purchaseCreditsUseCase, log)
	getUserTickets := getUserTicketsHandler.NewHandler(ticketsSvc, log)
	createReservation := createReservationHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	setPaymentStatus := setPaymentStatusHandler.NewHandler(bookingsSvc, log)
	setVehicleBlackout := setVehicleBlackoutHandler.NewHandler(reservationsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Проверки доступности
	api.HandleFunc("/availability/vehicle", checkVehicle.Handle).Methods(http.MethodPost)
	api.HandleFunc("/availability/group", checkGroup.Handle).Methods(http.MethodPost)
	api.HandleFunc("/availability/car-wash", checkCarWash.Handle).Methods(http.MethodGet)

	// Календарь занятости автомобиля
	api.HandleFunc("/vehicles/{vehicleName}/unavailable-dates",
		getUnavailableDates.Handle).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{vehicleName}/partial-unavailability",
		checkPartial.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/car-wash", bookCarWash.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Кошелек ---
	protected.HandleFunc("/wallet/balance", getWalletBalance.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/wallet/transactions", getWalletTransactions.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/wallet/purchase", purchaseCredits.Handle).Methods(http.MethodPost)

	// --- Лотерейные билеты ---
	protected.HandleFunc("/tickets", getUserTickets.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-User-Role: admin)
	// ============================================================

	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminOnly)

	admin.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/reservations/{reservationId}", cancelReservation.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/bookings/{bookingId}/payment-status", setPaymentStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/vehicles/{vehicleId}/blackout", setVehicleBlackout.Handle).Methods(http.MethodPut)

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
