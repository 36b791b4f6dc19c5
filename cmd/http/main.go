package main

import (
	"context"
	"edunexus-service/internal/app/config"
	"edunexus-service/internal/app/contracts"
	"edunexus-service/internal/app/delivery/http/middlewares"
	"edunexus-service/internal/app/delivery/http/routers"
	"edunexus-service/internal/app/drivers/database"
	"edunexus-service/internal/app/drivers/logger"
	"edunexus-service/internal/app/drivers/messaging"
	"edunexus-service/internal/app/drivers/storage"
	"edunexus-service/internal/app/services/core/reports"
	"edunexus-service/internal/app/services/core/schedule"
	"edunexus-service/internal/app/services/core/students"
	"edunexus-service/internal/app/services/core/subjects"
	"edunexus-service/internal/app/services/core/substitutions"
	"edunexus-service/internal/app/services/core/teachers"
	"edunexus-service/internal/app/services/core/timetable"
	"edunexus-service/internal/app/services/shared/locker"
	"edunexus-service/internal/app/services/shared/notifier"
	"edunexus-service/internal/app/services/shared/scheduler"
	"edunexus-service/internal/app/services/shared/snapshots"
	photostorage "edunexus-service/internal/app/services/shared/storage"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	// Redis always runs: it backs the generation lock even when the snapshot
	// store lives in Mongo.
	redisClient := database.NewRedisClient(driverConfig)

	bootstrap := config.Bootstrap{
		Router:         chi.NewRouter(),
		Redis:          redisClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	if internalConfig.Store.Backend == "mongo" {
		bootstrap.MongoDB = database.NewMongoDB(driverConfig)
	}
	if internalConfig.RabbitMQ.Enabled {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig)
	}
	if internalConfig.Minio.PhotoOffloadEnabled {
		bootstrap.Minio = storage.NewMinio(driverConfig)
	}

	if err := bootstrapingTheApp(&bootstrap); err != nil {
		log.Fatalf("Failed to bootstrap the app: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Failed to close drivers cleanly: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	// Snapshot store
	var snapshotStore contracts.SnapshotStore
	if bootstrap.MongoDB != nil {
		snapshotStore = snapshots.NewMongoSnapshotStore(bootstrap.MongoDB)
	} else {
		snapshotStore = snapshots.NewRedisSnapshotStore(bootstrap.Redis)
	}

	// Shared services
	lockerService := locker.NewLockService(bootstrap.Redis, bootstrap.Logger)
	schedulerClient := scheduler.NewGeminiSchedulerClient(bootstrap.InternalConfig.Scheduler, bootstrap.Logger)

	var eventNotifier contracts.EventNotifier = notifier.NoopNotifier{}
	if bootstrap.RabbitMQ != nil {
		rabbitNotifier, err := notifier.NewRabbitMQNotifier(bootstrap.RabbitMQ, bootstrap.InternalConfig.RabbitMQ.EventsQueue, bootstrap.Logger)
		if err != nil {
			return err
		}
		eventNotifier = rabbitNotifier
	}

	var photoStorage contracts.PhotoStorage
	if bootstrap.Minio != nil {
		photoStorage = photostorage.NewMinioPhotoStorage(bootstrap.Minio, bootstrap.InternalConfig.Minio, bootstrap.Logger)
	}

	// Middlewares
	middlewareInstance := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Subject
	subjectRepository := subjects.NewSubjectSnapshotRepository(snapshotStore)
	subjectUsecase, err := subjects.NewSubjectUsecase(subjectRepository, bootstrap.Logger)
	if err != nil {
		return err
	}
	subjectController := subjects.NewSubjectController(bootstrap.Logger, subjectUsecase)

	// Student
	studentRepository := students.NewStudentSnapshotRepository(snapshotStore)
	studentUsecase := students.NewStudentUsecase(studentRepository, photoStorage, bootstrap.Logger)
	studentController := students.NewStudentController(bootstrap.Logger, studentUsecase)

	// Teacher
	teacherRepository := teachers.NewTeacherSnapshotRepository(snapshotStore)
	teacherUsecase := teachers.NewTeacherUsecase(teacherRepository, subjectRepository, bootstrap.Logger)
	teacherController := teachers.NewTeacherController(bootstrap.Logger, teacherUsecase)

	// Timetable
	timetableRepository := timetable.NewTimetableSnapshotRepository(snapshotStore)
	timetableUsecase := timetable.NewTimetableUsecase(
		timetableRepository,
		teacherRepository,
		schedulerClient,
		lockerService,
		eventNotifier,
		bootstrap.InternalConfig.Scheduler,
		bootstrap.Logger,
	)
	timetableController := timetable.NewTimetableController(bootstrap.Logger, timetableUsecase)

	// Substitution
	substitutionUsecase := substitutions.NewSubstitutionUsecase(
		teacherRepository,
		timetableRepository,
		schedulerClient,
		eventNotifier,
		bootstrap.InternalConfig.Scheduler,
		bootstrap.Logger,
	)
	substitutionController := substitutions.NewSubstitutionController(bootstrap.Logger, substitutionUsecase)

	// Report
	reportUsecase := reports.NewReportUsecase(studentRepository, teacherRepository, subjectRepository, bootstrap.Logger)
	reportController := reports.NewReportController(bootstrap.Logger, reportUsecase)

	// Timetable audit worker
	if bootstrap.InternalConfig.App.AuditCronSpec != "" {
		auditWorker := schedule.NewAuditWorker(bootstrap.Logger, bootstrap.InternalConfig, lockerService, eventNotifier, timetableRepository)
		auditWorker.Start(context.Background())
		bootstrap.AuditWorkerStop = auditWorker.Stop
	}

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewareInstance,
		studentController,
		teacherController,
		subjectController,
		timetableController,
		substitutionController,
		reportController,
	)

	return nil
}
