package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/smart-attendance/attendance-backend-go/internal/config"
	appHTTP "github.com/smart-attendance/attendance-backend-go/internal/handler/http"
	"github.com/smart-attendance/attendance-backend-go/internal/pkg/cron"
	"github.com/smart-attendance/attendance-backend-go/internal/pkg/database"
	"github.com/smart-attendance/attendance-backend-go/internal/pkg/email"
	"github.com/smart-attendance/attendance-backend-go/internal/pkg/jwt"
	"github.com/smart-attendance/attendance-backend-go/internal/pkg/sse"
	"github.com/smart-attendance/attendance-backend-go/internal/pkg/storage"
	"github.com/smart-attendance/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/smart-attendance/attendance-backend-go/internal/service/attendance"
	dashboardService "github.com/smart-attendance/attendance-backend-go/internal/service/dashboard"
	departmentService "github.com/smart-attendance/attendance-backend-go/internal/service/department"
	employeeService "github.com/smart-attendance/attendance-backend-go/internal/service/employee"
	leaveService "github.com/smart-attendance/attendance-backend-go/internal/service/leave"
	notificationService "github.com/smart-attendance/attendance-backend-go/internal/service/notification"
	reportService "github.com/smart-attendance/attendance-backend-go/internal/service/report"
	salaryService "github.com/smart-attendance/attendance-backend-go/internal/service/salary"
	taskService "github.com/smart-attendance/attendance-backend-go/internal/service/task"
	userService "github.com/smart-attendance/attendance-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	refreshTTL, err := time.ParseDuration(cfg.JWT.RefreshExpiration)
	if err != nil {
		log.Fatal("Invalid JWT_REFRESH_EXPIRATION_TIME:", err)
	}

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}

	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	calendar := salaryService.NewCalendar(cfg.Attendance.WeeklyOffDay, salaryService.FixedHolidays)
	cutoffHour, cutoffMinute := cfg.Attendance.LateCutoffClock()

	hub := sse.NewHub()
	notificationSvc := notificationService.NewNotificationService(notificationRepo, hub)
	salarySvc := salaryService.NewSalaryService(salaryRepo, employeeRepo, attendanceRepo, leaveRepo, calendar)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, notificationSvc, emailService, fileStorage)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, salarySvc, cutoffHour, cutoffMinute)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo, notificationSvc, emailService, salarySvc)
	taskSvc := taskService.NewTaskService(taskRepo)
	userSvc := userService.NewUserService(db, userRepo, employeeRepo, jwtService, refreshTTL)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, leaveRepo, salaryRepo, calendar)
	reportSvc := reportService.NewReportService(attendanceRepo, employeeRepo, leaveRepo, salarySvc, calendar)

	handlers := appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(userSvc, jwtService, refreshTTL),
		Department:   appHTTP.NewDepartmentHandler(departmentSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Task:         appHTTP.NewTaskHandler(taskSvc),
		Salary:       appHTTP.NewSalaryHandler(salarySvc),
		Notification: appHTTP.NewNotificationHandler(notificationSvc),
		Dashboard:    appHTTP.NewDashboardHandler(dashboardSvc),
		Report:       appHTTP.NewReportHandler(reportSvc),
	}

	scheduler := cron.NewScheduler()
	cron.NewSalaryJobs(salarySvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		FrontendURL: cfg.App.FrontendURL,
		Env:         cfg.App.Env,
		Files:       fileStorage,
	}, jwtService, handlers)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
