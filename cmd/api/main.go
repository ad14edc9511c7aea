package main

import (
	"fmt"
	"net/http"

	"github.com/stafflink/staffing-backend-go/internal/config"
	appHTTP "github.com/stafflink/staffing-backend-go/internal/handler/http"
	"github.com/stafflink/staffing-backend-go/internal/pkg/database"
	"github.com/stafflink/staffing-backend-go/internal/pkg/jwt"
	"github.com/stafflink/staffing-backend-go/internal/repository/postgresql"
	advanceService "github.com/stafflink/staffing-backend-go/internal/service/advance"
	authService "github.com/stafflink/staffing-backend-go/internal/service/auth"
	employeeService "github.com/stafflink/staffing-backend-go/internal/service/employee"
	reportService "github.com/stafflink/staffing-backend-go/internal/service/report"
	timesheetService "github.com/stafflink/staffing-backend-go/internal/service/timesheet"
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

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)
	advanceRepo := postgresql.NewAdvanceRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	timesheetSvc := timesheetService.NewTimesheetService(timesheetRepo, employeeRepo, advanceRepo)
	advanceSvc := advanceService.NewAdvanceService(advanceRepo, timesheetRepo)
	reportSvc := reportService.NewReportService(reportRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)
	advanceHandler := appHTTP.NewAdvanceHandler(advanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		employeeHandler,
		timesheetHandler,
		advanceHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
