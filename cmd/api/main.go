package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/config"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/fixtures"
	appHTTP "github.com/Snowwden-gpu/HRMS-ALIGNA/internal/handler/http"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/pkg/events"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/pkg/jwt"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/pkg/localdb"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/repository/localstore"
	attendanceService "github.com/Snowwden-gpu/HRMS-ALIGNA/internal/service/attendance"
	authService "github.com/Snowwden-gpu/HRMS-ALIGNA/internal/service/auth"
	dashboardService "github.com/Snowwden-gpu/HRMS-ALIGNA/internal/service/dashboard"
	employeeService "github.com/Snowwden-gpu/HRMS-ALIGNA/internal/service/employee"
	leaveService "github.com/Snowwden-gpu/HRMS-ALIGNA/internal/service/leave"
	payrollService "github.com/Snowwden-gpu/HRMS-ALIGNA/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	var kv localdb.KV
	switch cfg.Storage.Driver {
	case "file":
		kv, err = localdb.NewFileKV(cfg.Storage.Path)
		if err != nil {
			log.Fatal("Failed to initialize file storage:", err)
		}
	case "sqlite":
		sqliteKV, err := localdb.NewSqliteKV(cfg.Storage.Path)
		if err != nil {
			log.Fatal("Failed to initialize sqlite storage:", err)
		}
		defer sqliteKV.Close()
		kv = sqliteKV
	case "memory":
		kv = localdb.NewMemoryKV()
	default:
		log.Fatal("Unsupported storage driver: ", cfg.Storage.Driver)
	}

	hub := events.NewHub()
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	attendanceRepo := localstore.NewAttendanceRepository(kv)
	employeeRepo := localstore.NewEmployeeRepository(kv)
	leaveRepo := localstore.NewLeaveRepository(kv)

	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, hub, fixtures.RosterEmployeeIDs())
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, hub)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo, hub)
	payrollSvc := payrollService.NewPayrollService(employeeRepo)
	dashboardSvc := dashboardService.NewDashboardService(attendanceSvc, leaveSvc, payrollSvc)
	authSvc := authService.NewAuthService(employeeSvc, jwtService)

	if err := attendanceSvc.Seed(context.Background()); err != nil {
		log.Fatal("Failed to seed attendance history:", err)
	}

	router := appHTTP.NewRouter(jwtService, cfg.App.Env, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc, employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		Events:     appHTTP.NewEventsHandler(hub),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server running on port", cfg.App.Port)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Error starting server:", err)
	}
}
