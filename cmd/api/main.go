package main

import (
	"fmt"
	"net/http"

	"github.com/sha-shank-883/hrms-pro-sub003/internal/config"
	"github.com/sha-shank-883/hrms-pro-sub003/internal/domain/attendance"
	appHTTP "github.com/sha-shank-883/hrms-pro-sub003/internal/handler/http"
	"github.com/sha-shank-883/hrms-pro-sub003/internal/pkg/database"
	"github.com/sha-shank-883/hrms-pro-sub003/internal/pkg/jwt"
	"github.com/sha-shank-883/hrms-pro-sub003/internal/repository/postgresql"
	attendanceService "github.com/sha-shank-883/hrms-pro-sub003/internal/service/attendance"
	regularizationService "github.com/sha-shank-883/hrms-pro-sub003/internal/service/regularization"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	policy := attendance.Policy{
		WorkdayStart: cfg.Attendance.WorkdayStart,
		GraceMinutes: cfg.Attendance.GraceMinutes,
		BreakMinutes: cfg.Attendance.BreakMinutes,
		Timezone:     cfg.Attendance.Timezone,
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	regularizationRepo := postgresql.NewRegularizationRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	attendanceSvc := attendanceService.NewAttendanceService(db, policy, attendanceRepo, employeeRepo)
	regularizationSvc := regularizationService.NewRequestService(db, policy, regularizationRepo, attendanceRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	regularizationHandler := appHTTP.NewRegularizationHandler(regularizationSvc)

	router := appHTTP.NewRouter(
		JWTService,
		attendanceHandler,
		regularizationHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
