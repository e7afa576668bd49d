package main

import (
	"fmt"
	"net/http"

	"github.com/opsview-hr/workforce-backend-go/internal/config"
	appHTTP "github.com/opsview-hr/workforce-backend-go/internal/handler/http"
	"github.com/opsview-hr/workforce-backend-go/internal/pkg/database"
	"github.com/opsview-hr/workforce-backend-go/internal/repository/postgresql"
	certificateService "github.com/opsview-hr/workforce-backend-go/internal/service/certificate"
	dashboardService "github.com/opsview-hr/workforce-backend-go/internal/service/dashboard"
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

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	certificateRepo := postgresql.NewCertificateRepository(db)
	occurrenceRepo := postgresql.NewOccurrenceRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)

	dashboardSvc := dashboardService.NewDashboardService(employeeRepo, attendanceRepo, certificateRepo, occurrenceRepo)
	certificateSvc := certificateService.NewAnalyticsService(certificateRepo, employeeRepo)

	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	certificateHandler := appHTTP.NewCertificateHandler(certificateSvc)
	referenceHandler := appHTTP.NewReferenceHandler(shiftRepo, companyRepo)

	router := appHTTP.NewRouter(cfg, dashboardHandler, certificateHandler, referenceHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
