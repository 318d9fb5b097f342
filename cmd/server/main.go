package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/vallapuneni6-prog/Ansira-Salon/internal/config"
	"github.com/vallapuneni6-prog/Ansira-Salon/internal/db"
	"github.com/vallapuneni6-prog/Ansira-Salon/internal/handler"
	"github.com/vallapuneni6-prog/Ansira-Salon/internal/repository"
	"github.com/vallapuneni6-prog/Ansira-Salon/internal/server"
	"github.com/vallapuneni6-prog/Ansira-Salon/internal/service"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	cfg, err := config.Load()
	if err != nil {
		log.Error("config load failed", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	database, err := db.New(ctx, cfg)
	if err != nil {
		log.Error("database connection failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer database.Close()

	if err := database.Migrate(ctx); err != nil {
		log.Error("migration failed", slog.Any("error", err))
		os.Exit(1)
	}

	userRepo := repository.UserRepository{DB: database}
	salonRepo := repository.SalonRepository{DB: database}
	staffRepo := repository.StaffRepository{DB: database}
	customerRepo := repository.CustomerRepository{DB: database}
	serviceRepo := repository.ServiceRepository{DB: database}
	templateRepo := repository.TemplateRepository{DB: database}
	walletRepo := repository.WalletRepository{DB: database}
	sittingRepo := repository.SittingRepository{DB: database}
	invoiceRepo := repository.InvoiceRepository{DB: database}
	attendanceRepo := repository.AttendanceRepository{DB: database}
	expenseRepo := repository.ExpenseRepository{DB: database}
	profitLossRepo := repository.ProfitLossRepository{DB: database}

	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	salonSvc := service.NewSalonService(database, salonRepo, templateRepo, userRepo)
	attendanceSvc := service.NewAttendanceService(attendanceRepo, staffRepo)
	ledgerSvc := service.NewLedgerService(database, walletRepo, sittingRepo, templateRepo, customerRepo, staffRepo)
	billingSvc := service.NewBillingService(invoiceRepo, walletRepo, customerRepo)
	commissionSvc := service.NewCommissionService(invoiceRepo, walletRepo, sittingRepo, staffRepo)
	payrollSvc := service.NewPayrollService(staffRepo, attendanceRepo, commissionSvc)
	expenseSvc := service.NewExpenseService(expenseRepo)
	profitLossSvc := service.NewProfitLossService(profitLossRepo, invoiceRepo, walletRepo, sittingRepo, expenseRepo, payrollSvc)

	handlers := server.Handlers{
		Health:       handler.NewHealthHandler(database),
		Auth:         handler.NewAuthHandler(authSvc),
		Salon:        handler.NewSalonHandler(salonSvc),
		Staff:        handler.NewStaffHandler(staffRepo),
		Customer:     handler.NewCustomerHandler(customerRepo),
		Catalog:      handler.NewCatalogHandler(serviceRepo),
		Template:     handler.NewTemplateHandler(templateRepo),
		Subscription: handler.NewSubscriptionHandler(ledgerSvc),
		Invoice:      handler.NewInvoiceHandler(billingSvc),
		Attendance:   handler.NewAttendanceHandler(attendanceSvc),
		Payroll:      handler.NewPayrollHandler(payrollSvc, commissionSvc),
		ProfitLoss:   handler.NewProfitLossHandler(profitLossSvc),
		Expense:      handler.NewExpenseHandler(expenseSvc),
	}

	router := server.NewRouter(handlers, authSvc, log)
	srv := server.New(cfg, router, log)
	if err := srv.Start(); err != nil {
		log.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
