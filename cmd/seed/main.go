// Command seed fills an empty database with a small demo catalog.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/mmynk/tutorbooks/internal/auth"
	"github.com/mmynk/tutorbooks/internal/backoffice"
	"github.com/mmynk/tutorbooks/internal/config"
	"github.com/mmynk/tutorbooks/internal/storage"
	"github.com/mmynk/tutorbooks/internal/storage/sqlstore"
	"github.com/mmynk/tutorbooks/pkg/logging"
)

func ptr[T any](v T) *T { return &v }

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()
	store, err := sqlstore.Open(ctx, cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	if cfg.AdminEmail != "" {
		if _, err := auth.NewPasswordAuthenticator(store).EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			slog.Error("Failed to create admin account", "error", err)
			os.Exit(1)
		}
	}

	existing, err := store.ListStudents(ctx, storage.StudentFilter{})
	if err != nil {
		slog.Error("Failed to inspect database", "error", err)
		os.Exit(1)
	}
	if len(existing) > 0 {
		slog.Info("Database already has data, nothing to seed", "students", len(existing))
		return
	}

	if err := seed(ctx, backoffice.New(store)); err != nil {
		slog.Error("Seeding failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Demo data created")
}

func seed(ctx context.Context, bo *backoffice.Service) error {
	alice, err := bo.CreateTeacher(ctx, backoffice.TeacherInput{Name: "Alice Johnson", DefaultRate: ptr(30.0)})
	if err != nil {
		return err
	}
	bob, err := bo.CreateTeacher(ctx, backoffice.TeacherInput{Name: "Bob Smith", DefaultRate: ptr(35.0)})
	if err != nil {
		return err
	}

	math, err := bo.CreateCourse(ctx, backoffice.CourseInput{Name: "Math Level 1", BaseRate: 30, TeacherID: alice.ID})
	if err != nil {
		return err
	}
	if _, err := bo.CreateCourse(ctx, backoffice.CourseInput{Name: "English Level 1", BaseRate: 35, TeacherID: bob.ID}); err != nil {
		return err
	}

	charlie, err := bo.CreateStudent(ctx, backoffice.StudentInput{
		Name:      "Charlie Brown",
		Gender:    "M",
		Birthdate: "2014-05-01",
		Grade:     "Grade 3",
		Parent:    "Sally Brown",
		Contact:   "555-0101",
	})
	if err != nil {
		return err
	}
	if _, err := bo.CreateStudent(ctx, backoffice.StudentInput{
		Name:      "Daisy Miller",
		Gender:    "F",
		Birthdate: "2012-09-14",
		Grade:     "Grade 5",
		Parent:    "Tom Miller",
		Contact:   "555-0102",
		Balances:  map[string]float64{"English Level 1": 3},
	}); err != nil {
		return err
	}

	if _, err := bo.CreatePayment(ctx, backoffice.PaymentInput{
		StudentID:      charlie.ID,
		CourseID:       math.ID,
		PurchasedHours: 5,
		AmountPaid:     150,
		PaymentMethod:  "Cash",
	}); err != nil {
		return err
	}
	if _, err := bo.CreateSession(ctx, backoffice.SessionInput{
		StudentID: charlie.ID,
		CourseID:  math.ID,
		StartTime: "10:00",
		EndTime:   "11:30",
		Notes:     "Fractions review",
	}); err != nil {
		return err
	}

	_, err = bo.CreateExpense(ctx, backoffice.ExpenseInput{
		Item:     "Office supplies",
		Amount:   25.50,
		Category: "Supplies",
	})
	return err
}
