package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/ariebrainware/healthghar/config"
	"github.com/ariebrainware/healthghar/model"
	"github.com/ariebrainware/healthghar/store"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// SeedOptions sizes a demo dataset.
type SeedOptions struct {
	Doctors        int
	SlotsPerDoctor int
	Camps          int
	Packages       int
	Seed           uint64
	Start          time.Time
}

// SeedCounts is what Seed inserted.
type SeedCounts struct {
	Doctors  int
	Slots    int
	Camps    int
	Packages int
}

func seedCmd() *cobra.Command {
	opts := SeedOptions{}
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert demo doctors, slots, camps and packages",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig()
			backends, _, err := openBackends(cfg)
			if err != nil {
				return err
			}
			if opts.Seed == 0 {
				opts.Seed = uint64(time.Now().UnixNano())
			}
			opts.Start = time.Now().UTC()

			counts, err := Seed(cmd.Context(), backends.Service, opts)
			if err != nil {
				return fmt.Errorf("seed failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d doctors, %d slots, %d camps, %d packages.\n",
				counts.Doctors, counts.Slots, counts.Camps, counts.Packages)
			return nil
		},
	}
	cmd.Flags().IntVar(&opts.Doctors, "doctors", 12, "Number of doctors")
	cmd.Flags().IntVar(&opts.SlotsPerDoctor, "slots", 6, "Slots per doctor")
	cmd.Flags().IntVar(&opts.Camps, "camps", 4, "Number of camps")
	cmd.Flags().IntVar(&opts.Packages, "packages", 5, "Number of home checkup packages")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "Random seed, 0 picks one")
	return cmd
}

// Seed writes a random but valid dataset through backend. Doctors take their
// category and specialization from the fixed taxonomy; slots are 30 minute
// windows on the days after opts.Start.
func Seed(ctx context.Context, backend store.Backend, opts SeedOptions) (SeedCounts, error) {
	f := gofakeit.New(opts.Seed)
	now := time.Now().UTC()
	counts := SeedCounts{}

	for i := 0; i < opts.Doctors; i++ {
		cat := model.Categories[f.Number(0, len(model.Categories)-1)]
		doc := model.Doctor{
			ID:             uuid.NewString(),
			Email:          fmt.Sprintf("doctor%d.%s", i+1, f.Email()),
			Name:           "Dr. " + f.Name(),
			Description:    f.Sentence(12),
			Category:       cat.Name,
			Specialization: cat.Specializations[f.Number(0, len(cat.Specializations)-1)],
			CreatedAt:      now,
		}
		if err := backend.Insert(ctx, &doc); err != nil {
			return counts, fmt.Errorf("doctor: %w", err)
		}
		counts.Doctors++

		for j := 0; j < opts.SlotsPerDoctor; j++ {
			day := opts.Start.AddDate(0, 0, 1+j%7)
			start := time.Date(day.Year(), day.Month(), day.Day(), f.Number(8, 16), 30*f.Number(0, 1), 0, 0, time.UTC)
			slot := model.Slot{
				ID:        uuid.NewString(),
				DoctorID:  doc.ID,
				StartTime: start.Format("2006-01-02T15:04"),
				EndTime:   start.Add(30 * time.Minute).Format("2006-01-02T15:04"),
				IsActive:  true,
				CreatedAt: now,
			}
			if err := backend.Insert(ctx, &slot); err != nil {
				return counts, fmt.Errorf("slot: %w", err)
			}
			counts.Slots++
		}
	}

	for i := 0; i < opts.Camps; i++ {
		camp := model.Camp{
			ID:          uuid.NewString(),
			Title:       f.RandomString([]string{"Free Eye Camp", "Dental Checkup Camp", "General Health Camp", "Women's Health Camp"}),
			CampDate:    opts.Start.AddDate(0, 0, 7*(i+1)).Format("2006-01-02"),
			CampTime:    "09:00 - 13:00",
			Venue:       f.Street() + ", " + f.City(),
			Price:       float64(f.Number(0, 5) * 100),
			Description: f.Sentence(15),
			CreatedAt:   now,
		}
		if err := backend.Insert(ctx, &camp); err != nil {
			return counts, fmt.Errorf("camp: %w", err)
		}
		counts.Camps++
	}

	for i := 0; i < opts.Packages; i++ {
		pkg := model.HomeCheckupPackage{
			ID:          uuid.NewString(),
			Title:       f.ProductName() + " Checkup",
			Price:       float64(f.Number(5, 60) * 100),
			Description: f.Sentence(15),
			CreatedAt:   now,
		}
		if err := backend.Insert(ctx, &pkg); err != nil {
			return counts, fmt.Errorf("package: %w", err)
		}
		counts.Packages++
	}
	return counts, nil
}
