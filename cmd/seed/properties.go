package main

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"luxestate/internal/models"
)

var propertiesCmd = &cobra.Command{
	Use:   "properties",
	Short: "Create sample listings",
	Long: `Create sample villa, penthouse, mansion, estate and apartment listings
owned by existing seller accounts. Run "seed sellers" first.

Examples:
  seed properties --count 50
  seed properties --count 10 --seed 42`,
	RunE: runProperties,
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Print listing, user and lead counts",
	RunE:  runVerify,
}

func init() {
	propertiesCmd.Flags().Int("count", 50, "number of listings to create")
	propertiesCmd.Flags().Int64("seed", 0, "random seed (0 uses the current time)")

	rootCmd.AddCommand(propertiesCmd)
	rootCmd.AddCommand(verifyCmd)
}

func runProperties(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	count, _ := cmd.Flags().GetInt("count")
	seed, _ := cmd.Flags().GetInt64("seed")
	if count <= 0 {
		return errors.New("--count must be positive")
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	users, err := repo.User.ListUsers(ctx)
	if err != nil {
		return err
	}

	var sellerIDs []string
	for _, u := range users {
		if u.Role == models.RoleSeller {
			sellerIDs = append(sellerIDs, u.ID)
		}
	}
	if len(sellerIDs) == 0 {
		return errors.New("no seller accounts found, run \"seed sellers\" first")
	}

	samples := sampleProperties(rand.New(rand.NewSource(seed)), sellerIDs, count)
	for i := range samples {
		p := &samples[i]
		status := p.Status
		p.Status = models.StatusPending

		if err := repo.Property.Create(ctx, p); err != nil {
			return err
		}

		// Approve through the normal transition so updated_at moves past created_at.
		if status != models.StatusPending {
			if _, err := repo.Property.UpdateStatus(ctx, p.ID, status, models.TransitionTime(p.CreatedAt, models.Now())); err != nil {
				return err
			}
		}

		fmt.Printf("%-10s %-9s $%-12s %s\n", p.PropertyType, status, humanize.Commaf(p.Price), p.Title)
	}

	fmt.Printf("\nCreated %d listings for %d sellers\n", len(samples), len(sellerIDs))
	return nil
}

func runVerify(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	summary, err := repo.Analytics.Summary(ctx)
	if err != nil {
		return err
	}

	byType, err := repo.Property.CountByType(ctx)
	if err != nil {
		return err
	}

	fmt.Println("Database statistics:")
	fmt.Printf("  Total properties: %s\n", humanize.Comma(int64(summary.TotalProperties)))
	fmt.Printf("  Approved:         %s\n", humanize.Comma(int64(summary.ApprovedProperties)))
	fmt.Printf("  Pending:          %s\n", humanize.Comma(int64(summary.PendingProperties)))
	fmt.Printf("  Users:            %s\n", humanize.Comma(int64(summary.TotalUsers)))
	fmt.Printf("  Leads:            %s\n", humanize.Comma(int64(summary.TotalLeads)))

	fmt.Println("\nProperties by type:")
	for _, tc := range byType {
		fmt.Printf("  %-10s %s\n", tc.PropertyType, humanize.Comma(int64(tc.Count)))
	}

	return nil
}
