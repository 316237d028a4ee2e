package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"luxestate/internal/auth"
	"luxestate/internal/models"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Create or reset the admin account",
	Long: `Upsert an admin user keyed by email. An existing account with the same
email is promoted to admin and its password is replaced.

Examples:
  seed admin --password 's3cret!'
  seed admin --email ops@luxestate.com --name "Ops" --password 's3cret!'`,
	RunE: runAdmin,
}

var sellersCmd = &cobra.Command{
	Use:   "sellers",
	Short: "Create sample seller accounts",
	Long: `Upsert seller accounts seller1@luxestate.com .. sellerN@luxestate.com,
all sharing the given password.`,
	RunE: runSellers,
}

func init() {
	adminCmd.Flags().String("email", "admin@luxestate.com", "admin email")
	adminCmd.Flags().String("name", "Admin User", "admin display name")
	adminCmd.Flags().String("password", "", "admin password (at least 6 characters)")
	_ = adminCmd.MarkFlagRequired("password")

	sellersCmd.Flags().Int("count", len(sellerNames), "number of seller accounts")
	sellersCmd.Flags().String("password", "", "password for every seller account")
	_ = sellersCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(adminCmd)
	rootCmd.AddCommand(sellersCmd)
}

func runAdmin(cmd *cobra.Command, args []string) error {
	email, _ := cmd.Flags().GetString("email")
	name, _ := cmd.Flags().GetString("name")
	password, _ := cmd.Flags().GetString("password")

	user, err := upsertUser(cmd, email, name, password, models.RoleAdmin)
	if err != nil {
		return err
	}

	fmt.Printf("Admin ready: %s (%s)\n", user.Email, user.ID)
	return nil
}

func runSellers(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	password, _ := cmd.Flags().GetString("password")
	if count <= 0 {
		return errors.New("--count must be positive")
	}

	for i := 1; i <= count; i++ {
		user, err := upsertUser(cmd, sellerEmail(i), sellerName(i), password, models.RoleSeller)
		if err != nil {
			return err
		}
		fmt.Printf("Seller ready: %s (%s)\n", user.Email, user.Name)
	}

	return nil
}

// upsertUser stores the account with a fresh hash and checks the hash
// round-trips before reporting success.
func upsertUser(cmd *cobra.Command, email, name, password string, role models.Role) (*models.User, error) {
	if len(password) < 6 {
		return nil, errors.New("password must be at least 6 characters")
	}

	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	hash, err := hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		Name:         name,
		Role:         role,
		PasswordHash: hash,
	}
	if err := repo.User.UpsertUser(cmd.Context(), user); err != nil {
		return nil, err
	}

	stored, err := repo.User.GetUserByEmail(cmd.Context(), email)
	if err != nil {
		return nil, fmt.Errorf("reload %s: %w", email, err)
	}
	if !hasher.Verify(password, stored.PasswordHash) {
		return nil, fmt.Errorf("stored hash for %s does not match the password", email)
	}

	return stored, nil
}

func sellerEmail(i int) string {
	return fmt.Sprintf("seller%d@luxestate.com", i)
}

func sellerName(i int) string {
	if i >= 1 && i <= len(sellerNames) {
		return sellerNames[i-1]
	}
	return fmt.Sprintf("Seller %d", i)
}
