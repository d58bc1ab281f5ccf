// Command admin_seed prepares a deployment. It prints the bcrypt hash for
// the admin passcode and writes the default settings record when the
// store holds none.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"sebengine/internal/config"
	"sebengine/internal/models"
	"sebengine/internal/repositories"
	"sebengine/internal/utils"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var rootCmd = &cobra.Command{
	Use:   "admin_seed",
	Short: "Provision admin credentials and default settings",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.LoadEnv()
	},
}

var hashCmd = &cobra.Command{
	Use:   "hash",
	Short: "Print ADMIN_PASSCODE_HASH (and a JWT_SECRET if none is set)",
	RunE:  runHash,
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the default settings record if none is committed",
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(hashCmd)
	rootCmd.AddCommand(seedCmd)

	hashCmd.Flags().StringP("passcode", "p", "", "Passcode to hash (defaults to ADMIN_PASSCODE)")
	seedCmd.Flags().Duration("timeout", 30*time.Second, "Time allowed for the store round trip")
}

func runHash(cmd *cobra.Command, args []string) error {
	passcode, _ := cmd.Flags().GetString("passcode")
	if passcode == "" {
		passcode = config.Load().AdminPasscode
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash passcode: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "ADMIN_PASSCODE_HASH=%s\n", hash)

	if config.GetEnv("JWT_SECRET", "") == "" {
		secret, err := utils.GenerateSecret(32)
		if err != nil {
			return fmt.Errorf("generate JWT secret: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "JWT_SECRET=%s\n", secret)
	}
	return nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	timeout, _ := cmd.Flags().GetDuration("timeout")

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	repo, closeRepo, err := repositories.OpenSettingsRepository(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open %s settings store: %w", cfg.SettingsBackend, err)
	}
	defer func() {
		if err := closeRepo(); err != nil {
			log.Printf("Failed to close settings store: %v", err)
		}
	}()

	_, found, err := repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("read settings: %w", err)
	}
	if found {
		log.Println("Settings record already exists")
		return nil
	}

	if err := repo.Save(ctx, models.DefaultSettings()); err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}
	log.Printf("Default settings written to %s store under %s", cfg.SettingsBackend, models.SettingsKey)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
