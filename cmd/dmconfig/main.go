package main

import (
	"os"

	"github.com/AvengeMedia/dmconfig/internal/log"
)

var Version = "dev"

func init() {
	// Add flags
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	runCmd.Flags().StringVarP(&jobConfigPath, "config", "c", "", "Job configuration file (displaymanager.conf)")
	runCmd.Flags().StringVarP(&globalsPath, "globals", "g", "", "Global storage snapshot (YAML)")
	runCmd.Flags().StringVar(&rootOverride, "root", "", "Target root mount point (overrides globals)")
	runCmd.Flags().StringVarP(&userOverride, "user", "u", "", "Autologin user (overrides globals)")
	runCmd.Flags().StringSliceVarP(&dmOverride, "displaymanager", "d", nil, "Display manager to configure, repeatable (overrides globals)")

	detectCmd.Flags().StringVar(&rootOverride, "root", "", "Target root mount point")
	_ = detectCmd.MarkFlagRequired("root")

	showCmd.Flags().StringVar(&rootOverride, "root", "", "Target root mount point")
	showCmd.Flags().StringSliceVarP(&showDMs, "displaymanager", "d", []string{"sddm", "kdm"}, "Display manager to inspect, repeatable")
	_ = showCmd.MarkFlagRequired("root")

	// Add commands to root
	rootCmd.AddCommand(versionCmd, runCmd, detectCmd, showCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
