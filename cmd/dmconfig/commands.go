package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/AvengeMedia/dmconfig/internal/config"
	"github.com/AvengeMedia/dmconfig/internal/desktop"
	"github.com/AvengeMedia/dmconfig/internal/errdefs"
	"github.com/AvengeMedia/dmconfig/internal/greeter"
	"github.com/AvengeMedia/dmconfig/internal/job"
	"github.com/AvengeMedia/dmconfig/internal/log"
	"github.com/AvengeMedia/dmconfig/internal/target"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	debug         bool
	jobConfigPath string
	globalsPath   string
	rootOverride  string
	userOverride  string
	dmOverride    []string
	showDMs       []string
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	missingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

var rootCmd = &cobra.Command{
	Use:           "dmconfig",
	Short:         "Display manager autologin configurator",
	Long:          "Configures display managers on an installation target\n\nEnables autologin for the installed user and preselects the desktop session\nin the SDDM and KDM configuration of the system being installed.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetDebug(debug)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dmconfig v%s\n", Version)
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Configure the selected display managers on the target",
	Long:  "Check that the selected display managers are installed on the target root and\nenable autologin for the configured user.\n\nGlobal storage overrides the job configuration; flags override global storage.",
	RunE:  runJob,
}

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Show the desktop environments installed on the target",
	RunE:  runDetect,
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current autologin settings on the target",
	RunE:  runShow,
}

func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	jobCfg, err := config.LoadJobConfig(jobConfigPath)
	if err != nil {
		return config.Settings{}, err
	}

	globals, err := config.LoadGlobals(globalsPath)
	if err != nil {
		return config.Settings{}, err
	}

	if cmd.Flags().Changed("root") {
		globals.RootMountPoint = rootOverride
	}
	if cmd.Flags().Changed("user") {
		globals.AutologinUser = userOverride
	}
	if cmd.Flags().Changed("displaymanager") {
		globals.DisplayManagers = dmOverride
	}

	return config.Resolve(jobCfg, globals), nil
}

func runJob(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := job.Run(ctx, settings, target.NewChrootRunner()); err != nil {
		summary, detail := errdefs.Pair(err)
		fmt.Fprintln(os.Stderr, errorStyle.Render(summary))
		if detail != "" {
			fmt.Fprintln(os.Stderr, detail)
		}
		log.Debug("job failed", "type", errdefs.TypeOf(err), "err", err)
		os.Exit(1)
	}

	log.Info("Display manager configuration complete")
	return nil
}

func runDetect(cmd *cobra.Command, args []string) error {
	fs := afero.NewBasePathFs(afero.NewOsFs(), rootOverride)

	fmt.Println(titleStyle.Render("Desktop environments in " + rootOverride))
	found := desktop.FindAll(fs)
	if len(found) == 0 {
		fmt.Println(missingStyle.Render("  none detected"))
		return nil
	}
	for i, d := range found {
		line := fmt.Sprintf("  %s (%s)", d.DesktopFile, d.Executable)
		if i == 0 {
			line += " [default]"
		}
		fmt.Println(okStyle.Render(line))
	}
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	c := greeter.NewConfigurator(rootOverride, nil)

	statuses, err := c.Inspect(showDMs)
	if err != nil {
		return err
	}

	for _, st := range statuses {
		fmt.Println(titleStyle.Render(st.DisplayManager) + " " + st.ConfigPath)
		if !st.Present {
			fmt.Println(missingStyle.Render("  config file not found"))
			continue
		}
		state := missingStyle.Render("disabled")
		if st.Enabled {
			state = okStyle.Render("enabled")
		}
		fmt.Printf("  autologin: %s\n", state)
		fmt.Printf("  user:      %s\n", valueOrDash(st.User))
		if st.DisplayManager == greeter.SDDM {
			fmt.Printf("  session:   %s\n", valueOrDash(st.Session))
		}
	}
	return nil
}

func valueOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
