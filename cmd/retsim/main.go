package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/davidiamir-glitch/Retirement-Simulator/internal/calculation"
	"github.com/davidiamir-glitch/Retirement-Simulator/internal/config"
	"github.com/davidiamir-glitch/Retirement-Simulator/internal/domain"
	"github.com/davidiamir-glitch/Retirement-Simulator/internal/output"
	"github.com/davidiamir-glitch/Retirement-Simulator/internal/tui"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "retsim",
	Short: "Retirement savings simulator CLI",
	Long:  "Deterministic period-by-period retirement savings projection with inflation and investment returns",
}

var simulateCmd = &cobra.Command{
	Use:   "simulate [input-file]",
	Short: "Run a projection and print or export the results",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		params := loadParams(args)

		engine := calculation.NewEngine()
		debugMode, _ := cmd.Flags().GetBool("debug")
		if debugMode {
			engine.SetLogger(simpleCLILogger{})
			engine.Debug = true
		}

		result, err := engine.Simulate(params)
		if err != nil {
			log.Fatal(err)
		}

		outputFormat, _ := cmd.Flags().GetString("format")
		f := output.GetFormatterByName(outputFormat)
		if f == nil {
			log.Fatalf("unsupported format: %s (valid: console, csv, json)", outputFormat)
		}

		data, err := f.Format(result)
		if err != nil {
			log.Fatal(err)
		}

		outFile, _ := cmd.Flags().GetString("output")
		if outFile != "" {
			if err := os.WriteFile(outFile, data, 0o644); err != nil {
				log.Fatal(err)
			}
			fmt.Printf("Wrote %s output to %s\n", f.Name(), outFile)
			return
		}
		fmt.Print(string(data))
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate a parameter file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		if _, err := parser.LoadFromFile(args[0]); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Parameter file %s is valid\n", args[0])
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui [input-file]",
	Short: "Interactive simulator with parameter form, charts, and tables",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		params := loadParams(args)

		p := tea.NewProgram(tui.NewApp(params), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			log.Fatal(err)
		}
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "retsim %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

// loadParams reads the optional parameter file argument, falling back to the
// built-in defaults when no file is given.
func loadParams(args []string) *domain.SimulationParameters {
	if len(args) == 0 {
		params := domain.DefaultParameters()
		return &params
	}
	parser := config.NewInputParser()
	params, err := parser.LoadFromFile(args[0])
	if err != nil {
		log.Fatal(err)
	}
	return params
}

func init() {
	simulateCmd.Flags().StringP("format", "f", "console", "Output format (console, csv, json)")
	simulateCmd.Flags().StringP("output", "o", "", "Write output to a file instead of stdout")
	simulateCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
