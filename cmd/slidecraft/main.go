// Package main provides the slidecraft CLI application entry point.
// slidecraft turns a slide template spec into concrete design decisions:
// layout patterns, font sizes, chart inference, and a scored color theme.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"slidecraft/internal/config"
	"slidecraft/internal/logger"
	"slidecraft/internal/render"
	"slidecraft/internal/services"
	"slidecraft/internal/spec"
	"slidecraft/internal/version"
	"slidecraft/pkg/decktypes"
)

var (
	logLevel   string
	logFile    string
	mockMode   bool
	provider   string
	outputPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "slidecraft",
	Short: "slidecraft - content-driven slide design decisions",
	Long: `slidecraft analyzes slide content and decides how each slide should look:
which layout pattern fits, what font sizes to use, whether the text implies
a chart, and which color theme suits the deck.`,
}

// analyzeCmd runs the full decision pipeline and emits renderer payloads.
var analyzeCmd = &cobra.Command{
	Use:   "analyze <spec.json>",
	Short: "Emit renderer payloads for a template spec",
	Long: `Validate a template spec file, consult the design advisor, and emit one
renderer payload per slide as JSON. This is the machine-readable handoff for
a rendering surface.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

// explainCmd renders a human-readable decision report.
var explainCmd = &cobra.Command{
	Use:   "explain <spec.json>",
	Short: "Render a decision report for a template spec",
	Long: `Run the decision pipeline and print a report of the design direction, the
resolved theme, and every slide's layout, fonts, and inferred chart data.`,
	Args: cobra.ExactArgs(1),
	RunE: runExplain,
}

// validateCmd checks a template spec without planning anything.
var validateCmd = &cobra.Command{
	Use:   "validate <spec.json>",
	Short: "Validate a template spec file",
	Long:  `Check a template spec for structural problems and report every violation with its JSONPath.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

// themesCmd lists the built-in theme catalog.
var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available design themes",
	Long:  `Print every theme in the built-in catalog with its key colors.`,
	RunE:  runThemes,
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display the version of slidecraft.`,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(version.GetFormattedVersion())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set log level (debug|info|warn|error) [default: info]")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&mockMode, "mock", false, "Use the deterministic advisor instead of a remote provider")
	rootCmd.PersistentFlags().StringVar(&provider, "provider", "", "Advisor provider (openai|anthropic|huggingface|mock)")

	analyzeCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write output to file instead of stdout")

	bindings := map[string]string{
		"log-level":        "log-level",
		"log-file":         "log-file",
		"mock":             "mock",
		"advisor-provider": "provider",
	}
	for key, flag := range bindings {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", flag, err)
			os.Exit(1)
		}
	}

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(versionCmd)

	// Configure logger before any command execution
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if err := logger.Configure(logLevel, logFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
}

// initServices initializes every registered service through the global
// registry. Safe to call from multiple commands.
func initServices() error {
	if err := services.GetGlobalRegistry().InitializeAll(); err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}
	return nil
}

// pipeline loads configuration, wires the advisor client, and returns the
// registered decision pipeline, initialized.
func pipeline() (*services.DecisionPipelineService, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := initServices(); err != nil {
		return nil, err
	}

	p, err := services.GetGlobalPipelineService()
	if err != nil {
		return nil, err
	}
	p.SetAdvisorClient(services.NewAdvisorClient(cfg))
	return p, nil
}

// planDeck loads the spec file and runs the pipeline over it.
func planDeck(path string) (decktypes.DeckPlan, error) {
	templateSpec, err := spec.Load(path)
	if err != nil {
		return decktypes.DeckPlan{}, err
	}

	p, err := pipeline()
	if err != nil {
		return decktypes.DeckPlan{}, err
	}

	return p.PlanDeck(context.Background(), templateSpec)
}

// analyzeOutput is the JSON document emitted by the analyze command.
type analyzeOutput struct {
	Suggestion decktypes.DesignSuggestion `json:"suggestion"`
	Theme      string                     `json:"theme"`
	Slides     []render.Payload           `json:"slides"`
}

func runAnalyze(_ *cobra.Command, args []string) error {
	plan, err := planDeck(args[0])
	if err != nil {
		return err
	}

	rules, err := services.GetGlobalDesignRulesService()
	if err != nil {
		return err
	}
	textColor := rules.ContrastingTextColor(plan.Theme.Color("background"))

	out := analyzeOutput{
		Suggestion: plan.Suggestion,
		Theme:      plan.Theme.Key,
		Slides:     make([]render.Payload, 0, len(plan.Decisions)),
	}
	for i, decision := range plan.Decisions {
		payload := render.BuildPayload(decision, plan.Theme, textColor)
		payload.SlideIndex = i
		payload.SlideCount = len(plan.Decisions)
		out.Slides = append(out.Slides, payload)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode payloads: %w", err)
	}
	data = append(data, '\n')

	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		logger.Info("Payloads written", "path", outputPath, "slides", len(out.Slides))
		return nil
	}

	fmt.Print(string(data))
	return nil
}

func runExplain(_ *cobra.Command, args []string) error {
	plan, err := planDeck(args[0])
	if err != nil {
		return err
	}

	report, err := services.GetGlobalReportService()
	if err != nil {
		return err
	}

	rendered, err := report.Render(plan)
	if err != nil {
		return err
	}

	fmt.Print(rendered)
	return nil
}

func runValidate(_ *cobra.Command, args []string) error {
	templateSpec, err := spec.Load(args[0])
	if err != nil {
		return err
	}

	validator := spec.DefaultValidator{}
	errs := validator.Validate(templateSpec)
	if len(errs) == 0 {
		fmt.Println("spec is valid")
		return nil
	}

	for _, e := range errs {
		fmt.Printf("%s: %s\n", e.Path, e.Message)
	}
	return fmt.Errorf("spec has %d problem(s)", len(errs))
}

func runThemes(_ *cobra.Command, _ []string) error {
	if err := initServices(); err != nil {
		return err
	}
	themes, err := services.GetGlobalThemeSelectorService()
	if err != nil {
		return err
	}

	for _, key := range themes.AvailableThemes() {
		theme, ok := themes.GetTheme(key)
		if !ok {
			continue
		}
		swatch := ""
		for _, role := range []string{"primary", "secondary", "accent"} {
			swatch += lipgloss.NewStyle().
				Foreground(lipgloss.Color(theme.Color(role))).
				Render("██")
		}
		fmt.Printf("%-12s %-24s %s  primary=%s background=%s\n",
			key, theme.Name, swatch, theme.Color("primary"), theme.Color("background"))
	}
	return nil
}
