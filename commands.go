package main

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"propdesk/config"
	"propdesk/database"
	"propdesk/latefee"
	"propdesk/loader"
	"propdesk/mappers"
	"propdesk/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "propdesk",
		Short: "Property management desk",
	}
	rootCmd.AddCommand(
		serveCmd(),
		migrateCmd(),
		latefeeCmd(),
	)
	return rootCmd
}

// databasePath is the --db flag, or the configured path when unset.
func databasePath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p
	}
	return config.GetConfig().DatabasePath
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web application",
		RunE: func(cmd *cobra.Command, args []string) error {
			port, _ := cmd.Flags().GetString("port")
			if port == "" {
				port = config.GetConfig().Port
			}
			noBrowser, _ := cmd.Flags().GetBool("no-browser")
			dbPath := databasePath(cmd)

			log.Printf("Opening database %s...", dbPath)
			dbConn, err := loader.InitDatabase(dbPath)
			if err != nil {
				return fmt.Errorf("database initialization failed: %w", err)
			}
			defer dbConn.Close()

			mux, err := newMux(dbConn, dbPath)
			if err != nil {
				return err
			}

			addr := ":" + port
			log.Printf("Starting server on http://localhost%s", addr)
			if !noBrowser {
				openBrowser("http://localhost" + addr)
			}
			return http.ListenAndServe(addr, mux)
		},
	}
	cmd.Flags().String("port", "", "Port to listen on (defaults to the configured port)")
	cmd.Flags().String("db", "", "Database file (defaults to the configured path)")
	cmd.Flags().Bool("no-browser", false, "Do not open a browser window")
	return cmd
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath := databasePath(cmd)
			if err := database.Migrate(dbPath); err != nil {
				return err
			}
			version, dirty, err := database.MigrationVersion(dbPath)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is at schema version %d", dbPath, version)
			if dirty {
				fmt.Fprint(cmd.OutOrStdout(), " (dirty)")
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
	cmd.Flags().String("db", "", "Database file (defaults to the configured path)")
	return cmd
}

func latefeeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "latefee",
		Short: "Late fee rule tools",
	}
	cmd.AddCommand(latefeePreviewCmd())
	return cmd
}

func latefeePreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the day-by-day accrual of a late fee rule",
		Long: "Print the accrual table for a saved rule (--rule) or for a rule " +
			"described by flags. The cap is shown but not applied.",
		RunE: func(cmd *cobra.Command, args []string) error {
			rule, err := previewRule(cmd)
			if err != nil {
				return err
			}

			values := url.Values{}
			if sample, _ := cmd.Flags().GetString("sample"); sample != "" {
				values.Set("sampleCharge", sample)
			}
			if cmd.Flags().Changed("horizon") {
				horizon, _ := cmd.Flags().GetInt("horizon")
				values.Set("horizon", strconv.Itoa(horizon))
			}
			sample, horizon, err := latefee.PreviewOptions(values, config.GetConfig())
			if err != nil {
				return err
			}

			p := latefee.BuildPreview(rule, sample, horizon)
			fmt.Fprintln(cmd.OutOrStdout(), renderPreviewText(rule, p))
			return nil
		},
	}
	cmd.Flags().Int64("rule", 0, "Id of a saved late fee rule")
	cmd.Flags().String("db", "", "Database file used with --rule")
	cmd.Flags().Int("grace", 0, "Grace period in days")
	cmd.Flags().String("first", "0", "First fee amount")
	cmd.Flags().String("recurring", "0", "Recurring fee amount")
	cmd.Flags().Int("period", 1, "Recurring period in days")
	cmd.Flags().String("cap", "0", "Cap percent or amount")
	cmd.Flags().String("cap-type", model.CapTypeFlat, "Cap type: percent or flat")
	cmd.Flags().String("sample", "", "Sample charge (defaults to the configured amount)")
	cmd.Flags().Int("horizon", latefee.DefaultHorizonDays, "Last day of the table")
	return cmd
}

func previewRule(cmd *cobra.Command) (model.LateFeeRule, error) {
	if id, _ := cmd.Flags().GetInt64("rule"); id > 0 {
		dbConn, err := database.Open(databasePath(cmd))
		if err != nil {
			return model.LateFeeRule{}, err
		}
		defer dbConn.Close()

		rule, err := database.GetLateFeeRuleByID(dbConn, id)
		if err != nil {
			return model.LateFeeRule{}, err
		}
		if rule == nil {
			return model.LateFeeRule{}, fmt.Errorf("late fee rule %d not found", id)
		}
		return *rule, nil
	}

	rule := model.LateFeeRule{Name: "command line"}
	rule.GracePeriodDays, _ = cmd.Flags().GetInt("grace")
	rule.RecurringPeriodDays, _ = cmd.Flags().GetInt("period")
	rule.CapType, _ = cmd.Flags().GetString("cap-type")

	amounts := []struct {
		flag string
		dst  *decimal.Decimal
	}{
		{"first", &rule.FirstFeeAmount},
		{"recurring", &rule.RecurringFeeAmount},
		{"cap", &rule.CapPercentOrAmount},
	}
	for _, a := range amounts {
		raw, _ := cmd.Flags().GetString(a.flag)
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return model.LateFeeRule{}, fmt.Errorf("--%s: invalid amount %q", a.flag, raw)
		}
		*a.dst = d
	}

	if err := rule.Validate(); err != nil {
		return model.LateFeeRule{}, err
	}
	return rule, nil
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89b4fa"))
	headerStyle = lipgloss.NewStyle().Bold(true)
	dayStyle    = lipgloss.NewStyle().Width(5).Align(lipgloss.Right)
	amountStyle = lipgloss.NewStyle().Width(14).Align(lipgloss.Right)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
)

// renderPreviewText lays the accrual rows out for a terminal. Days still
// inside the grace period print "-".
func renderPreviewText(rule model.LateFeeRule, p latefee.Preview) string {
	dash := func(s string) string {
		if s == "" {
			return "-"
		}
		return s
	}

	lines := []string{
		titleStyle.Render(rule.Name),
		headerStyle.Render(dayStyle.Render("Day") + amountStyle.Render("Fee") + amountStyle.Render("Total")),
	}
	for _, row := range p.Rows {
		lines = append(lines, dayStyle.Render(strconv.Itoa(row.DayIndex))+
			amountStyle.Render(dash(mappers.FormatNullMoney(row.FeeApplied)))+
			amountStyle.Render(dash(mappers.FormatNullMoney(row.TotalToDate))))
	}

	capText := mappers.FormatMoney(p.CapLimit)
	if rule.CapType == model.CapTypePercent {
		capText += " (" + mappers.FormatPercent(rule.CapPercentOrAmount) + " of " + mappers.FormatMoney(p.SampleCharge) + ")"
	}
	lines = append(lines, mutedStyle.Render("Cap "+strings.TrimSpace(capText)+", not applied to the totals above."))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
