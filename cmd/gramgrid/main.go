package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gramgrid/internal/app"
	"gramgrid/internal/config"
	"gramgrid/internal/encryption"
	"gramgrid/internal/model"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newApp reads the config and creates an App. The caller must defer a.Close().
// operation identifies the CLI command being run (e.g. "Login", "Vote").
func newApp(operation string) (*app.App, error) {
	defaults, err := app.GetDefaults()
	if err != nil {
		return nil, fmt.Errorf("getting defaults: %w", err)
	}

	cfg, err := config.ReadFromFile(defaults["config_path"])
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	a, err := app.NewApp(cfg, operation, func() (string, error) {
		return promptSecret("Store passphrase: ")
	})
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}

	return a, nil
}

// newInitializedApp additionally seeds an empty store and restores any
// persisted session, mirroring the shell's startup sequence.
func newInitializedApp(operation string) (*app.App, *model.Session, error) {
	a, err := newApp(operation)
	if err != nil {
		return nil, nil, err
	}
	session, err := a.Initialize()
	if err != nil {
		a.Close()
		return nil, nil, err
	}
	return a, session, nil
}

// promptSecret reads a line without echoing it.
func promptSecret(label string) (string, error) {
	fmt.Fprint(os.Stderr, label)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// promptLine reads a plain line from stdin.
func promptLine(label string) (string, error) {
	fmt.Fprint(os.Stderr, label)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

var rootCmd = &cobra.Command{
	Use:   "gramgrid",
	Short: "Village infrastructure data store",
}

// config commands

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		instanceID := uuid.New().String()
		cfg := config.NewConfig(instanceID, defaults["base_dir"])

		if err := config.Init(defaults["config_path"], cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", defaults["config_path"])
		fmt.Printf("Instance ID: %s\n", instanceID)
		fmt.Printf("Base Dir: %s\n", defaults["base_dir"])
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg, err := config.ReadFromFile(defaults["config_path"])
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		fmt.Printf("Configuration from %s:\n\n", defaults["config_path"])
		fmt.Printf("Instance ID: %s\n", cfg.InstanceID)
		fmt.Printf("Base Dir:    %s\n", cfg.BaseDir)
		fmt.Printf("Log Dir:     %s\n", cfg.LogDir)
		fmt.Printf("Key Prefix:  %s\n", cfg.KeyPrefix)
		fmt.Printf("Store:       %s\n", cfg.Store.Type)
		fmt.Printf("Encryption:  %s\n", cfg.Encryption.Type)
		return nil
	},
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Manage store encryption keys",
}

var configKeysInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate an encryption key pair",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}
		cfg, err := config.ReadFromFile(defaults["config_path"])
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		codec := encryption.NewAgeCodec(cfg.Encryption)
		if codec.IsConfigured() {
			return fmt.Errorf("key files already exist at %s", cfg.Encryption.PrivateKeyPath)
		}

		passphrase, err := promptSecret("New key passphrase: ")
		if err != nil {
			return err
		}
		confirm, err := promptSecret("Confirm passphrase: ")
		if err != nil {
			return err
		}
		if passphrase != confirm {
			return fmt.Errorf("passphrases do not match")
		}

		if err := codec.Setup(passphrase); err != nil {
			return fmt.Errorf("generating keys: %w", err)
		}

		fmt.Printf("Keys written to %s\n", cfg.Encryption.PublicKeyPath)
		fmt.Println(`Set encryption type = "age" in the config to enable at-rest encryption.`)
		return nil
	},
}

// init command

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Seed demo data into an empty store",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := newInitializedApp("Seed")
		if err != nil {
			return err
		}
		defer a.Close()

		villages, err := a.Repo.GetVillages()
		if err != nil {
			return err
		}
		users, err := a.Repo.CountUsers()
		if err != nil {
			return err
		}
		fmt.Printf("Store ready: %d village(s), %d user(s)\n", len(villages), users)
		return nil
	},
}

// session commands

var loginCmd = &cobra.Command{
	Use:   "login [EMAIL]",
	Short: "Log in (unseen emails are registered on the fly)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		role, _ := cmd.Flags().GetString("role")
		fullName, _ := cmd.Flags().GetString("name")

		a, _, err := newInitializedApp("Login")
		if err != nil {
			return err
		}
		defer a.Close()

		var email string
		if len(args) > 0 {
			email = args[0]
		} else {
			email, err = promptLine("Email: ")
			if err != nil {
				return err
			}
		}

		password, err := promptSecret("Password: ")
		if err != nil {
			return err
		}

		ok, err := a.Sessions.Login(email, password, model.Role(role), fullName)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Login failed.")
			return nil
		}

		session, err := a.Sessions.Current()
		if err != nil {
			return err
		}
		fmt.Printf("Logged in as %s (%s)\n", session.Email, session.Role)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Logout")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Sessions.Logout(); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, session, err := newInitializedApp("Whoami")
		if err != nil {
			return err
		}
		defer a.Close()

		if session == nil {
			fmt.Println("Not logged in.")
			return nil
		}
		fmt.Printf("%s (%s), session expires %s\n", session.Email, session.Role, session.ExpiresAt)
		return nil
	},
}

// read commands

// resolveVillage returns the flag value or falls back to the first village.
func resolveVillage(cmd *cobra.Command, a *app.App) (string, error) {
	villageID, _ := cmd.Flags().GetString("village")
	if villageID != "" {
		return villageID, nil
	}
	return a.Repo.FirstVillageID()
}

var villagesCmd = &cobra.Command{
	Use:   "villages",
	Short: "List villages",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := newInitializedApp("ListVillages")
		if err != nil {
			return err
		}
		defer a.Close()

		villages, err := a.Repo.GetVillages()
		if err != nil {
			return err
		}
		for _, v := range villages {
			fmt.Printf("%s  %-20s  pop %d\n", v.ID, v.Name, v.Population)
		}
		return nil
	},
}

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "List a village's infrastructure assets",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := newInitializedApp("ListAssets")
		if err != nil {
			return err
		}
		defer a.Close()

		villageID, err := resolveVillage(cmd, a)
		if err != nil {
			return err
		}

		assets, err := a.Repo.GetAssetsByVillage(villageID)
		if err != nil {
			return err
		}
		if len(assets) == 0 {
			fmt.Println("No assets found.")
			return nil
		}
		for _, as := range assets {
			fmt.Printf("%s  %-24s  %-12s  health %5.1f  %s\n",
				as.ID, as.Name, as.AssetType, as.HealthScore, as.Status)
		}
		return nil
	},
}

var assetCmd = &cobra.Command{
	Use:   "asset",
	Short: "Update an asset",
}

var assetHealthCmd = &cobra.Command{
	Use:   "health ASSET_ID SCORE",
	Short: "Set an asset's health score",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		score, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("parsing score: %w", err)
		}

		a, _, err := newInitializedApp("UpdateAssetHealth")
		if err != nil {
			return err
		}
		defer a.Close()

		if _, err := a.RequireSession(); err != nil {
			return err
		}

		asset, err := a.Repo.UpdateAssetHealth(args[0], score)
		if err != nil {
			return err
		}
		if asset == nil {
			fmt.Println("Asset not found.")
			return nil
		}
		fmt.Printf("%s health set to %.1f\n", asset.Name, asset.HealthScore)
		return nil
	},
}

var assetStatusCmd = &cobra.Command{
	Use:   "status ASSET_ID STATUS",
	Short: "Set an asset's status (active|maintenance|inactive)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := newInitializedApp("UpdateAssetStatus")
		if err != nil {
			return err
		}
		defer a.Close()

		if _, err := a.RequireSession(); err != nil {
			return err
		}

		asset, err := a.Repo.UpdateAssetStatus(args[0], model.AssetStatus(args[1]))
		if err != nil {
			return err
		}
		if asset == nil {
			fmt.Println("Asset not found.")
			return nil
		}
		fmt.Printf("%s is now %s\n", asset.Name, asset.Status)
		return nil
	},
}

var readingsCmd = &cobra.Command{
	Use:   "readings ASSET_ID",
	Short: "Show an asset's sensor readings, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		a, _, err := newInitializedApp("ListReadings")
		if err != nil {
			return err
		}
		defer a.Close()

		readings, err := a.Repo.GetSensorReadings(args[0], limit)
		if err != nil {
			return err
		}
		if len(readings) == 0 {
			fmt.Println("No readings.")
			return nil
		}
		for _, r := range readings {
			fmt.Printf("%s  %-14s  %8.2f %-6s  quality %.2f\n",
				r.Timestamp, r.SensorType, r.Value, r.Unit, r.QualityScore)
		}
		return nil
	},
}

var predictionsCmd = &cobra.Command{
	Use:   "predictions",
	Short: "List unresolved maintenance predictions",
	RunE: func(cmd *cobra.Command, args []string) error {
		assetID, _ := cmd.Flags().GetString("asset")

		a, _, err := newInitializedApp("ListPredictions")
		if err != nil {
			return err
		}
		defer a.Close()

		predictions, err := a.Repo.GetMaintenancePredictions(assetID)
		if err != nil {
			return err
		}
		if len(predictions) == 0 {
			fmt.Println("No unresolved predictions.")
			return nil
		}
		for _, p := range predictions {
			fmt.Printf("%s  fails ~%s  %-24s  confidence %.2f\n",
				p.ID, p.PredictedFailureDate, p.FailureType, p.ConfidenceScore)
		}
		return nil
	},
}

var predictionsResolveCmd = &cobra.Command{
	Use:   "resolve PREDICTION_ID",
	Short: "Mark a prediction resolved",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := newInitializedApp("ResolvePrediction")
		if err != nil {
			return err
		}
		defer a.Close()

		if _, err := a.RequireSession(); err != nil {
			return err
		}

		if err := a.Repo.MarkPredictionResolved(args[0]); err != nil {
			return err
		}
		fmt.Println("Resolved.")
		return nil
	},
}

// citizen issue commands

var issuesCmd = &cobra.Command{
	Use:   "issues",
	Short: "List a village's citizen issues, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := newInitializedApp("ListIssues")
		if err != nil {
			return err
		}
		defer a.Close()

		villageID, err := resolveVillage(cmd, a)
		if err != nil {
			return err
		}

		issues, err := a.Repo.GetCitizenIssues(villageID)
		if err != nil {
			return err
		}
		if len(issues) == 0 {
			fmt.Println("No issues reported.")
			return nil
		}
		for _, ci := range issues {
			fmt.Printf("%s  %-36s  %-12s  %-12s  ▲%d\n",
				ci.ID, ci.Title, ci.Category, ci.Status, ci.Upvotes)
		}
		return nil
	},
}

var issuesReportCmd = &cobra.Command{
	Use:   "report TITLE",
	Short: "File a citizen issue",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		priority, _ := cmd.Flags().GetString("priority")

		a, _, err := newInitializedApp("ReportIssue")
		if err != nil {
			return err
		}
		defer a.Close()

		session, err := a.RequireSession()
		if err != nil {
			return err
		}

		user, err := a.Repo.GetUserByID(session.UserID)
		if err != nil {
			return err
		}

		issue, err := a.Repo.CreateCitizenIssue(model.CitizenIssue{
			VillageID:  user.VillageID,
			ReportedBy: user.ID,
			Title:      args[0],
			Category:   category,
			Priority:   priority,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Issue filed: %s\n", issue.ID)
		return nil
	},
}

var issuesUpvoteCmd = &cobra.Command{
	Use:   "upvote ISSUE_ID",
	Short: "Upvote a citizen issue",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := newInitializedApp("UpvoteIssue")
		if err != nil {
			return err
		}
		defer a.Close()

		if _, err := a.RequireSession(); err != nil {
			return err
		}

		if err := a.Repo.UpvoteIssue(args[0]); err != nil {
			return err
		}
		fmt.Println("Upvoted.")
		return nil
	},
}

var issuesAdvanceCmd = &cobra.Command{
	Use:   "advance ISSUE_ID STATUS",
	Short: "Advance an issue (reported|acknowledged|in_progress|resolved)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := newInitializedApp("AdvanceIssue")
		if err != nil {
			return err
		}
		defer a.Close()

		if _, err := a.RequireSession(); err != nil {
			return err
		}

		issue, err := a.Repo.UpdateIssueStatus(args[0], model.IssueStatus(args[1]))
		if err != nil {
			return err
		}
		if issue == nil {
			fmt.Println("Issue not found.")
			return nil
		}
		fmt.Printf("%s is now %s\n", issue.Title, issue.Status)
		return nil
	},
}

// proposal commands

var proposalsCmd = &cobra.Command{
	Use:   "proposals",
	Short: "List a village's proposals",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := newInitializedApp("ListProposals")
		if err != nil {
			return err
		}
		defer a.Close()

		villageID, err := resolveVillage(cmd, a)
		if err != nil {
			return err
		}

		proposals, err := a.Repo.GetProposals(villageID)
		if err != nil {
			return err
		}
		if len(proposals) == 0 {
			fmt.Println("No proposals.")
			return nil
		}
		for _, p := range proposals {
			fmt.Printf("%s  %-36s  %-8s  deadline %s\n", p.ID, p.Title, p.Status, p.VotingDeadline)
		}
		return nil
	},
}

var proposalsNewCmd = &cobra.Command{
	Use:   "new TITLE",
	Short: "Put a proposal up for vote",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deadline, _ := cmd.Flags().GetString("deadline")
		description, _ := cmd.Flags().GetString("description")

		a, _, err := newInitializedApp("CreateProposal")
		if err != nil {
			return err
		}
		defer a.Close()

		session, err := a.RequireSession()
		if err != nil {
			return err
		}

		user, err := a.Repo.GetUserByID(session.UserID)
		if err != nil {
			return err
		}

		p, err := a.Repo.CreateProposal(model.Proposal{
			VillageID:      user.VillageID,
			Title:          args[0],
			Description:    description,
			VotingDeadline: deadline,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Proposal created: %s\n", p.ID)
		return nil
	},
}

var voteCmd = &cobra.Command{
	Use:   "vote PROPOSAL_ID (for|against|abstain)",
	Short: "Vote on a proposal (re-voting replaces the prior vote)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := newInitializedApp("Vote")
		if err != nil {
			return err
		}
		defer a.Close()

		session, err := a.RequireSession()
		if err != nil {
			return err
		}

		if _, err := a.Repo.SubmitVote(args[0], session.UserID, model.VoteType(args[1])); err != nil {
			return err
		}
		fmt.Printf("Vote recorded: %s\n", args[1])
		return nil
	},
}

var resultsCmd = &cobra.Command{
	Use:   "results PROPOSAL_ID",
	Short: "Tally votes on a proposal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := newInitializedApp("VoteResults")
		if err != nil {
			return err
		}
		defer a.Close()

		results, err := a.Repo.GetVoteResults(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("for: %d  against: %d  abstain: %d\n", results.For, results.Against, results.Abstain)
		return nil
	},
}

// issue-report silo commands

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Manage standalone issue reports",
}

var reportsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List issue reports",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := newInitializedApp("ListReports")
		if err != nil {
			return err
		}
		defer a.Close()

		reports, err := a.Repo.GetReports()
		if err != nil {
			return err
		}
		if len(reports) == 0 {
			fmt.Println("No reports.")
			return nil
		}
		for _, r := range reports {
			fmt.Printf("%s  %-30s  %-12s  %-10s  %s\n", r.ID, r.Title, r.Category, r.Urgency, r.Status)
		}
		return nil
	},
}

var reportsSubmitCmd = &cobra.Command{
	Use:   "submit TITLE",
	Short: "Submit an issue report (no login required)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		phone, _ := cmd.Flags().GetString("phone")
		email, _ := cmd.Flags().GetString("email")
		description, _ := cmd.Flags().GetString("description")
		category, _ := cmd.Flags().GetString("category")
		city, _ := cmd.Flags().GetString("city")
		urgency, _ := cmd.Flags().GetString("urgency")

		a, _, err := newInitializedApp("SubmitReport")
		if err != nil {
			return err
		}
		defer a.Close()

		r, err := a.Repo.SubmitReport(model.IssueReport{
			ReporterName:  name,
			ReporterPhone: phone,
			ReporterEmail: email,
			Title:         args[0],
			Description:   description,
			Category:      category,
			City:          city,
			Urgency:       model.ReportUrgency(urgency),
		})
		if err != nil {
			return err
		}
		fmt.Printf("Report submitted: %s\n", r.ID)
		return nil
	},
}

var reportsSearchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "Search issue reports",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := newInitializedApp("SearchReports")
		if err != nil {
			return err
		}
		defer a.Close()

		reports, err := a.Repo.SearchReports(args[0])
		if err != nil {
			return err
		}
		if len(reports) == 0 {
			fmt.Println("No matches.")
			return nil
		}
		for _, r := range reports {
			fmt.Printf("%s  %-30s  %-12s  %s\n", r.ID, r.Title, r.Category, r.Status)
		}
		return nil
	},
}

var reportsAdvanceCmd = &cobra.Command{
	Use:   "advance REPORT_ID STATUS",
	Short: "Advance a report (pending|in-review|assigned|resolved|closed)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := newInitializedApp("AdvanceReport")
		if err != nil {
			return err
		}
		defer a.Close()

		if _, err := a.RequireSession(); err != nil {
			return err
		}

		r, err := a.Repo.UpdateReportStatus(args[0], model.ReportStatus(args[1]))
		if err != nil {
			return err
		}
		if r == nil {
			fmt.Println("Report not found.")
			return nil
		}
		fmt.Printf("%s is now %s\n", r.Title, r.Status)
		return nil
	},
}

// voice command log

var voicelogCmd = &cobra.Command{
	Use:   "voicelog",
	Short: "Show your voice command history, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		a, _, err := newInitializedApp("ListVoiceLog")
		if err != nil {
			return err
		}
		defer a.Close()

		session, err := a.RequireSession()
		if err != nil {
			return err
		}

		logs, err := a.Repo.GetVoiceCommandLogs(session.UserID, limit)
		if err != nil {
			return err
		}
		if len(logs) == 0 {
			fmt.Println("No voice commands recorded.")
			return nil
		}
		for _, l := range logs {
			fmt.Printf("%s  %-30q -> %q  (%.2f)\n", l.CreatedAt, l.Command, l.Response, l.ConfidenceScore)
		}
		return nil
	},
}

var voicelogAddCmd = &cobra.Command{
	Use:   "add COMMAND RESPONSE",
	Short: "Record a voice command",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		confidence, _ := cmd.Flags().GetFloat64("confidence")

		a, _, err := newInitializedApp("LogVoiceCommand")
		if err != nil {
			return err
		}
		defer a.Close()

		session, err := a.RequireSession()
		if err != nil {
			return err
		}

		_, err = a.Repo.LogVoiceCommand(model.VoiceCommandLog{
			UserID:          session.UserID,
			Command:         args[0],
			Response:        args[1],
			ConfidenceScore: confidence,
		})
		if err != nil {
			return err
		}
		fmt.Println("Recorded.")
		return nil
	},
}

func init() {
	// config subcommands
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configKeysCmd)
	configKeysCmd.AddCommand(configKeysInitCmd)

	// session commands
	loginCmd.Flags().String("role", "user", "Role for auto-registered users (admin|user)")
	loginCmd.Flags().String("name", "", "Full name for auto-registered users")

	// asset subcommands
	assetCmd.AddCommand(assetHealthCmd)
	assetCmd.AddCommand(assetStatusCmd)
	assetsCmd.Flags().String("village", "", "Village ID (default: first village)")
	readingsCmd.Flags().IntP("limit", "n", 0, "Maximum readings to show (default 100)")

	// prediction subcommands
	predictionsCmd.AddCommand(predictionsResolveCmd)
	predictionsCmd.Flags().String("asset", "", "Only show predictions for this asset")

	// issue subcommands
	issuesCmd.AddCommand(issuesReportCmd)
	issuesCmd.AddCommand(issuesUpvoteCmd)
	issuesCmd.AddCommand(issuesAdvanceCmd)
	issuesCmd.Flags().String("village", "", "Village ID (default: first village)")
	issuesReportCmd.Flags().String("category", "general", "Issue category")
	issuesReportCmd.Flags().String("priority", "medium", "Issue priority")

	// proposal subcommands
	proposalsCmd.AddCommand(proposalsNewCmd)
	proposalsCmd.Flags().String("village", "", "Village ID (default: first village)")
	proposalsNewCmd.Flags().String("deadline", "", "Voting deadline (YYYY-MM-DD)")
	proposalsNewCmd.Flags().String("description", "", "Proposal description")

	// report silo subcommands
	reportsCmd.AddCommand(reportsListCmd)
	reportsCmd.AddCommand(reportsSubmitCmd)
	reportsCmd.AddCommand(reportsSearchCmd)
	reportsCmd.AddCommand(reportsAdvanceCmd)
	reportsSubmitCmd.Flags().String("name", "", "Reporter name")
	reportsSubmitCmd.Flags().String("phone", "", "Reporter phone")
	reportsSubmitCmd.Flags().String("email", "", "Reporter email")
	reportsSubmitCmd.Flags().String("description", "", "Report description")
	reportsSubmitCmd.Flags().String("category", "general", "Report category")
	reportsSubmitCmd.Flags().String("city", "", "Reporter city")
	reportsSubmitCmd.Flags().String("urgency", "medium", "low|medium|high|critical")

	// voicelog subcommands
	voicelogCmd.AddCommand(voicelogAddCmd)
	voicelogCmd.Flags().IntP("limit", "n", 20, "Maximum entries to show")
	voicelogAddCmd.Flags().Float64("confidence", 1.0, "Recognition confidence [0,1]")

	// root commands
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(villagesCmd)
	rootCmd.AddCommand(assetsCmd)
	rootCmd.AddCommand(assetCmd)
	rootCmd.AddCommand(readingsCmd)
	rootCmd.AddCommand(predictionsCmd)
	rootCmd.AddCommand(issuesCmd)
	rootCmd.AddCommand(proposalsCmd)
	rootCmd.AddCommand(voteCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(reportsCmd)
	rootCmd.AddCommand(voicelogCmd)
}
