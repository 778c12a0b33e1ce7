package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dshills/ghgists/internal/config"
	"github.com/dshills/ghgists/internal/github"
	"github.com/dshills/ghgists/internal/output"
	"github.com/dshills/ghgists/internal/restclient"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const defaultUsername = "silas"

var (
	flagBaseURL string
	flagTags    []string
	flagTimeout int
	flagDebug   bool
	flagFormat  string
	flagOut     string

	flagMetricsFile string
)

var gistsCmd = &cobra.Command{
	Use:   "gists [username]",
	Short: "List a user's gists",
	Long: "Fetch the public gists of a GitHub user and print their descriptions.\n" +
		"Defaults to the user \"" + defaultUsername + "\".",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username := defaultUsername
		if len(args) == 1 {
			username = args[0]
		}

		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}
		setupLogger(cfg, cmd.ErrOrStderr())

		client := github.New(config.ClientConfig(cfg))
		log.Debug().Str("username", username).Strs("tags", client.Tags()).Msg("listing gists")

		gists, err := client.Gists(cmd.Context(), username)
		if flagMetricsFile != "" {
			if merr := restclient.WriteMetrics(flagMetricsFile); merr != nil {
				log.Warn().Err(merr).Str("path", flagMetricsFile).Msg("failed to write metrics")
			}
		}
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			if github.IsNotFound(err) {
				exitCode = ExitNotFound
			} else {
				exitCode = ExitRuntimeError
			}
			return nil
		}

		if err := output.WriteGists(gists, cfg.Format, flagOut, cmd.OutOrStdout()); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error writing output: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}
		return nil
	},
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagBaseURL != "" {
		m["baseUrl"] = flagBaseURL
	}
	if len(flagTags) > 0 {
		m["tags"] = strings.Join(flagTags, ",")
	}
	if flagTimeout > 0 {
		m["timeoutSeconds"] = strconv.Itoa(flagTimeout)
	}
	if flagDebug {
		m["debug"] = "true"
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	return m
}

func init() {
	gistsCmd.Flags().StringVar(&flagBaseURL, "base-url", "", "GitHub API base URL")
	gistsCmd.Flags().StringArrayVar(&flagTags, "tag", nil, "Extra client tag (repeatable)")
	gistsCmd.Flags().IntVar(&flagTimeout, "timeout", 0, "Request timeout in seconds")
	gistsCmd.Flags().BoolVar(&flagDebug, "debug", false, "Log every request and response")
	gistsCmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, json)")
	gistsCmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	gistsCmd.Flags().StringVar(&flagMetricsFile, "metrics-file", "", "Write request metrics in Prometheus text format to this file")
}
