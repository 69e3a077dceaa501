// Command agora is the operator CLI for the AptosAgora marketplace: content
// and agent lifecycle, profiles, ratings, reads, feed exploration, and the
// AI advisory chat.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	aptosagora "github.com/niklabh/AptosAgora"
)

var (
	flagNodeURL       string
	flagModuleAddress string
	flagAccount       string
	flagDebug         bool
)

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "agora",
		Short: "CLI for the AptosAgora content marketplace",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
			log.Logger = log.Output(zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: "2006-01-02 15:04:05",
				NoColor:    true,
			})
			if flagDebug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				_ = os.Setenv("AGORA_DEBUG", "true")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&flagNodeURL, "node-url", "", "fullnode REST endpoint (defaults to AGORA_NODE_URL or devnet)")
	rootCmd.PersistentFlags().StringVar(&flagModuleAddress, "module-address", "", "deployed AptosAgora module address")
	rootCmd.PersistentFlags().StringVar(&flagAccount, "account", "", "active account address for writes")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging (dumps HTTP traffic)")

	rootCmd.AddCommand(
		newCreateContentCmd(),
		newEngageCmd(),
		newCreateAgentCmd(),
		newAgentToggleCmd("activate-agent", "Activate an agent"),
		newAgentToggleCmd("deactivate-agent", "Deactivate an agent"),
		newProfileCmd("create-profile", "Create your creator profile"),
		newProfileCmd("update-profile", "Overwrite your creator profile"),
		newRateCmd(),
		newGetCmd(),
		newHasRatedCmd(),
		newExploreCmd(),
		newAdviseCmd(),
		newChatCmd(),
		newTxURLCmd(),
	)
	return rootCmd
}

// newClient builds an SDK client from environment config plus flag
// overrides.
func newClient() (*aptosagora.Client, error) {
	cfg, err := aptosagora.LoadConfig()
	if err != nil {
		return nil, err
	}
	if flagNodeURL != "" {
		cfg.NodeURL = flagNodeURL
	}
	if flagModuleAddress != "" {
		cfg.ModuleAddress = flagModuleAddress
	}

	var opts []aptosagora.Option
	if flagAccount != "" {
		opts = append(opts, aptosagora.WithAccount(flagAccount))
	}
	return aptosagora.New(cfg, opts...)
}

// printJSON writes v to stdout, indented.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// parsePairs turns repeated "key=value" flags into a map.
func parsePairs(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid pair %q: expected key=value", p)
		}
		out[k] = v
	}
	return out, nil
}
