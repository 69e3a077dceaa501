package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	aptosagora "github.com/niklabh/AptosAgora"
	"github.com/niklabh/AptosAgora/advisor"
	"github.com/niklabh/AptosAgora/internal/chatstore"
)

func newAdvisor() (*advisor.Client, error) {
	cfg, err := aptosagora.LoadConfig()
	if err != nil {
		return nil, err
	}
	return advisor.New(cfg.AIEndpoint, cfg.AIAPIKey), nil
}

func newAdviseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "advise",
		Short: "Best-effort AI advisory helpers",
		Long:  "Advisory output is supplementary; these commands degrade to fallback values instead of failing.",
	}

	var optimizeType string
	optimize := &cobra.Command{
		Use:   "optimize <file>",
		Short: "Suggest engagement/clarity improvements for content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			adv, err := newAdvisor()
			if err != nil {
				return err
			}
			fmt.Println(adv.OptimizeContent(cmd.Context(), string(raw), aptosagora.ContentKind(optimizeType)))
			return nil
		},
	}
	optimize.Flags().StringVar(&optimizeType, "type", "article", "content type the suggestions target")

	var prefsPairs []string
	recommend := &cobra.Command{
		Use:   "recommend <candidates.json>",
		Short: "Rank candidate content for the given preferences",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var candidates []aptosagora.ContentRecord
			if err := json.Unmarshal(raw, &candidates); err != nil {
				return fmt.Errorf("decode candidates: %w", err)
			}
			pairs, err := parsePairs(prefsPairs)
			if err != nil {
				return err
			}
			prefs := make(map[string]any, len(pairs))
			for k, v := range pairs {
				prefs[k] = v
			}
			adv, err := newAdvisor()
			if err != nil {
				return err
			}
			return printJSON(adv.GenerateRecommendations(cmd.Context(), prefs, candidates))
		},
	}
	recommend.Flags().StringArrayVar(&prefsPairs, "pref", nil, "user preference key=value (repeatable)")

	var platforms []string
	strategy := &cobra.Command{
		Use:   "strategy <content-meta.json>",
		Short: "Draft a platform-by-platform distribution strategy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var meta map[string]any
			if err := json.Unmarshal(raw, &meta); err != nil {
				return fmt.Errorf("decode content metadata: %w", err)
			}
			adv, err := newAdvisor()
			if err != nil {
				return err
			}
			return printJSON(adv.CreateDistributionStrategy(cmd.Context(), meta, platforms))
		},
	}
	strategy.Flags().StringArrayVar(&platforms, "platform", nil, "distribution platform (repeatable)")

	cmd.AddCommand(optimize, recommend, strategy)
	return cmd
}

// newChatCmd runs an interactive conversation with an agent, backed by the
// advisory endpoint and recorded in the local chat store.
func newChatCmd() *cobra.Command {
	var dbPath string
	cmd := &cobra.Command{
		Use:   "chat <agent-id>",
		Short: "Chat with an agent (history kept locally)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			agentID := args[0]

			if dbPath == "" {
				home, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				dbPath = filepath.Join(home, ".agora", "chat.db")
			}
			store, err := chatstore.Open(dbPath, log.Logger)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			adv, err := newAdvisor()
			if err != nil {
				return err
			}

			conv, err := store.StartConversation(cmd.Context(), agentID)
			if err != nil {
				return err
			}
			fmt.Printf("chatting with %s (conversation %s), empty line to quit\n", agentID, conv.ID)

			scanner := bufio.NewScanner(os.Stdin)
			for {
				fmt.Print("> ")
				if !scanner.Scan() {
					break
				}
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					break
				}
				if _, err := store.AppendMessage(cmd.Context(), conv.ID, "user", line); err != nil {
					return err
				}
				reply := adv.OptimizeContent(cmd.Context(), line, aptosagora.ContentOther)
				if _, err := store.AppendMessage(cmd.Context(), conv.ID, "agent", reply); err != nil {
					return err
				}
				fmt.Println(reply)
			}
			return scanner.Err()
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "chat history database path (default ~/.agora/chat.db)")
	return cmd
}
