package main

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	aptosagora "github.com/niklabh/AptosAgora"
	"github.com/niklabh/AptosAgora/internal/txn"
)

func newCreateContentCmd() *cobra.Command {
	var (
		id          string
		hash        string
		contentType string
		description string
		tags        string
	)
	cmd := &cobra.Command{
		Use:   "create-content",
		Short: "Register a content record on-chain",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			res, err := client.CreateContent(cmd.Context(), aptosagora.CreateContentRequest{
				ID:          id,
				ContentHash: hash,
				ContentType: aptosagora.ContentKind(contentType),
				Description: description,
				Tags:        txn.SplitTags(tags),
			})
			if err != nil {
				return err
			}
			log.Info().Str("hash", res.Hash).Msg("content created")
			return printJSON(res)
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "content identifier (required)")
	cmd.Flags().StringVar(&hash, "hash", "", "off-chain content address, e.g. ipfs://... (required)")
	cmd.Flags().StringVar(&contentType, "type", "article", "content type: article|image|video|audio|other")
	cmd.Flags().StringVar(&description, "description", "", "human description")
	cmd.Flags().StringVar(&tags, "tags", "", "comma-separated tags")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("hash")
	return cmd
}

func newEngageCmd() *cobra.Command {
	var wait bool
	cmd := &cobra.Command{
		Use:   "engage <content-id> <view|like|share|comment>",
		Short: "Record an engagement event",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			ack, err := client.Engage(cmd.Context(), args[0], aptosagora.EngagementKind(args[1]))
			if err != nil {
				return err
			}
			if wait {
				if err := client.AwaitSettled(cmd.Context(), args[0]); err != nil {
					return err
				}
				log.Info().Str("content", args[0]).Msg("engagement settled")
			}
			return printJSON(ack)
		},
	}
	cmd.Flags().BoolVar(&wait, "wait", false, "block until the event is executed")
	return cmd
}

func newCreateAgentCmd() *cobra.Command {
	var (
		id          string
		agentType   string
		name        string
		description string
		configPairs []string
		autonomous  bool
	)
	cmd := &cobra.Command{
		Use:   "create-agent",
		Short: "Register an AI agent",
		RunE: func(cmd *cobra.Command, args []string) error {
			configuration, err := parsePairs(configPairs)
			if err != nil {
				return err
			}
			client, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			res, err := client.CreateAgent(cmd.Context(), aptosagora.CreateAgentRequest{
				ID:                  id,
				AgentType:           aptosagora.AgentKind(agentType),
				Name:                name,
				Description:         description,
				Configuration:       configuration,
				WithResourceAccount: autonomous,
			})
			if err != nil {
				return err
			}
			log.Info().Str("hash", res.Hash).Str("agent", id).Msg("agent created")
			return printJSON(res)
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "agent identifier (required)")
	cmd.Flags().StringVar(&agentType, "type", "creator", "agent type: creator|curator|distributor")
	cmd.Flags().StringVar(&name, "name", "", "display name (required)")
	cmd.Flags().StringVar(&description, "description", "", "agent description")
	cmd.Flags().StringArrayVar(&configPairs, "config", nil, "configuration entry key=value (repeatable)")
	cmd.Flags().BoolVar(&autonomous, "autonomous", false, "create a delegated execution account")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newAgentToggleCmd(use, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <agent-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			var res *aptosagora.TxnResult
			if use == "activate-agent" {
				res, err = client.ActivateAgent(cmd.Context(), args[0])
			} else {
				res, err = client.DeactivateAgent(cmd.Context(), args[0])
			}
			if err != nil {
				return err
			}
			return printJSON(res)
		},
	}
}

func newProfileCmd(use, short string) *cobra.Command {
	var (
		name      string
		bio       string
		linkPairs []string
	)
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			links, err := parsePairs(linkPairs)
			if err != nil {
				return err
			}
			client, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			req := aptosagora.ProfileRequest{Name: name, Bio: bio, SocialLinks: links}
			var res *aptosagora.TxnResult
			if use == "create-profile" {
				res, err = client.CreateProfile(cmd.Context(), req)
			} else {
				res, err = client.UpdateProfile(cmd.Context(), req)
			}
			if err != nil {
				return err
			}
			return printJSON(res)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name (required)")
	cmd.Flags().StringVar(&bio, "bio", "", "profile bio")
	cmd.Flags().StringArrayVar(&linkPairs, "link", nil, "social link platform=url (repeatable)")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newRateCmd() *cobra.Command {
	var feedback string
	cmd := &cobra.Command{
		Use:   "rate <content-id> <rating 1-5>",
		Short: "Rate a piece of content",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rating, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("rating must be an integer: %w", err)
			}
			client, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			res, err := client.RateContent(cmd.Context(), args[0], rating, feedback)
			if err != nil {
				return err
			}
			return printJSON(res)
		},
	}
	cmd.Flags().StringVar(&feedback, "feedback", "", "free-form feedback")
	return cmd
}

func newTxURLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tx-url <hash>",
		Short: "Print the block-explorer link for a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()
			fmt.Println(client.TransactionURL(args[0]))
			return nil
		},
	}
}
