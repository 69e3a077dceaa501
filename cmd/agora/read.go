package main

import (
	"github.com/spf13/cobra"
)

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Read on-chain marketplace state",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "content <content-id>",
			Short: "Fetch a content record",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				client, err := newClient()
				if err != nil {
					return err
				}
				defer func() { _ = client.Close() }()
				rec, err := client.GetContent(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printJSON(rec)
			},
		},
		&cobra.Command{
			Use:   "profile <address>",
			Short: "Fetch a creator profile",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				client, err := newClient()
				if err != nil {
					return err
				}
				defer func() { _ = client.Close() }()
				p, err := client.GetProfile(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printJSON(p)
			},
		},
		&cobra.Command{
			Use:   "agent <agent-id>",
			Short: "Fetch an agent record",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				client, err := newClient()
				if err != nil {
					return err
				}
				defer func() { _ = client.Close() }()
				a, err := client.GetAgent(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printJSON(a)
			},
		},
		&cobra.Command{
			Use:   "recommendations <address>",
			Short: "Fetch on-chain recommendations for an address",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				client, err := newClient()
				if err != nil {
					return err
				}
				defer func() { _ = client.Close() }()
				ids, err := client.GetRecommendations(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printJSON(ids)
			},
		},
		&cobra.Command{
			Use:   "reputation <content-id>",
			Short: "Fetch aggregated rating state for content",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				client, err := newClient()
				if err != nil {
					return err
				}
				defer func() { _ = client.Close() }()
				rep, err := client.GetContentReputation(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printJSON(rep)
			},
		},
		&cobra.Command{
			Use:   "supply",
			Short: "Fetch the platform token's total supply",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				client, err := newClient()
				if err != nil {
					return err
				}
				defer func() { _ = client.Close() }()
				supply, err := client.GetTotalSupply(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(map[string]uint64{"totalSupply": supply})
			},
		},
	)
	return cmd
}

func newHasRatedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "has-rated <address> <content-id>",
		Short: "Check whether an address has rated a piece of content",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()
			rated, err := client.HasUserRated(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return printJSON(map[string]bool{"hasRated": rated})
		},
	}
}
