package main

import (
	"os"
	"strings"

	"github.com/jacksmith/contacts/internal/config"
	"github.com/jacksmith/contacts/internal/logger"
	"github.com/jacksmith/contacts/internal/ops"
	"github.com/jacksmith/contacts/internal/storage"
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for contacts.

To load completions:

Bash:
  $ source <(contacts completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ contacts completion bash > /etc/bash_completion.d/contacts
  # macOS:
  $ contacts completion bash > $(brew --prefix)/etc/bash_completion.d/contacts

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc
  # To load completions for each session, execute once:
  $ contacts completion zsh > "${fpath[1]}/_contacts"
  # You will need to start a new shell for this setup to take effect.

Fish:
  $ contacts completion fish | source
  # To load completions for each session, execute once:
  $ contacts completion fish > ~/.config/fish/completions/contacts.fish
`,
}

var completionBashCmd = &cobra.Command{
	Use:   "bash",
	Short: "Generate bash completion script",
	Long:  "Generate the autocompletion script for bash.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenBashCompletion(os.Stdout)
	},
}

var completionZshCmd = &cobra.Command{
	Use:   "zsh",
	Short: "Generate zsh completion script",
	Long:  "Generate the autocompletion script for zsh.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenZshCompletion(os.Stdout)
	},
}

var completionFishCmd = &cobra.Command{
	Use:   "fish",
	Short: "Generate fish completion script",
	Long:  "Generate the autocompletion script for fish.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenFishCompletion(os.Stdout, true)
	},
}

func init() {
	completionCmd.AddCommand(completionBashCmd)
	completionCmd.AddCommand(completionZshCmd)
	completionCmd.AddCommand(completionFishCmd)
	rootCmd.AddCommand(completionCmd)
}

// completeNames completes contact names from the configured backing file.
// It never creates the file and never logs.
func completeNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	cfg, err := config.Load(flagConfig, rootCmd.PersistentFlags())
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	if _, err := os.Stat(cfg.File); err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	g, err := storage.Open(cfg.File)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	m, err := ops.NewManager(g, logger.Nop())
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	toCompleteLower := strings.ToLower(toComplete)
	for _, c := range m.List() {
		if strings.HasPrefix(strings.ToLower(c.Name()), toCompleteLower) {
			completions = append(completions, c.Name()+"\t"+c.Email())
		}
	}

	return completions, cobra.ShellCompDirectiveNoFileComp
}
