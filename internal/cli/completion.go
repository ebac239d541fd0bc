package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for mealcycle.

To load completions:

Bash:
  $ source <(mealcycle completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ mealcycle completion bash > /etc/bash_completion.d/mealcycle
  # macOS:
  $ mealcycle completion bash > $(brew --prefix)/etc/bash_completion.d/mealcycle

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ mealcycle completion zsh > "${fpath[1]}/_mealcycle"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ mealcycle completion fish | source

  # To load completions for each session, execute once:
  $ mealcycle completion fish > ~/.config/fish/completions/mealcycle.fish

PowerShell:
  PS> mealcycle completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> mealcycle completion powershell > mealcycle.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(c.outWriter())
			case "zsh":
				return cmd.Root().GenZshCompletion(c.outWriter())
			case "fish":
				return cmd.Root().GenFishCompletion(c.outWriter(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(c.outWriter())
			}
			return nil
		},
	}

	return cmd
}
