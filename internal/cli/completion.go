package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/damagedcard/pkg/card"
	"github.com/matzehuels/damagedcard/pkg/pipeline"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for damagedcard.

Bash:
  $ source <(damagedcard completion bash)

Zsh:
  $ damagedcard completion zsh > "${fpath[1]}/_damagedcard"

Fish:
  $ damagedcard completion fish > ~/.config/fish/completions/damagedcard.fish

PowerShell:
  PS> damagedcard completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}

	return cmd
}

// completeCorners suggests corner names for --corners.
func completeCorners(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	names := make([]string, len(card.AllCorners))
	for i, c := range card.AllCorners {
		names[i] = string(c)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// completeFormats suggests output formats for --format.
func completeFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{pipeline.FormatSVG, pipeline.FormatPNG, pipeline.FormatJSON}, cobra.ShellCompDirectiveNoFileComp
}
