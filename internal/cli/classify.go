package cli

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"showdown-server/pkg/poker"
)

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "classify <hand>",
		Short:   "Print the category of a hand and the groups that break ties",
		Example: `  showdown classify "2S 8H 2D 8D 3H"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hand, err := poker.ParseHand(args[0])
			if err != nil {
				return err
			}

			var sb strings.Builder
			sb.WriteString(pterm.LightGreen(hand.Category().String()))
			for _, group := range hand.Classification.Groups() {
				sb.WriteString(pterm.Sprintf("\n%-9s %s", group.Name, group.Cards))
			}

			pbox := pterm.DefaultBox.WithHorizontalPadding(2)
			fmt.Fprintln(cmd.OutOrStdout(), pbox.WithTitle(pterm.LightCyan(hand.Source)).Sprint(sb.String()))
			return nil
		},
	}
}
