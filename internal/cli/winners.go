package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"showdown-server/pkg/poker"
)

var errNoHands = errors.New("no hands given: pass them as arguments or pipe one per line on stdin")

func newWinnersCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "winners [hand...]",
		Short: "Print the winning hands",
		Long: `Print the hands tied for the win, exactly as they were given.

With no arguments, hands are read from stdin, one per line.`,
		Example: `  showdown winners "4S 5S 6S 8D 3C" "2S 4C 7S 9H 10H" "3S 4S 5D 6H JH"
  cat hands.txt | showdown winners --plain`,
		RunE: func(cmd *cobra.Command, args []string) error {
			hands := args
			if len(hands) == 0 {
				var err error
				if hands, err = readHands(cmd.InOrStdin()); err != nil {
					return err
				}
			}

			winners, err := poker.WinningHands(hands)
			if err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"hands":   len(hands),
				"winners": len(winners),
			}).Debug("showdown")

			out := cmd.OutOrStdout()
			if plain {
				for _, hand := range winners {
					fmt.Fprintln(out, hand)
				}

				return nil
			}

			lines := make([]string, len(winners))
			for i, hand := range winners {
				lines[i] = pterm.LightCyan(hand)
			}

			pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
			fmt.Fprintln(out, pbox.WithTitle(pterm.LightGreen("|SHOWDOWN|")).WithTitleTopCenter().Sprint(strings.Join(lines, "\n")))
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print one winning hand per line without decoration")
	return cmd
}

// readHands reads one hand per line, skipping blank lines
// An interactive terminal is refused so the command never blocks waiting for input.
func readHands(in io.Reader) ([]string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, errNoHands
	}

	hands := make([]string, 0)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		hands = append(hands, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(hands) == 0 {
		return nil, errNoHands
	}

	return hands, nil
}
