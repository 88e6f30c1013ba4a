package app

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/keyforge/keyforge/internal/charset"
	"github.com/keyforge/keyforge/internal/keygen"
	"github.com/keyforge/keyforge/internal/request"
)

func init() { //nolint: gochecknoinits
	chartCmd.Flags().StringVar(&chartOut, "out", "", "Export the chart to this file")

	rootCmd.AddCommand(chartCmd)
}

// sampleLength is the number of characters shown per profile sample.
const sampleLength = 16

var (
	chartOut string

	chartCmd = &cobra.Command{
		Use:   "chart",
		Short: "Print the exclusion chart with samples and entropy figures",
		RunE: func(_ *cobra.Command, _ []string) error {
			out := io.Writer(os.Stdout)

			if chartOut != "" {
				f, err := os.Create(chartOut)
				if err != nil {
					return errors.Wrap(err, "failed to create chart file")
				}
				defer f.Close()

				out = f
			}

			return renderChart(out)
		},
	}
)

// renderChart draws a sample key for every profile and writes the chart
// as aligned columns. UD marks profiles whose candidate sets are too
// small for unique-characters mode.
func renderChart(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "INDEX\tPROFILE\tSAMPLE\tMAX UNIQUE\tBITS/CHAR")

	for _, e := range charset.Chart() {
		cfg, err := request.Validate(request.Request{
			Length:  sampleLength,
			Exclude: request.ByProfileName(e.Name),
		})
		if err != nil {
			return err
		}

		k, err := keygen.New(cfg).Key()
		if err != nil {
			return err
		}

		name := e.Name
		if e.UniqueDisabled {
			name += " (UD)"
		}

		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%.2f\n",
			e.Index, name, k.String(), e.MaxUniqueLen, e.Bits)
	}

	return w.Flush()
}
