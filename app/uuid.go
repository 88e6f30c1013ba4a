package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keyforge/keyforge/internal/keygen"
)

func init() { //nolint: gochecknoinits
	uuidCmd.Flags().IntVar(&uuidVersion, "version", 4, "UUID version (1-5)")

	rootCmd.AddCommand(uuidCmd)
}

var (
	uuidVersion int

	uuidCmd = &cobra.Command{
		Use:   "uuid",
		Short: "Generate an RFC 4122 compliant identifier",
		RunE: func(_ *cobra.Command, _ []string) error {
			id, err := keygen.NewUUID(uuidVersion)
			if err != nil {
				return err
			}

			fmt.Println(id.String())

			return nil
		},
	}
)
