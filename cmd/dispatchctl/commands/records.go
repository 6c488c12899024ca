package commands

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

// CallsCmd lists calls or shows one with its history.
func CallsCmd(app *AppContext) *cobra.Command {
	var typ, status, sortBy string
	cmd := &cobra.Command{
		Use:   "calls [id]",
		Short: "List calls, or show one call with its assignments",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				id, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return err
				}
				return app.run(cmd, http.MethodGet, "/calls/"+strconv.FormatInt(id, 10), nil)
			}
			q := url.Values{}
			setIf(q, "type", typ)
			setIf(q, "status", status)
			setIf(q, "sort", sortBy)
			return app.run(cmd, http.MethodGet, withQuery("/calls", q), nil)
		},
	}
	cmd.Flags().StringVar(&typ, "type", "", "Filter by call type")
	cmd.Flags().StringVar(&status, "status", "", "Filter by derived status")
	cmd.Flags().StringVar(&sortBy, "sort", "", "Sort key")

	cmd.AddCommand(&cobra.Command{
		Use:   "counts",
		Short: "Count calls per status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.run(cmd, http.MethodGet, "/calls/counts", nil)
		},
	})
	return cmd
}

// VolunteersCmd lists volunteers with their summaries.
func VolunteersCmd(app *AppContext) *cobra.Command {
	var sortBy, active string
	cmd := &cobra.Command{
		Use:   "volunteers",
		Short: "List volunteers with their assignment totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			setIf(q, "sort", sortBy)
			setIf(q, "active", active)
			return app.run(cmd, http.MethodGet, withQuery("/volunteers", q), nil)
		},
	}
	cmd.Flags().StringVar(&sortBy, "sort", "", "Sort key")
	cmd.Flags().StringVar(&active, "active", "", "Filter by active flag (true or false)")
	return cmd
}

func setIf(q url.Values, key, v string) {
	if v != "" {
		q.Set(key, v)
	}
}

func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}
