package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"volunteer-dispatch/internal/http/handlers"
)

// AppContext holds what every command needs to talk to a running service.
type AppContext struct {
	Server  string
	As      string
	Timeout time.Duration
	Out     io.Writer
	HTTP    *http.Client
}

// APIError is a non-2xx answer from the service.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, strings.TrimSpace(e.Body))
}

// NewRootCmd builds the dispatchctl command tree writing results to out.
func NewRootCmd(out io.Writer) *cobra.Command {
	app := &AppContext{Out: out}

	root := &cobra.Command{
		Use:          "dispatchctl",
		Short:        "Operate a running volunteer dispatch service",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			app.Server = strings.TrimRight(app.Server, "/")
			if app.Server == "" {
				return fmt.Errorf("--server must not be empty")
			}
			if app.HTTP == nil {
				app.HTTP = &http.Client{Timeout: app.Timeout}
			}
			return nil
		},
	}
	root.SetOut(out)

	root.PersistentFlags().StringVarP(&app.Server, "server", "s", "http://localhost:8080", "Base URL of the dispatch service")
	root.PersistentFlags().StringVar(&app.As, "as", "", "Volunteer id sent as the requester")
	root.PersistentFlags().DurationVar(&app.Timeout, "timeout", 10*time.Second, "Request timeout")

	root.AddCommand(
		ClockCmd(app),
		AdvanceCmd(app),
		RiskWindowCmd(app),
		SimulatorCmd(app),
		ResetCmd(app),
		InitializeCmd(app),
		CallsCmd(app),
		VolunteersCmd(app),
	)
	return root
}

func (a *AppContext) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, a.Server+path, rd)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.As != "" {
		req.Header.Set(handlers.RequesterHeader, a.As)
	}

	resp, err := a.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{Status: resp.StatusCode, Body: string(data)}
	}
	return data, nil
}

// print writes the response indented, or "ok" when the service sent no body.
func (a *AppContext) print(data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		_, err := fmt.Fprintln(a.Out, "ok")
		return err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		_, err = a.Out.Write(data)
		return err
	}
	buf.WriteByte('\n')
	_, err := buf.WriteTo(a.Out)
	return err
}

func (a *AppContext) run(cmd *cobra.Command, method, path string, body any) error {
	data, err := a.do(cmd.Context(), method, path, body)
	if err != nil {
		return err
	}
	return a.print(data)
}
