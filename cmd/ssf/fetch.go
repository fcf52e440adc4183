package main

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"ssf/internal/display"

	"github.com/spf13/cobra"
)

// bodyPreviewLimit caps how much of a response body fetch prints.
const bodyPreviewLimit = 2048

// NewFetchCmd creates the fetch command
func NewFetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch <url>",
		Short: "Fetch a URL and preview the response",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := args[0]
			client := &http.Client{Timeout: time.Duration(cfg.Timeout) * time.Second}

			resp, err := client.Get(url)
			if err != nil {
				display.Error("fetch failed: %v", err)
				return err
			}
			defer resp.Body.Close()

			body, err := io.ReadAll(io.LimitReader(resp.Body, bodyPreviewLimit))
			if err != nil {
				display.Error("failed to read response: %v", err)
				return err
			}

			display.Info("%s %s", resp.Proto, resp.Status)
			display.Info("content-type: %s", resp.Header.Get("Content-Type"))
			display.Info("content-length: %d", resp.ContentLength)
			fmt.Println()
			fmt.Println(string(body))
			if int64(len(body)) == bodyPreviewLimit {
				display.Info("(body truncated at %d bytes)", bodyPreviewLimit)
			}
			return nil
		},
	}
}
