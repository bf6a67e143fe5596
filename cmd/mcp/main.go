package main

import (
	"fmt"
	"os"

	"github.com/kgnielsen777/AzureFinopsTools/cmd/mcp/tools"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	cfg := LoadConfig()

	s := server.NewMCPServer(
		"azure-finops-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	tools.RegisterSQLTools(s, cfg.AzureSubscriptionID, cfg.IncludeScaleUp, cfg.MaxRetries, cfg.DelayMS)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
