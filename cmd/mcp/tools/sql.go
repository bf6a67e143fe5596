package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
	"github.com/kgnielsen777/AzureFinopsTools/cmd/mcp/response"
	"github.com/kgnielsen777/AzureFinopsTools/model"
	azurecostmanagement "github.com/kgnielsen777/AzureFinopsTools/service/azure/costmanagement"
	azuregateway "github.com/kgnielsen777/AzureFinopsTools/service/azure/gateway"
	azuremonitor "github.com/kgnielsen777/AzureFinopsTools/service/azure/monitor"
	azuresql "github.com/kgnielsen777/AzureFinopsTools/service/azure/sql"
	"github.com/kgnielsen777/AzureFinopsTools/service/orchestrator"
	"github.com/kgnielsen777/AzureFinopsTools/service/recommender"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterSQLTools registers the SQL right-sizing tools with the MCP server
func RegisterSQLTools(s *server.MCPServer, subscriptionID string, includeScaleUp bool, maxRetries, delayMS int) {
	s.AddTool(
		mcp.NewTool("azure_list_subscriptions",
			mcp.WithDescription("List all Azure subscriptions the current credential has access to"),
		),
		makeListSubscriptionsHandler(),
	)

	s.AddTool(
		mcp.NewTool("azure_sql_rightsizing_report",
			mcp.WithDescription("Analyze every elastic pool and standalone SQL database in the subscription and return capacity right-sizing recommendations with estimated savings. Requires AZURE_SUBSCRIPTION_ID."),
		),
		makeRightsizingHandler(subscriptionID, includeScaleUp, maxRetries, delayMS),
	)
}

func makeListSubscriptionsHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		credential, err := azidentity.NewDefaultAzureCredential(nil)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create Azure credential: %v", err)), nil
		}

		client, err := armsubscriptions.NewClient(credential, nil)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create subscriptions client: %v", err)), nil
		}

		var subscriptions []response.AzureSubscription
		pager := client.NewListPager(nil)
		for pager.More() {
			page, err := pager.NextPage(ctx)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to list subscriptions: %v", err)), nil
			}

			for _, sub := range page.Value {
				item := response.AzureSubscription{}
				if sub.SubscriptionID != nil {
					item.SubscriptionID = *sub.SubscriptionID
				}
				if sub.DisplayName != nil {
					item.DisplayName = *sub.DisplayName
				}
				if sub.State != nil {
					item.State = string(*sub.State)
				}
				subscriptions = append(subscriptions, item)
			}
		}

		return toolResultJSON(subscriptions)
	}
}

func makeRightsizingHandler(subscriptionID string, includeScaleUp bool, maxRetries, delayMS int) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if subscriptionID == "" {
			return mcp.NewToolResultError("AZURE_SUBSCRIPTION_ID is not configured"), nil
		}

		credential, err := azidentity.NewDefaultAzureCredential(nil)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create Azure credential: %v", err)), nil
		}

		sqlService, err := azuresql.NewService(subscriptionID, credential)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create SQL service: %v", err)), nil
		}

		metricsService, err := azuremonitor.NewService(credential)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create metrics service: %v", err)), nil
		}

		delay := time.Duration(delayMS) * time.Millisecond
		gatewayService := azuregateway.NewService(credential, maxRetries)
		costService := azurecostmanagement.NewService(subscriptionID, gatewayService, delay)

		orchestratorService := orchestrator.NewService(sqlService, metricsService, costService, recommender.NewService(), delay)

		var rows []model.ReportRow
		if err := orchestratorService.ProcessSubscription(ctx, &rows); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to analyze subscription: %v", err)), nil
		}

		orchestrator.ApplyScaleUpPolicy(rows, includeScaleUp)
		summary := orchestrator.Summarize(rows)

		return toolResultJSON(response.ConvertReport(rows, summary))
	}
}

func toolResultJSON(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
