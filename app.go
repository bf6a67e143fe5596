package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/kgnielsen777/AzureFinopsTools/model"
	azureconfig "github.com/kgnielsen777/AzureFinopsTools/service/azure/config"
	azurecostmanagement "github.com/kgnielsen777/AzureFinopsTools/service/azure/costmanagement"
	azuregateway "github.com/kgnielsen777/AzureFinopsTools/service/azure/gateway"
	azureidentity "github.com/kgnielsen777/AzureFinopsTools/service/azure/identity"
	azuremonitor "github.com/kgnielsen777/AzureFinopsTools/service/azure/monitor"
	azuresql "github.com/kgnielsen777/AzureFinopsTools/service/azure/sql"
	"github.com/kgnielsen777/AzureFinopsTools/service/flag"
	"github.com/kgnielsen777/AzureFinopsTools/service/orchestrator"
	"github.com/kgnielsen777/AzureFinopsTools/service/recommender"
	"github.com/kgnielsen777/AzureFinopsTools/service/report"
	"github.com/kgnielsen777/AzureFinopsTools/utils"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	utils.DrawBanner()

	flagService := flag.NewService()
	flags, err := flagService.GetParsedFlags()
	if err != nil {
		panic(err)
	}

	cfgService, err := azureconfig.NewService()
	if err != nil {
		panic(err)
	}
	credential := cfgService.GetCredential()

	ctx := context.Background()

	subscriptions := []string{flags.Subscription}
	if flags.Subscription == "" {
		identityService, err := azureidentity.NewService(credential)
		if err != nil {
			panic(err)
		}
		subscriptions, err = identityService.ListSubscriptionIDs(ctx)
		if err != nil {
			panic(err)
		}
	}

	// The only fatal condition: nothing to scan at all
	if len(subscriptions) == 0 {
		panic("no accessible Azure subscriptions")
	}

	delay := time.Duration(flags.DelayMS) * time.Millisecond
	gatewayService := azuregateway.NewService(credential, flags.MaxRetries)
	recommenderService := recommender.NewService()

	utils.StartSpinner("analyzing SQL resources")

	var rows []model.ReportRow
	for _, subscriptionID := range subscriptions {
		err := processSubscription(ctx, subscriptionID, credential, gatewayService, recommenderService, delay, &rows)
		if err != nil {
			log.Warn().Err(err).Str("subscription", subscriptionID).Msg("subscription skipped")
		}
	}

	utils.StopSpinner()

	orchestrator.ApplyScaleUpPolicy(rows, flags.IncludeScaleUp)
	summary := orchestrator.Summarize(rows)

	utils.DrawReportTable(rows, summary)
	utils.DrawSavingsChart(rows)

	reportService := report.NewService()
	if err := reportService.WriteFile(flags.Output, rows, summary); err != nil {
		panic(err)
	}

	fmt.Printf("\n Report written to %s\n", text.FgHiGreen.Sprint(flags.Output))
}

func processSubscription(ctx context.Context, subscriptionID string, credential *azuresql.Credential, gatewayService azurecostmanagement.Invoker, rec recommender.RecommenderService, delay time.Duration, rows *[]model.ReportRow) error {
	sqlService, err := azuresql.NewService(subscriptionID, credential)
	if err != nil {
		return err
	}

	metricsService, err := azuremonitor.NewService(credential)
	if err != nil {
		return err
	}

	costService := azurecostmanagement.NewService(subscriptionID, gatewayService, delay)

	orchestratorService := orchestrator.NewService(sqlService, metricsService, costService, rec, delay)
	return orchestratorService.ProcessSubscription(ctx, rows)
}
