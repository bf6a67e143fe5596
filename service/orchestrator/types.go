package orchestrator

import (
	"context"
	"time"

	"github.com/kgnielsen777/AzureFinopsTools/model"
	"github.com/kgnielsen777/AzureFinopsTools/service"
	"github.com/kgnielsen777/AzureFinopsTools/service/recommender"
)

type orchestratorService struct {
	discoveryService service.DiscoveryService
	metricsService   service.MetricsService
	costService      service.CostService
	recommender      recommender.RecommenderService
	delay            time.Duration
}

// OrchestratorService scores every resource of one subscription and appends
// the resulting rows to the run's shared ordered list
type OrchestratorService interface {
	ProcessSubscription(ctx context.Context, rows *[]model.ReportRow) error
}
