package azuremonitor

import (
	"context"
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/monitor/armmonitor"
	"github.com/kgnielsen777/AzureFinopsTools/model"
)

// lookbackDays is the fixed utilization window
const lookbackDays = 30

func NewService(credential *Credential) (*service, error) {
	client, err := armmonitor.NewMetricsClient(credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics client: %w", err)
	}

	return &service{client: client}, nil
}

// GetUtilization implements MetricsService. It queries daily Average and
// Maximum datapoints for the unit's utilization metric over the last 30 days
// and reduces them to a single average and an average of the daily peaks.
func (s *service) GetUtilization(ctx context.Context, resourceID string, unit model.CapacityUnitKind) (model.UtilizationSample, error) {
	end := time.Now().UTC()
	start := end.AddDate(0, 0, -lookbackDays)

	resp, err := s.client.List(ctx, resourceID, &armmonitor.MetricsClientListOptions{
		Timespan:    to.Ptr(fmt.Sprintf("%s/%s", start.Format(time.RFC3339), end.Format(time.RFC3339))),
		Interval:    to.Ptr("P1D"),
		Metricnames: to.Ptr(metricNameFor(unit)),
		Aggregation: to.Ptr("Average,Maximum"),
	})
	if err != nil {
		return model.UtilizationSample{}, fmt.Errorf("failed to query utilization for %s: %w", resourceID, err)
	}

	return aggregateSample(resp.Value), nil
}

// metricNameFor picks the utilization metric matching the billing unit
func metricNameFor(unit model.CapacityUnitKind) string {
	if unit == model.UnitVCore {
		return "cpu_percent"
	}
	return "dtu_consumption_percent"
}

// aggregateSample reduces daily metric values to the sample the engine
// consumes: the mean of the daily averages and the mean of the daily maxima.
// Days without a value are skipped; if no datapoints exist at all the
// corresponding field stays nil.
func aggregateSample(metrics []*armmonitor.Metric) model.UtilizationSample {
	var avgSum, maxSum float64
	var avgCount, maxCount int

	for _, metric := range metrics {
		if metric == nil {
			continue
		}
		for _, series := range metric.Timeseries {
			if series == nil {
				continue
			}
			for _, value := range series.Data {
				if value == nil {
					continue
				}
				if value.Average != nil {
					avgSum += *value.Average
					avgCount++
				}
				if value.Maximum != nil {
					maxSum += *value.Maximum
					maxCount++
				}
			}
		}
	}

	var sample model.UtilizationSample
	if avgCount > 0 {
		sample.AvgPercent = to.Ptr(avgSum / float64(avgCount))
	}
	if maxCount > 0 {
		sample.PeakPercent = to.Ptr(maxSum / float64(maxCount))
	}
	return sample
}
