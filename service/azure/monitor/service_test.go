package azuremonitor

import (
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/monitor/armmonitor"
	"github.com/kgnielsen777/AzureFinopsTools/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func metricSeries(values ...*armmonitor.MetricValue) []*armmonitor.Metric {
	return []*armmonitor.Metric{
		{
			Timeseries: []*armmonitor.TimeSeriesElement{
				{Data: values},
			},
		},
	}
}

func TestAggregateSample(t *testing.T) {
	metrics := metricSeries(
		&armmonitor.MetricValue{Average: to.Ptr(10.0), Maximum: to.Ptr(30.0)},
		&armmonitor.MetricValue{Average: to.Ptr(20.0), Maximum: to.Ptr(50.0)},
		&armmonitor.MetricValue{Average: to.Ptr(30.0), Maximum: to.Ptr(70.0)},
	)

	sample := aggregateSample(metrics)
	require.NotNil(t, sample.AvgPercent)
	require.NotNil(t, sample.PeakPercent)
	assert.InDelta(t, 20.0, *sample.AvgPercent, 0.001)
	assert.InDelta(t, 50.0, *sample.PeakPercent, 0.001)
}

func TestAggregateSample_NoData(t *testing.T) {
	sample := aggregateSample(nil)
	assert.Nil(t, sample.AvgPercent)
	assert.Nil(t, sample.PeakPercent)

	// Series exist but carry no values: still no data
	sample = aggregateSample(metricSeries())
	assert.Nil(t, sample.AvgPercent)
	assert.Nil(t, sample.PeakPercent)
}

// A resource that recorded genuine zeros must come back as zero, not as
// missing data: the engine treats those two cases differently.
func TestAggregateSample_TrueZeroIsNotAbsent(t *testing.T) {
	metrics := metricSeries(
		&armmonitor.MetricValue{Average: to.Ptr(0.0), Maximum: to.Ptr(0.0)},
	)

	sample := aggregateSample(metrics)
	require.NotNil(t, sample.AvgPercent)
	require.NotNil(t, sample.PeakPercent)
	assert.Zero(t, *sample.AvgPercent)
	assert.Zero(t, *sample.PeakPercent)
}

func TestAggregateSample_SkipsGaps(t *testing.T) {
	metrics := metricSeries(
		&armmonitor.MetricValue{Average: to.Ptr(40.0), Maximum: to.Ptr(80.0)},
		&armmonitor.MetricValue{}, // day without samples
		&armmonitor.MetricValue{Average: to.Ptr(60.0)},
	)

	sample := aggregateSample(metrics)
	require.NotNil(t, sample.AvgPercent)
	require.NotNil(t, sample.PeakPercent)
	assert.InDelta(t, 50.0, *sample.AvgPercent, 0.001)
	assert.InDelta(t, 80.0, *sample.PeakPercent, 0.001)
}

func TestMetricNameFor(t *testing.T) {
	assert.Equal(t, "dtu_consumption_percent", metricNameFor(model.UnitDTU))
	assert.Equal(t, "cpu_percent", metricNameFor(model.UnitVCore))
}
