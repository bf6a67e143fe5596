package flag

import (
	"flag"

	"github.com/kgnielsen777/AzureFinopsTools/model"
)

func NewService() *service {
	return &service{}
}

func (s *service) GetParsedFlags() (model.Flags, error) {
	subscription := flag.String("subscription", "", "Azure subscription ID (empty scans every accessible subscription)")
	output := flag.String("output", "sql_rightsizing_report.csv", "Path of the CSV report")
	includeScaleUp := flag.Bool("include-scale-up", false, "Keep scale-up suggestions in the report instead of rewriting them to NoChange")
	delay := flag.Int("delay", 250, "Delay in milliseconds between outbound API calls")
	maxRetries := flag.Int("max-retries", 5, "Maximum attempts per billing call when throttled")

	flag.Parse()

	return model.Flags{
		Subscription:   *subscription,
		Output:         *output,
		IncludeScaleUp: *includeScaleUp,
		DelayMS:        *delay,
		MaxRetries:     *maxRetries,
	}, nil
}
