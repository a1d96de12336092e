package threads

import (
	"context"
	"net/url"
)

var userInsightsMetrics = "views,likes,replies,quotes,reposts,followers_count"

var threadInsightsMetrics = "views,likes,replies,reposts,quotes"

// FlattenSeries sets the metric's display value from the first entry of its time series.
// Metrics without any series entries are left untouched.
func (metric *Metric) FlattenSeries() {
	if len(metric.Values) == 0 {
		return
	}
	value := metric.Values[0].Value
	metric.Value = &value
}

// FlattenTotal sets the metric's display value from its aggregate total value.
// Metrics without a total value are left untouched.
func (metric *Metric) FlattenTotal() {
	if metric.TotalValue == nil {
		return
	}
	value := metric.TotalValue.Value
	metric.Value = &value
}

// UserInsights fetches the account-level insights metrics of the given user,
// optionally restricted to the given epoch timestamp range
func (client *Client) UserInsights(ctx context.Context, token, userID, since, until string) ([]Metric, error) {
	metrics, err := client.fetchInsights(ctx, token, userID+"/threads_insights", userInsightsMetrics, since, until)
	if err != nil {
		return nil, err
	}
	for i := range metrics {
		// The 'views' metric is the only account-level metric reported as a time series
		if metrics[i].Name == "views" {
			metrics[i].FlattenSeries()
		} else {
			metrics[i].FlattenTotal()
		}
	}
	return metrics, nil
}

// ThreadInsights fetches the insights metrics of a single thread,
// optionally restricted to the given epoch timestamp range
func (client *Client) ThreadInsights(ctx context.Context, token, threadID, since, until string) ([]Metric, error) {
	metrics, err := client.fetchInsights(ctx, token, threadID+"/insights", threadInsightsMetrics, since, until)
	if err != nil {
		return nil, err
	}
	for i := range metrics {
		metrics[i].FlattenTotal()
	}
	return metrics, nil
}

func (client *Client) fetchInsights(ctx context.Context, token, path, metricSet, since, until string) ([]Metric, error) {
	params := url.Values{}
	params.Set("metric", metricSet)
	if since != "" {
		params.Set("since", since)
	}
	if until != "" {
		params.Set("until", until)
	}

	var response struct {
		Data []Metric `json:"data"`
	}
	if err := client.getJSON(ctx, client.url(path, params, token), &response); err != nil {
		return nil, err
	}
	return response.Data, nil
}
