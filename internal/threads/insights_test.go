package threads

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricFlattening(t *testing.T) {
	t.Run("Series", func(t *testing.T) {
		metric := &Metric{
			Name:   "views",
			Values: []MetricValue{{Value: 42}, {Value: 7}},
		}
		metric.FlattenSeries()
		require.NotNil(t, metric.Value)
		assert.Equal(t, int64(42), *metric.Value)
	})

	t.Run("SeriesMissing", func(t *testing.T) {
		metric := &Metric{Name: "views"}
		metric.FlattenSeries()
		assert.Nil(t, metric.Value)
	})

	t.Run("Total", func(t *testing.T) {
		metric := &Metric{
			Name:       "likes",
			TotalValue: &MetricValue{Value: 7},
		}
		metric.FlattenTotal()
		require.NotNil(t, metric.Value)
		assert.Equal(t, int64(7), *metric.Value)
	})

	t.Run("TotalMissing", func(t *testing.T) {
		metric := &Metric{Name: "likes"}
		metric.FlattenTotal()
		assert.Nil(t, metric.Value)
	})
}

func TestUserInsights(t *testing.T) {
	var requestedMetrics, requestedSince, requestedUntil string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		require.Equal(t, "/user-1/threads_insights", request.URL.Path)
		requestedMetrics = request.URL.Query().Get("metric")
		requestedSince = request.URL.Query().Get("since")
		requestedUntil = request.URL.Query().Get("until")
		fmt.Fprint(writer, `{"data":[
			{"name":"views","values":[{"value":42},{"value":3}]},
			{"name":"likes","total_value":{"value":7}},
			{"name":"followers_count"}
		]}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	metrics, err := client.UserInsights(context.Background(), "token", "user-1", "1700000000", "1700086400")
	require.NoError(t, err)
	require.Len(t, metrics, 3)

	assert.Equal(t, "views,likes,replies,quotes,reposts,followers_count", requestedMetrics)
	assert.Equal(t, "1700000000", requestedSince)
	assert.Equal(t, "1700086400", requestedUntil)

	// 'views' is flattened via its time series, everything else via the total value
	require.NotNil(t, metrics[0].Value)
	assert.Equal(t, int64(42), *metrics[0].Value)
	require.NotNil(t, metrics[1].Value)
	assert.Equal(t, int64(7), *metrics[1].Value)
	assert.Nil(t, metrics[2].Value)
}

func TestThreadInsights(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		require.Equal(t, "/thread-1/insights", request.URL.Path)
		require.Equal(t, "views,likes,replies,reposts,quotes", request.URL.Query().Get("metric"))
		require.Empty(t, request.URL.Query().Get("since"))
		fmt.Fprint(writer, `{"data":[
			{"name":"views","total_value":{"value":100}},
			{"name":"likes","values":[{"value":5}]}
		]}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	metrics, err := client.ThreadInsights(context.Background(), "token", "thread-1", "", "")
	require.NoError(t, err)
	require.Len(t, metrics, 2)

	require.NotNil(t, metrics[0].Value)
	assert.Equal(t, int64(100), *metrics[0].Value)
	// Thread-level metrics only consider the total value, a bare time series stays unflattened
	assert.Nil(t, metrics[1].Value)
}
