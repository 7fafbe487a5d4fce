package metrics

import "github.com/prometheus/client_golang/prometheus"

//Register adds the metric to the default prometheus registry,
//replacing any previous registration of the same collector
func Register(m prometheus.Collector) error {
	err := prometheus.Register(m)
	if err != nil {
		prometheus.Unregister(m)
		err = prometheus.Register(m)
	}
	return err
}
