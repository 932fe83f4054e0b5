// Package metrics 定义站点的 Prometheus 指标。
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	LoginSuccess = "success"
	LoginFailure = "failure"

	OpCreate = "create"
	OpDelete = "delete"
)

type Metrics struct {
	LoginAttempts     *prometheus.CounterVec
	MaterialMutations *prometheus.CounterVec
}

// New 创建并注册指标，同时注册 Go 运行时与进程指标
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		LoginAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "material_site_login_attempts_total",
				Help: "Total number of admin login attempts by result",
			},
			[]string{"result"},
		),
		MaterialMutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "material_site_material_mutations_total",
				Help: "Total number of material mutations by operation",
			},
			[]string{"op"},
		),
	}

	reg.MustRegister(m.LoginAttempts)
	reg.MustRegister(m.MaterialMutations)
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return m
}

func (m *Metrics) Login(success bool) {
	if success {
		m.LoginAttempts.WithLabelValues(LoginSuccess).Inc()
	} else {
		m.LoginAttempts.WithLabelValues(LoginFailure).Inc()
	}
}

func (m *Metrics) Mutation(op string) {
	m.MaterialMutations.WithLabelValues(op).Inc()
}
