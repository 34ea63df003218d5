// Copyright 2024 OdmKit Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mapper

import "github.com/prometheus/client_golang/prometheus"

const (
	namespace = "updatemap"
	subsystem = "mapper"
)

// Metrics represents update mapper metrics.
type Metrics struct {
	Mutations *prometheus.CounterVec
	TypeHints prometheus.Counter
}

// NewMetrics creates new update mapper metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		Mutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "mutations_total",
				Help:      "Total number of mapped mutations.",
			},
			[]string{"operator"},
		),
		TypeHints: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "type_hints_total",
				Help:      "Total number of type discriminators written into mapped values.",
			},
		),
	}
}

// Describe implements prometheus.Collector.
func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	m.Mutations.Describe(ch)
	m.TypeHints.Describe(ch)
}

// Collect implements prometheus.Collector.
func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	m.Mutations.Collect(ch)
	m.TypeHints.Collect(ch)
}

// check interfaces
var (
	_ prometheus.Collector = (*Metrics)(nil)
)
