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

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odmkit/updatemap/internal/mapping"
	"github.com/odmkit/updatemap/internal/update"
	"github.com/odmkit/updatemap/internal/util/must"
	"github.com/odmkit/updatemap/internal/util/testutil"
)

func TestMetrics(t *testing.T) {
	t.Parallel()

	metrics := NewMetrics()

	reg := prometheus.NewPedanticRegistry()
	reg.MustRegister(metrics)

	m := NewUpdateMapper(testRegistry(t), &UpdateMapperOpts{
		L:       testutil.Logger(t),
		Metrics: metrics,
	})

	u := update.New().
		Set("model", must.NotFail(mapping.NewObject("catalog.ModelImpl", "value", int32(1)))).
		Set("model.value", int32(2)).
		Inc("counter", int32(1))

	_, err := m.Map(u, "catalog.Wrapper")
	require.NoError(t, err)

	assert.InDelta(t, 2, promtestutil.ToFloat64(metrics.Mutations.WithLabelValues("$set")), 0)
	assert.InDelta(t, 1, promtestutil.ToFloat64(metrics.Mutations.WithLabelValues("$inc")), 0)
	assert.InDelta(t, 1, promtestutil.ToFloat64(metrics.TypeHints), 0)
}
