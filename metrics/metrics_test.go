// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"testing"
	"time"

	"github.com/33cn/referendum/types"
	gometrics "github.com/rcrowley/go-metrics"
	"github.com/stretchr/testify/assert"
)

func TestSnapshot(t *testing.T) {
	r := gometrics.NewRegistry()
	gometrics.GetOrRegisterCounter("b.counter", r).Inc(3)
	gometrics.GetOrRegisterTimer("a.timer", r).Update(2 * time.Millisecond)
	gometrics.GetOrRegisterGauge("c.gauge", r).Update(1)

	stats := Snapshot(r)
	assert.Len(t, stats, 2)
	assert.Equal(t, "a.timer", stats[0].Name)
	assert.Equal(t, int64(1), stats[0].Count)
	assert.InDelta(t, 2.0, stats[0].MeanMs, 0.001)
	assert.Equal(t, "b.counter", stats[1].Name)
	assert.Equal(t, int64(3), stats[1].Count)
	Emit(r)
}

func TestStartMetrics(t *testing.T) {
	r := gometrics.NewRegistry()
	quit := make(chan struct{})
	StartMetrics(&types.Exec{EnableMetrics: false}, r, quit)
	StartMetrics(&types.Exec{EnableMetrics: true, MetricsDuration: 1}, r, quit)
	close(quit)
}
