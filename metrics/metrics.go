// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics 执行器统计数据的定时输出
package metrics

import (
	"sort"
	"time"

	"github.com/33cn/referendum/types"
	log "github.com/inconshreveable/log15"
	gometrics "github.com/rcrowley/go-metrics"
)

var mlog = log.New("module", "referendum metrics")

// StartMetrics 按配置的间隔把 registry 中的统计写入日志, 关闭 quit 停止
func StartMetrics(cfg *types.Exec, r gometrics.Registry, quit <-chan struct{}) {
	if cfg == nil || !cfg.EnableMetrics {
		mlog.Info("Metrics data is not enabled to emit")
		return
	}
	duration := time.Duration(cfg.MetricsDuration) * time.Second
	if duration <= 0 {
		duration = time.Minute
	}
	mlog.Info("StartMetrics", "duration", duration)
	go func() {
		ticker := time.NewTicker(duration)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				Emit(r)
			case <-quit:
				return
			}
		}
	}()
}

// Emit 输出一次统计
func Emit(r gometrics.Registry) {
	for _, s := range Snapshot(r) {
		mlog.Info("metrics", "name", s.Name, "count", s.Count, "mean(ms)", s.MeanMs)
	}
}

// Stat 一个统计项的快照
type Stat struct {
	Name   string
	Count  int64
	MeanMs float64
}

// Snapshot 按名称排序的统计快照, 只包含计数器和计时器
func Snapshot(r gometrics.Registry) []Stat {
	var stats []Stat
	r.Each(func(name string, i interface{}) {
		switch m := i.(type) {
		case gometrics.Counter:
			stats = append(stats, Stat{Name: name, Count: m.Count()})
		case gometrics.Timer:
			t := m.Snapshot()
			stats = append(stats, Stat{Name: name, Count: t.Count(), MeanMs: t.Mean() / float64(time.Millisecond)})
		}
	})
	sort.Slice(stats, func(i, j int) bool { return stats[i].Name < stats[j].Name })
	return stats
}
