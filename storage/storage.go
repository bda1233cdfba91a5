// Package storage 统一的持久化入口。
// 每类实体一个接口，数据库实现为主，本地文件实现兜底：
// 远端读写失败时记一条告警并降级到本地，保证调用方总能拿到结果。
package storage

import (
	"errors"

	"cityinfo/pkg/log"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

var ErrNotFound = errors.New("记录不存在")

var fallbackTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "cityinfo_storage_fallback_total",
		Help: "Remote storage failures that degraded to local store",
	},
	[]string{"op"},
)

func init() {
	prometheus.MustRegister(fallbackTotal)
}

// 本地存储的 bucket 名
const (
	bucketPosts       = "posts"
	bucketUsers       = "users"
	bucketMessages    = "messages"
	bucketWalletTx    = "wallet_tx"
	bucketWithdrawals = "withdrawals"
	bucketConfig      = "sys_config"
	bucketCategories  = "categories"
	bucketMerchants   = "merchants"
	bucketServices    = "services"
	bucketBanners     = "banners"
)

func degrade[T any](op string, remote func() (T, error), local func() (T, error)) (T, error) {
	out, err := remote()
	if err == nil {
		return out, nil
	}
	log.L.Warn("存储降级到本地", zap.String("op", op), zap.Error(err))
	fallbackTotal.WithLabelValues(op).Inc()
	return local()
}

func degradeErr(op string, remote func() error, local func() error) error {
	if err := remote(); err != nil {
		log.L.Warn("存储降级到本地", zap.String("op", op), zap.Error(err))
		fallbackTotal.WithLabelValues(op).Inc()
		return local()
	}
	return nil
}
