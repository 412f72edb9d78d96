package booking

import (
	"errors"
	"strings"

	"github.com/prestigedrive/prestigedrive/internal/availability"
)

// 预订资格检查的三类失败（哨兵错误，HTTP 层据此映射响应码）。
var (
	ErrMissingDate     = errors.New("pickup and return dates are required")
	ErrInvalidRange    = errors.New("pickup date is after return date")
	ErrDateUnavailable = errors.New("date is not available for this car")
)

// AvailabilityQuery 是资格检查对可租数据的最小依赖（由 availability.Store 实现）。
type AvailabilityQuery interface {
	IsDateAvailable(carID, date string) bool
}

// CheckEligibility 在落库前对提议的日期区间做一致性检查：
//  1. 任一日期缺失 -> ErrMissingDate
//  2. 取车日晚于还车日 -> ErrInvalidRange
//  3. 任一端点日期不在该车可租集合内 -> ErrDateUnavailable
//
// 注意：只校验两个端点，区间内部的日期不检查——两端可租即可整段预订。
// 这是沿用的线上行为，产品尚未确认是否要改为全区间校验，勿私自收紧。
func CheckEligibility(q AvailabilityQuery, carID, pickupDate, returnDate string) error {
	pickup := availability.NormalizeDay(strings.TrimSpace(pickupDate))
	ret := availability.NormalizeDay(strings.TrimSpace(returnDate))

	if pickup == "" || ret == "" {
		return ErrMissingDate
	}
	// ISO 日字符串可按字典序比较
	if pickup > ret {
		return ErrInvalidRange
	}
	if q == nil {
		return ErrDateUnavailable
	}
	if !q.IsDateAvailable(carID, pickup) || !q.IsDateAvailable(carID, ret) {
		return ErrDateUnavailable
	}
	return nil
}
