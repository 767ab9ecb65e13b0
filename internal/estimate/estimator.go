package estimate

import (
	"math"
	"math/rand"
	"strings"
)

// SeatRule 机型关键词与座位数的对应规则
type SeatRule struct {
	Keyword string
	Seats   int
}

// seatRules 按优先级顺序匹配，首个命中生效
// neo 机型排在对应基础机型之前，避免被 "空客321" 这类短关键词遮蔽
var seatRules = []SeatRule{
	{"空客321neo", 220},
	{"空客320neo", 190},
	{"空客321", 210},
	{"空客320", 186},
	{"空客319", 160},
	{"波音787", 240},
	{"波音777", 250},
	{"波音757", 200},
	{"波音747", 366},
	{"波音737", 168},
	{"ERJ-190", 104},
	{"CRJ", 86},
	{"其他机型", 150},
	{"JET", 150},
}

// DefaultSeats 未匹配任何规则时的默认座位数
const DefaultSeats = 170

// 票价估算参数
const (
	priceBase         = 120.0
	rateLongHaul      = 0.82 // 里程 > 1500 公里
	rateShortHaul     = 0.95
	longHaulKM        = 1500.0
	unknownDistanceKM = 800.0 // 里程未知时的替代值
	priceFloor        = 200.0
	noiseRatio        = 0.2
	noiseMinStdDev    = 35.0
)

// EstimateSeats 根据机型字符串估算总座位数
// 关键词子串匹配，不区分大小写
func EstimateSeats(planeModel string) int {
	upper := strings.ToUpper(planeModel)
	for _, rule := range seatRules {
		if strings.Contains(upper, strings.ToUpper(rule.Keyword)) {
			return rule.Seats
		}
	}
	return DefaultSeats
}

// RollRemainingSeats 随机生成剩余座位数，范围 [0, total]
// 每次起降独立取样，同一班次的不同日期互不相关
func RollRemainingSeats(total int, rng *rand.Rand) int {
	if total <= 0 {
		return 0
	}
	return rng.Intn(total + 1)
}

// BaselinePrice 按里程计算基准票价（未加噪声）
// 里程未知（<= 0）时按 800 公里估算
func BaselinePrice(distanceKM float64) float64 {
	if distanceKM <= 0 {
		distanceKM = unknownDistanceKM
	}
	rate := rateShortHaul
	if distanceKM > longHaulKM {
		rate = rateLongHaul
	}
	return priceBase + distanceKM*rate
}

// EstimatePrice 基准票价叠加高斯噪声后取整
// 标准差为 max(基准价*0.2, 35)，结果截断到 [max(200, 基准价*0.5), 基准价*1.5]，
// 避免票价呈完全线性的明显合成痕迹，同时保持有界
func EstimatePrice(distanceKM float64, rng *rand.Rand) int {
	baseline := BaselinePrice(distanceKM)
	stdDev := math.Max(baseline*noiseRatio, noiseMinStdDev)
	price := baseline + rng.NormFloat64()*stdDev

	lower := math.Max(priceFloor, baseline*0.5)
	upper := baseline * 1.5
	if price < lower {
		price = lower
	}
	if price > upper {
		price = upper
	}
	return int(math.Round(price))
}
